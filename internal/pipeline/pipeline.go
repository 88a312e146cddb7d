// Package pipeline models the per-order marketplace workflow as an explicit
// state machine with a guarded transition table.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// Step is a stage of the order marketplace pipeline.
type Step string

const (
	StepPost     Step = "post"
	StepBids     Step = "bids"
	StepSelect   Step = "select"
	StepBooking  Step = "booking"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
	StepComplete Step = "complete"
)

// ErrInvalidTransition reports a pipeline hop not present in the transition table.
var ErrInvalidTransition = errors.New("invalid pipeline transition")

// allowed lists the forward transitions of the pipeline. The review step is
// optional: payment may settle directly into complete, or go through review
// with a deliberate transition.
var allowed = map[Step][]Step{
	StepPost:     {StepBids},
	StepBids:     {StepSelect},
	StepSelect:   {StepBooking},
	StepBooking:  {StepPayment},
	StepPayment:  {StepReview, StepComplete},
	StepReview:   {StepComplete},
	StepComplete: {},
}

// Steps returns the pipeline stages in presentation order.
func Steps() []Step {
	return []Step{StepPost, StepBids, StepSelect, StepBooking, StepPayment, StepReview, StepComplete}
}

// Valid reports whether s is a known pipeline step.
func Valid(s Step) bool {
	_, ok := allowed[s]
	return ok
}

// Transition validates the hop from one step to the next. Backward moves and
// unlisted hops are rejected.
func Transition(from, to Step) error {
	next, ok := allowed[from]
	if !ok {
		return fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, from)
	}
	for _, s := range next {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

// Terminal reports whether the step has no outgoing transitions.
func Terminal(s Step) bool {
	return len(allowed[s]) == 0 && Valid(s)
}

// statusSteps maps each persisted order status onto the pipeline stages it
// spans. Statuses are coarser than stages: a booked order has been through
// bid selection and sits on the booking form. Draft orders never leave the
// customer session and have no pipeline position.
var statusSteps = map[model.OrderStatus][]Step{
	model.OrderStatusPosted:     {StepPost},
	model.OrderStatusBidding:    {StepBids},
	model.OrderStatusBooked:     {StepSelect, StepBooking},
	model.OrderStatusInProgress: {StepPayment},
	model.OrderStatusCompleted:  {StepComplete},
}

// AdvanceStatus validates moving an order between persisted statuses by
// walking the stage table across every stage the target spans.
func AdvanceStatus(from, to model.OrderStatus) error {
	fromSteps, ok := statusSteps[from]
	if !ok {
		return fmt.Errorf("%w: status %q has no pipeline position", ErrInvalidTransition, from)
	}
	toSteps, ok := statusSteps[to]
	if !ok {
		return fmt.Errorf("%w: status %q has no pipeline position", ErrInvalidTransition, to)
	}

	cur := fromSteps[len(fromSteps)-1]
	for _, next := range toSteps {
		if err := Transition(cur, next); err != nil {
			return err
		}
		cur = next
	}
	return nil
}

// TimelineOption describes a delivery urgency preset offered when posting an
// order: an estimated day range and a price multiplier applied to bids shown
// to the customer.
type TimelineOption struct {
	Timeline   model.DeliveryTimeline
	MinDays    int
	MaxDays    int
	Multiplier float64
}

var timelineOptions = map[model.DeliveryTimeline]TimelineOption{
	model.TimelineUrgent:   {Timeline: model.TimelineUrgent, MinDays: 3, MaxDays: 5, Multiplier: 1.20},
	model.TimelineNormal:   {Timeline: model.TimelineNormal, MinDays: 7, MaxDays: 10, Multiplier: 1.0},
	model.TimelineFlexible: {Timeline: model.TimelineFlexible, MinDays: 10, MaxDays: 14, Multiplier: 0.90},
}

// TimelineFor returns the preset for the given preference, defaulting to normal.
func TimelineFor(t model.DeliveryTimeline) TimelineOption {
	if opt, ok := timelineOptions[t]; ok {
		return opt
	}
	return timelineOptions[model.TimelineNormal]
}

// BookingTotal computes the running order total shown on the booking summary:
// accepted bid amount plus the selected accessories plus the delivery fee.
func BookingTotal(bidAmount float64, accessories []model.Accessory, deliveryFee float64) float64 {
	total := bidAmount + deliveryFee
	for _, a := range accessories {
		total += a.Price
	}
	return total
}
