// Package session holds the in-progress design session for each customer:
// uploaded fabric, analysis, generated designs, accessory selection and the
// local order list walked by the workflow.
package session

import (
	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// WorkflowStep is a stage of the design workflow surface. Steps are settable
// from any other step; guarded progression applies only to the order pipeline.
type WorkflowStep string

const (
	StepFabric      WorkflowStep = "fabric"
	StepDesign      WorkflowStep = "design"
	StepAccessories WorkflowStep = "accessories"
	StepTryOn       WorkflowStep = "tryon"
	StepOrder       WorkflowStep = "order"
	StepBidding     WorkflowStep = "bidding"
	StepBooking     WorkflowStep = "booking"
	StepPayment     WorkflowStep = "payment"
)

var workflowSteps = map[WorkflowStep]struct{}{
	StepFabric: {}, StepDesign: {}, StepAccessories: {}, StepTryOn: {},
	StepOrder: {}, StepBidding: {}, StepBooking: {}, StepPayment: {},
}

// ValidStep reports whether s is a known workflow step.
func ValidStep(s WorkflowStep) bool {
	_, ok := workflowSteps[s]
	return ok
}

// Session is the per-user design workspace. All operations are total
// functions over in-memory state; callers synchronize through Manager.
type Session struct {
	uploadedFabric      *string
	fabricAnalysis      *model.FabricAnalysis
	generatedDesigns    []model.Design
	selectedDesign      *model.Design
	selectedAccessories []model.Accessory
	userImage           *string
	currentOrder        *model.Order
	orders              []model.Order
	workflowStep        WorkflowStep
}

// NewSession creates a session at the initial workflow step.
func NewSession() *Session {
	return &Session{workflowStep: StepFabric}
}

func (s *Session) UploadedFabric() *string                { return s.uploadedFabric }
func (s *Session) SetUploadedFabric(fabric *string)       { s.uploadedFabric = fabric }
func (s *Session) FabricAnalysis() *model.FabricAnalysis  { return s.fabricAnalysis }
func (s *Session) SetFabricAnalysis(a *model.FabricAnalysis) {
	s.fabricAnalysis = a
}

// GeneratedDesigns returns a copy of the generated mockups; the snapshot
// stays stable when the session changes afterwards.
func (s *Session) GeneratedDesigns() []model.Design {
	return append([]model.Design(nil), s.generatedDesigns...)
}

func (s *Session) SetGeneratedDesigns(d []model.Design) { s.generatedDesigns = d }
func (s *Session) SelectedDesign() *model.Design        { return s.selectedDesign }
func (s *Session) SetSelectedDesign(d *model.Design)    { s.selectedDesign = d }

func (s *Session) UserImage() *string         { return s.userImage }
func (s *Session) SetUserImage(image *string) { s.userImage = image }

func (s *Session) CurrentOrder() *model.Order         { return s.currentOrder }
func (s *Session) SetCurrentOrder(order *model.Order) { s.currentOrder = order }

// SelectedAccessories returns a copy of the current selection set. Callers
// hold snapshots outside the Manager lock, so the live slice never escapes.
func (s *Session) SelectedAccessories() []model.Accessory {
	return append([]model.Accessory(nil), s.selectedAccessories...)
}

// AddAccessory inserts the accessory unless an element with the same ID is
// already selected; the first-seen item is preserved.
func (s *Session) AddAccessory(a model.Accessory) {
	for _, existing := range s.selectedAccessories {
		if existing.ID == a.ID {
			return
		}
	}
	s.selectedAccessories = append(s.selectedAccessories, a)
}

// RemoveAccessory removes every selected element matching the ID.
func (s *Session) RemoveAccessory(id int64) {
	filtered := s.selectedAccessories[:0]
	for _, a := range s.selectedAccessories {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	s.selectedAccessories = filtered
}

// ClearAccessories empties the selection set.
func (s *Session) ClearAccessories() {
	s.selectedAccessories = nil
}

// Orders returns a copy of the session order history.
func (s *Session) Orders() []model.Order {
	return append([]model.Order(nil), s.orders...)
}

// AddOrder appends to the order list.
func (s *Session) AddOrder(order model.Order) {
	s.orders = append(s.orders, order)
}

// UpdateOrder merges the patch into the order with the given ID. Unknown IDs
// leave the list unchanged.
func (s *Session) UpdateOrder(id string, patch model.OrderPatch) {
	for i := range s.orders {
		if s.orders[i].ID == id {
			patch.Apply(&s.orders[i])
			return
		}
	}
}

func (s *Session) WorkflowStep() WorkflowStep { return s.workflowStep }

// SetWorkflowStep replaces the current step. Unknown steps are ignored.
func (s *Session) SetWorkflowStep(step WorkflowStep) {
	if ValidStep(step) {
		s.workflowStep = step
	}
}

// Reset clears the in-progress design state and returns the workflow to the
// fabric step. The order history is preserved.
func (s *Session) Reset() {
	s.uploadedFabric = nil
	s.fabricAnalysis = nil
	s.generatedDesigns = nil
	s.selectedDesign = nil
	s.selectedAccessories = nil
	s.userImage = nil
	s.currentOrder = nil
	s.workflowStep = StepFabric
}
