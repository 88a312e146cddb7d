package app

import (
	"context"
	"io"
	"time"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	"github.com/stitchmate/stitchmate/internal/adapter/atelier"
	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/pkg/payment"
	"github.com/stitchmate/stitchmate/internal/server/http/handlers"
	"github.com/stitchmate/stitchmate/internal/session"
	"github.com/stitchmate/stitchmate/internal/storage/object"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

// MarketplaceFacade aggregates use cases, the design session and external
// adapters behind the surface the HTTP handlers and the bid collector need.
type MarketplaceFacade struct {
	auth         *usecase.AuthUseCase
	orders       *usecase.OrderUseCase
	bids         *usecase.BidUseCase
	applications *usecase.ApplicationUseCase
	catalog      *usecase.CatalogUseCase
	sessions     *session.Manager
	studio       atelier.Client
	concierge    assistant.Client
	processor    payment.Processor
	fabrics      object.FabricStore
}

// NewMarketplaceFacade constructs the facade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	bids *usecase.BidUseCase,
	applications *usecase.ApplicationUseCase,
	catalog *usecase.CatalogUseCase,
	sessions *session.Manager,
	studio atelier.Client,
	concierge assistant.Client,
	processor payment.Processor,
	fabrics object.FabricStore,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:         auth,
		orders:       orders,
		bids:         bids,
		applications: applications,
		catalog:      catalog,
		sessions:     sessions,
		studio:       studio,
		concierge:    concierge,
		processor:    processor,
		fabrics:      fabrics,
	}
}

func (f *MarketplaceFacade) Register(ctx context.Context, name, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, email, password)
	return token, err
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *MarketplaceFacade) AdminAuthenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.AdminAuthenticate(ctx, email, password)
	return token, err
}

func (f *MarketplaceFacade) ResetPassword(ctx context.Context, email string) (string, error) {
	return f.auth.ResetPassword(ctx, email)
}

func (f *MarketplaceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *MarketplaceFacade) UserData(ctx context.Context, userID int64) (*usecase.UserData, error) {
	return f.auth.UserData(ctx, userID)
}

func (f *MarketplaceFacade) WorkflowState(userID int64) handlers.WorkflowState {
	var state handlers.WorkflowState
	f.sessions.With(userID, func(s *session.Session) {
		state = handlers.WorkflowState{
			Step:           s.WorkflowStep(),
			Fabric:         s.UploadedFabric(),
			Analysis:       s.FabricAnalysis(),
			Designs:        s.GeneratedDesigns(),
			SelectedDesign: s.SelectedDesign(),
			Accessories:    s.SelectedAccessories(),
			UserImage:      s.UserImage(),
		}
	})
	return state
}

func (f *MarketplaceFacade) SetWorkflowStep(userID int64, step session.WorkflowStep) error {
	if !session.ValidStep(step) {
		return domainErrors.ErrInvalidStatus
	}
	f.sessions.With(userID, func(s *session.Session) {
		s.SetWorkflowStep(step)
	})
	return nil
}

func (f *MarketplaceFacade) ResetWorkflow(userID int64) {
	f.sessions.With(userID, func(s *session.Session) {
		s.Reset()
	})
}

func (f *MarketplaceFacade) AddAccessory(ctx context.Context, userID, accessoryID int64) ([]model.Accessory, error) {
	item, err := f.catalog.Accessory(ctx, accessoryID)
	if err != nil {
		return nil, err
	}

	var selected []model.Accessory
	f.sessions.With(userID, func(s *session.Session) {
		s.AddAccessory(*item)
		selected = s.SelectedAccessories()
	})
	return selected, nil
}

func (f *MarketplaceFacade) RemoveAccessory(userID, accessoryID int64) []model.Accessory {
	var selected []model.Accessory
	f.sessions.With(userID, func(s *session.Session) {
		s.RemoveAccessory(accessoryID)
		selected = s.SelectedAccessories()
	})
	return selected
}

// TryOn composites the selected design and accessories onto the customer's
// photo and returns the preview reference.
func (f *MarketplaceFacade) TryOn(ctx context.Context, userID int64, image string) (string, error) {
	var (
		design      *model.Design
		accessories []model.Accessory
	)
	f.sessions.With(userID, func(s *session.Session) {
		design = s.SelectedDesign()
		accessories = s.SelectedAccessories()
	})
	if design == nil {
		return "", domainErrors.ErrNotFound
	}

	preview, err := f.studio.ApplyAccessories(ctx, *design, accessories)
	if err != nil {
		return "", err
	}

	f.sessions.With(userID, func(s *session.Session) {
		s.SetUserImage(&image)
		s.SetWorkflowStep(session.StepTryOn)
	})
	return preview.Image, nil
}

func (f *MarketplaceFacade) UploadFabric(ctx context.Context, userID int64, filename, contentType string, data io.Reader) (string, error) {
	payload, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}

	key, err := f.fabrics.Upload(ctx, filename, contentType, payload)
	if err != nil {
		return "", err
	}

	url, err := f.fabrics.PresignURL(ctx, key)
	if err != nil {
		return "", err
	}

	f.sessions.With(userID, func(s *session.Session) {
		s.SetUploadedFabric(&url)
		s.SetWorkflowStep(session.StepFabric)
	})
	return url, nil
}

func (f *MarketplaceFacade) AnalyzeFabric(ctx context.Context, userID int64, instructions string) (*model.FabricAnalysis, error) {
	var fabric *string
	f.sessions.With(userID, func(s *session.Session) {
		fabric = s.UploadedFabric()
	})
	if fabric == nil {
		return nil, domainErrors.ErrNotFound
	}

	analysis, err := f.studio.AnalyzeFabric(ctx, *fabric, instructions)
	if err != nil {
		return nil, err
	}

	f.sessions.With(userID, func(s *session.Session) {
		s.SetFabricAnalysis(analysis)
		s.SetWorkflowStep(session.StepDesign)
	})
	return analysis, nil
}

func (f *MarketplaceFacade) GenerateDesigns(ctx context.Context, userID int64, style model.DesignStyle) ([]model.Design, error) {
	var analysis *model.FabricAnalysis
	f.sessions.With(userID, func(s *session.Session) {
		analysis = s.FabricAnalysis()
	})
	if analysis == nil {
		return nil, domainErrors.ErrNotFound
	}

	designs, err := f.studio.GenerateDesigns(ctx, *analysis, style)
	if err != nil {
		return nil, err
	}

	f.sessions.With(userID, func(s *session.Session) {
		s.SetGeneratedDesigns(designs)
	})
	return designs, nil
}

func (f *MarketplaceFacade) SelectDesign(userID int64, designID string) error {
	err := domainErrors.ErrNotFound
	f.sessions.With(userID, func(s *session.Session) {
		for _, d := range s.GeneratedDesigns() {
			if d.ID == designID {
				selected := d
				s.SetSelectedDesign(&selected)
				s.SetWorkflowStep(session.StepAccessories)
				err = nil
				return
			}
		}
	})
	return err
}

// Assistant forwards a customer message to the styling assistant.
func (f *MarketplaceFacade) Assistant(ctx context.Context, message string) (*assistant.Reply, error) {
	return f.concierge.Reply(ctx, message)
}

func (f *MarketplaceFacade) Accessories(ctx context.Context, category string) ([]model.Accessory, error) {
	return f.catalog.Accessories(ctx, category)
}

func (f *MarketplaceFacade) TailorDirectory(ctx context.Context) ([]model.Tailor, error) {
	return f.catalog.Tailors(ctx)
}

// PostOrder turns the current design session into a posted order open for
// bidding. The session keeps a copy so the workflow can follow along.
func (f *MarketplaceFacade) PostOrder(ctx context.Context, userID int64, notes string, timeline model.DeliveryTimeline, targetDate *time.Time) (*model.Order, error) {
	var in usecase.PostOrderInput
	f.sessions.With(userID, func(s *session.Session) {
		in.Design = s.SelectedDesign()
		in.Fabric = s.UploadedFabric()
		in.Accessories = s.SelectedAccessories()
	})
	if in.Design == nil {
		return nil, domainErrors.ErrNotFound
	}
	in.Notes = notes
	in.Timeline = timeline
	in.TargetDate = targetDate

	order, err := f.orders.Post(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	f.sessions.With(userID, func(s *session.Session) {
		s.AddOrder(*order)
		s.SetCurrentOrder(order)
		s.SetWorkflowStep(session.StepBidding)
	})
	return order, nil
}

func (f *MarketplaceFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *MarketplaceFacade) Order(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	return f.orders.Get(ctx, userID, orderID)
}

func (f *MarketplaceFacade) OrderBids(ctx context.Context, userID int64, orderID string) ([]model.Bid, error) {
	return f.bids.ListForOrder(ctx, userID, orderID)
}

func (f *MarketplaceFacade) SelectBid(ctx context.Context, userID int64, orderID, bidID string) (*model.Order, error) {
	order, err := f.orders.SelectBid(ctx, userID, orderID, bidID)
	if err != nil {
		return nil, err
	}
	f.syncSessionOrder(userID, order, session.StepBooking)
	return order, nil
}

func (f *MarketplaceFacade) Booking(ctx context.Context, userID int64, orderID string, in usecase.BookingInput) (*model.Order, float64, error) {
	order, total, err := f.orders.Booking(ctx, userID, orderID, in)
	if err != nil {
		return nil, 0, err
	}
	f.syncSessionOrder(userID, order, session.StepPayment)
	return order, total, nil
}

// Pay charges the booking total and moves the order into progress.
func (f *MarketplaceFacade) Pay(ctx context.Context, userID int64, orderID string, method model.PaymentMethod, paymentMethodID string) (*model.Order, error) {
	total, err := f.orders.Total(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	info, err := f.processor.Process(ctx, payment.Request{
		OrderID:         orderID,
		UserID:          userID,
		Method:          method,
		Amount:          total,
		PaymentMethodID: paymentMethodID,
	})
	if err != nil {
		return nil, err
	}

	order, err := f.orders.RecordPayment(ctx, userID, orderID, *info)
	if err != nil {
		return nil, err
	}
	f.syncSessionOrder(userID, order, session.StepPayment)
	return order, nil
}

func (f *MarketplaceFacade) Review(ctx context.Context, userID int64, orderID string, rating int, comment string) (*model.Order, error) {
	return f.orders.Review(ctx, userID, orderID, rating, comment)
}

func (f *MarketplaceFacade) ApplyAsTailor(ctx context.Context, userID int64, shopName, experience string, specialties []string) (*model.TailorApplication, error) {
	return f.applications.Apply(ctx, userID, shopName, experience, specialties)
}

func (f *MarketplaceFacade) OpenOrders(ctx context.Context) ([]model.Order, error) {
	return f.bids.OpenOrders(ctx)
}

func (f *MarketplaceFacade) PlaceBid(ctx context.Context, userID int64, orderID string, amount float64, estimatedDays int, message string) (*model.Bid, error) {
	return f.bids.Place(ctx, userID, orderID, amount, estimatedDays, message)
}

func (f *MarketplaceFacade) MyBids(ctx context.Context, userID int64) ([]model.Bid, error) {
	return f.bids.ListByTailor(ctx, userID)
}

func (f *MarketplaceFacade) Earnings(ctx context.Context, userID int64) (*usecase.TailorEarnings, error) {
	return f.bids.Earnings(ctx, userID)
}

func (f *MarketplaceFacade) BookedOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.bids.BookedOrders(ctx, userID)
}

func (f *MarketplaceFacade) ConfirmDelivery(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	return f.bids.MarkDelivered(ctx, userID, orderID)
}

func (f *MarketplaceFacade) PendingApplications(ctx context.Context) ([]model.TailorApplication, error) {
	return f.applications.Pending(ctx)
}

func (f *MarketplaceFacade) ApproveApplication(ctx context.Context, applicationID string) error {
	return f.applications.Approve(ctx, applicationID)
}

func (f *MarketplaceFacade) RejectApplication(ctx context.Context, applicationID string) error {
	return f.applications.Reject(ctx, applicationID)
}

func (f *MarketplaceFacade) CollectOrdersForBidding(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForBidding(ctx, limit)
}

func (f *MarketplaceFacade) SeedStarterBids(ctx context.Context, order model.Order) error {
	return f.bids.SeedStarterBids(ctx, order)
}

func (f *MarketplaceFacade) syncSessionOrder(userID int64, order *model.Order, step session.WorkflowStep) {
	f.sessions.With(userID, func(s *session.Session) {
		s.UpdateOrder(order.ID, model.OrderPatch{
			Status:         &order.Status,
			SelectedTailor: order.SelectedTailor,
			SelectedBidID:  order.SelectedBidID,
			Logistics:      order.Logistics,
			Measurements:   order.Measurements,
			Payment:        order.Payment,
		})
		s.SetCurrentOrder(order)
		s.SetWorkflowStep(step)
	})
}
