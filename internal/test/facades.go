package test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/server/http/handlers"
	"github.com/stitchmate/stitchmate/internal/session"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

// MarketplaceFacadeStub implements the handler facade through per-method
// function overrides. Methods without an override return zero values.
type MarketplaceFacadeStub struct {
	RegisterFn            func(ctx context.Context, name, email, password string) (string, error)
	AuthenticateFn        func(ctx context.Context, email, password string) (string, error)
	AdminAuthenticateFn   func(ctx context.Context, email, password string) (string, error)
	ResetPasswordFn       func(ctx context.Context, email string) (string, error)
	ParseTokenFn          func(token string) (int64, error)
	UserDataFn            func(ctx context.Context, userID int64) (*usecase.UserData, error)
	WorkflowStateFn       func(userID int64) handlers.WorkflowState
	SetWorkflowStepFn     func(userID int64, step session.WorkflowStep) error
	ResetWorkflowFn       func(userID int64)
	AddAccessoryFn        func(ctx context.Context, userID, accessoryID int64) ([]model.Accessory, error)
	RemoveAccessoryFn     func(userID, accessoryID int64) []model.Accessory
	TryOnFn               func(ctx context.Context, userID int64, image string) (string, error)
	UploadFabricFn        func(ctx context.Context, userID int64, filename, contentType string, data io.Reader) (string, error)
	AnalyzeFabricFn       func(ctx context.Context, userID int64, instructions string) (*model.FabricAnalysis, error)
	GenerateDesignsFn     func(ctx context.Context, userID int64, style model.DesignStyle) ([]model.Design, error)
	SelectDesignFn        func(userID int64, designID string) error
	AccessoriesFn         func(ctx context.Context, category string) ([]model.Accessory, error)
	TailorDirectoryFn     func(ctx context.Context) ([]model.Tailor, error)
	PostOrderFn           func(ctx context.Context, userID int64, notes string, timeline model.DeliveryTimeline, targetDate *time.Time) (*model.Order, error)
	OrdersFn              func(ctx context.Context, userID int64) ([]model.Order, error)
	OrderFn               func(ctx context.Context, userID int64, orderID string) (*model.Order, error)
	OrderBidsFn           func(ctx context.Context, userID int64, orderID string) ([]model.Bid, error)
	SelectBidFn           func(ctx context.Context, userID int64, orderID, bidID string) (*model.Order, error)
	BookingFn             func(ctx context.Context, userID int64, orderID string, in usecase.BookingInput) (*model.Order, float64, error)
	PayFn                 func(ctx context.Context, userID int64, orderID string, method model.PaymentMethod, paymentMethodID string) (*model.Order, error)
	ReviewFn              func(ctx context.Context, userID int64, orderID string, rating int, comment string) (*model.Order, error)
	ApplyAsTailorFn       func(ctx context.Context, userID int64, shopName, experience string, specialties []string) (*model.TailorApplication, error)
	OpenOrdersFn          func(ctx context.Context) ([]model.Order, error)
	PlaceBidFn            func(ctx context.Context, userID int64, orderID string, amount float64, estimatedDays int, message string) (*model.Bid, error)
	MyBidsFn              func(ctx context.Context, userID int64) ([]model.Bid, error)
	EarningsFn            func(ctx context.Context, userID int64) (*usecase.TailorEarnings, error)
	BookedOrdersFn        func(ctx context.Context, userID int64) ([]model.Order, error)
	ConfirmDeliveryFn     func(ctx context.Context, userID int64, orderID string) (*model.Order, error)
	PendingApplicationsFn func(ctx context.Context) ([]model.TailorApplication, error)
	ApproveApplicationFn  func(ctx context.Context, applicationID string) error
	RejectApplicationFn   func(ctx context.Context, applicationID string) error
	AssistantFn           func(ctx context.Context, message string) (*assistant.Reply, error)
}

func (s *MarketplaceFacadeStub) Register(ctx context.Context, name, email, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return "token", nil
}

func (s *MarketplaceFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

func (s *MarketplaceFacadeStub) AdminAuthenticate(ctx context.Context, email, password string) (string, error) {
	if s.AdminAuthenticateFn != nil {
		return s.AdminAuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

func (s *MarketplaceFacadeStub) ResetPassword(ctx context.Context, email string) (string, error) {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, email)
	}
	return "reset-token", nil
}

func (s *MarketplaceFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	if token == "" {
		return 0, domainErrors.ErrAccessDenied
	}
	return 1, nil
}

func (s *MarketplaceFacadeStub) UserData(ctx context.Context, userID int64) (*usecase.UserData, error) {
	if s.UserDataFn != nil {
		return s.UserDataFn(ctx, userID)
	}
	return &usecase.UserData{
		User: &model.User{ID: userID, Email: "user@example.com"},
		Role: model.RoleUser,
	}, nil
}

func (s *MarketplaceFacadeStub) WorkflowState(userID int64) handlers.WorkflowState {
	if s.WorkflowStateFn != nil {
		return s.WorkflowStateFn(userID)
	}
	return handlers.WorkflowState{Step: session.StepFabric}
}

func (s *MarketplaceFacadeStub) SetWorkflowStep(userID int64, step session.WorkflowStep) error {
	if s.SetWorkflowStepFn != nil {
		return s.SetWorkflowStepFn(userID, step)
	}
	return nil
}

func (s *MarketplaceFacadeStub) ResetWorkflow(userID int64) {
	if s.ResetWorkflowFn != nil {
		s.ResetWorkflowFn(userID)
	}
}

func (s *MarketplaceFacadeStub) AddAccessory(ctx context.Context, userID, accessoryID int64) ([]model.Accessory, error) {
	if s.AddAccessoryFn != nil {
		return s.AddAccessoryFn(ctx, userID, accessoryID)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) RemoveAccessory(userID, accessoryID int64) []model.Accessory {
	if s.RemoveAccessoryFn != nil {
		return s.RemoveAccessoryFn(userID, accessoryID)
	}
	return nil
}

func (s *MarketplaceFacadeStub) TryOn(ctx context.Context, userID int64, image string) (string, error) {
	if s.TryOnFn != nil {
		return s.TryOnFn(ctx, userID, image)
	}
	return "", nil
}

func (s *MarketplaceFacadeStub) UploadFabric(ctx context.Context, userID int64, filename, contentType string, data io.Reader) (string, error) {
	if s.UploadFabricFn != nil {
		return s.UploadFabricFn(ctx, userID, filename, contentType, data)
	}
	return "", nil
}

func (s *MarketplaceFacadeStub) AnalyzeFabric(ctx context.Context, userID int64, instructions string) (*model.FabricAnalysis, error) {
	if s.AnalyzeFabricFn != nil {
		return s.AnalyzeFabricFn(ctx, userID, instructions)
	}
	return &model.FabricAnalysis{}, nil
}

func (s *MarketplaceFacadeStub) GenerateDesigns(ctx context.Context, userID int64, style model.DesignStyle) ([]model.Design, error) {
	if s.GenerateDesignsFn != nil {
		return s.GenerateDesignsFn(ctx, userID, style)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) SelectDesign(userID int64, designID string) error {
	if s.SelectDesignFn != nil {
		return s.SelectDesignFn(userID, designID)
	}
	return nil
}

func (s *MarketplaceFacadeStub) Assistant(ctx context.Context, message string) (*assistant.Reply, error) {
	if s.AssistantFn != nil {
		return s.AssistantFn(ctx, message)
	}
	return &assistant.Reply{Content: "Welcome to the design studio.", Positive: true}, nil
}

func (s *MarketplaceFacadeStub) Accessories(ctx context.Context, category string) ([]model.Accessory, error) {
	if s.AccessoriesFn != nil {
		return s.AccessoriesFn(ctx, category)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) TailorDirectory(ctx context.Context) ([]model.Tailor, error) {
	if s.TailorDirectoryFn != nil {
		return s.TailorDirectoryFn(ctx)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) PostOrder(ctx context.Context, userID int64, notes string, timeline model.DeliveryTimeline, targetDate *time.Time) (*model.Order, error) {
	if s.PostOrderFn != nil {
		return s.PostOrderFn(ctx, userID, notes, timeline, targetDate)
	}
	return &model.Order{}, nil
}

func (s *MarketplaceFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) Order(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *MarketplaceFacadeStub) OrderBids(ctx context.Context, userID int64, orderID string) ([]model.Bid, error) {
	if s.OrderBidsFn != nil {
		return s.OrderBidsFn(ctx, userID, orderID)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) SelectBid(ctx context.Context, userID int64, orderID, bidID string) (*model.Order, error) {
	if s.SelectBidFn != nil {
		return s.SelectBidFn(ctx, userID, orderID, bidID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *MarketplaceFacadeStub) Booking(ctx context.Context, userID int64, orderID string, in usecase.BookingInput) (*model.Order, float64, error) {
	if s.BookingFn != nil {
		return s.BookingFn(ctx, userID, orderID, in)
	}
	return &model.Order{ID: orderID}, 0, nil
}

func (s *MarketplaceFacadeStub) Pay(ctx context.Context, userID int64, orderID string, method model.PaymentMethod, paymentMethodID string) (*model.Order, error) {
	if s.PayFn != nil {
		return s.PayFn(ctx, userID, orderID, method, paymentMethodID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *MarketplaceFacadeStub) Review(ctx context.Context, userID int64, orderID string, rating int, comment string) (*model.Order, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, userID, orderID, rating, comment)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *MarketplaceFacadeStub) ApplyAsTailor(ctx context.Context, userID int64, shopName, experience string, specialties []string) (*model.TailorApplication, error) {
	if s.ApplyAsTailorFn != nil {
		return s.ApplyAsTailorFn(ctx, userID, shopName, experience, specialties)
	}
	return &model.TailorApplication{}, nil
}

func (s *MarketplaceFacadeStub) OpenOrders(ctx context.Context) ([]model.Order, error) {
	if s.OpenOrdersFn != nil {
		return s.OpenOrdersFn(ctx)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) PlaceBid(ctx context.Context, userID int64, orderID string, amount float64, estimatedDays int, message string) (*model.Bid, error) {
	if s.PlaceBidFn != nil {
		return s.PlaceBidFn(ctx, userID, orderID, amount, estimatedDays, message)
	}
	return &model.Bid{OrderID: orderID}, nil
}

func (s *MarketplaceFacadeStub) MyBids(ctx context.Context, userID int64) ([]model.Bid, error) {
	if s.MyBidsFn != nil {
		return s.MyBidsFn(ctx, userID)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) Earnings(ctx context.Context, userID int64) (*usecase.TailorEarnings, error) {
	if s.EarningsFn != nil {
		return s.EarningsFn(ctx, userID)
	}
	return &usecase.TailorEarnings{}, nil
}

func (s *MarketplaceFacadeStub) BookedOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.BookedOrdersFn != nil {
		return s.BookedOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) ConfirmDelivery(ctx context.Context, userID int64, orderID string) (*model.Order, error) {
	if s.ConfirmDeliveryFn != nil {
		return s.ConfirmDeliveryFn(ctx, userID, orderID)
	}
	return &model.Order{ID: orderID}, nil
}

func (s *MarketplaceFacadeStub) PendingApplications(ctx context.Context) ([]model.TailorApplication, error) {
	if s.PendingApplicationsFn != nil {
		return s.PendingApplicationsFn(ctx)
	}
	return nil, nil
}

func (s *MarketplaceFacadeStub) ApproveApplication(ctx context.Context, applicationID string) error {
	if s.ApproveApplicationFn != nil {
		return s.ApproveApplicationFn(ctx, applicationID)
	}
	return nil
}

func (s *MarketplaceFacadeStub) RejectApplication(ctx context.Context, applicationID string) error {
	if s.RejectApplicationFn != nil {
		return s.RejectApplicationFn(ctx, applicationID)
	}
	return nil
}

// RoleFacadeStub builds a facade whose caller resolves to the given role and
// demo-mode flag.
func RoleFacadeStub(role model.Role, demoMode bool) *MarketplaceFacadeStub {
	return &MarketplaceFacadeStub{
		UserDataFn: func(ctx context.Context, userID int64) (*usecase.UserData, error) {
			return &usecase.UserData{
				User:     &model.User{ID: userID},
				Role:     role,
				DemoMode: demoMode,
			}, nil
		},
	}
}

// CollectorFacadeStub records bid collector interactions for worker tests.
type CollectorFacadeStub struct {
	mu         sync.Mutex
	Batch      []model.Order
	CollectErr error
	SeedErr    error
	collected  int
	seededIDs  []string
}

// CollectOrdersForBidding hands out the configured batch once, draining it.
func (s *CollectorFacadeStub) CollectOrdersForBidding(ctx context.Context, limit int) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collected++
	if s.CollectErr != nil {
		return nil, s.CollectErr
	}
	batch := s.Batch
	if len(batch) > limit {
		batch = batch[:limit]
	}
	s.Batch = s.Batch[len(batch):]
	return batch, nil
}

// SeedStarterBids records the order ID.
func (s *CollectorFacadeStub) SeedStarterBids(ctx context.Context, order model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SeedErr != nil {
		return s.SeedErr
	}
	s.seededIDs = append(s.seededIDs, order.ID)
	return nil
}

// CollectCalls reports how many polls happened.
func (s *CollectorFacadeStub) CollectCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collected
}

// SeededOrders returns the order IDs passed to SeedStarterBids.
func (s *CollectorFacadeStub) SeededOrders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seededIDs...)
}
