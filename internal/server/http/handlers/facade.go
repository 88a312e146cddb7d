package handlers

import (
	"context"
	"io"
	"time"

	"github.com/stitchmate/stitchmate/internal/adapter/assistant"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/session"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	AdminAuthenticate(ctx context.Context, email, password string) (string, error)
	ResetPassword(ctx context.Context, email string) (string, error)
	ParseToken(token string) (int64, error)
	UserData(ctx context.Context, userID int64) (*usecase.UserData, error)
}

// WorkflowState is a snapshot of a customer's design session.
type WorkflowState struct {
	Step           session.WorkflowStep
	Fabric         *string
	Analysis       *model.FabricAnalysis
	Designs        []model.Design
	SelectedDesign *model.Design
	Accessories    []model.Accessory
	UserImage      *string
}

// WorkflowFacade exposes the per-customer design session.
type WorkflowFacade interface {
	WorkflowState(userID int64) WorkflowState
	SetWorkflowStep(userID int64, step session.WorkflowStep) error
	ResetWorkflow(userID int64)
	AddAccessory(ctx context.Context, userID, accessoryID int64) ([]model.Accessory, error)
	RemoveAccessory(userID, accessoryID int64) []model.Accessory
	TryOn(ctx context.Context, userID int64, image string) (string, error)
}

// FabricFacade covers fabric photo upload and analysis.
type FabricFacade interface {
	UploadFabric(ctx context.Context, userID int64, filename, contentType string, data io.Reader) (string, error)
	AnalyzeFabric(ctx context.Context, userID int64, instructions string) (*model.FabricAnalysis, error)
}

// DesignFacade covers mockup generation and selection.
type DesignFacade interface {
	GenerateDesigns(ctx context.Context, userID int64, style model.DesignStyle) ([]model.Design, error)
	SelectDesign(userID int64, designID string) error
}

// AssistantFacade exposes the in-app styling assistant.
type AssistantFacade interface {
	Assistant(ctx context.Context, message string) (*assistant.Reply, error)
}

// CatalogFacade serves the accessories catalog and tailor directory.
type CatalogFacade interface {
	Accessories(ctx context.Context, category string) ([]model.Accessory, error)
	TailorDirectory(ctx context.Context) ([]model.Tailor, error)
}

// OrderFacade covers the customer side of the order lifecycle.
type OrderFacade interface {
	PostOrder(ctx context.Context, userID int64, notes string, timeline model.DeliveryTimeline, targetDate *time.Time) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, userID int64, orderID string) (*model.Order, error)
	OrderBids(ctx context.Context, userID int64, orderID string) ([]model.Bid, error)
	SelectBid(ctx context.Context, userID int64, orderID, bidID string) (*model.Order, error)
	Booking(ctx context.Context, userID int64, orderID string, in usecase.BookingInput) (*model.Order, float64, error)
	Pay(ctx context.Context, userID int64, orderID string, method model.PaymentMethod, paymentMethodID string) (*model.Order, error)
	Review(ctx context.Context, userID int64, orderID string, rating int, comment string) (*model.Order, error)
}

// TailorFacade covers the tailor side of the marketplace.
type TailorFacade interface {
	ApplyAsTailor(ctx context.Context, userID int64, shopName, experience string, specialties []string) (*model.TailorApplication, error)
	OpenOrders(ctx context.Context) ([]model.Order, error)
	PlaceBid(ctx context.Context, userID int64, orderID string, amount float64, estimatedDays int, message string) (*model.Bid, error)
	MyBids(ctx context.Context, userID int64) ([]model.Bid, error)
	Earnings(ctx context.Context, userID int64) (*usecase.TailorEarnings, error)
	BookedOrders(ctx context.Context, userID int64) ([]model.Order, error)
	ConfirmDelivery(ctx context.Context, userID int64, orderID string) (*model.Order, error)
}

// AdminFacade covers tailor application review.
type AdminFacade interface {
	PendingApplications(ctx context.Context) ([]model.TailorApplication, error)
	ApproveApplication(ctx context.Context, applicationID string) error
	RejectApplication(ctx context.Context, applicationID string) error
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	WorkflowFacade
	FabricFacade
	DesignFacade
	AssistantFacade
	CatalogFacade
	OrderFacade
	TailorFacade
	AdminFacade
}
