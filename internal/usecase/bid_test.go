package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/test"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

type bidFixture struct {
	bids    *test.BidRepositoryStub
	orders  *test.OrderRepositoryStub
	tailors *test.TailorRepositoryStub
	uc      *usecase.BidUseCase
}

func newBidFixture() *bidFixture {
	f := &bidFixture{
		bids:    test.NewBidRepositoryStub(),
		orders:  test.NewOrderRepositoryStub(),
		tailors: test.NewTailorRepositoryStub(),
	}
	f.uc = usecase.NewBidUseCase(f.bids, f.orders, f.tailors)
	return f
}

func (f *bidFixture) seedTailor(t *testing.T, id string, userID int64, rating float64) {
	t.Helper()
	err := f.tailors.Create(context.Background(), &model.Tailor{
		ID: id, UserID: userID, ShopName: "Shop " + id, Rating: rating,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestPlaceBid(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.5)
	if err := f.orders.Create(context.Background(), &model.Order{ID: "order-1", UserID: 7, Status: model.OrderStatusBidding}); err != nil {
		t.Fatal(err)
	}

	bid, err := f.uc.Place(context.Background(), 21, "order-1", 4800, 7, "can deliver early")
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}
	if bid.Tailor.ID != "tailor-1" {
		t.Errorf("bid should embed the tailor snapshot, got %+v", bid.Tailor)
	}
	if bid.ID == "" {
		t.Error("expected a generated bid ID")
	}
}

func TestPlaceBidValidation(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.5)
	if err := f.orders.Create(context.Background(), &model.Order{ID: "order-1", UserID: 7, Status: model.OrderStatusBooked}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.uc.Place(context.Background(), 21, "order-1", 0, 7, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Errorf("zero amount: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := f.uc.Place(context.Background(), 21, "order-1", 4800, -1, ""); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Errorf("negative days: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := f.uc.Place(context.Background(), 21, "order-1", 4800, 7, ""); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Errorf("booked order no longer accepts bids, got %v", err)
	}
	if _, err := f.uc.Place(context.Background(), 99, "order-1", 4800, 7, ""); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("non-tailor user: expected ErrNotFound, got %v", err)
	}
}

func TestListForOrderEnforcesOwnership(t *testing.T) {
	f := newBidFixture()
	if err := f.orders.Create(context.Background(), &model.Order{ID: "order-1", UserID: 7, Status: model.OrderStatusBidding}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.uc.ListForOrder(context.Background(), 8, "order-1"); !errors.Is(err, domainErrors.ErrAccessDenied) {
		t.Errorf("stranger listing bids: expected ErrAccessDenied, got %v", err)
	}
	if _, err := f.uc.ListForOrder(context.Background(), 7, "order-1"); err != nil {
		t.Errorf("owner should list bids: %v", err)
	}
}

func TestEarnings(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.5)
	tailor, _ := f.tailors.GetByID(context.Background(), "tailor-1")

	seed := []struct {
		id     string
		status model.OrderStatus
		amount float64
	}{
		{id: "o1", status: model.OrderStatusCompleted, amount: 5850},
		{id: "o2", status: model.OrderStatusCompleted, amount: 4200},
		{id: "o3", status: model.OrderStatusInProgress, amount: 3000},
		{id: "o4", status: model.OrderStatusBooked, amount: 0},
	}
	for _, s := range seed {
		order := &model.Order{ID: s.id, UserID: 7, Status: s.status, SelectedTailor: tailor}
		if s.amount > 0 {
			order.Payment = &model.PaymentInfo{Amount: s.amount, Status: model.PaymentCompleted}
		}
		if err := f.orders.Create(context.Background(), order); err != nil {
			t.Fatal(err)
		}
	}

	earnings, err := f.uc.Earnings(context.Background(), 21)
	if err != nil {
		t.Fatalf("earnings failed: %v", err)
	}
	if earnings.CompletedOrders != 2 || earnings.TotalEarned != 10050 {
		t.Errorf("completed=%d earned=%v", earnings.CompletedOrders, earnings.TotalEarned)
	}
	if earnings.ActiveOrders != 2 || earnings.PendingPayout != 3000 {
		t.Errorf("active=%d pending=%v", earnings.ActiveOrders, earnings.PendingPayout)
	}
}

func TestMarkDelivered(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.5)
	f.seedTailor(t, "tailor-2", 22, 4.0)
	tailor, _ := f.tailors.GetByID(context.Background(), "tailor-1")
	if err := f.orders.Create(context.Background(), &model.Order{
		ID: "order-1", UserID: 7, Status: model.OrderStatusInProgress, SelectedTailor: tailor,
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.uc.MarkDelivered(context.Background(), 22, "order-1"); !errors.Is(err, domainErrors.ErrAccessDenied) {
		t.Errorf("another tailor cannot confirm delivery, got %v", err)
	}

	order, err := f.uc.MarkDelivered(context.Background(), 21, "order-1")
	if err != nil {
		t.Fatalf("mark delivered failed: %v", err)
	}
	if order.Status != model.OrderStatusCompleted {
		t.Errorf("expected completed, got %s", order.Status)
	}

	if _, err := f.uc.MarkDelivered(context.Background(), 21, "order-1"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Errorf("delivery confirmation is one-shot, got %v", err)
	}
}

func TestSeedStarterBids(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.9)
	f.seedTailor(t, "tailor-2", 22, 4.5)
	f.seedTailor(t, "tailor-3", 23, 4.2)
	f.seedTailor(t, "tailor-4", 24, 3.8)

	order := model.Order{ID: "order-1", Timeline: model.TimelineUrgent, Status: model.OrderStatusBidding}
	if err := f.uc.SeedStarterBids(context.Background(), order); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	bids, _ := f.bids.ListByOrder(context.Background(), "order-1")
	if len(bids) != 3 {
		t.Fatalf("expected 3 starter bids from the top of the directory, got %d", len(bids))
	}
	for _, bid := range bids {
		if bid.Tailor.ID == "tailor-4" {
			t.Error("lowest rated tailor should not be drafted")
		}
		// urgent preset: multiplier 1.20 on the 4200 base ladder
		if bid.Amount < 4200*1.20 {
			t.Errorf("urgent bids should carry the urgency premium, got %v", bid.Amount)
		}
		if bid.EstimatedDays < 3 || bid.EstimatedDays > 5 {
			t.Errorf("urgent estimate outside 3-5 days: %d", bid.EstimatedDays)
		}
	}
}

func TestSeedStarterBidsSkipsOrdersWithBids(t *testing.T) {
	f := newBidFixture()
	f.seedTailor(t, "tailor-1", 21, 4.9)
	if err := f.bids.Create(context.Background(), &model.Bid{ID: "bid-1", OrderID: "order-1"}); err != nil {
		t.Fatal(err)
	}

	if err := f.uc.SeedStarterBids(context.Background(), model.Order{ID: "order-1"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	count, _ := f.bids.CountByOrder(context.Background(), "order-1")
	if count != 1 {
		t.Errorf("orders already carrying bids must be left alone, got %d bids", count)
	}
}
