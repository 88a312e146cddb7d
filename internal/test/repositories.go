package test

import (
	"context"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProfileRepositoryStub stores profiles keyed by user.
type ProfileRepositoryStub struct {
	Profiles map[int64]*model.Profile
	Next     int64
	Err      error
}

// NewProfileRepositoryStub constructs stub repository with initialized maps.
func NewProfileRepositoryStub() *ProfileRepositoryStub {
	return &ProfileRepositoryStub{Profiles: make(map[int64]*model.Profile), Next: 1}
}

// Create registers a profile for the user.
func (s *ProfileRepositoryStub) Create(ctx context.Context, userID int64, fullName string) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Profiles == nil {
		s.Profiles = make(map[int64]*model.Profile)
	}
	if _, exists := s.Profiles[userID]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	profile := &model.Profile{ID: s.Next, UserID: userID, FullName: fullName}
	s.Next++
	s.Profiles[userID] = profile
	return profile, nil
}

// GetByUserID fetches a profile or returns not found.
func (s *ProfileRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if profile, ok := s.Profiles[userID]; ok {
		return profile, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RoleRepositoryStub stores role grants in-memory.
type RoleRepositoryStub struct {
	Grants map[int64][]model.Role
	Err    error
}

// NewRoleRepositoryStub constructs stub repository with initialized maps.
func NewRoleRepositoryStub() *RoleRepositoryStub {
	return &RoleRepositoryStub{Grants: make(map[int64][]model.Role)}
}

// Grant records a role for the user, ignoring duplicates.
func (s *RoleRepositoryStub) Grant(ctx context.Context, userID int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Grants == nil {
		s.Grants = make(map[int64][]model.Role)
	}
	for _, existing := range s.Grants[userID] {
		if existing == role {
			return nil
		}
	}
	s.Grants[userID] = append(s.Grants[userID], role)
	return nil
}

// ListByUser returns all roles granted to the user.
func (s *RoleRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Grants[userID], nil
}

// Has reports whether the user carries the role.
func (s *RoleRepositoryStub) Has(ctx context.Context, userID int64, role model.Role) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, existing := range s.Grants[userID] {
		if existing == role {
			return true, nil
		}
	}
	return false, nil
}

// ApplicationRepositoryStub stores tailor applications in-memory.
type ApplicationRepositoryStub struct {
	Applications map[string]*model.TailorApplication
	Err          error
}

// NewApplicationRepositoryStub constructs stub repository with initialized maps.
func NewApplicationRepositoryStub() *ApplicationRepositoryStub {
	return &ApplicationRepositoryStub{Applications: make(map[string]*model.TailorApplication)}
}

// Create stores the application.
func (s *ApplicationRepositoryStub) Create(ctx context.Context, app *model.TailorApplication) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Applications == nil {
		s.Applications = make(map[string]*model.TailorApplication)
	}
	if _, exists := s.Applications[app.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *app
	s.Applications[app.ID] = &stored
	return nil
}

// GetByID fetches an application or returns not found.
func (s *ApplicationRepositoryStub) GetByID(ctx context.Context, id string) (*model.TailorApplication, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if app, ok := s.Applications[id]; ok {
		return app, nil
	}
	return nil, domainErrors.ErrNotFound
}

// LatestByUser returns the most recently created application for the user.
func (s *ApplicationRepositoryStub) LatestByUser(ctx context.Context, userID int64) (*model.TailorApplication, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var latest *model.TailorApplication
	for _, app := range s.Applications {
		if app.UserID != userID {
			continue
		}
		if latest == nil || app.CreatedAt.After(latest.CreatedAt) {
			latest = app
		}
	}
	if latest == nil {
		return nil, domainErrors.ErrNotFound
	}
	return latest, nil
}

// ListByStatus returns applications in the given status.
func (s *ApplicationRepositoryStub) ListByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.TailorApplication, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var apps []model.TailorApplication
	for _, app := range s.Applications {
		if app.Status == status {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

// SetStatus updates the application status.
func (s *ApplicationRepositoryStub) SetStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	if s.Err != nil {
		return s.Err
	}
	app, ok := s.Applications[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	app.Status = status
	return nil
}

// TailorRepositoryStub stores tailor directory entries in-memory.
type TailorRepositoryStub struct {
	Tailors map[string]*model.Tailor
	Err     error
}

// NewTailorRepositoryStub constructs stub repository with initialized maps.
func NewTailorRepositoryStub() *TailorRepositoryStub {
	return &TailorRepositoryStub{Tailors: make(map[string]*model.Tailor)}
}

// Create stores the tailor.
func (s *TailorRepositoryStub) Create(ctx context.Context, tailor *model.Tailor) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Tailors == nil {
		s.Tailors = make(map[string]*model.Tailor)
	}
	if _, exists := s.Tailors[tailor.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *tailor
	s.Tailors[tailor.ID] = &stored
	return nil
}

// GetByID fetches a tailor or returns not found.
func (s *TailorRepositoryStub) GetByID(ctx context.Context, id string) (*model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if tailor, ok := s.Tailors[id]; ok {
		return tailor, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByUserID fetches the tailor owned by the user.
func (s *TailorRepositoryStub) GetByUserID(ctx context.Context, userID int64) (*model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, tailor := range s.Tailors {
		if tailor.UserID == userID {
			return tailor, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all tailors sorted by rating descending.
func (s *TailorRepositoryStub) List(ctx context.Context) ([]model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var tailors []model.Tailor
	for _, tailor := range s.Tailors {
		tailors = append(tailors, *tailor)
	}
	for i := 0; i < len(tailors); i++ {
		for j := i + 1; j < len(tailors); j++ {
			if tailors[j].Rating > tailors[i].Rating {
				tailors[i], tailors[j] = tailors[j], tailors[i]
			}
		}
	}
	return tailors, nil
}

// UpdateRating overwrites the rating aggregate.
func (s *TailorRepositoryStub) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	if s.Err != nil {
		return s.Err
	}
	tailor, ok := s.Tailors[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	tailor.Rating = rating
	tailor.ReviewCount = reviewCount
	return nil
}

// OrderRepositoryStub stores orders in-memory.
type OrderRepositoryStub struct {
	Orders map[string]*model.Order
	Err    error
}

// NewOrderRepositoryStub constructs stub repository with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

// Create stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Orders == nil {
		s.Orders = make(map[string]*model.Order)
	}
	if _, exists := s.Orders[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *order
	s.Orders[order.ID] = &stored
	return nil
}

// GetByID fetches an order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders owned by the user.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, order := range s.Orders {
		if order.UserID == userID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

// ListByStatus returns orders in the given status.
func (s *OrderRepositoryStub) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, order := range s.Orders {
		if order.Status == status {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

// ListByTailor returns orders assigned to the tailor.
func (s *OrderRepositoryStub) ListByTailor(ctx context.Context, tailorID string) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var orders []model.Order
	for _, order := range s.Orders {
		if order.SelectedTailor != nil && order.SelectedTailor.ID == tailorID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

// Update applies the patch and returns the updated order.
func (s *OrderRepositoryStub) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	order, ok := s.Orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	patch.Apply(order)
	copied := *order
	return &copied, nil
}

// SelectBatchForBidding moves up to limit posted orders into bidding.
func (s *OrderRepositoryStub) SelectBatchForBidding(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var batch []model.Order
	for _, order := range s.Orders {
		if len(batch) == limit {
			break
		}
		if order.Status == model.OrderStatusPosted {
			order.Status = model.OrderStatusBidding
			batch = append(batch, *order)
		}
	}
	return batch, nil
}

// BidRepositoryStub stores bids in-memory.
type BidRepositoryStub struct {
	Bids map[string]*model.Bid
	Err  error
}

// NewBidRepositoryStub constructs stub repository with initialized maps.
func NewBidRepositoryStub() *BidRepositoryStub {
	return &BidRepositoryStub{Bids: make(map[string]*model.Bid)}
}

// Create stores the bid.
func (s *BidRepositoryStub) Create(ctx context.Context, bid *model.Bid) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Bids == nil {
		s.Bids = make(map[string]*model.Bid)
	}
	if _, exists := s.Bids[bid.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	stored := *bid
	s.Bids[bid.ID] = &stored
	return nil
}

// ListByOrder returns bids posted against the order.
func (s *BidRepositoryStub) ListByOrder(ctx context.Context, orderID string) ([]model.Bid, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var bids []model.Bid
	for _, bid := range s.Bids {
		if bid.OrderID == orderID {
			bids = append(bids, *bid)
		}
	}
	return bids, nil
}

// ListByTailor returns bids submitted by the tailor.
func (s *BidRepositoryStub) ListByTailor(ctx context.Context, tailorID string) ([]model.Bid, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var bids []model.Bid
	for _, bid := range s.Bids {
		if bid.Tailor.ID == tailorID {
			bids = append(bids, *bid)
		}
	}
	return bids, nil
}

// GetByID fetches a bid or returns not found.
func (s *BidRepositoryStub) GetByID(ctx context.Context, id string) (*model.Bid, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if bid, ok := s.Bids[id]; ok {
		return bid, nil
	}
	return nil, domainErrors.ErrNotFound
}

// CountByOrder counts bids against the order.
func (s *BidRepositoryStub) CountByOrder(ctx context.Context, orderID string) (int, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	count := 0
	for _, bid := range s.Bids {
		if bid.OrderID == orderID {
			count++
		}
	}
	return count, nil
}

// AccessoryRepositoryStub serves a fixed accessory catalog.
type AccessoryRepositoryStub struct {
	Items []model.Accessory
	Err   error
}

// List returns the whole catalog.
func (s *AccessoryRepositoryStub) List(ctx context.Context) ([]model.Accessory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}

// ListByCategory filters the catalog by category.
func (s *AccessoryRepositoryStub) ListByCategory(ctx context.Context, category string) ([]model.Accessory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var items []model.Accessory
	for _, item := range s.Items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetByID fetches a catalog item or returns not found.
func (s *AccessoryRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Accessory, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ReviewRepositoryStub stores reviews in-memory.
type ReviewRepositoryStub struct {
	Reviews []model.Review
	Err     error
}

// Create appends the review.
func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) error {
	if s.Err != nil {
		return s.Err
	}
	s.Reviews = append(s.Reviews, *review)
	return nil
}

// ListByTailor returns reviews left for the tailor.
func (s *ReviewRepositoryStub) ListByTailor(ctx context.Context, tailorID string) ([]model.Review, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var reviews []model.Review
	for _, review := range s.Reviews {
		if review.TailorID == tailorID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}
