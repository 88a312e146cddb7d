package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Roles() RoleRepository
	Applications() ApplicationRepository
	Tailors() TailorRepository
	Orders() OrderRepository
	Bids() BidRepository
	Accessories() AccessoryRepository
	Reviews() ReviewRepository
}
