package repository

import (
	"context"

	"github.com/stitchmate/stitchmate/internal/domain/model"
)

// AccessoryRepository describes access to the accessories catalog.
type AccessoryRepository interface {
	List(ctx context.Context) ([]model.Accessory, error)
	ListByCategory(ctx context.Context, category string) ([]model.Accessory, error)
	GetByID(ctx context.Context, id int64) (*model.Accessory, error)
}

// TailorRepository describes access to the tailor directory.
type TailorRepository interface {
	Create(ctx context.Context, tailor *model.Tailor) error
	GetByID(ctx context.Context, id string) (*model.Tailor, error)
	GetByUserID(ctx context.Context, userID int64) (*model.Tailor, error)
	List(ctx context.Context) ([]model.Tailor, error)
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}

// ApplicationRepository describes persistence of tailor applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.TailorApplication) error
	GetByID(ctx context.Context, id string) (*model.TailorApplication, error)
	LatestByUser(ctx context.Context, userID int64) (*model.TailorApplication, error)
	ListByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.TailorApplication, error)
	SetStatus(ctx context.Context, id string, status model.ApplicationStatus) error
}
