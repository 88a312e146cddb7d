package usecase

import (
	"context"

	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
)

// CatalogUseCase serves the accessories marketplace and tailor directory.
type CatalogUseCase struct {
	accessories repository.AccessoryRepository
	tailors     repository.TailorRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(accessories repository.AccessoryRepository, tailors repository.TailorRepository) *CatalogUseCase {
	return &CatalogUseCase{accessories: accessories, tailors: tailors}
}

// Accessories lists catalog items, optionally filtered by category.
func (u *CatalogUseCase) Accessories(ctx context.Context, category string) ([]model.Accessory, error) {
	if category == "" || category == "all" {
		return u.accessories.List(ctx)
	}
	return u.accessories.ListByCategory(ctx, category)
}

// Accessory fetches a single catalog item.
func (u *CatalogUseCase) Accessory(ctx context.Context, id int64) (*model.Accessory, error) {
	return u.accessories.GetByID(ctx, id)
}

// Tailors lists the tailor directory.
func (u *CatalogUseCase) Tailors(ctx context.Context) ([]model.Tailor, error) {
	return u.tailors.List(ctx)
}
