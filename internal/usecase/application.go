package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
)

// ApplicationUseCase manages tailor applications and their admin review.
type ApplicationUseCase struct {
	applications repository.ApplicationRepository
	roles        repository.RoleRepository
	tailors      repository.TailorRepository
	profiles     repository.ProfileRepository
}

// NewApplicationUseCase constructs ApplicationUseCase.
func NewApplicationUseCase(
	applications repository.ApplicationRepository,
	roles repository.RoleRepository,
	tailors repository.TailorRepository,
	profiles repository.ProfileRepository,
) *ApplicationUseCase {
	return &ApplicationUseCase{applications: applications, roles: roles, tailors: tailors, profiles: profiles}
}

// Apply submits a pending tailor application for the user. A user with an
// application still pending cannot submit another.
func (u *ApplicationUseCase) Apply(ctx context.Context, userID int64, shopName, experience string, specialties []string) (*model.TailorApplication, error) {
	if shopName == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	existing, err := u.applications.LatestByUser(ctx, userID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if err == nil && existing.Status == model.ApplicationPending {
		return nil, domainErrors.ErrAlreadyExists
	}

	app := &model.TailorApplication{
		ID:          uuid.NewString(),
		UserID:      userID,
		ShopName:    shopName,
		Experience:  experience,
		Specialties: specialties,
		Status:      model.ApplicationPending,
		CreatedAt:   time.Now(),
	}
	if err := u.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Pending lists applications awaiting review.
func (u *ApplicationUseCase) Pending(ctx context.Context) ([]model.TailorApplication, error) {
	return u.applications.ListByStatus(ctx, model.ApplicationPending)
}

// Approve grants the tailor role and opens the applicant's shop in the
// tailor directory.
func (u *ApplicationUseCase) Approve(ctx context.Context, applicationID string) error {
	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != model.ApplicationPending {
		return domainErrors.ErrAlreadyReviewed
	}

	if err := u.applications.SetStatus(ctx, applicationID, model.ApplicationApproved); err != nil {
		return err
	}
	if err := u.roles.Grant(ctx, app.UserID, model.RoleTailor); err != nil {
		return err
	}

	name := app.ShopName
	if profile, err := u.profiles.GetByUserID(ctx, app.UserID); err == nil {
		name = profile.FullName
	}

	tailor := &model.Tailor{
		ID:          uuid.NewString(),
		UserID:      app.UserID,
		Name:        name,
		ShopName:    app.ShopName,
		Specialties: app.Specialties,
	}
	return u.tailors.Create(ctx, tailor)
}

// Reject closes a pending application without granting anything.
func (u *ApplicationUseCase) Reject(ctx context.Context, applicationID string) error {
	app, err := u.applications.GetByID(ctx, applicationID)
	if err != nil {
		return err
	}
	if app.Status != model.ApplicationPending {
		return domainErrors.ErrAlreadyReviewed
	}
	return u.applications.SetStatus(ctx, applicationID, model.ApplicationRejected)
}
