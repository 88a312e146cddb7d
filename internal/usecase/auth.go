package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
	pkgAuth "github.com/stitchmate/stitchmate/internal/pkg/auth"
)

// UserData bundles everything the client needs about the signed-in account.
type UserData struct {
	User        *model.User
	Profile     *model.Profile
	Role        model.Role
	Application *model.TailorApplication
	DemoMode    bool
}

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	roles        repository.RoleRepository
	applications repository.ApplicationRepository
	hasher       pkgAuth.PasswordHasher
	tokens       pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	roles repository.RoleRepository,
	applications repository.ApplicationRepository,
	hasher pkgAuth.PasswordHasher,
	strategy pkgAuth.Strategy,
) *AuthUseCase {
	return &AuthUseCase{
		users:        users,
		profiles:     profiles,
		roles:        roles,
		applications: applications,
		hasher:       hasher,
		tokens:       strategy,
	}
}

// Register creates a new account with a profile and the default user role,
// and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash)
	if err != nil {
		return nil, "", err
	}

	if _, err := u.profiles.Create(ctx, usr.ID, name); err != nil {
		return nil, "", err
	}
	if err := u.roles.Grant(ctx, usr.ID, model.RoleUser); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// AdminAuthenticate validates credentials and additionally re-verifies an
// admin role grant. When the account is not an admin no token is issued, so
// the caller ends up without a session.
func (u *AuthUseCase) AdminAuthenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	usr, _, err := u.Authenticate(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	isAdmin, err := u.roles.Has(ctx, usr.ID, model.RoleAdmin)
	if err != nil {
		return nil, "", err
	}
	if !isAdmin {
		return nil, "", domainErrors.ErrAccessDenied
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ResetPassword issues a short-lived reset token for the account. Unknown
// emails return ErrNotFound; the transport layer decides whether to mask it.
func (u *AuthUseCase) ResetPassword(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return u.tokens.IssueResetToken(usr.ID)
}

// ParseToken extracts the user ID from an access token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// UserData loads the profile, resolved role, latest tailor application and
// demo-mode flag for the user.
func (u *AuthUseCase) UserData(ctx context.Context, userID int64) (*UserData, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &UserData{User: usr}

	if profile, err := u.profiles.GetByUserID(ctx, userID); err == nil {
		data.Profile = profile
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	roles, err := u.roles.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.Role = ResolveRole(roles)

	if app, err := u.applications.LatestByUser(ctx, userID); err == nil {
		data.Application = app
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}

	data.DemoMode = DemoMode(data.Role, data.Application)
	return data, nil
}
