package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/test"
	"github.com/stitchmate/stitchmate/internal/usecase"
)

type authFixture struct {
	users        *test.UserRepositoryStub
	profiles     *test.ProfileRepositoryStub
	roles        *test.RoleRepositoryStub
	applications *test.ApplicationRepositoryStub
	uc           *usecase.AuthUseCase
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:        test.NewUserRepositoryStub(),
		profiles:     test.NewProfileRepositoryStub(),
		roles:        test.NewRoleRepositoryStub(),
		applications: test.NewApplicationRepositoryStub(),
	}
	f.uc = usecase.NewAuthUseCase(f.users, f.profiles, f.roles, f.applications, test.HasherStub{}, test.StrategyStub{})
	return f
}

func TestRegister(t *testing.T) {
	f := newAuthFixture()

	usr, token, err := f.uc.Register(context.Background(), "Aisha Khan", "  Aisha@Example.com ", "secret1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if usr.Email != "aisha@example.com" {
		t.Errorf("email should be normalized, got %q", usr.Email)
	}

	profile, err := f.profiles.GetByUserID(context.Background(), usr.ID)
	if err != nil || profile.FullName != "Aisha Khan" {
		t.Errorf("expected a profile with the supplied name, got %+v (%v)", profile, err)
	}

	roles, _ := f.roles.ListByUser(context.Background(), usr.ID)
	if len(roles) != 1 || roles[0] != model.RoleUser {
		t.Errorf("expected the user role granted, got %v", roles)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newAuthFixture()

	tests := []struct {
		name     string
		fullName string
		email    string
		password string
	}{
		{name: "empty name", fullName: "  ", email: "x@example.com", password: "secret1"},
		{name: "empty email", fullName: "X", email: "", password: "secret1"},
		{name: "short password", fullName: "X", email: "x@example.com", password: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.uc.Register(context.Background(), tt.fullName, tt.email, tt.password)
			if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()

	if _, _, err := f.uc.Register(context.Background(), "First", "dup@example.com", "secret1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := f.uc.Register(context.Background(), "Second", "dup@example.com", "secret1")
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.uc.Register(context.Background(), "Aisha", "aisha@example.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	if _, token, err := f.uc.Authenticate(context.Background(), "aisha@example.com", "secret1"); err != nil || token == "" {
		t.Errorf("valid credentials rejected: token=%q err=%v", token, err)
	}

	if _, _, err := f.uc.Authenticate(context.Background(), "aisha@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := f.uc.Authenticate(context.Background(), "ghost@example.com", "secret1"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Errorf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAdminAuthenticate(t *testing.T) {
	f := newAuthFixture()
	usr, _, err := f.uc.Register(context.Background(), "Ops", "ops@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}

	_, token, err := f.uc.AdminAuthenticate(context.Background(), "ops@example.com", "secret1")
	if !errors.Is(err, domainErrors.ErrAccessDenied) {
		t.Fatalf("non-admin: expected ErrAccessDenied, got %v", err)
	}
	if token != "" {
		t.Error("non-admin must not receive a token")
	}

	if err := f.roles.Grant(context.Background(), usr.ID, model.RoleAdmin); err != nil {
		t.Fatal(err)
	}
	if _, token, err := f.uc.AdminAuthenticate(context.Background(), "ops@example.com", "secret1"); err != nil || token == "" {
		t.Errorf("admin should authenticate: token=%q err=%v", token, err)
	}
}

func TestResetPassword(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.uc.Register(context.Background(), "Aisha", "aisha@example.com", "secret1"); err != nil {
		t.Fatal(err)
	}

	token, err := f.uc.ResetPassword(context.Background(), "Aisha@Example.com")
	if err != nil || token == "" {
		t.Errorf("expected a reset token, got %q (%v)", token, err)
	}

	if _, err := f.uc.ResetPassword(context.Background(), "ghost@example.com"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Errorf("unknown email: expected ErrNotFound, got %v", err)
	}
}

func TestUserData(t *testing.T) {
	f := newAuthFixture()
	usr, _, err := f.uc.Register(context.Background(), "Aisha", "aisha@example.com", "secret1")
	if err != nil {
		t.Fatal(err)
	}

	data, err := f.uc.UserData(context.Background(), usr.ID)
	if err != nil {
		t.Fatalf("user data failed: %v", err)
	}
	if data.Role != model.RoleUser || data.DemoMode {
		t.Errorf("fresh account: role=%q demo=%v", data.Role, data.DemoMode)
	}

	app := &model.TailorApplication{
		ID: "app-1", UserID: usr.ID, ShopName: "Aisha Stitches",
		Status: model.ApplicationPending, CreatedAt: time.Now(),
	}
	if err := f.applications.Create(context.Background(), app); err != nil {
		t.Fatal(err)
	}

	data, err = f.uc.UserData(context.Background(), usr.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !data.DemoMode {
		t.Error("pending application should turn demo mode on")
	}

	if err := f.roles.Grant(context.Background(), usr.ID, model.RoleTailor); err != nil {
		t.Fatal(err)
	}
	data, err = f.uc.UserData(context.Background(), usr.ID)
	if err != nil {
		t.Fatal(err)
	}
	if data.Role != model.RoleTailor || data.DemoMode {
		t.Errorf("approved tailor: role=%q demo=%v", data.Role, data.DemoMode)
	}
}
