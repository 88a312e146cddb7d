package usecase

import "github.com/stitchmate/stitchmate/internal/domain/model"

// rolePrecedence orders roles from highest to lowest.
var rolePrecedence = []model.Role{model.RoleAdmin, model.RoleTailor, model.RoleUser}

// ResolveRole derives the effective role from the set of granted role rows.
// Precedence is admin > tailor > user; no rows resolve to RoleNone.
func ResolveRole(roles []model.Role) model.Role {
	granted := make(map[model.Role]struct{}, len(roles))
	for _, r := range roles {
		granted[r] = struct{}{}
	}
	for _, r := range rolePrecedence {
		if _, ok := granted[r]; ok {
			return r
		}
	}
	return model.RoleNone
}

// DemoMode reports whether the user should see the tailor surface in
// read-only preview: exactly when the latest tailor application is pending
// and the resolved role is still plain user.
func DemoMode(role model.Role, app *model.TailorApplication) bool {
	return role == model.RoleUser && app != nil && app.Status == model.ApplicationPending
}
