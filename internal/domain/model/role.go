package model

// Role describes an access level granted to a user. A user may hold several
// role rows; the effective role is resolved by precedence.
type Role string

const (
	RoleNone   Role = ""
	RoleUser   Role = "user"
	RoleTailor Role = "tailor"
	RoleAdmin  Role = "admin"
)

// ApplicationStatus describes tailor application review state.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)
