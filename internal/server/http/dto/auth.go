package dto

// RegisterRequest is the payload for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for customer and admin login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest asks for a password reset token.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordResponse carries the short-lived reset token.
type ResetPasswordResponse struct {
	ResetToken string `json:"reset_token"`
}

// ApplicationResponse describes a tailor application.
type ApplicationResponse struct {
	ID          string   `json:"id"`
	UserID      int64    `json:"user_id"`
	ShopName    string   `json:"shop_name"`
	Experience  string   `json:"experience"`
	Specialties []string `json:"specialties"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"created_at"`
}

// UserDataResponse bundles account, profile, resolved role and demo-mode flag.
type UserDataResponse struct {
	ID          int64                `json:"id"`
	Email       string               `json:"email"`
	FullName    string               `json:"full_name"`
	Role        string               `json:"role"`
	DemoMode    bool                 `json:"demo_mode"`
	Application *ApplicationResponse `json:"application,omitempty"`
}
