package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidStatus      = errors.New("invalid status transition")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidRating      = errors.New("invalid rating")
	ErrInsufficientFabric = errors.New("insufficient fabric for style")
	ErrAlreadyReviewed    = errors.New("application already reviewed")
)
