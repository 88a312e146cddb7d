package auth

import "time"

type Strategy interface {
	IssueToken(userID int64) (string, error)
	IssueResetToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
	ParseResetToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL      time.Duration
	ResetTTL time.Duration
}
