package test

import (
	"errors"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn      func(int64) (string, error)
	IssueResetFn func(int64) (string, error)
	ParseFn      func(string) (int64, error)
	ParseResetFn func(string) (int64, error)
	NameVal      string
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(userID int64) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return "token", nil
}

// IssueResetToken returns deterministic reset tokens for tests.
func (s StrategyStub) IssueResetToken(userID int64) (string, error) {
	if s.IssueResetFn != nil {
		return s.IssueResetFn(userID)
	}
	return "reset-token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if token == "token" {
		return 1, nil
	}
	return 0, errors.New("invalid token")
}

// ParseResetToken parses previously issued reset token strings.
func (s StrategyStub) ParseResetToken(token string) (int64, error) {
	if s.ParseResetFn != nil {
		return s.ParseResetFn(token)
	}
	if token == "reset-token" {
		return 1, nil
	}
	return 0, errors.New("invalid token")
}

// Name identifies the stub strategy.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}
