package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidToken = errors.New("invalid auth token")

const (
	purposeAccess = "access"
	purposeReset  = "reset"
)

// HMACStrategy implements auth token creation/verification using HMAC signatures.
type HMACStrategy struct {
	secret   []byte
	ttl      time.Duration
	resetTTL time.Duration
}

// NewHMACStrategy builds HMACStrategy with provided secret and options.
func NewHMACStrategy(secret string, opts Options) *HMACStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	resetTTL := opts.ResetTTL
	if resetTTL <= 0 {
		resetTTL = 30 * time.Minute
	}
	return &HMACStrategy{secret: []byte(secret), ttl: ttl, resetTTL: resetTTL}
}

// IssueToken generates a signed access token for the user.
func (s *HMACStrategy) IssueToken(userID int64) (string, error) {
	return s.issue(userID, purposeAccess, s.ttl)
}

// IssueResetToken generates a short-lived password reset token.
func (s *HMACStrategy) IssueResetToken(userID int64) (string, error) {
	return s.issue(userID, purposeReset, s.resetTTL)
}

func (s *HMACStrategy) issue(userID int64, purpose string, ttl time.Duration) (string, error) {
	expires := time.Now().Add(ttl).Unix()
	payload := fmt.Sprintf("%d:%s:%d", userID, purpose, expires)
	token := fmt.Sprintf("%s:%s", payload, s.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// ParseToken validates an access token and returns the encoded user ID.
func (s *HMACStrategy) ParseToken(token string) (int64, error) {
	return s.parse(token, purposeAccess)
}

// ParseResetToken validates a password reset token.
func (s *HMACStrategy) ParseResetToken(token string) (int64, error) {
	return s.parse(token, purposeReset)
}

func (s *HMACStrategy) parse(token, purpose string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidToken
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		return 0, ErrInvalidToken
	}

	payload := strings.Join(parts[:3], ":")
	expectedSig := s.sign(payload)
	if !hmac.Equal([]byte(expectedSig), []byte(parts[3])) {
		return 0, ErrInvalidToken
	}

	if parts[1] != purpose {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidToken
	}

	return userID, nil
}

func (s *HMACStrategy) Name() string {
	return "hmac"
}

func (s *HMACStrategy) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
