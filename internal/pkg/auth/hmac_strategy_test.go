package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestNewHMACStrategyDefaults(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.resetTTL != 30*time.Minute {
		t.Fatalf("unexpected reset ttl: %s", strategy.resetTTL)
	}
}

func TestNewHMACStrategyCustomTTLs(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: 2 * time.Hour, ResetTTL: 5 * time.Minute})
	if strategy.ttl != 2*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
	if strategy.resetTTL != 5*time.Minute {
		t.Fatalf("unexpected reset ttl: %s", strategy.resetTTL)
	}
}

func TestHMACStrategyIssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestHMACStrategyResetTokenRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{ResetTTL: time.Minute})
	token, err := strategy.IssueResetToken(17)
	if err != nil {
		t.Fatalf("issue reset token: %v", err)
	}
	userID, err := strategy.ParseResetToken(token)
	if err != nil {
		t.Fatalf("parse reset token: %v", err)
	}
	if userID != 17 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestHMACStrategyRejectsPurposeMismatch(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute, ResetTTL: time.Minute})
	access, err := strategy.IssueToken(9)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := strategy.ParseResetToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token in reset slot, got %v", err)
	}
	reset, err := strategy.IssueResetToken(9)
	if err != nil {
		t.Fatalf("issue reset token: %v", err)
	}
	if _, err := strategy.ParseToken(reset); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for reset token in access slot, got %v", err)
	}
}

func TestHMACStrategyParseInvalidBase64(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.ParseToken("not-base64"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseInvalidParts(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	token := base64.StdEncoding.EncodeToString([]byte("only:three:parts"))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseInvalidSignature(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 4 {
		t.Fatalf("unexpected parts count: %d", len(parts))
	}
	parts[3] = "tampered"
	tamperedToken := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := strategy.ParseToken(tamperedToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseInvalidUserID(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	payload := fmt.Sprintf("abc:access:%d", time.Now().Add(time.Minute).Unix())
	sig := strategy.sign(payload)
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, sig)))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseInvalidExpiry(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	payload := "10:access:not-a-number"
	sig := strategy.sign(payload)
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, sig)))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyParseExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	payload := fmt.Sprintf("10:access:%d", time.Now().Add(-time.Minute).Unix())
	sig := strategy.sign(payload)
	token := base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", payload, sig)))
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected name: %s", strategy.Name())
	}
}
