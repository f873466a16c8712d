package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
}

func TestHMACService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for refresh token, got %v", err)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_GarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
