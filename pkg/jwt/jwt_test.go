package jwt

import (
	"testing"
	"time"

	"healthguard-api/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "patient@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("expected access token type, got %s", claims.TokenType)
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "patient@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "patient@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation error for wrong secret")
	}
}
