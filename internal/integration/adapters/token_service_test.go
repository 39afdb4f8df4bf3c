package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("unit-test-secret", 15*time.Minute, 7*24*time.Hour)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(context.Background(), userID, "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be set")
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatal("access and refresh tokens must differ")
	}

	claims, err := service.ValidateAccessToken(context.Background(), pair.AccessToken)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "maria@example.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}

	if _, err := service.ValidateRefreshToken(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
}

func TestTokenService_RejectsWrongTokenType(t *testing.T) {
	service := NewTokenService("unit-test-secret", 15*time.Minute, 7*24*time.Hour)

	pair, err := service.GenerateTokenPair(context.Background(), uuid.New(), "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := service.ValidateAccessToken(context.Background(), pair.RefreshToken); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
	if _, err := service.ValidateRefreshToken(context.Background(), pair.AccessToken); err == nil {
		t.Error("expected access token to be rejected as refresh token")
	}
}

func TestTokenService_RejectsExpiredAndForeignTokens(t *testing.T) {
	service := NewTokenService("unit-test-secret", -time.Minute, -time.Minute)

	pair, err := service.GenerateTokenPair(context.Background(), uuid.New(), "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := service.ValidateAccessToken(context.Background(), pair.AccessToken); err == nil {
		t.Error("expected expired token to be rejected")
	}

	other := NewTokenService("a-different-secret", time.Minute, time.Minute)
	foreign, err := other.GenerateTokenPair(context.Background(), uuid.New(), "maria@example.com")
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if _, err := service.ValidateAccessToken(context.Background(), foreign.AccessToken); err == nil {
		t.Error("expected token signed with another secret to be rejected")
	}

	if _, err := service.ValidateAccessToken(context.Background(), "not-a-jwt"); err == nil {
		t.Error("expected malformed token to be rejected")
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct-horse-battery")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct-horse-battery" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := service.VerifyPassword(hash, "correct-horse-battery"); err != nil {
		t.Errorf("VerifyPassword with right password: %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong-password"); err == nil {
		t.Error("expected wrong password to fail verification")
	}
}

func TestPasswordService_Strength(t *testing.T) {
	service := NewPasswordService()

	if err := service.ValidatePasswordStrength("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := service.ValidatePasswordStrength("long enough"); err != nil {
		t.Errorf("expected 11-char password to pass: %v", err)
	}
	long := make([]byte, 80)
	for i := range long {
		long[i] = 'a'
	}
	if err := service.ValidatePasswordStrength(string(long)); err == nil {
		t.Error("expected over-length password to be rejected")
	}
}
