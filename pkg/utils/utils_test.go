package utils_test

import (
	"errors"
	"testing"
	"time"

	"agamOrganics/pkg/utils"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := utils.NewTokenManager("secret", "HS256", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	token, err := m.Generate("user-1", "a@example.com", utils.TokenTypeAccess)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.UserID() != "user-1" || claims.Email != "a@example.com" || claims.Type != utils.TokenTypeAccess {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	m, _ := utils.NewTokenManager("secret", "HS256", -time.Minute, time.Hour)
	token, err := m.Generate("user-1", "a@example.com", utils.TokenTypeAccess)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if _, err := m.Parse(token); !errors.Is(err, utils.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenWrongAlgorithmRejected(t *testing.T) {
	t.Parallel()

	signer, _ := utils.NewTokenManager("secret", "HS512", time.Minute, time.Hour)
	verifier, _ := utils.NewTokenManager("secret", "HS256", time.Minute, time.Hour)

	token, _ := signer.Generate("user-1", "a@example.com", utils.TokenTypeAccess)
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected HS512 token to be rejected by HS256 verifier")
	}
}

func TestNewTokenManagerRejectsAsymmetric(t *testing.T) {
	t.Parallel()

	if _, err := utils.NewTokenManager("secret", "RS256", time.Minute, time.Hour); err == nil {
		t.Fatal("expected error for RS256")
	}
}

func TestPasswordHash(t *testing.T) {
	t.Parallel()

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !utils.CheckPassword("secret123", string(hash)) {
		t.Fatal("expected password to match")
	}
	if utils.CheckPassword("wrong", string(hash)) {
		t.Fatal("expected mismatch")
	}
}
