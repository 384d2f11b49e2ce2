package config

import (
	"testing"
	"time"

	"agamOrganics/pkg/retry"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/agam")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.JWT.Algorithm != "HS256" {
		t.Fatalf("expected HS256, got %s", cfg.JWT.Algorithm)
	}
	if cfg.JWT.AccessTokenExpire != 30*time.Minute {
		t.Fatalf("unexpected access expiry %v", cfg.JWT.AccessTokenExpire)
	}
	if cfg.JWT.RefreshTokenExpire != 7*24*time.Hour {
		t.Fatalf("unexpected refresh expiry %v", cfg.JWT.RefreshTokenExpire)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Database.DSN() != "postgres://localhost/agam" {
		t.Fatalf("expected DATABASE_URL to win, got %s", cfg.Database.DSN())
	}
	if cfg.Checkout.OrderInsertMaxRetries != 3 {
		t.Fatalf("expected 3 retries, got %d", cfg.Checkout.OrderInsertMaxRetries)
	}
	if cfg.Checkout.OrderInsertTimeout != 5*time.Second {
		t.Fatalf("expected 5s per insert attempt, got %v", cfg.Checkout.OrderInsertTimeout)
	}
}

func TestDefaultInsertRetriesFitCheckoutTimeout(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/agam")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	policy := retry.Policy{
		MaxRetries:     cfg.Checkout.OrderInsertMaxRetries,
		BaseDelay:      cfg.Checkout.RetryBaseDelay,
		AttemptTimeout: cfg.Checkout.OrderInsertTimeout,
	}
	// 4 attempts of 5s plus 1s, 2s and 4s of backoff.
	if policy.Budget() != 27*time.Second {
		t.Fatalf("expected a 27s retry budget, got %v", policy.Budget())
	}
	if policy.Budget() >= 30*time.Second {
		t.Fatalf("expected retries to fit the 30s checkout timeout, got %v", policy.Budget())
	}
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/agam")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/agam")
	t.Setenv("ALGORITHM", "RS256")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for RS256")
	}
}
