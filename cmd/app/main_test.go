package main

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/infrastructure/config"
)

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSeedIfEmpty_OnlySeedsEmptyStore(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.Config{SeedFile: "../../internal/infrastructure/seed/testdata/portfolio.yaml"}

	s := content.NewMemory()
	if err := seedIfEmpty(s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	n, _ := s.Projects.Count()
	if n != 2 {
		t.Fatalf("expected seeded projects, got %d", n)
	}

	if _, err := s.Projects.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := seedIfEmpty(s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n, _ := s.Projects.Count(); n != 1 {
		t.Fatalf("a store with content must not be reseeded, got %d projects", n)
	}
}

func TestCommandsNeedDatabase(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.Config{}

	if _, err := openDB(context.Background()); !errors.Is(err, errNeedsDatabase) {
		t.Fatalf("expected errNeedsDatabase, got %v", err)
	}
	s, closeStore, err := openStore(context.Background())
	if err != nil || s == nil {
		t.Fatalf("memory store expected, got %v", err)
	}
	closeStore()
}

func TestEnsureAdmin_DoesNotResetExistingPassword(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.Config{AdminEmail: "admin@example.com", AdminPassword: "from-environment"}

	s := content.NewMemory()
	if _, _, err := s.Users.ResetAdmin("admin@example.com", "changed-later", ""); err != nil {
		t.Fatalf("reset admin: %v", err)
	}
	if err := ensureAdmin(s); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if _, err := s.Users.Authenticate("admin@example.com", "changed-later"); err != nil {
		t.Fatalf("existing password must survive serve, got %v", err)
	}
	if _, err := s.Users.Authenticate("admin@example.com", "from-environment"); err == nil {
		t.Fatalf("environment password must not replace an existing one")
	}
}
