package user

import (
	"errors"
	"testing"
	"time"
)

func TestService_EnsureAdmin(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)

	u, created, err := svc.EnsureAdmin("admin@example.com", "first-pass", "")
	if err != nil || !created {
		t.Fatalf("expected a new admin, got created=%v err=%v", created, err)
	}
	if u.Name != "Admin" || !isBcryptHash(u.Password) {
		t.Fatalf("unexpected admin %+v", u)
	}

	_, created, err = svc.EnsureAdmin("admin@example.com", "second-pass", "Owner")
	if err != nil || created {
		t.Fatalf("expected the existing admin, got created=%v err=%v", created, err)
	}
	if _, err := svc.Authenticate("admin@example.com", "first-pass"); err != nil {
		t.Fatalf("existing password must keep working, got %v", err)
	}
	if _, err := svc.Authenticate("admin@example.com", "second-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ensure must not reset the password, got %v", err)
	}
}

func TestService_EnsureAdminKeepsPasswordChangedInProfile(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	u, _, err := svc.EnsureAdmin("admin@example.com", "env-password", "")
	if err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if _, err := svc.UpdateProfile(u.ID, ProfileForm{
		Name:                    "Admin",
		Email:                   "admin@example.com",
		CurrentPassword:         "env-password",
		NewPassword:             "changed-in-ui",
		NewPasswordConfirmation: "changed-in-ui",
	}, nil); err != nil {
		t.Fatalf("update profile: %v", err)
	}

	// a restart runs EnsureAdmin with the environment password again
	if _, _, err := svc.EnsureAdmin("admin@example.com", "env-password", "Admin"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if _, err := svc.Authenticate("admin@example.com", "changed-in-ui"); err != nil {
		t.Fatalf("changed password must survive a restart, got %v", err)
	}
}

func TestService_ResetAdmin(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo)

	if _, created, err := svc.ResetAdmin("admin@example.com", "first-pass", ""); err != nil || !created {
		t.Fatalf("expected a new admin, got created=%v err=%v", created, err)
	}

	_, created, err := svc.ResetAdmin("admin@example.com", "second-pass", "Owner")
	if err != nil || created {
		t.Fatalf("expected password reset, got created=%v err=%v", created, err)
	}
	if _, err := svc.Authenticate("admin@example.com", "first-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop working, got %v", err)
	}
	got, err := svc.Authenticate("admin@example.com", "second-pass")
	if err != nil || got.Name != "Owner" {
		t.Fatalf("new password must work, got %+v %v", got, err)
	}
}

func TestService_ResetAdminAcceptsPrehashedPassword(t *testing.T) {
	hashed, err := hashPassword("from-vault")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := NewService(NewInMemoryRepository(nil))
	u, _, err := svc.ResetAdmin("admin@example.com", hashed, "")
	if err != nil {
		t.Fatalf("reset admin: %v", err)
	}
	if u.Password != hashed {
		t.Fatalf("a bcrypt hash is stored as given")
	}
	if _, err := svc.Authenticate("admin@example.com", "from-vault"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
}

func TestService_UpdateProfileHashesDollarPrefixedPassword(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	u, _, err := svc.EnsureAdmin("admin@example.com", "first-pass", "")
	if err != nil {
		t.Fatalf("ensure admin: %v", err)
	}

	const next = "$2secret-pass"
	updated, err := svc.UpdateProfile(u.ID, ProfileForm{
		Name:                    "Admin",
		Email:                   "admin@example.com",
		CurrentPassword:         "first-pass",
		NewPassword:             next,
		NewPasswordConfirmation: next,
	}, nil)
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Password == next || !isBcryptHash(updated.Password) {
		t.Fatalf("password stored unhashed: %q", updated.Password)
	}
	if _, err := svc.Authenticate("admin@example.com", next); err != nil {
		t.Fatalf("new password must work, got %v", err)
	}
}

func TestService_CheckProfileEmailTaken(t *testing.T) {
	svc := NewService(NewInMemoryRepository([]User{
		{ID: 1, Email: "a@example.com"},
		{ID: 2, Email: "b@example.com"},
	}))
	if err := svc.CheckProfile(1, ProfileForm{Email: "B@example.com"}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
	if err := svc.CheckProfile(1, ProfileForm{Email: "a@example.com"}); err != nil {
		t.Fatalf("own email is fine, got %v", err)
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("s3cret", 0)
	signed, _, err := tokens.Sign(User{ID: 42, Email: "x@example.com"}, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if id, err := tokens.Parse(signed); err != nil || id != 42 {
		t.Fatalf("parse: id=%d err=%v", id, err)
	}
	if _, err := NewTokens("other", 0).Parse(signed); err == nil {
		t.Fatalf("token signed with another secret must be rejected")
	}
}
