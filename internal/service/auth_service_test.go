package service

import (
	"alcyxob/workout-tracker/internal/domain"
	"context"
	"errors"
	"testing"
	"time"
)

func newAuthFixture() (AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewAuthService(repo, "test-secret", time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter2hunter2", domain.RoleMember)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("Register leaked the password hash")
	}

	token, logged, err := svc.Login(ctx, "sam@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("Login returned empty token")
	}
	if logged.ID != user.ID {
		t.Errorf("Login user ID = %s, want %s", logged.ID.Hex(), user.ID.Hex())
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter2hunter2", domain.RoleMember); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "sam@example.com", "password123", domain.RoleAdmin); !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("error = %v, want ErrUserAlreadyExists", err)
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "Sam", "sam@example.com", "hunter2hunter2", "superuser"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Sam", "sam@example.com", "hunter2hunter2", domain.RoleMember); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(ctx, "sam@example.com", "wrong-password"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("wrong password error = %v, want ErrAuthenticationFailed", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "hunter2hunter2"); !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("unknown email error = %v, want ErrAuthenticationFailed", err)
	}
}
