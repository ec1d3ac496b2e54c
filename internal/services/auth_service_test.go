package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/examforge/exam-portal/internal/auth"
	"github.com/examforge/exam-portal/internal/models"
	"github.com/examforge/exam-portal/internal/validator"
)

const testJWTSecret = "test-secret"

func newTestAuthService(t *testing.T) (AuthService, *mockRepository) {
	t.Helper()
	repo := newMockRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuthService(repo, logger, validator.New(), testJWTSecret, 24*time.Hour)
	return svc, repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestAuthService(t)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.User.Username != "alice" || resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user view %+v", resp.User)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}

	claims, err := auth.ParseToken(resp.Token, testJWTSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Errorf("token subject %s does not match user %s", claims.UserID, resp.User.ID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("unexpected token email %s", claims.Email)
	}

	// The stored hash must not be the plaintext password.
	user, err := repo.User().GetByID(context.Background(), resp.User.ID)
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	req := &RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret123"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "other",
		Email:    "alice@example.com",
		Password: "different1",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  *RegisterRequest
	}{
		{"missing email", &RegisterRequest{Username: "alice", Password: "secret123"}},
		{"bad email", &RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123"}},
		{"short password", &RegisterRequest{Username: "alice", Email: "a@b.com", Password: "abc"}},
		{"short username", &RegisterRequest{Username: "al", Email: "a@b.com", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			if !validator.IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.ID != registered.User.ID {
		t.Errorf("expected user %s, got %s", registered.User.ID, resp.User.ID)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "wrongpass",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	registered, err := svc.Register(context.Background(), &RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	view, err := svc.GetUser(context.Background(), registered.User.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if view.Email != "alice@example.com" {
		t.Errorf("unexpected email %s", view.Email)
	}

	_, err = svc.GetUser(context.Background(), models.NewID())
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
