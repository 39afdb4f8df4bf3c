package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter"
	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/application/adapter/adaptertest"
	domainerror "github.com/camilopiedra92/YNAB-Clone-sub004/internal/domain/error"
)

type stubPasswordService struct{}

func (stubPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (stubPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (stubPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type stubTokenService struct{ calls int }

func (s *stubTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.calls++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.calls),
		RefreshToken: fmt.Sprintf("refresh-%d", s.calls),
	}, nil
}

func (s *stubTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *stubTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("invalid")
}

func TestRegisterUser_CreatesUserAndStarterBudget(t *testing.T) {
	store := adaptertest.NewMemoryStore()
	uc := NewRegisterUserUseCase(store.UserRepo(), store.BudgetRepo(), stubPasswordService{}, &stubTokenService{})

	out, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "Sam@Example.com",
		Name:     "Sam",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if out.User.Email != "sam@example.com" {
		t.Errorf("email = %q, want lowercased", out.User.Email)
	}
	if out.Budget == nil || out.Budget.Name != DefaultBudgetName {
		t.Errorf("expected starter budget %q", DefaultBudgetName)
	}
	if out.Budget.UserID != out.User.ID {
		t.Error("starter budget must belong to the new user")
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected a token pair")
	}

	// Duplicate email rejected, case-insensitively.
	_, err = uc.Execute(context.Background(), RegisterUserInput{
		Email:    "sam@example.com",
		Name:     "Sam Again",
		Password: "correct horse battery",
	})
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	store := adaptertest.NewMemoryStore()
	uc := NewRegisterUserUseCase(store.UserRepo(), store.BudgetRepo(), stubPasswordService{}, &stubTokenService{})

	_, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "sam@example.com",
		Name:     "Sam",
		Password: "short",
	})
	if !errors.Is(err, domainerror.ErrWeakPassword) {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
	if len(store.Users) != 0 {
		t.Errorf("expected no user created, got %d", len(store.Users))
	}
}

func TestLoginUser(t *testing.T) {
	store := adaptertest.NewMemoryStore()
	register := NewRegisterUserUseCase(store.UserRepo(), store.BudgetRepo(), stubPasswordService{}, &stubTokenService{})
	login := NewLoginUserUseCase(store.UserRepo(), stubPasswordService{}, &stubTokenService{})

	if _, err := register.Execute(context.Background(), RegisterUserInput{
		Email:    "sam@example.com",
		Name:     "Sam",
		Password: "correct horse battery",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		out, err := login.Execute(context.Background(), LoginUserInput{
			Email:    "SAM@example.com",
			Password: "correct horse battery",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.User == nil || out.AccessToken == "" {
			t.Error("expected user and tokens")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := login.Execute(context.Background(), LoginUserInput{
			Email:    "sam@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email gets the same error", func(t *testing.T) {
		_, err := login.Execute(context.Background(), LoginUserInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	store := adaptertest.NewMemoryStore()
	uc := NewRefreshTokenUseCase(store.UserRepo(), &stubTokenService{})

	_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "garbage"})
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
