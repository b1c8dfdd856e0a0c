// Package user implements the account registration and login flows.
package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ecosempre/ecosempre/internal/model"
	"github.com/ecosempre/ecosempre/internal/password"
	"github.com/ecosempre/ecosempre/internal/repository"
)

// Service holds the business logic for registration and login.
//
// Registration keeps the historical check-then-insert shape: an existence
// check runs first, but the unique index on users.email is what actually
// guarantees at most one account per address. Two concurrent registrations
// can both pass the check; exactly one insert wins and the loser gets the
// same conflict error the check would have produced.
type Service struct {
	repo repository.UserRepository
}

// NewService creates a Service.
func NewService(repo repository.UserRepository) *Service {
	return &Service{repo: repo}
}

// Register creates an account and returns the store-assigned id.
// Failures are *model.APIError values: USER_ALREADY_EXISTS for a duplicate
// email, VALIDATION_ERROR for a short password, STORE_ERROR for anything
// the persistence layer reports.
func (s *Service) Register(ctx context.Context, nickname, email, plaintext string) (int64, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to check user existence", slog.String("error", err.Error()))
		return 0, model.NewStoreError(err)
	}
	if existing != nil {
		return 0, model.NewUserAlreadyExistsError()
	}

	hashed, err := password.Hash(plaintext)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, &model.User{
		Nickname: nickname,
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) {
			// Unique-violation conflict raced past the existence check.
			return 0, apiErr
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		return 0, model.NewStoreError(err)
	}

	slog.Info("user registered",
		slog.Int64("user_id", id),
		slog.String("email", email),
	)

	return id, nil
}

// Login verifies credentials. It returns nil on a match,
// USER_NOT_FOUND for an unknown email and INCORRECT_PASSWORD on mismatch.
// No session or token is established.
func (s *Service) Login(ctx context.Context, email, plaintext string) error {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to fetch user for login", slog.String("error", err.Error()))
		return model.NewStoreError(err)
	}
	if u == nil {
		return model.NewUserNotFoundError()
	}

	if !password.Verify(plaintext, u.Password) {
		return model.NewIncorrectPasswordError()
	}

	return nil
}
