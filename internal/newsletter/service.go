// Package newsletter implements newsletter subscription management.
package newsletter

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecosempre/ecosempre/internal/model"
	"github.com/ecosempre/ecosempre/internal/repository"
)

// Service manages newsletter subscriptions. Visitors subscribe through the
// public site; the admin panel lists and removes subscribers.
type Service struct {
	repo repository.NewsletterRepository
}

// NewService creates a Service.
func NewService(repo repository.NewsletterRepository) *Service {
	return &Service{repo: repo}
}

// Subscribe adds an email to the newsletter. A duplicate subscription
// surfaces as ALREADY_SUBSCRIBED from the store's unique index.
func (s *Service) Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return nil, model.NewValidationError("a valid email is required")
	}

	sub := &model.NewsletterSubscriber{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// List returns all subscribers, newest first.
func (s *Service) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	return s.repo.List(ctx)
}

// Unsubscribe removes the subscriber with the given id.
func (s *Service) Unsubscribe(ctx context.Context, id string) error {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if sub == nil {
		return model.NewSubscriberNotFoundError(id)
	}
	return s.repo.DeleteByID(ctx, id)
}
