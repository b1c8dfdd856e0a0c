// Package contact implements the contact-form domain logic.
package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecosempre/ecosempre/internal/model"
	"github.com/ecosempre/ecosempre/internal/repository"
)

// Service manages contact-form submissions: visitors create them through the
// public form, the admin panel lists and deletes them.
type Service struct {
	repo repository.ContactRepository
}

// NewService creates a Service.
func NewService(repo repository.ContactRepository) *Service {
	return &Service{repo: repo}
}

// Input carries the contact-form fields.
type Input struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Create validates and persists a contact-form submission.
func (s *Service) Create(ctx context.Context, in Input) (*model.Contact, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, model.NewValidationError("name is required")
	}
	if !looksLikeEmail(in.Email) {
		return nil, model.NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, model.NewValidationError("message is required")
	}

	c := &model.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// List returns all submissions, newest first.
func (s *Service) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

// Get returns the submission with the given id.
func (s *Service) Get(ctx context.Context, id string) (*model.Contact, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, model.NewContactNotFoundError(id)
	}
	return c, nil
}

// Delete removes the submission with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return model.NewContactNotFoundError(id)
	}
	return s.repo.DeleteByID(ctx, id)
}

// looksLikeEmail is a shape check, not RFC validation: one @ with something
// on both sides and a dot in the domain.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
