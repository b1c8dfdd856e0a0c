// Package collectionpoint implements recycling drop-off location management.
package collectionpoint

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecosempre/ecosempre/internal/model"
	"github.com/ecosempre/ecosempre/internal/repository"
)

// Service manages the collection-point listing shown on the public site.
type Service struct {
	repo repository.CollectionPointRepository
}

// NewService creates a Service.
func NewService(repo repository.CollectionPointRepository) *Service {
	return &Service{repo: repo}
}

// Input carries the writable collection-point fields.
type Input struct {
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
}

// Create validates and persists a collection point.
func (s *Service) Create(ctx context.Context, in Input) (*model.CollectionPoint, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, model.NewValidationError("name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, model.NewValidationError("address is required")
	}

	p := &model.CollectionPoint{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// List returns all collection points.
func (s *Service) List(ctx context.Context) ([]*model.CollectionPoint, error) {
	return s.repo.List(ctx)
}

// Delete removes the collection point with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewCollectionPointNotFoundError(id)
	}
	return s.repo.DeleteByID(ctx, id)
}
