// Package article implements the blog/CMS domain logic.
package article

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecosempre/ecosempre/internal/model"
	"github.com/ecosempre/ecosempre/internal/repository"
	"github.com/ecosempre/ecosempre/internal/security"
)

// ServiceConfig holds pagination bounds for article listings.
type ServiceConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service provides article management for the admin panel and the public blog.
type Service struct {
	repo      repository.ArticleRepository
	sanitizer security.ContentSanitizerService
	config    ServiceConfig
}

// NewService creates a Service.
func NewService(repo repository.ArticleRepository, sanitizer security.ContentSanitizerService, config ServiceConfig) *Service {
	if config.DefaultPageSize <= 0 {
		config.DefaultPageSize = 10
	}
	if config.MaxPageSize <= 0 {
		config.MaxPageSize = 50
	}
	return &Service{repo: repo, sanitizer: sanitizer, config: config}
}

// Input carries the writable article fields.
type Input struct {
	Title   string
	Slug    string
	Content string
	Author  string
}

// List returns a page of articles, newest first. titleLike filters by
// case-insensitive substring; page starts at 1; perPage is clamped to the
// configured maximum.
func (s *Service) List(ctx context.Context, titleLike string, page, perPage int) ([]*model.Article, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = s.config.DefaultPageSize
	}
	if perPage > s.config.MaxPageSize {
		perPage = s.config.MaxPageSize
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, titleLike, perPage, offset)
}

// Get returns the article with the given id.
func (s *Service) Get(ctx context.Context, id string) (*model.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError(id)
	}
	return a, nil
}

// Create validates, sanitizes and persists a new article.
func (s *Service) Create(ctx context.Context, in Input) (*model.Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, model.NewValidationError("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, model.NewValidationError("content is required")
	}

	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}

	// Pre-check for a friendlier error; the unique index on slug still
	// catches any insert that races past this.
	existing, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewDuplicateSlugError(slug)
	}

	now := time.Now().UTC()
	a := &model.Article{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Slug:      slug,
		Content:   s.sanitizer.Sanitize(in.Content),
		Author:    in.Author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// Update overwrites an existing article's writable fields.
func (s *Service) Update(ctx context.Context, id string, in Input) (*model.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.NewArticleNotFoundError(id)
	}

	if strings.TrimSpace(in.Title) == "" {
		return nil, model.NewValidationError("title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return nil, model.NewValidationError("content is required")
	}

	a.Title = in.Title
	if in.Slug != "" {
		a.Slug = in.Slug
	}
	a.Content = s.sanitizer.Sanitize(in.Content)
	a.Author = in.Author
	a.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

// Delete removes the article with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return model.NewArticleNotFoundError(id)
	}
	return s.repo.DeleteByID(ctx, id)
}

// Slugify turns a title into a URL-safe slug: lowercase ASCII letters and
// digits, runs of anything else collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
