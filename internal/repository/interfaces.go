// Package repository defines the persistence interfaces.
package repository

import (
	"context"

	"github.com/ecosempre/ecosempre/internal/model"
)

// UserRepository persists user records.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create inserts a user and returns the store-assigned id.
	// A duplicate email surfaces as *model.APIError (USER_ALREADY_EXISTS):
	// the unique index on email is the authoritative conflict signal.
	Create(ctx context.Context, user *model.User) (int64, error)
}

// ArticleRepository persists blog articles.
type ArticleRepository interface {
	// List returns articles newest first. titleLike, when non-empty, filters
	// by case-insensitive substring match on the title.
	List(ctx context.Context, titleLike string, limit, offset int) ([]*model.Article, error)

	// FindByID returns the article with the given id, or nil when absent.
	FindByID(ctx context.Context, id string) (*model.Article, error)

	// FindBySlug returns the article with the given slug, or nil when absent.
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)

	// Create inserts an article. A duplicate slug surfaces as
	// *model.APIError (DUPLICATE_SLUG).
	Create(ctx context.Context, article *model.Article) error

	// Update overwrites an existing article.
	Update(ctx context.Context, article *model.Article) error

	// DeleteByID deletes the article with the given id.
	DeleteByID(ctx context.Context, id string) error
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error

	// List returns contacts newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// FindByID returns the contact with the given id, or nil when absent.
	FindByID(ctx context.Context, id string) (*model.Contact, error)

	DeleteByID(ctx context.Context, id string) error
}

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	// Create inserts a subscriber. A duplicate email surfaces as
	// *model.APIError (ALREADY_SUBSCRIBED).
	Create(ctx context.Context, sub *model.NewsletterSubscriber) error

	// List returns subscribers newest first.
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)

	// FindByID returns the subscriber with the given id, or nil when absent.
	FindByID(ctx context.Context, id string) (*model.NewsletterSubscriber, error)

	DeleteByID(ctx context.Context, id string) error
}

// CollectionPointRepository persists recycling drop-off locations.
type CollectionPointRepository interface {
	Create(ctx context.Context, point *model.CollectionPoint) error
	List(ctx context.Context) ([]*model.CollectionPoint, error)

	// FindByID returns the collection point with the given id, or nil when absent.
	FindByID(ctx context.Context, id string) (*model.CollectionPoint, error)

	DeleteByID(ctx context.Context, id string) error
}
