package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ecosempre/ecosempre/internal/model"
)

// PostgresNewsletterRepo is the PostgreSQL-backed newsletter repository.
type PostgresNewsletterRepo struct {
	db *sql.DB
}

// NewPostgresNewsletterRepo creates a PostgresNewsletterRepo.
func NewPostgresNewsletterRepo(db *sql.DB) *PostgresNewsletterRepo {
	return &PostgresNewsletterRepo{db: db}
}

// Create inserts a subscriber. The unique index on email turns a duplicate
// subscription into ALREADY_SUBSCRIBED.
func (r *PostgresNewsletterRepo) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscribers (id, email, created_at)
		 VALUES ($1, $2, $3)`,
		sub.ID, sub.Email, sub.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.NewAlreadySubscribedError(sub.Email)
		}
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return nil
}

// List returns subscribers newest first.
func (r *PostgresNewsletterRepo) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, created_at
		 FROM newsletter_subscribers ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []*model.NewsletterSubscriber
	for rows.Next() {
		s := &model.NewsletterSubscriber{}
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate subscribers: %w", err)
	}

	return subs, nil
}

// FindByID returns the subscriber with the given id, or nil when absent.
func (r *PostgresNewsletterRepo) FindByID(ctx context.Context, id string) (*model.NewsletterSubscriber, error) {
	s := &model.NewsletterSubscriber{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM newsletter_subscribers WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Email, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find subscriber by ID: %w", err)
	}

	return s, nil
}

// DeleteByID deletes the subscriber with the given id.
func (r *PostgresNewsletterRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM newsletter_subscribers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	return nil
}

// compile-time interface check
var _ NewsletterRepository = (*PostgresNewsletterRepo)(nil)
