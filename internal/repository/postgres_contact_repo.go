package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecosempre/ecosempre/internal/model"
)

// PostgresContactRepo is the PostgreSQL-backed contact repository.
type PostgresContactRepo struct {
	db *sql.DB
}

// NewPostgresContactRepo creates a PostgresContactRepo.
func NewPostgresContactRepo(db *sql.DB) *PostgresContactRepo {
	return &PostgresContactRepo{db: db}
}

// Create inserts a contact-form submission.
func (r *PostgresContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (id, name, email, subject, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message,
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// List returns contacts newest first.
func (r *PostgresContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contacts ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		c := &model.Contact{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// FindByID returns the contact with the given id, or nil when absent.
func (r *PostgresContactRepo) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, subject, message, created_at
		 FROM contacts WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}

	return c, nil
}

// DeleteByID deletes the contact with the given id.
func (r *PostgresContactRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ContactRepository = (*PostgresContactRepo)(nil)
