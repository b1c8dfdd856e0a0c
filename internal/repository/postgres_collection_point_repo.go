package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecosempre/ecosempre/internal/model"
)

// PostgresCollectionPointRepo is the PostgreSQL-backed collection point repository.
type PostgresCollectionPointRepo struct {
	db *sql.DB
}

// NewPostgresCollectionPointRepo creates a PostgresCollectionPointRepo.
func NewPostgresCollectionPointRepo(db *sql.DB) *PostgresCollectionPointRepo {
	return &PostgresCollectionPointRepo{db: db}
}

// Create inserts a collection point.
func (r *PostgresCollectionPointRepo) Create(ctx context.Context, point *model.CollectionPoint) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO collection_points (id, name, address, city, state, zip_code, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		point.ID, point.Name, point.Address, point.City, point.State, point.ZipCode,
		point.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert collection point: %w", err)
	}
	return nil
}

// List returns all collection points ordered by name.
func (r *PostgresCollectionPointRepo) List(ctx context.Context) ([]*model.CollectionPoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, address, city, state, zip_code, created_at
		 FROM collection_points ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection points: %w", err)
	}
	defer rows.Close()

	var points []*model.CollectionPoint
	for rows.Next() {
		p := &model.CollectionPoint{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan collection point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collection points: %w", err)
	}

	return points, nil
}

// FindByID returns the collection point with the given id, or nil when absent.
func (r *PostgresCollectionPointRepo) FindByID(ctx context.Context, id string) (*model.CollectionPoint, error) {
	p := &model.CollectionPoint{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, city, state, zip_code, created_at
		 FROM collection_points WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.State, &p.ZipCode, &p.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find collection point by ID: %w", err)
	}

	return p, nil
}

// DeleteByID deletes the collection point with the given id.
func (r *PostgresCollectionPointRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM collection_points WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete collection point: %w", err)
	}
	return nil
}

// compile-time interface check
var _ CollectionPointRepository = (*PostgresCollectionPointRepo)(nil)
