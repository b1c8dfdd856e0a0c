package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/ecosempre/ecosempre/internal/model"
)

// PostgresArticleRepo is the PostgreSQL-backed article repository.
type PostgresArticleRepo struct {
	db *sql.DB
}

// NewPostgresArticleRepo creates a PostgresArticleRepo.
func NewPostgresArticleRepo(db *sql.DB) *PostgresArticleRepo {
	return &PostgresArticleRepo{db: db}
}

// List returns articles newest first, optionally filtered by a
// case-insensitive title substring.
func (r *PostgresArticleRepo) List(ctx context.Context, titleLike string, limit, offset int) ([]*model.Article, error) {
	query := `SELECT id, title, slug, content, author, created_at, updated_at
	          FROM articles`
	args := []any{}

	if titleLike != "" {
		query += ` WHERE title ILIKE '%' || $1 || '%'
		           ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, titleLike, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		a := &model.Article{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate articles: %w", err)
	}

	return articles, nil
}

// FindByID returns the article with the given id, or nil when absent.
func (r *PostgresArticleRepo) FindByID(ctx context.Context, id string) (*model.Article, error) {
	a := &model.Article{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, slug, content, author, created_at, updated_at
		 FROM articles WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find article by ID: %w", err)
	}

	return a, nil
}

// FindBySlug returns the article with the given slug, or nil when absent.
func (r *PostgresArticleRepo) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	a := &model.Article{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, slug, content, author, created_at, updated_at
		 FROM articles WHERE slug = $1`,
		slug,
	).Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.CreatedAt, &a.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find article by slug: %w", err)
	}

	return a, nil
}

// Create inserts an article.
func (r *PostgresArticleRepo) Create(ctx context.Context, article *model.Article) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO articles (id, title, slug, content, author, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		article.ID, article.Title, article.Slug, article.Content, article.Author,
		article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.NewDuplicateSlugError(article.Slug)
		}
		return fmt.Errorf("failed to insert article: %w", err)
	}

	return nil
}

// Update overwrites an existing article.
func (r *PostgresArticleRepo) Update(ctx context.Context, article *model.Article) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE articles
		 SET title = $2, slug = $3, content = $4, author = $5, updated_at = $6
		 WHERE id = $1`,
		article.ID, article.Title, article.Slug, article.Content, article.Author,
		article.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.NewDuplicateSlugError(article.Slug)
		}
		return fmt.Errorf("failed to update article: %w", err)
	}

	return nil
}

// DeleteByID deletes the article with the given id.
func (r *PostgresArticleRepo) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

// compile-time interface check
var _ ArticleRepository = (*PostgresArticleRepo)(nil)
