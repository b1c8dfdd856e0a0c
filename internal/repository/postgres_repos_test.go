package repository

import (
	"testing"
)

// Each Postgres repo must satisfy its interface.
func TestPostgresRepos_ImplementInterfaces(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
	var _ ArticleRepository = (*PostgresArticleRepo)(nil)
	var _ ContactRepository = (*PostgresContactRepo)(nil)
	var _ NewsletterRepository = (*PostgresNewsletterRepo)(nil)
	var _ CollectionPointRepository = (*PostgresCollectionPointRepo)(nil)
}

func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	if NewPostgresUserRepo(nil) == nil {
		t.Fatal("expected non-nil repo")
	}
}

func TestNewPostgresArticleRepo_Initializes(t *testing.T) {
	if NewPostgresArticleRepo(nil) == nil {
		t.Fatal("expected non-nil repo")
	}
}

func TestNewPostgresContactRepo_Initializes(t *testing.T) {
	if NewPostgresContactRepo(nil) == nil {
		t.Fatal("expected non-nil repo")
	}
}

func TestNewPostgresNewsletterRepo_Initializes(t *testing.T) {
	if NewPostgresNewsletterRepo(nil) == nil {
		t.Fatal("expected non-nil repo")
	}
}

func TestNewPostgresCollectionPointRepo_Initializes(t *testing.T) {
	if NewPostgresCollectionPointRepo(nil) == nil {
		t.Fatal("expected non-nil repo")
	}
}
