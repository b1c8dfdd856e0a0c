package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/ecosempre/ecosempre/internal/model"
)

type mockContactRepo struct {
	createFn   func(ctx context.Context, contact *model.Contact) error
	listFn     func(ctx context.Context) ([]*model.Contact, error)
	findByIDFn func(ctx context.Context, id string) (*model.Contact, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockContactRepo) Create(ctx context.Context, contact *model.Contact) error {
	if m.createFn != nil {
		return m.createFn(ctx, contact)
	}
	return nil
}

func (m *mockContactRepo) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContactRepo) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestCreate_Valid(t *testing.T) {
	var persisted *model.Contact
	repo := &mockContactRepo{
		createFn: func(ctx context.Context, contact *model.Contact) error {
			persisted = contact
			return nil
		},
	}
	svc := NewService(repo)

	c, err := svc.Create(context.Background(), Input{
		Name:    "Matheus",
		Email:   "matheus@example.com",
		Subject: "Coleta",
		Message: "Como agendar uma coleta?",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if c.ID == "" {
		t.Error("expected a generated id")
	}
	if persisted == nil || persisted.Email != "matheus@example.com" {
		t.Errorf("persisted = %+v", persisted)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&mockContactRepo{})

	tests := []struct {
		name string
		in   Input
	}{
		{"missing name", Input{Email: "a@x.com", Message: "oi"}},
		{"missing message", Input{Name: "Ana", Email: "a@x.com"}},
		{"bad email", Input{Name: "Ana", Email: "not-an-email", Message: "oi"}},
		{"email without domain dot", Input{Name: "Ana", Email: "a@x", Message: "oi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.in)
			var apiErr *model.APIError
			if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidation {
				t.Errorf("error = %v, want VALIDATION_ERROR", err)
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(&mockContactRepo{})

	_, err := svc.Get(context.Background(), "missing")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeContactNotFound {
		t.Fatalf("error = %v, want CONTACT_NOT_FOUND", err)
	}
}

func TestDelete_ExistingAndMissing(t *testing.T) {
	deleted := false
	repo := &mockContactRepo{
		findByIDFn: func(ctx context.Context, id string) (*model.Contact, error) {
			if id == "c1" {
				return &model.Contact{ID: "c1"}, nil
			}
			return nil, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = true
			return nil
		},
	}
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "c1"); err != nil {
		t.Errorf("Delete(existing) error = %v", err)
	}
	if !deleted {
		t.Error("expected the repo delete to run")
	}

	err := svc.Delete(context.Background(), "c-89898")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeContactNotFound {
		t.Fatalf("Delete(missing) error = %v, want CONTACT_NOT_FOUND", err)
	}
}

func TestLooksLikeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@x.com", true},
		{"first.last@sub.example.org", true},
		{"", false},
		{"@x.com", false},
		{"a@", false},
		{"a@x", false},
		{"a@.com", false},
		{"a@x.", false},
	}

	for _, tt := range tests {
		if got := looksLikeEmail(tt.in); got != tt.want {
			t.Errorf("looksLikeEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
