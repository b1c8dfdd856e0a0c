package newsletter

import (
	"context"
	"errors"
	"testing"

	"github.com/ecosempre/ecosempre/internal/model"
)

type mockNewsletterRepo struct {
	createFn   func(ctx context.Context, sub *model.NewsletterSubscriber) error
	listFn     func(ctx context.Context) ([]*model.NewsletterSubscriber, error)
	findByIDFn func(ctx context.Context, id string) (*model.NewsletterSubscriber, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (m *mockNewsletterRepo) Create(ctx context.Context, sub *model.NewsletterSubscriber) error {
	if m.createFn != nil {
		return m.createFn(ctx, sub)
	}
	return nil
}

func (m *mockNewsletterRepo) List(ctx context.Context) ([]*model.NewsletterSubscriber, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockNewsletterRepo) FindByID(ctx context.Context, id string) (*model.NewsletterSubscriber, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNewsletterRepo) DeleteByID(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestSubscribe_NormalizesEmail(t *testing.T) {
	var persisted *model.NewsletterSubscriber
	repo := &mockNewsletterRepo{
		createFn: func(ctx context.Context, sub *model.NewsletterSubscriber) error {
			persisted = sub
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Subscribe(context.Background(), "  Ana@Example.COM ")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}
	if persisted.Email != "ana@example.com" {
		t.Errorf("email = %q, want lowercased and trimmed", persisted.Email)
	}
}

func TestSubscribe_InvalidEmail(t *testing.T) {
	svc := NewService(&mockNewsletterRepo{})

	for _, email := range []string{"", "no-at-sign", "@x.com", "a@"} {
		_, err := svc.Subscribe(context.Background(), email)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeValidation {
			t.Errorf("Subscribe(%q) error = %v, want VALIDATION_ERROR", email, err)
		}
	}
}

func TestSubscribe_DuplicatePropagates(t *testing.T) {
	repo := &mockNewsletterRepo{
		createFn: func(ctx context.Context, sub *model.NewsletterSubscriber) error {
			return model.NewAlreadySubscribedError(sub.Email)
		},
	}
	svc := NewService(repo)

	_, err := svc.Subscribe(context.Background(), "ana@example.com")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeAlreadySubscribed {
		t.Fatalf("error = %v, want ALREADY_SUBSCRIBED", err)
	}
}

func TestUnsubscribe_Missing(t *testing.T) {
	svc := NewService(&mockNewsletterRepo{})

	err := svc.Unsubscribe(context.Background(), "missing")

	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeSubscriberNotFound {
		t.Fatalf("error = %v, want SUBSCRIBER_NOT_FOUND", err)
	}
}
