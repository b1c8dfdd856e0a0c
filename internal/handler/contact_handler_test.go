package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecosempre/ecosempre/internal/contact"
	"github.com/ecosempre/ecosempre/internal/model"
)

type mockContactService struct {
	createFn func(ctx context.Context, in contact.Input) (*model.Contact, error)
	listFn   func(ctx context.Context) ([]*model.Contact, error)
	getFn    func(ctx context.Context, id string) (*model.Contact, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockContactService) Create(ctx context.Context, in contact.Input) (*model.Contact, error) {
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return nil, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockContactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, model.NewContactNotFoundError(id)
}

func (m *mockContactService) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func testContact(id string) *model.Contact {
	return &model.Contact{
		ID:        id,
		Name:      "Bruno",
		Email:     "bruno@example.com",
		Subject:   "Pickup",
		Message:   "Do you collect electronics?",
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newContactRouter(svc ContactServiceInterface) http.Handler {
	h := NewContactHandler(svc)
	r := chi.NewRouter()
	r.Post("/contacts", h.CreateContact)
	r.Get("/contacts", h.ListContacts)
	r.Get("/contacts/{id}", h.GetContact)
	r.Delete("/contacts/{id}", h.DeleteContact)
	return r
}

func TestContactHandler_Create_Success(t *testing.T) {
	svc := &mockContactService{
		createFn: func(ctx context.Context, in contact.Input) (*model.Contact, error) {
			if in.Email != "bruno@example.com" {
				t.Errorf("email = %q", in.Email)
			}
			return testContact("c-1"), nil
		},
	}

	router := newContactRouter(svc)

	body := `{"name":"Bruno","email":"bruno@example.com","subject":"Pickup","message":"Do you collect electronics?"}`
	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusCreated)
	}
}

func TestContactHandler_Create_ValidationError(t *testing.T) {
	svc := &mockContactService{
		createFn: func(ctx context.Context, in contact.Input) (*model.Contact, error) {
			return nil, model.NewValidationError("name is required")
		},
	}

	router := newContactRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/contacts", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

func TestContactHandler_List_Success(t *testing.T) {
	svc := &mockContactService{
		listFn: func(ctx context.Context) ([]*model.Contact, error) {
			return []*model.Contact{testContact("c-1"), testContact("c-2")}, nil
		},
	}

	router := newContactRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/contacts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var got []contactResponse
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestContactHandler_Get_NotFound(t *testing.T) {
	router := newContactRouter(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/contacts/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}

// Delete success answers 200 with a body, not 204.
func TestContactHandler_Delete_Success(t *testing.T) {
	svc := &mockContactService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "c-1" {
				t.Errorf("id = %q, want %q", id, "c-1")
			}
			return nil
		},
	}

	router := newContactRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/contacts/c-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
}

func TestContactHandler_Delete_NotFound(t *testing.T) {
	svc := &mockContactService{
		deleteFn: func(ctx context.Context, id string) error {
			return model.NewContactNotFoundError(id)
		},
	}

	router := newContactRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/contacts/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}
