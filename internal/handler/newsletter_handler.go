package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecosempre/ecosempre/internal/model"
)

// NewsletterServiceInterface is what the newsletter handler needs from the service layer.
type NewsletterServiceInterface interface {
	Subscribe(ctx context.Context, email string) (*model.NewsletterSubscriber, error)
	List(ctx context.Context) ([]*model.NewsletterSubscriber, error)
	Unsubscribe(ctx context.Context, id string) error
}

// NewsletterHandler serves the mailing-list subscription endpoints.
type NewsletterHandler struct {
	service NewsletterServiceInterface
}

// NewNewsletterHandler creates a NewsletterHandler.
func NewNewsletterHandler(service NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

type subscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toSubscriberResponse(s *model.NewsletterSubscriber) subscriberResponse {
	return subscriberResponse{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt}
}

// Subscribe adds an email to the mailing list.
// POST /newsletter
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	s, err := h.service.Subscribe(r.Context(), req.Email)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubscriberResponse(s))
}

// ListSubscribers returns every subscriber.
// GET /newsletter
func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]subscriberResponse, 0, len(subscribers))
	for _, s := range subscribers {
		resp = append(resp, toSubscriberResponse(s))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Unsubscribe removes a subscriber.
// DELETE /newsletter/{id}
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Unsubscribe(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
