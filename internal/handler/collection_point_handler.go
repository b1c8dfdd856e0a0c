package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecosempre/ecosempre/internal/collectionpoint"
	"github.com/ecosempre/ecosempre/internal/model"
)

// CollectionPointServiceInterface is what the collection-point handler needs
// from the service layer.
type CollectionPointServiceInterface interface {
	List(ctx context.Context) ([]*model.CollectionPoint, error)
	Create(ctx context.Context, in collectionpoint.Input) (*model.CollectionPoint, error)
	Delete(ctx context.Context, id string) error
}

// CollectionPointHandler serves the recycling drop-off location endpoints.
type CollectionPointHandler struct {
	service CollectionPointServiceInterface
}

// NewCollectionPointHandler creates a CollectionPointHandler.
func NewCollectionPointHandler(service CollectionPointServiceInterface) *CollectionPointHandler {
	return &CollectionPointHandler{service: service}
}

type collectionPointRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
}

type collectionPointResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
}

func toCollectionPointResponse(p *model.CollectionPoint) collectionPointResponse {
	return collectionPointResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		CreatedAt: p.CreatedAt,
	}
}

// ListCollectionPoints returns every drop-off location.
// GET /collection-points
func (h *CollectionPointHandler) ListCollectionPoints(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := make([]collectionPointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, toCollectionPointResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateCollectionPoint registers a drop-off location.
// POST /collection-points
func (h *CollectionPointHandler) CreateCollectionPoint(w http.ResponseWriter, r *http.Request) {
	var req collectionPointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	p, err := h.service.Create(r.Context(), collectionpoint.Input{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCollectionPointResponse(p))
}

// DeleteCollectionPoint removes a drop-off location.
// DELETE /collection-points/{id}
func (h *CollectionPointHandler) DeleteCollectionPoint(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
