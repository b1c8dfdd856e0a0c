package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ecosempre/ecosempre/internal/article"
	"github.com/ecosempre/ecosempre/internal/model"
)

// ArticleServiceInterface is what the article handler needs from the service layer.
type ArticleServiceInterface interface {
	List(ctx context.Context, titleLike string, page, perPage int) ([]*model.Article, error)
	Get(ctx context.Context, id string) (*model.Article, error)
	Create(ctx context.Context, in article.Input) (*model.Article, error)
	Update(ctx context.Context, id string, in article.Input) (*model.Article, error)
	Delete(ctx context.Context, id string) error
}

// ArticleHandler serves the blog listing and the admin CMS operations.
type ArticleHandler struct {
	service ArticleServiceInterface
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(service ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// articleRequest is the create/update request body.
type articleRequest struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// articleResponse is the article API representation.
type articleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toArticleResponse(a *model.Article) articleResponse {
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Content:   a.Content,
		Author:    a.Author,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ListArticles returns a page of articles.
// GET /articles?title_like=...&page=...&per_page=...
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	articles, err := h.service.List(r.Context(), q.Get("title_like"), page, perPage)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// An empty page is [], not null.
	resp := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		resp = append(resp, toArticleResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetArticle returns one article.
// GET /articles/{id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	a, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// CreateArticle creates an article.
// POST /articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	a, err := h.service.Create(r.Context(), article.Input{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(a))
}

// UpdateArticle overwrites an article.
// PUT /articles/{id}
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	a, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), article.Input{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a))
}

// DeleteArticle removes an article.
// DELETE /articles/{id}
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
