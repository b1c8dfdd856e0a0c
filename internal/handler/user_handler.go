package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// UserServiceInterface is what the user handler needs from the service layer.
type UserServiceInterface interface {
	// Register creates an account and returns the store-assigned id.
	Register(ctx context.Context, nickname, email, password string) (int64, error)
	// Login verifies credentials; nil means a match. No session is created.
	Login(ctx context.Context, email, password string) error
}

// UserHandler serves registration and login.
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// createUserRequest is the registration request body.
type createUserRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// createUserResponse carries the new record's id.
type createUserResponse struct {
	ID int64 `json:"id"`
}

// loginRequest is the login request body.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the login success body.
type loginResponse struct {
	Status string `json:"status"`
}

// CreateUser registers a new account.
// POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	id, err := h.service.Register(r.Context(), req.Nickname, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{ID: id})
}

// Login verifies credentials.
// POST /login
//
// Per attempt: check existence, then verify the hash. An unknown email is
// 404, a mismatch 400, a match 200 with "ok" and nothing else: no session,
// token or cookie is issued.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidRequest(w)
		return
	}

	if err := h.service.Login(r.Context(), req.Email, req.Password); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Status: "ok"})
}
