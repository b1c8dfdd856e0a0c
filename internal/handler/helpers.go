// Package handler provides the HTTP handlers.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecosempre/ecosempre/internal/model"
)

// apiErrorResponse is the unified error payload.
type apiErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Action   string `json:"action"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}

// writeAPIErrorResponse writes an error in the unified format.
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	writeJSON(w, statusCode, apiErrorResponse{
		Code:     apiErr.Code,
		Message:  apiErr.Message,
		Category: apiErr.Category,
		Action:   apiErr.Action,
	})
}

// writeInvalidRequest reports an unparseable request body.
func writeInvalidRequest(w http.ResponseWriter) {
	writeAPIErrorResponse(w, http.StatusBadRequest, &model.APIError{
		Code:     model.ErrCodeInvalidRequest,
		Message:  "could not parse the request body",
		Category: "validation",
		Action:   "Send a valid JSON body.",
	})
}

// handleServiceError translates a service-layer error into an HTTP response.
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	slog.Error("internal server error", slog.String("error", err.Error()))
	writeAPIErrorResponse(w, http.StatusInternalServerError, &model.APIError{
		Code:     model.ErrCodeInternal,
		Message:  "an internal error occurred",
		Category: "system",
		Action:   "Try again later.",
	})
}

// mapAPIErrorToHTTPStatus maps error codes to status codes.
//
// The auth rows mirror the historical surface: a duplicate registration and a
// wrong password both answer 400 rather than 409/401, and store failures on
// the auth endpoints answer 400 with the raw message.
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeValidation, model.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case model.ErrCodeUserAlreadyExists, model.ErrCodeIncorrectPassword, model.ErrCodeStoreError:
		return http.StatusBadRequest
	case model.ErrCodeUserNotFound,
		model.ErrCodeArticleNotFound,
		model.ErrCodeContactNotFound,
		model.ErrCodeSubscriberNotFound,
		model.ErrCodePointNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicateSlug, model.ErrCodeAlreadySubscribed:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
