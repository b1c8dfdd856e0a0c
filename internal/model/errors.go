package model

import "fmt"

// APIError is the unified error format returned by every endpoint.
// Category tells the frontend which area failed; Action is a hint for the
// reader of the admin panel, not a machine-readable field.
type APIError struct {
	Code     string // stable error code
	Message  string // human-readable message
	Category string // one of: auth, validation, content, system
	Action   string // suggested next step
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Error codes.
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeUserAlreadyExists   = "USER_ALREADY_EXISTS"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeIncorrectPassword   = "INCORRECT_PASSWORD"
	ErrCodeStoreError          = "STORE_ERROR"
	ErrCodeArticleNotFound     = "ARTICLE_NOT_FOUND"
	ErrCodeDuplicateSlug       = "DUPLICATE_SLUG"
	ErrCodeContactNotFound     = "CONTACT_NOT_FOUND"
	ErrCodeAlreadySubscribed   = "ALREADY_SUBSCRIBED"
	ErrCodeSubscriberNotFound  = "SUBSCRIBER_NOT_FOUND"
	ErrCodePointNotFound       = "COLLECTION_POINT_NOT_FOUND"
	ErrCodeInvalidRequest      = "INVALID_REQUEST"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// NewPasswordTooShortError reports a password below the 8 character minimum.
// The message text is part of the public API contract.
func NewPasswordTooShortError() *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  "the password is short, min length is 8",
		Category: "validation",
		Action:   "Choose a password with at least 8 characters.",
	}
}

// NewUserAlreadyExistsError reports a registration attempt for an email that
// already has an account. The message text is part of the public API contract.
func NewUserAlreadyExistsError() *APIError {
	return &APIError{
		Code:     ErrCodeUserAlreadyExists,
		Message:  "The user already exist",
		Category: "auth",
		Action:   "Log in instead, or use a different email address.",
	}
}

// NewUserNotFoundError reports a login attempt for an unknown email.
// The message text is part of the public API contract.
func NewUserNotFoundError() *APIError {
	return &APIError{
		Code:     ErrCodeUserNotFound,
		Message:  "The user doesn't exist",
		Category: "auth",
		Action:   "Check the email address or register first.",
	}
}

// NewIncorrectPasswordError reports a credential mismatch at login.
// The message text is part of the public API contract.
func NewIncorrectPasswordError() *APIError {
	return &APIError{
		Code:     ErrCodeIncorrectPassword,
		Message:  "Incorrect Password",
		Category: "auth",
		Action:   "Check the password and try again.",
	}
}

// NewStoreError wraps a persistence failure. The underlying message is
// surfaced verbatim; the auth endpoints return it with status 400, which
// conflates client and server faults but preserves the observed contract.
func NewStoreError(err error) *APIError {
	return &APIError{
		Code:     ErrCodeStoreError,
		Message:  err.Error(),
		Category: "system",
		Action:   "Try again later.",
	}
}

// NewValidationError reports a request that fails a field-level policy check.
func NewValidationError(message string) *APIError {
	return &APIError{
		Code:     ErrCodeValidation,
		Message:  message,
		Category: "validation",
		Action:   "Fix the highlighted field and resubmit.",
	}
}

// NewArticleNotFoundError reports a lookup for an article that does not exist.
func NewArticleNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeArticleNotFound,
		Message:  fmt.Sprintf("article not found: %s", id),
		Category: "content",
		Action:   "Check the article id.",
	}
}

// NewDuplicateSlugError reports a create or update that reuses an existing slug.
func NewDuplicateSlugError(slug string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateSlug,
		Message:  fmt.Sprintf("an article with slug %q already exists", slug),
		Category: "content",
		Action:   "Choose a different slug.",
	}
}

// NewContactNotFoundError reports a lookup for a contact that does not exist.
func NewContactNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeContactNotFound,
		Message:  fmt.Sprintf("contact not found: %s", id),
		Category: "content",
		Action:   "Check the contact id.",
	}
}

// NewAlreadySubscribedError reports a duplicate newsletter subscription.
func NewAlreadySubscribedError(email string) *APIError {
	return &APIError{
		Code:     ErrCodeAlreadySubscribed,
		Message:  fmt.Sprintf("%s is already subscribed", email),
		Category: "content",
		Action:   "No action needed, the address already receives the newsletter.",
	}
}

// NewSubscriberNotFoundError reports a lookup for a subscriber that does not exist.
func NewSubscriberNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodeSubscriberNotFound,
		Message:  fmt.Sprintf("subscriber not found: %s", id),
		Category: "content",
		Action:   "Check the subscriber id.",
	}
}

// NewCollectionPointNotFoundError reports a lookup for a collection point
// that does not exist.
func NewCollectionPointNotFoundError(id string) *APIError {
	return &APIError{
		Code:     ErrCodePointNotFound,
		Message:  fmt.Sprintf("collection point not found: %s", id),
		Category: "content",
		Action:   "Check the collection point id.",
	}
}
