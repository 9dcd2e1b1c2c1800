package errorutil

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes surfaced to API clients.
const (
	CodeTokenMissing          = "TOKEN_MISSING"
	CodeTokenMalformed        = "TOKEN_MALFORMED"
	CodeTokenInvalidSignature = "TOKEN_INVALID_SIGNATURE"
	CodeTokenExpired          = "TOKEN_EXPIRED"
	CodeTokenRevoked          = "TOKEN_REVOKED"
	CodePrincipalNotFound     = "PRINCIPAL_NOT_FOUND"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeRoleNotAllowed        = "ROLE_NOT_ALLOWED"
	CodeOwnershipMismatch     = "OWNERSHIP_MISMATCH"
	CodeNotFound              = "NOT_FOUND"
	CodeBadRequest            = "BAD_REQUEST"
	CodeInternal              = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
//
// Message is the short summary returned to clients, Detail the human readable
// explanation. Err is never rendered.
type DomainError struct {
	Code       string
	Message    string
	Detail     string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message, detail string, status int) *DomainError {
	return &DomainError{Code: code, Message: message, Detail: detail, HTTPStatus: status}
}

func NewUnauthorized(code, message, detail string) error {
	return NewDomainError(code, message, detail, http.StatusUnauthorized)
}

func NewForbidden(code, message, detail string) error {
	return NewDomainError(code, message, detail, http.StatusForbidden)
}

func NewBadRequest(message, detail string) error {
	return NewDomainError(CodeBadRequest, message, detail, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", resource), "the requested resource does not exist", http.StatusNotFound)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		Detail:     "an unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return NewInternalError(err).(*DomainError)
}

// FromStatus builds a DomainError for a bare HTTP status raised by the router.
func FromStatus(status int, detail string) *DomainError {
	return NewDomainError(codeForStatus(status), http.StatusText(status), detail, status)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusBadRequest:
		return CodeBadRequest
	}
	if status >= http.StatusInternalServerError {
		return CodeInternal
	}
	return fmt.Sprintf("HTTP_%d", status)
}
