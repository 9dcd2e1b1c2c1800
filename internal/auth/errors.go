package auth

import (
	"errors"
	"net/http"

	apperrors "github.com/spec-kit/vet-clinic-service/pkg/util/errorutil"
)

var (
	// ErrTokenMissing means the request carried no bearer token.
	ErrTokenMissing = errors.New("token missing")
	// ErrTokenRevoked means the token ID is on the revocation list.
	ErrTokenRevoked = errors.New("token revoked")
)

// rejection converts an authentication failure into the error rendered to
// the client. Unknown errors become a 500; they are never treated as an
// unauthenticated request.
func rejection(err error) *apperrors.DomainError {
	switch {
	case errors.Is(err, ErrTokenMissing):
		return apperrors.NewDomainError(apperrors.CodeTokenMissing, "token required",
			"no authentication token was provided", http.StatusUnauthorized)
	case errors.Is(err, ErrTokenExpired):
		return apperrors.NewDomainError(apperrors.CodeTokenExpired, "token expired",
			"the token has expired, please sign in again", http.StatusUnauthorized)
	case errors.Is(err, ErrTokenInvalidSignature):
		return apperrors.NewDomainError(apperrors.CodeTokenInvalidSignature, "invalid token",
			"the provided token is not valid", http.StatusUnauthorized)
	case errors.Is(err, ErrTokenMalformed):
		return apperrors.NewDomainError(apperrors.CodeTokenMalformed, "invalid token",
			"the provided token is not valid", http.StatusUnauthorized)
	case errors.Is(err, ErrTokenRevoked):
		return apperrors.NewDomainError(apperrors.CodeTokenRevoked, "token revoked",
			"the token has been revoked, please sign in again", http.StatusUnauthorized)
	case errors.Is(err, ErrPrincipalNotFound):
		return apperrors.NewDomainError(apperrors.CodePrincipalNotFound, "principal not found",
			"the account associated with the token does not exist", http.StatusUnauthorized)
	default:
		return &apperrors.DomainError{
			Code:       apperrors.CodeInternal,
			Message:    "authentication error",
			Detail:     "internal server error",
			HTTPStatus: http.StatusInternalServerError,
			Err:        err,
		}
	}
}

func errAuthenticationRequired() error {
	return apperrors.NewUnauthorized(apperrors.CodeUnauthorized, "authentication required",
		"this resource requires an authenticated caller")
}

func errRoleNotAllowed() error {
	return apperrors.NewForbidden(apperrors.CodeRoleNotAllowed, "insufficient permissions",
		"your role is not allowed to access this resource")
}

func errOwnershipMismatch() error {
	return apperrors.NewForbidden(apperrors.CodeOwnershipMismatch, "insufficient permissions",
		"you can only access your own information")
}
