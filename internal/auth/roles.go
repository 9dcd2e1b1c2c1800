package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Authorize admits principals whose role is in allowed. An empty allow-list
// admits any authenticated principal. Must run after AuthMiddleware.
func Authorize(allowed ...string) fiber.Handler {
	allowed = append([]string(nil), allowed...)

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return errAuthenticationRequired()
		}
		if len(allowed) > 0 && !principal.HasRole(allowed...) {
			return errRoleNotAllowed()
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the caller is authenticated.
func RequireAnyRole() fiber.Handler {
	return Authorize()
}

// RequireOwnership admits the request only when the integer path parameter
// param equals the principal's ID. An unparsable parameter never matches.
func RequireOwnership(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return errAuthenticationRequired()
		}
		requested, err := strconv.ParseInt(c.Params(param), 10, 64)
		if err != nil || requested != principal.ID {
			return errOwnershipMismatch()
		}
		return c.Next()
	}
}
