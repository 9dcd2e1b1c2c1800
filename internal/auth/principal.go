package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "auth_principal"

type principalCtxKey struct{}

// Principal represents the authenticated caller. It is built once per request
// and never shared across requests.
type Principal struct {
	ID          int64
	Email       string
	Role        string
	DisplayName string
	// Source names the identity store that resolved the principal.
	Source string
}

// HasRole reports whether the principal carries one of roles.
func (p *Principal) HasRole(roles ...string) bool {
	if p == nil {
		return false
	}
	for _, role := range roles {
		if p.Role == role {
			return true
		}
	}
	return false
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok && principal != nil
}

// PrincipalFromStdContext retrieves the principal from a context derived from
// the request's user context.
func PrincipalFromStdContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(principalCtxKey{}).(*Principal)
	return principal, ok && principal != nil
}

// ContextWithPrincipal returns a copy of ctx carrying principal.
func ContextWithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey{}, principal)
}

func attachPrincipal(c *fiber.Ctx, principal *Principal) {
	c.Locals(principalKey, principal)
	c.SetUserContext(ContextWithPrincipal(c.UserContext(), principal))
}
