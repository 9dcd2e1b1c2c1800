package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vet-clinic-service/internal/api/dto"
	"github.com/spec-kit/vet-clinic-service/internal/auth"
	apperrors "github.com/spec-kit/vet-clinic-service/pkg/util/errorutil"
)

// IdentityHandler exposes the resolved caller identity.
type IdentityHandler struct {
	resolver *auth.IdentityResolver
}

// NewIdentityHandler constructs handler.
func NewIdentityHandler(resolver *auth.IdentityResolver) *IdentityHandler {
	return &IdentityHandler{resolver: resolver}
}

// Me handles GET /api/me.
func (h *IdentityHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.ErrUnauthorized
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPrincipalResponse(principal)})
}

// Profile handles GET /api/users/:id/profile. Ownership is enforced upstream.
func (h *IdentityHandler) Profile(c *fiber.Ctx) error {
	return h.Me(c)
}

// Lookup handles GET /api/admin/principals/:id and reports how a subject ID
// resolves across the identity stores.
func (h *IdentityHandler) Lookup(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperrors.NewBadRequest("invalid id", "the id must be a positive integer")
	}

	principal, err := h.resolver.Resolve(c.UserContext(), &auth.Claims{UserID: id})
	if err != nil {
		if errors.Is(err, auth.ErrPrincipalNotFound) {
			return apperrors.NewNotFound("principal")
		}
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPrincipalResponse(principal)})
}

// Greeting handles GET /api/public/greeting for anonymous and known callers.
func (h *IdentityHandler) Greeting(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return c.JSON(fiber.Map{"success": true, "authenticated": false, "message": "hello, guest"})
	}
	name := principal.DisplayName
	if name == "" {
		name = principal.Email
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"authenticated": true,
		"message":       "hello, " + name,
		"role":          principal.Role,
	})
}
