package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/vet-clinic-service/internal/events"
	"github.com/spec-kit/vet-clinic-service/internal/observability"
)

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	verifier    *TokenVerifier
	resolver    *IdentityResolver
	revocations RevocationChecker
	dispatcher  events.Dispatcher
	logger      *zap.Logger
}

// Option customizes AuthMiddleware.
type Option func(*AuthMiddleware)

// WithRevocationList enables revocation checks for tokens carrying a jti.
func WithRevocationList(list RevocationChecker) Option {
	return func(m *AuthMiddleware) {
		m.revocations = list
	}
}

// WithDispatcher publishes rejected and skipped authentications.
func WithDispatcher(dispatcher events.Dispatcher) Option {
	return func(m *AuthMiddleware) {
		m.dispatcher = dispatcher
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *AuthMiddleware) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(verifier *TokenVerifier, resolver *IdentityResolver, opts ...Option) *AuthMiddleware {
	m := &AuthMiddleware{verifier: verifier, resolver: resolver, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.authenticate(c)
	if err != nil {
		rejected := rejection(err)
		if rejected.HTTPStatus >= fiber.StatusInternalServerError {
			m.logger.Error("authentication failed",
				zap.String("request_id", observability.RequestID(c)),
				zap.Error(err),
			)
		}
		m.publish(c, events.EventAuthRejected, rejected.Code, rejected.HTTPStatus, err)
		return rejected
	}

	attachPrincipal(c, principal)
	return c.Next()
}

// Required returns Handle as a fiber handler.
func (m *AuthMiddleware) Required() fiber.Handler {
	return m.Handle
}

// Optional attaches a principal when one can be resolved and otherwise lets
// the request continue anonymously. Failures are logged and published, never
// returned.
func (m *AuthMiddleware) Optional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := m.authenticate(c)
		if err != nil {
			if !errors.Is(err, ErrTokenMissing) {
				skipped := rejection(err)
				m.logger.Warn("optional authentication skipped",
					zap.String("request_id", observability.RequestID(c)),
					zap.String("code", skipped.Code),
					zap.Error(err),
				)
				m.publish(c, events.EventOptionalAuthSkipped, skipped.Code, skipped.HTTPStatus, err)
			}
			return c.Next()
		}

		attachPrincipal(c, principal)
		return c.Next()
	}
}

func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*Principal, error) {
	token := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
	if token == "" {
		return nil, ErrTokenMissing
	}

	claims, err := m.verifier.Verify(token)
	if err != nil {
		return nil, err
	}

	ctx := c.UserContext()
	if m.revocations != nil && claims.ID != "" {
		revoked, err := m.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("revocation check: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}

	return m.resolver.Resolve(ctx, claims)
}

func (m *AuthMiddleware) publish(c *fiber.Ctx, eventType events.EventType, code string, status int, err error) {
	if m.dispatcher == nil {
		return
	}
	payload := events.AuthOutcomePayload{Code: code, Path: c.Path(), Status: status}
	if err != nil {
		payload.Error = err.Error()
	}
	event := events.New(eventType, observability.RequestID(c), payload)
	if pubErr := m.dispatcher.Publish(c.UserContext(), event); pubErr != nil {
		m.logger.Warn("publish auth event", zap.String("type", string(eventType)), zap.Error(pubErr))
	}
}

// PublishLookupFaults returns a FaultHook that emits identity_lookup_fault
// events on dispatcher.
func PublishLookupFaults(dispatcher events.Dispatcher, logger *zap.Logger) FaultHook {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, source string, err error) {
		event := events.New(events.EventIdentityLookupFault, observability.RequestIDFromStdContext(ctx),
			events.IdentityLookupFaultPayload{Source: source, Error: err.Error()})
		if pubErr := dispatcher.Publish(ctx, event); pubErr != nil {
			logger.Warn("publish lookup fault", zap.String("source", source), zap.Error(pubErr))
		}
	}
}
