package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spec-kit/vet-clinic-service/internal/domain"
)

var (
	// ErrIdentityNotFound is returned by an IdentityStore on a clean miss.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrPrincipalNotFound means no source knows the token subject.
	ErrPrincipalNotFound = errors.New("principal not found")
	// ErrStoreLookupFault wraps a store failure that could not be recovered.
	ErrStoreLookupFault = errors.New("identity store lookup failed")
)

// Source names of the built-in identity tiers.
const (
	SourceUsers  = "users"
	SourceOwners = "owners"
)

// IdentityRecord is the minimal read model shared by every identity store.
// Role is empty for stores that do not persist one.
type IdentityRecord struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// IdentityStore performs a single-key exact-match read.
type IdentityStore interface {
	FindByID(ctx context.Context, id int64) (*IdentityRecord, error)
}

// IdentityStoreFunc adapts a function to IdentityStore.
type IdentityStoreFunc func(ctx context.Context, id int64) (*IdentityRecord, error)

// FindByID implements IdentityStore.
func (f IdentityStoreFunc) FindByID(ctx context.Context, id int64) (*IdentityRecord, error) {
	return f(ctx, id)
}

// ResolutionPolicy decides how a record and the token claims combine into a
// principal for one identity tier.
type ResolutionPolicy struct {
	DefaultRole        string
	PreferClaimRole    bool
	PreferClaimEmail   bool
	IncludeDisplayName bool
}

var (
	// PrimaryPolicy: stored role, then claim role, then "user".
	PrimaryPolicy = ResolutionPolicy{
		DefaultRole: domain.RoleUser,
	}
	// SecondaryPolicy: claim role, then "propietario". Claim email wins over
	// the stored one.
	SecondaryPolicy = ResolutionPolicy{
		DefaultRole:        domain.RoleOwner,
		PreferClaimRole:    true,
		PreferClaimEmail:   true,
		IncludeDisplayName: true,
	}
)

func (p ResolutionPolicy) principal(source string, claims *Claims, record *IdentityRecord) *Principal {
	role := pick(p.PreferClaimRole, claims.Role, record.Role)
	if role == "" {
		role = p.DefaultRole
	}
	principal := &Principal{
		ID:     claims.UserID,
		Email:  pick(p.PreferClaimEmail, claims.Email, record.Email),
		Role:   role,
		Source: source,
	}
	if p.IncludeDisplayName {
		principal.DisplayName = record.Name
	}
	return principal
}

func pick(claimFirst bool, fromClaim, fromRecord string) string {
	first, second := fromRecord, fromClaim
	if claimFirst {
		first, second = fromClaim, fromRecord
	}
	if first != "" {
		return first
	}
	return second
}

// IdentitySource is one tier consulted by the resolver.
type IdentitySource struct {
	Name   string
	Store  IdentityStore
	Policy ResolutionPolicy
}

// FaultHook observes store faults, including the ones the resolver recovers from.
type FaultHook func(ctx context.Context, source string, err error)

// ResolverOption customizes an IdentityResolver.
type ResolverOption func(*IdentityResolver)

// WithFaultHook registers a hook invoked for every store fault.
func WithFaultHook(hook FaultHook) ResolverOption {
	return func(r *IdentityResolver) {
		r.onFault = hook
	}
}

// IdentityResolver maps token claims to a principal by consulting identity
// sources in priority order.
type IdentityResolver struct {
	sources []IdentitySource
	onFault FaultHook
}

// NewIdentityResolver validates the source list and builds a resolver.
func NewIdentityResolver(sources []IdentitySource, opts ...ResolverOption) (*IdentityResolver, error) {
	if len(sources) == 0 {
		return nil, errors.New("identity resolver: at least one source is required")
	}
	for i, src := range sources {
		if src.Store == nil {
			return nil, fmt.Errorf("identity resolver: source %d (%s) has no store", i, src.Name)
		}
		if src.Policy.DefaultRole == "" {
			return nil, fmt.Errorf("identity resolver: source %s has no default role", src.Name)
		}
	}

	r := &IdentityResolver{sources: append([]IdentitySource(nil), sources...)}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the principal for claims. Sources are queried one at a
// time and the first hit wins. A fault is treated as a miss unless it comes
// from the last source queried, in which case ErrStoreLookupFault is returned.
func (r *IdentityResolver) Resolve(ctx context.Context, claims *Claims) (*Principal, error) {
	if claims == nil {
		return nil, ErrPrincipalNotFound
	}

	var fault error
	for _, src := range r.sources {
		record, err := src.Store.FindByID(ctx, claims.UserID)
		if err == nil && record != nil {
			return src.Policy.principal(src.Name, claims, record), nil
		}
		if err == nil || errors.Is(err, ErrIdentityNotFound) {
			fault = nil
			continue
		}

		if r.onFault != nil {
			r.onFault(ctx, src.Name, err)
		}
		fault = fmt.Errorf("%w (%s): %w", ErrStoreLookupFault, src.Name, err)
	}

	if fault != nil {
		return nil, fault
	}
	return nil, ErrPrincipalNotFound
}
