package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/vet-clinic-service/internal/domain"
	"github.com/spec-kit/vet-clinic-service/internal/repository"
)

type stubUsers struct {
	user *domain.User
	err  error
}

func (s stubUsers) GetByID(context.Context, int64) (*domain.User, error) {
	return s.user, s.err
}

type stubOwners struct {
	owner *domain.Owner
	err   error
}

func (s stubOwners) GetByID(context.Context, int64) (*domain.Owner, error) {
	return s.owner, s.err
}

func TestUserStore(t *testing.T) {
	role := domain.RoleAdmin

	rec, err := NewUserStore(stubUsers{user: &domain.User{ID: 1, Name: "Vet", Email: "vet@clinic.test", Role: &role}}).
		FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &IdentityRecord{ID: 1, Name: "Vet", Email: "vet@clinic.test", Role: domain.RoleAdmin}, rec)

	rec, err = NewUserStore(stubUsers{user: &domain.User{ID: 2, Name: "NoRole"}}).FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, rec.Role)

	_, err = NewUserStore(stubUsers{err: repository.ErrNotFound}).FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrIdentityNotFound)

	fault := errors.New("pool exhausted")
	_, err = NewUserStore(stubUsers{err: fault}).FindByID(context.Background(), 3)
	assert.ErrorIs(t, err, fault)
	assert.NotErrorIs(t, err, ErrIdentityNotFound)
}

func TestOwnerStore(t *testing.T) {
	rec, err := NewOwnerStore(stubOwners{owner: &domain.Owner{ID: 5, Name: "Ana", Email: "a@x.com"}}).
		FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, &IdentityRecord{ID: 5, Name: "Ana", Email: "a@x.com"}, rec)

	_, err = NewOwnerStore(stubOwners{err: repository.ErrNotFound}).FindByID(context.Background(), 6)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestDefaultSources(t *testing.T) {
	sources := DefaultSources(stubUsers{}, stubOwners{})
	require.Len(t, sources, 2)
	assert.Equal(t, SourceUsers, sources[0].Name)
	assert.Equal(t, PrimaryPolicy, sources[0].Policy)
	assert.Equal(t, SourceOwners, sources[1].Name)
	assert.Equal(t, SecondaryPolicy, sources[1].Policy)
}
