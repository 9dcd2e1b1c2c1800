package auth

import (
	"context"
	"errors"

	"github.com/spec-kit/vet-clinic-service/internal/repository"
)

// NewUserStore exposes the users table as an identity store.
func NewUserStore(users repository.UserRepository) IdentityStore {
	return IdentityStoreFunc(func(ctx context.Context, id int64) (*IdentityRecord, error) {
		user, err := users.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err)
		}
		record := &IdentityRecord{ID: user.ID, Name: user.Name, Email: user.Email}
		if user.Role != nil {
			record.Role = *user.Role
		}
		return record, nil
	})
}

// NewOwnerStore exposes the owners table as an identity store.
func NewOwnerStore(owners repository.OwnerRepository) IdentityStore {
	return IdentityStoreFunc(func(ctx context.Context, id int64) (*IdentityRecord, error) {
		owner, err := owners.GetByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err)
		}
		return &IdentityRecord{ID: owner.ID, Name: owner.Name, Email: owner.Email}, nil
	})
}

// DefaultSources returns the users tier followed by the owners tier.
func DefaultSources(users repository.UserRepository, owners repository.OwnerRepository) []IdentitySource {
	return []IdentitySource{
		{Name: SourceUsers, Store: NewUserStore(users), Policy: PrimaryPolicy},
		{Name: SourceOwners, Store: NewOwnerStore(owners), Policy: SecondaryPolicy},
	}
}

func notFoundOr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrIdentityNotFound
	}
	return err
}
