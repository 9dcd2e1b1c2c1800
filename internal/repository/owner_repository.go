package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/vet-clinic-service/internal/domain"
)

// OwnerRepository defines read access for legacy owner accounts.
type OwnerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Owner, error)
}

type ownerRepository struct {
	db DBTX
}

// NewOwnerRepository returns a Postgres-backed implementation.
func NewOwnerRepository(db DBTX) OwnerRepository {
	return &ownerRepository{db: db}
}

func (r *ownerRepository) GetByID(ctx context.Context, id int64) (*domain.Owner, error) {
	const query = `
        SELECT id, name, email, phone
        FROM owners WHERE id=$1`

	var owner domain.Owner
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.Phone,
	); err != nil {
		if err = mapNoRows(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get owner %d: %w", id, err)
	}
	return &owner, nil
}
