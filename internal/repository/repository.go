package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound is returned when a single-key lookup matches no row.
var ErrNotFound = errors.New("record not found")

// DBTX is the subset of pgx used by the repositories. *pgxpool.Pool and
// pgxmock pools both satisfy it.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
