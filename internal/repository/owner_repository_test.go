package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ownerByIDQuery = `SELECT id, name, email, phone\s+FROM owners WHERE id=\$1`

func TestOwnerRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(ownerByIDQuery).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone"}).
			AddRow(int64(5), "Ana", "a@x.com", nil))

	owner, err := NewOwnerRepository(mock).GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), owner.ID)
	assert.Equal(t, "Ana", owner.Name)
	assert.Equal(t, "a@x.com", owner.Email)
	assert.Nil(t, owner.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOwnerRepository_GetByID_Errors(t *testing.T) {
	dbErr := errors.New("relation \"owners\" does not exist")

	tests := []struct {
		name    string
		err     error
		want    error
		notWant error
	}{
		{"no rows", pgx.ErrNoRows, ErrNotFound, nil},
		{"driver failure", dbErr, dbErr, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			mock.ExpectQuery(ownerByIDQuery).WithArgs(int64(6)).WillReturnError(tt.err)

			owner, err := NewOwnerRepository(mock).GetByID(context.Background(), 6)
			assert.Nil(t, owner)
			assert.ErrorIs(t, err, tt.want)
			if tt.notWant != nil {
				assert.NotErrorIs(t, err, tt.notWant)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
