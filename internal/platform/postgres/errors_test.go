package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/cardfolio/cardfolio-api/internal/store"
)

func pgError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"nil passes through", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation", pgError(uniqueViolationCode, "users_email_key"), store.ErrDuplicate},
		{
			"foreign key violation",
			pgError(foreignKeyViolationCode, "cards_folder_id_fkey"),
			store.ErrInvalidEntity,
		},
		{"check violation", pgError(checkViolationCode, "chk"), store.ErrInvalidEntity},
		{"not null violation", pgError(notNullViolationCode, ""), store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MapError(tc.err)
			if tc.wantErr == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantErr)
		})
	}
}

func TestMapErrorPreservesUnknownErrors(t *testing.T) {
	t.Parallel()

	orig := errors.New("connection reset")
	assert.Equal(t, orig, MapError(orig))
}

func TestViolationPredicates(t *testing.T) {
	t.Parallel()

	unique := pgError(uniqueViolationCode, "users_email_key")
	fk := pgError(foreignKeyViolationCode, "cards_folder_id_fkey")

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
	assert.Equal(t, "users_email_key", constraintName(unique))
	assert.Equal(t, "", constraintName(errors.New("boom")))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}, "folder"))

	err := CheckRowsAffected(fakeResult{rows: 0}, "folder")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "folder")

	assert.Error(t, CheckRowsAffected(nil, "folder"))
}

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }
