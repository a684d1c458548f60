package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardfolio/cardfolio-api/internal/store"
)

func TestMapUserUniqueViolation(t *testing.T) {
	t.Parallel()

	s := &PostgresUserStore{}

	tests := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{"email taken", usersEmailConstraint, store.ErrEmailExists},
		{"username taken", usersUsernameConstraint, store.ErrUsernameExists},
		{"other constraint", "users_some_other_key", store.ErrDuplicate},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := s.mapUserUniqueViolation(pgError(uniqueViolationCode, tc.constraint))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
