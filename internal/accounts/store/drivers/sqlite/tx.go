package sqlite

import (
	"github.com/jmoiron/sqlx"

	"github.com/solwayhq/accounts/internal/accounts/store"
)

// txStore scopes the repositories to a single transaction. Nested
// transactions are not supported.
type txStore struct {
	tx *sqlx.Tx
}

func (t *txStore) Users() store.Users { return &usersRepo{db: t.tx} }
