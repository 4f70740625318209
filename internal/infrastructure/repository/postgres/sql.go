package postgres

import (
	"database/sql"
	stderrors "errors"
)

func isNotFound(err error) bool {
	return stderrors.Is(err, sql.ErrNoRows)
}
