// Package pgerr classifies Postgres constraint errors returned through bun.
package pgerr

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

func code(err error) string {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C')
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	return code(err) == codeUniqueViolation
}

// IsForeignKeyViolation reports whether err is a foreign key violation,
// either a missing parent on insert or a restricted delete.
func IsForeignKeyViolation(err error) bool {
	return code(err) == codeForeignKeyViolation
}
