package db

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate is returned when a write hits a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
