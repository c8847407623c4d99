package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsDuplicateKeyError mendeteksi pelanggaran unique constraint Postgres.
// optionalConstraint: kalau diisi, harus cocok dengan nama constraint-nya.
func IsDuplicateKeyError(err error, optionalConstraint string) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code != "23505" { // unique_violation
			return false
		}
		if optionalConstraint == "" {
			return true
		}
		return pqErr.Constraint == optionalConstraint
	}
	// fallback string match (driver pgx simple protocol)
	low := strings.ToLower(err.Error())
	if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique constraint") {
		return false
	}
	return optionalConstraint == "" || strings.Contains(low, strings.ToLower(optionalConstraint))
}

// IsForeignKeyError mendeteksi pelanggaran foreign key (referensi tidak ada).
func IsForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
