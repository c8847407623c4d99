package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "uq_enrollments_user_course"}

	assert.False(t, IsDuplicateKeyError(nil, ""))
	assert.True(t, IsDuplicateKeyError(dup, ""))
	assert.True(t, IsDuplicateKeyError(dup, "uq_enrollments_user_course"),
		"daftar dua kali di kursus yang sama harus terdeteksi sebagai duplikat")
	assert.False(t, IsDuplicateKeyError(dup, "uq_reviews_user_course"),
		"constraint lain tidak boleh ikut ter-mapping")

	// error yang sudah dibungkus tetap terdeteksi
	wrapped := fmt.Errorf("gagal simpan: %w", dup)
	assert.True(t, IsDuplicateKeyError(wrapped, "uq_enrollments_user_course"))

	// bukan unique violation
	fk := &pq.Error{Code: "23503", Constraint: "fk_enrollments_course"}
	assert.False(t, IsDuplicateKeyError(fk, ""))
}

func TestIsDuplicateKeyErrorStringFallback(t *testing.T) {
	// pgx simple protocol tidak selalu mengembalikan *pq.Error
	err := errors.New(`ERROR: duplicate key value violates unique constraint "uq_enrollments_user_course" (SQLSTATE 23505)`)

	assert.True(t, IsDuplicateKeyError(err, ""))
	assert.True(t, IsDuplicateKeyError(err, "uq_enrollments_user_course"))
	assert.False(t, IsDuplicateKeyError(err, "uq_progress_user_material"))
	assert.False(t, IsDuplicateKeyError(errors.New("connection refused"), ""))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.False(t, IsForeignKeyError(nil))
	assert.True(t, IsForeignKeyError(&pq.Error{Code: "23503"}))
	assert.False(t, IsForeignKeyError(&pq.Error{Code: "23505"}))
	assert.True(t, IsForeignKeyError(errors.New("violates foreign key constraint")))
}
