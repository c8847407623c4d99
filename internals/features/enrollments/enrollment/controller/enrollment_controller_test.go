package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func doEnroll(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctl := &EnrollmentController{DB: db}
	app.Post("/enrollments", ctl.Enroll)

	req := httptest.NewRequest("POST", "/enrollments",
		strings.NewReader(`{"course_id":"`+courseID.String()+`"}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestEnrollTwiceRejected(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE course_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_status", "course_price"}).
			AddRow(courseID.String(), "PUBLISHED", int64(0)))
	// sudah ada enrollment aktif untuk pasangan user×course
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"enrollment_id", "enrollment_user_id", "enrollment_course_id", "enrollment_status",
		}).AddRow(uuid.NewString(), userID.String(), courseID.String(), "ACTIVE"))

	status, body := doEnroll(t, db, userID, courseID)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Anda sudah terdaftar di kursus ini")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// race dua request enroll bersamaan: insert kedua kena unique index
// uq_enrollments_user_course dan harus dipetakan ke 400, bukan 500.
func TestEnrollDuplicateKeyMappedTo400(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE course_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_status", "course_price"}).
			AddRow(courseID.String(), "PUBLISHED", int64(0)))
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "enrollments"`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_enrollments_user_course"})
	mock.ExpectRollback()

	status, body := doEnroll(t, db, userID, courseID)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Anda sudah terdaftar di kursus ini")
	assert.NoError(t, mock.ExpectationsWereMet())
}
