package controller

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
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

func progressApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctl := &ProgressController{DB: db}
	app.Get("/courses/:courseId/progress", ctl.CourseProgress)
	return app
}

func TestCourseProgressNotEnrolled(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	courseID := uuid.New()

	// tidak ada baris enrollment → harus 404, bukan 200 dengan data kosong
	mock.ExpectQuery(`SELECT enrollment_status, enrollment_progress_percent FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_status", "enrollment_progress_percent"}))

	app := progressApp(db, userID)
	resp, err := app.Test(httptest.NewRequest("GET", "/courses/"+courseID.String()+"/progress", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Anda belum terdaftar di kursus ini")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseProgressEnrolled(t *testing.T) {
	db, mock := newMockGorm(t)
	userID := uuid.New()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT enrollment_status, enrollment_progress_percent FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_status", "enrollment_progress_percent"}).
			AddRow("ACTIVE", 40))
	mock.ExpectQuery(`SELECT \* FROM "progress"`).
		WillReturnRows(sqlmock.NewRows([]string{"progress_id"}))

	app := progressApp(db, userID)
	resp, err := app.Test(httptest.NewRequest("GET", "/courses/"+courseID.String()+"/progress", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"enrollment_status":"ACTIVE"`)
	assert.Contains(t, string(body), `"enrollment_progress_percent":40`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
