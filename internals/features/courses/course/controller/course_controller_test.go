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

// kursus dengan peserta yang masih berjalan (PENDING/ACTIVE) tidak boleh
// dihapus; tidak ada satu pun statement delete yang boleh tereksekusi.
func TestDeleteCourseBlockedWhileEnrollmentsActive(t *testing.T) {
	db, mock := newMockGorm(t)
	ownerID := uuid.New()
	courseID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE course_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_created_by"}).
			AddRow(courseID.String(), ownerID.String()))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", ownerID.String())
		return c.Next()
	})
	ctl := &CourseController{DB: db}
	app.Delete("/courses/:id", ctl.Delete)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/courses/"+courseID.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Masih ada peserta yang belum menyelesaikan kursus")
	assert.NoError(t, mock.ExpectationsWereMet())
}
