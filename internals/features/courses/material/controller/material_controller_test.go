package controller

import (
	"errors"
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

func materialApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID.String())
		return c.Next()
	})
	ctl := &MaterialController{DB: db}
	app.Delete("/materials/:id", ctl.Delete)
	return app
}

// hapus materi: progress ikut terhapus dan roll-up persen jalan
// di transaksi yang sama — recompute gagal ⇒ seluruh delete batal.
func TestDeleteMaterialRollsBackWhenRecomputeFails(t *testing.T) {
	db, mock := newMockGorm(t)
	ownerID := uuid.New()
	courseID := uuid.New()
	materialID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "materials" WHERE material_id =`).
		WillReturnRows(sqlmock.NewRows([]string{
			"material_id", "material_module_id", "material_course_id",
			"material_title", "material_type", "material_url",
		}).AddRow(materialID.String(), uuid.NewString(), courseID.String(),
			"Video 1", "VIDEO", "/uploads/materials/x.mp4"))
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE course_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_created_by"}).
			AddRow(courseID.String(), ownerID.String()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "progress" SET`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE "materials" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SAVEPOINT sp`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnError(errors.New("koneksi putus"))
	mock.ExpectExec(`ROLLBACK TO SAVEPOINT sp`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	app := materialApp(db, ownerID)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/materials/"+materialID.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Gagal menghapus materi")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMaterialCommitsWithRecompute(t *testing.T) {
	db, mock := newMockGorm(t)
	ownerID := uuid.New()
	courseID := uuid.New()
	materialID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "materials" WHERE material_id =`).
		WillReturnRows(sqlmock.NewRows([]string{
			"material_id", "material_module_id", "material_course_id",
			"material_title", "material_type", "material_url",
		}).AddRow(materialID.String(), uuid.NewString(), courseID.String(),
			"Tautan Referensi", "LINK", "https://example.com/ref"))
	mock.ExpectQuery(`SELECT \* FROM "courses" WHERE course_id =`).
		WillReturnRows(sqlmock.NewRows([]string{"course_id", "course_created_by"}).
			AddRow(courseID.String(), ownerID.String()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "progress" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "materials" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`SAVEPOINT sp`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT \* FROM "enrollments"`).
		WillReturnRows(sqlmock.NewRows([]string{"enrollment_id"}))
	mock.ExpectCommit()

	app := materialApp(db, ownerID)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/materials/"+materialID.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Materi berhasil dihapus")
	assert.NoError(t, mock.ExpectationsWereMet())
}
