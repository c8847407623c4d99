package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Get("/x", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonOKEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "Detail kursus", fiber.Map{"id": 1})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Detail kursus", body["message"])
	assert.NotNil(t, body["data"])
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusForbidden, "Akses ditolak")
	})

	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "FORBIDDEN", body["error_code"])
}

func TestJsonListCountsItems(t *testing.T) {
	status, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonList(c, "Daftar", []int{1, 2, 3}, BuildPaginationFromPage(3, 1, 20))
	})

	assert.Equal(t, fiber.StatusOK, status)
	pagination, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), pagination["count"])
	assert.Equal(t, float64(1), pagination["total_pages"])
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(fiber.StatusBadRequest))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(502))
	assert.Equal(t, "ERROR", statusToErrorCode(418))
}
