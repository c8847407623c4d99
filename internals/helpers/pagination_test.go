package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveOn(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolveOn(t, "/items", 20, 100)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
	assert.Equal(t, 20, p.Limit)
}

func TestResolvePagingExplicit(t *testing.T) {
	p := resolveOn(t, "/items?page=3&per_page=10", 20, 100)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingLimitAlias(t *testing.T) {
	p := resolveOn(t, "/items?limit=15", 20, 100)
	assert.Equal(t, 15, p.PerPage)
}

func TestResolvePagingClampsAndSanitizes(t *testing.T) {
	p := resolveOn(t, "/items?page=-5&per_page=9999", 20, 100)

	assert.Equal(t, 1, p.Page, "page negatif dinormalkan ke 1")
	assert.Equal(t, 100, p.PerPage, "per_page dibatasi maxPerPage")

	p = resolveOn(t, "/items?page=abc&per_page=xyz", 25, 200)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(95, 2, 20)

	assert.Equal(t, int64(95), pg.Total)
	assert.Equal(t, 5, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	last := BuildPaginationFromPage(95, 5, 20)
	assert.False(t, last.HasNext)

	empty := BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestBuildPaginationFromOffset(t *testing.T) {
	pg := BuildPaginationFromOffset(50, 40, 20)
	assert.Equal(t, 3, pg.Page)
	assert.Equal(t, 3, pg.TotalPages)
}
