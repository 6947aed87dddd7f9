package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, pg := PageSlice(items, Paging{Page: 2, PerPage: 2, Offset: 2, Limit: 2})
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, int64(5), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 2, pg.Count)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	got, pg = PageSlice(items, Paging{Page: 9, PerPage: 2, Offset: 16, Limit: 2})
	assert.Empty(t, got)
	assert.Equal(t, 0, pg.Count)
	assert.False(t, pg.HasNext)
}

func TestBuildPaginationFromPage_Empty(t *testing.T) {
	pg := BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestPageSlice_NegativeOffset(t *testing.T) {
	items := []int{1, 2, 3}
	got, pg := PageSlice(items, Paging{Page: 2, PerPage: 2, Offset: -16, Limit: 2})
	assert.Empty(t, got)
	assert.Equal(t, 0, pg.Count)
}

func TestResolvePaging_HugePage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := ResolvePaging(c, 50, 500)
		got, pg := PageSlice([]int{1, 2, 3}, p)
		return c.JSON(fiber.Map{"offset": p.Offset, "count": len(got), "has_next": pg.HasNext})
	})

	for _, target := range []string{
		"/?page=184467440737095517&per_page=100",
		"/?page=9223372036854775807&per_page=500",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err, target)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, target)

		var body struct {
			Offset  int  `json:"offset"`
			Count   int  `json:"count"`
			HasNext bool `json:"has_next"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), target)
		assert.GreaterOrEqual(t, body.Offset, 0, target)
		assert.Equal(t, 0, body.Count, target)
		assert.False(t, body.HasNext, target)
	}
}
