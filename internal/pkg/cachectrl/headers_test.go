package cachectrl

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestETag(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		if ETag(c, "abc") {
			return c.SendStatus(fiber.StatusNotModified)
		}
		OptIn(c, time.Now())
		return c.SendString("body")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `"abc"`, resp.Header.Get(fiber.HeaderETag))
	assert.Equal(t, "public, max-age=3600", resp.Header.Get(fiber.HeaderCacheControl))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `"zzz", W/"abc"`)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotModified, resp.StatusCode)
}
