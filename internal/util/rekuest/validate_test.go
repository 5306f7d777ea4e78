package rekuest

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/chartboard/internal/pkg/cberr"
	"exusiai.dev/chartboard/internal/pkg/i18n"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
)

type query struct {
	Seed string `query:"seed" validate:"omitempty,seed"`
	ID   string `query:"id" validate:"required,chartid"`
}

func newApp(locale string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*cberr.BoardError); ok {
				return c.Status(e.StatusCode).JSON(e.Extras)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(middlewares.LocalsTranslator, i18n.Translator(locale))
		var q query
		if err := ValidQuery(c, &q); err != nil {
			return err
		}
		return c.SendString(q.ID)
	})
	return app
}

func violations(t *testing.T, app *fiber.App, target string) []ErrorResponse {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var extras struct {
		Violations []ErrorResponse `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(body, &extras))
	return extras.Violations
}

func TestValidQueryAccepts(t *testing.T) {
	resp, err := newApp(i18n.LocaleEnglish).Test(httptest.NewRequest("GET", "/?id=hist-normal&seed=7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestValidQueryRejectsBadSeed(t *testing.T) {
	vs := violations(t, newApp(i18n.LocaleEnglish), "/?id=hist-normal&seed=-1")
	require.Len(t, vs, 1)
	assert.Equal(t, "seed", vs[0].Violation)
	assert.Equal(t, "Seed must be a non-negative integer", vs[0].Message)
}

func TestValidQueryTranslatesKorean(t *testing.T) {
	vs := violations(t, newApp(i18n.LocaleKorean), "/?id=nope")
	require.Len(t, vs, 1)
	assert.Equal(t, "chartid", vs[0].Violation)
	assert.Equal(t, "ID은(는) 존재하는 차트 ID여야 합니다", vs[0].Message)
}
