package test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"exusiai.dev/chartboard/internal/app"
	"exusiai.dev/chartboard/internal/app/appcontext"
)

// testing hooks: https://pkg.go.dev/testing#hdr-Subtests_and_Sub_benchmarks

const testAdminKey = "test-admin-key"

var (
	gMu       sync.Mutex
	gFiberApp *fiber.App
)

func startup(t *testing.T) {
	t.Helper()

	gMu.Lock()
	defer gMu.Unlock()

	if gFiberApp != nil {
		return
	}

	os.Setenv("CHARTBOARD_ADMIN_KEY", testAdminKey)

	var fiberApp *fiber.App
	fxApp := fxtest.New(t,
		append(app.Options(appcontext.Declare(appcontext.EnvServer)), fx.Populate(&fiberApp))...,
	)
	fxApp.RequireStart()

	gFiberApp = fiberApp
}

// request never times out: a cold chart render may exceed fiber's default
// test timeout.
func request(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := gFiberApp.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}

func get(t *testing.T, target string) *http.Response {
	t.Helper()
	return request(t, httptest.NewRequest(http.MethodGet, target, nil))
}

func jsonBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAPIMeta(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("health", func(t *testing.T) {
		resp := get(t, "/api/_/health")
		assert.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))
	})

	t.Run("version", func(t *testing.T) {
		resp := get(t, "/api/_/bininfo")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, jsonBody(t, resp)["version"])
	})

	t.Run("unknown route", func(t *testing.T) {
		resp := get(t, "/nowhere")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", jsonBody(t, resp)["code"])
	})
}

func TestDashboardPage(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("default locale", func(t *testing.T) {
		resp := get(t, "/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMETextHTML))

		body := bodyString(resp)
		assert.Contains(t, body, "그래프 시각화")
		assert.Contains(t, body, "/charts/line-sin.png?lang=ko&amp;seed=42")
		assert.Equal(t, 6, strings.Count(body, "<section"))
	})

	t.Run("lang query", func(t *testing.T) {
		resp := get(t, "/?lang=en&seed=7")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := bodyString(resp)
		assert.Contains(t, body, `lang="en"`)
		assert.Contains(t, body, "seed=7")
	})

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderAcceptLanguage, "en-US,en;q=0.9")
		resp := request(t, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, bodyString(resp), `lang="en"`)
	})

	t.Run("invalid seed", func(t *testing.T) {
		resp := get(t, "/?seed=-1")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestChartImages(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("png with etag", func(t *testing.T) {
		resp := get(t, "/charts/bar-categories.png?lang=en")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))

		png, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "\x89PNG", string(png[:4]))

		etag := resp.Header.Get(fiber.HeaderETag)
		require.NotEmpty(t, etag)

		req := httptest.NewRequest(http.MethodGet, "/charts/bar-categories.png?lang=en", nil)
		req.Header.Set(fiber.HeaderIfNoneMatch, etag)
		resp = request(t, req)
		assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	})

	t.Run("pie", func(t *testing.T) {
		resp := get(t, "/charts/pie-transactions.png")
		assert.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))
	})

	t.Run("unknown chart", func(t *testing.T) {
		resp := get(t, "/charts/nope.png")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "CHART_NOT_FOUND", jsonBody(t, resp)["code"])
	})

	t.Run("invalid seed", func(t *testing.T) {
		resp := get(t, "/charts/line-sin.png?seed=abc&lang=en")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := jsonBody(t, resp)
		assert.Equal(t, "INVALID_REQUEST", body["code"])
		violations, ok := body["violations"].([]any)
		require.True(t, ok)
		assert.Len(t, violations, 1)
	})
}

func TestAPIV1(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("page", func(t *testing.T) {
		resp := get(t, "/api/v1/page?lang=en")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := jsonBody(t, resp)
		assert.Equal(t, "en", body["locale"])
		assert.Equal(t, "wide", body["layout"])
		assert.Len(t, body["sections"], 6)
	})

	t.Run("charts", func(t *testing.T) {
		resp := get(t, "/api/v1/charts")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, jsonBody(t, resp)["sections"], 6)
	})

	t.Run("figure", func(t *testing.T) {
		resp := get(t, "/api/v1/charts/box-groups?seed=1")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := jsonBody(t, resp)
		assert.Equal(t, "box-groups", body["id"])
		assert.Equal(t, "box", body["kind"])
		series, ok := body["series"].([]any)
		require.True(t, ok)
		require.Len(t, series, 1)
		assert.Equal(t, "box", series[0].(map[string]any)["type"])
	})

	t.Run("unknown figure", func(t *testing.T) {
		resp := get(t, "/api/v1/charts/nope")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminAPI(t *testing.T) {
	startup(t)
	t.Parallel()

	t.Run("without key", func(t *testing.T) {
		resp := request(t, httptest.NewRequest(http.MethodPost, "/api/_/admin/purge", nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/_/admin/purge", nil)
		req.Header.Set("X-Chartboard-Admin-Key", testAdminKey)
		resp := request(t, req)
		assert.Equal(t, http.StatusOK, resp.StatusCode, bodyString(resp))
	})
}
