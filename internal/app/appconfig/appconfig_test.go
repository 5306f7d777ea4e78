package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/chartboard/internal/app/appcontext"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	require.NoError(t, err)

	assert.Equal(t, "localhost:9010", conf.ServiceAddress)
	assert.Equal(t, "ko", conf.DefaultLocale)
	assert.Equal(t, []string{"ko", "en"}, conf.EnabledLocales)
	assert.Equal(t, uint64(42), conf.SampleSeed)
	assert.Equal(t, 100, conf.RenderDPI)
	assert.Empty(t, conf.RedisURL)
}

func TestParseRejectsUnknownDefaultLocale(t *testing.T) {
	t.Setenv("CHARTBOARD_DEFAULT_LOCALE", "fr")
	_, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.Error(t, err)
}

func TestParseRejectsBadDPI(t *testing.T) {
	t.Setenv("CHARTBOARD_RENDER_DPI", "0")
	_, err := Parse(appcontext.Declare(appcontext.EnvCLI))
	assert.Error(t, err)
}
