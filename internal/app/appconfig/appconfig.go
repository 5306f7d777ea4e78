package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"exusiai.dev/chartboard/internal/app/appcontext"
	"exusiai.dev/chartboard/internal/pkg/i18n"
)

const prefix = "chartboard"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	var config ConfigSpec
	err = envconfig.Process(prefix, &config)
	if err != nil {
		_ = envconfig.Usage(prefix, &config)
		return nil, fmt.Errorf("failed to parse configuration: %w. More info on how to configure chartboard is located at https://pkg.go.dev/exusiai.dev/chartboard/internal/app/appconfig#ConfigSpec", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

func (c *ConfigSpec) validate() error {
	if c.RenderDPI <= 0 {
		return fmt.Errorf("invalid configuration: RENDER_DPI must be positive, got %d", c.RenderDPI)
	}
	if c.RenderConcurrency <= 0 {
		return fmt.Errorf("invalid configuration: RENDER_CONCURRENCY must be positive, got %d", c.RenderConcurrency)
	}
	for _, l := range c.EnabledLocales {
		if !i18n.Supported(l) {
			return fmt.Errorf("invalid configuration: unsupported locale %q in ENABLED_LOCALES", l)
		}
	}
	if !lo.Contains(c.EnabledLocales, c.DefaultLocale) {
		return fmt.Errorf("invalid configuration: DEFAULT_LOCALE %q is not among ENABLED_LOCALES %v", c.DefaultLocale, c.EnabledLocales)
	}
	return nil
}
