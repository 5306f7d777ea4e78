package render

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/service"
)

type CommandDeps struct {
	fx.In

	ChartService *service.Chart
	Config       *appconfig.Config
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render a single chart to a PNG file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "chart id",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output file",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "display locale. Defaults to the configured default locale",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "sample seed. Defaults to the configured seed",
			},
		},
		Action: func(c *cli.Context) error {
			id := c.String("id")
			if _, ok := gallery.Lookup(id); !ok {
				return errors.Errorf("unknown chart %q", id)
			}

			deps := depsFn()

			locale := deps.Config.DefaultLocale
			if c.IsSet("locale") {
				locale = c.String("locale")
			}
			seed := deps.Config.SampleSeed
			if c.IsSet("seed") {
				seed = c.Uint64("seed")
			}

			rendered, err := deps.ChartService.Render(c.Context, id, locale, seed)
			if err != nil {
				return err
			}
			if err := os.WriteFile(c.String("out"), rendered.PNG, 0o644); err != nil {
				return errors.Wrap(err, "write chart")
			}

			log.Info().
				Str("evt.name", "cli.render").
				Str("chart", id).
				Str("locale", rendered.Locale).
				Uint64("seed", seed).
				Str("out", c.String("out")).
				Msg("chart written")
			return nil
		},
	}
}
