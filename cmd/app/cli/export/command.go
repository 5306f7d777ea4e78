package export

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/service"
)

type CommandDeps struct {
	fx.In

	ExportService *service.Export
	Config        *appconfig.Config
}

func Command(depsFn func() CommandDeps) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "render every chart, the page model and a workbook of the sample data into a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "output directory",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "locale",
				Aliases: []string{"l"},
				Usage:   "locale to export; repeatable. Defaults to every enabled locale",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Usage: "sample seed. Defaults to the configured seed",
			},
			&cli.BoolFlag{
				Name:  "upload",
				Usage: "also upload the files to the configured S3 bucket",
			},
		},
		Action: func(c *cli.Context) error {
			deps := depsFn()

			seed := deps.Config.SampleSeed
			if c.IsSet("seed") {
				seed = c.Uint64("seed")
			}

			res, err := deps.ExportService.Run(c.Context, service.ExportOptions{
				OutDir:  c.String("out"),
				Locales: c.StringSlice("locale"),
				Seed:    seed,
				Upload:  c.Bool("upload"),
			})
			if err != nil {
				return err
			}

			log.Info().
				Str("evt.name", "cli.export").
				Str("run", res.Manifest.RunID).
				Str("dir", res.Dir).
				Int("files", len(res.Manifest.Files)).
				Bool("uploaded", res.Uploaded).
				Msg("export written")
			return nil
		},
	}
}
