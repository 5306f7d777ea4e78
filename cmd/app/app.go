package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	cliapp "exusiai.dev/chartboard/cmd/app/cli"
	"exusiai.dev/chartboard/cmd/app/cli/export"
	"exusiai.dev/chartboard/cmd/app/cli/render"
	"exusiai.dev/chartboard/cmd/app/server"
	"exusiai.dev/chartboard/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "chartboard",
		Description: "A dashboard of example charts rendered server-side. Built with Go, fiber, gonum/plot and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			export.Command(cliapp.DepsFn[export.CommandDeps]()),
			render.Command(cliapp.DepsFn[render.CommandDeps]()),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
