package infra

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/fontreg"
)

func Fonts(conf *appconfig.Config, lc fx.Lifecycle) (*fontreg.Registry, error) {
	reg, err := fontreg.Load(fontreg.Options{
		Path:     conf.FontPath,
		BoldPath: conf.FontBoldPath,
		Required: conf.FontRequired,
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return reg.Close()
		},
	})
	return reg, nil
}
