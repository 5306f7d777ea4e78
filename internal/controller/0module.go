package controller

import (
	"go.uber.org/fx"

	controllermeta "exusiai.dev/chartboard/internal/controller/meta"
	controllerv1 "exusiai.dev/chartboard/internal/controller/v1"
	controllerweb "exusiai.dev/chartboard/internal/controller/web"
)

func Module() fx.Option {
	return fx.Module("controller",
		// Controllers (dashboard page and images)
		controllerweb.Module(),

		// Controllers (v1)
		controllerv1.Module(),

		// Controllers (meta)
		controllermeta.Module(),
	)
}
