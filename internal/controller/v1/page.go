package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
	"exusiai.dev/chartboard/internal/server/svr"
	"exusiai.dev/chartboard/internal/service"
	"exusiai.dev/chartboard/internal/util/rekuest"
)

type PageController struct {
	fx.In

	GalleryService *service.Gallery
	Config         *appconfig.Config
}

func RegisterPage(v1 *svr.V1, c PageController) {
	v1.Get("/page", c.GetPage)
}

func (c *PageController) GetPage(ctx *fiber.Ctx) error {
	seed, err := rekuest.Seed(ctx, c.Config.SampleSeed)
	if err != nil {
		return err
	}

	return ctx.JSON(c.GalleryService.Page(ctx.UserContext(), middlewares.LocaleFromCtx(ctx), seed))
}
