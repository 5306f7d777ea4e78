package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/pkg/cachectrl"
	"exusiai.dev/chartboard/internal/pkg/cberr"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
	"exusiai.dev/chartboard/internal/server/svr"
	"exusiai.dev/chartboard/internal/service"
	"exusiai.dev/chartboard/internal/util/rekuest"
)

type ChartController struct {
	fx.In

	ChartService *service.Chart
	Config       *appconfig.Config
}

func RegisterChart(root *svr.Root, c ChartController) {
	root.Get("/charts/:id.png", c.GetChartImage)
}

func (c *ChartController) GetChartImage(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if _, ok := gallery.Lookup(id); !ok {
		return cberr.ErrChartNotFound.Msg("chart %q not found", id)
	}
	seed, err := rekuest.Seed(ctx, c.Config.SampleSeed)
	if err != nil {
		return err
	}

	rendered, err := c.ChartService.Render(ctx.UserContext(), id, middlewares.LocaleFromCtx(ctx), seed)
	if err != nil {
		return err
	}

	cachectrl.OptInCustom(ctx, rendered.RenderedAt, c.Config.ChartCacheTTL)
	if cachectrl.ETag(ctx, rendered.ETag) {
		return ctx.SendStatus(fiber.StatusNotModified)
	}

	ctx.Type("png")
	return ctx.Send(rendered.PNG)
}
