package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/pkg/cberr"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
	"exusiai.dev/chartboard/internal/server/svr"
	"exusiai.dev/chartboard/internal/service"
	"exusiai.dev/chartboard/internal/util/rekuest"
)

type ChartController struct {
	fx.In

	GalleryService *service.Gallery
	Config         *appconfig.Config
}

func RegisterChart(v1 *svr.V1, c ChartController) {
	v1.Get("/charts", c.GetCatalog)
	v1.Get("/charts/:id", c.GetFigure)
}

func (c *ChartController) GetCatalog(ctx *fiber.Ctx) error {
	seed, err := rekuest.Seed(ctx, c.Config.SampleSeed)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"sections": c.GalleryService.Sections(middlewares.LocaleFromCtx(ctx), seed),
	})
}

// GetFigure returns the full figure of one chart, sample data included.
func (c *ChartController) GetFigure(ctx *fiber.Ctx) error {
	seed, err := rekuest.Seed(ctx, c.Config.SampleSeed)
	if err != nil {
		return err
	}

	id := ctx.Params("id")
	fig, err := c.GalleryService.Figure(ctx.UserContext(), id, middlewares.LocaleFromCtx(ctx), seed)
	if errors.Is(err, gallery.ErrUnknownChart) {
		return cberr.ErrChartNotFound.Msg("chart %q not found", id)
	} else if err != nil {
		return err
	}

	return ctx.JSON(fig)
}
