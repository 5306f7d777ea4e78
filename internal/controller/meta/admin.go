package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/pkg/flog"
	"exusiai.dev/chartboard/internal/server/svr"
	"exusiai.dev/chartboard/internal/service"
)

type AdminController struct {
	fx.In

	ChartService *service.Chart
}

func RegisterAdmin(admin *svr.Admin, c AdminController) {
	admin.Post("/purge", c.PurgeCache)
}

func (c *AdminController) PurgeCache(ctx *fiber.Ctx) error {
	n, err := c.ChartService.Purge(ctx.UserContext())
	if err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("evt.name", "admin.purge").
		Int64("entries", n).
		Msg("chart cache purged by admin")

	return ctx.JSON(fiber.Map{
		"purged": n,
	})
}
