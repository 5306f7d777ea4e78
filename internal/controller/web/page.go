package web

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/model"
	"exusiai.dev/chartboard/internal/pkg/cachectrl"
	"exusiai.dev/chartboard/internal/pkg/i18n"
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

func RegisterPage(root *svr.Root, c PageController) {
	root.Get("/", c.Index)
}

type localeLink struct {
	Code   string
	Name   string
	Active bool
}

type pageView struct {
	Page    *model.Page
	Locales []localeLink
}

func (c *PageController) Index(ctx *fiber.Ctx) error {
	seed, err := rekuest.Seed(ctx, c.Config.SampleSeed)
	if err != nil {
		return err
	}
	locale := middlewares.LocaleFromCtx(ctx)

	page := c.GalleryService.Page(ctx.UserContext(), locale, seed)

	links := make([]localeLink, 0, len(c.Config.EnabledLocales))
	for _, l := range c.Config.EnabledLocales {
		links = append(links, localeLink{
			Code:   l,
			Name:   i18n.DisplayName(l),
			Active: l == page.Locale,
		})
	}

	cachectrl.OptOut(ctx)
	return ctx.Render("index", pageView{Page: page, Locales: links})
}
