package svr

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/redis/go-redis/v9"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/fiberstore"
	"exusiai.dev/chartboard/internal/pkg/middlewares"
)

const HeaderCache = "X-Chartboard-Cache"

// Root serves the dashboard page and the chart images.
type Root struct {
	fiber.Router
}

type V1 struct {
	fiber.Router
}

// Meta is for health and build information.
type Meta struct {
	fiber.Router
}

type Admin struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App, conf *appconfig.Config, client *redis.Client) (*Root, *V1, *Meta, *Admin) {
	v1 := app.Group("/api/v1", v1Cache(conf, client))
	meta := app.Group("/api/_")
	admin := app.Group("/api/_/admin", middlewares.AdminKey(conf))

	return &Root{Router: app}, &V1{Router: v1}, &Meta{Router: meta}, &Admin{Router: admin}
}

// v1Cache caches the JSON API responses. Redis is shared between instances
// when configured; the in-memory store is used otherwise.
func v1Cache(conf *appconfig.Config, client *redis.Client) fiber.Handler {
	cfg := cache.Config{
		Next: func(c *fiber.Ctx) bool {
			return conf.DevMode
		},
		CacheHeader:  HeaderCache,
		CacheControl: true,
		Expiration:   time.Minute * 5,
		KeyGenerator: func(c *fiber.Ctx) string {
			return utils.CopyString(c.OriginalURL()) + "|" + middlewares.LocaleFromCtx(c)
		},
	}
	if client != nil {
		cfg.Storage = fiberstore.NewRedis(client, "chartboard:fibercache:")
	}
	return cache.New(cfg)
}
