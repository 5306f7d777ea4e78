package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"exusiai.dev/chartboard/internal/app/appconfig"
	"exusiai.dev/chartboard/internal/pkg/cberr"
)

const HeaderAdminKey = "X-Chartboard-Admin-Key"

// AdminKey rejects requests whose admin key header does not match the
// configured key. With no key configured every request is rejected.
func AdminKey(conf *appconfig.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderAdminKey)
		if conf.AdminKey == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(conf.AdminKey)) != 1 {
			return cberr.ErrUnauthorized
		}
		return c.Next()
	}
}
