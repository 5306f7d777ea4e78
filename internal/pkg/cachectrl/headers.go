package cachectrl

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func OptIn(ctx *fiber.Ctx, t time.Time) {
	OptInCustom(ctx, t, time.Hour)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(offset).UTC().Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// ETag sets a strong entity tag and reports whether the client already holds
// it, in which case the caller should answer 304 Not Modified.
func ETag(ctx *fiber.Ctx, tag string) (notModified bool) {
	quoted := `"` + tag + `"`
	ctx.Set(fiber.HeaderETag, quoted)

	match := ctx.Get(fiber.HeaderIfNoneMatch)
	if match == "" {
		return false
	}
	for _, candidate := range strings.Split(match, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == quoted {
			return true
		}
	}
	return false
}
