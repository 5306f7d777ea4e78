package rekuest

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type SeedQuery struct {
	Seed string `query:"seed" validate:"omitempty,seed"`
}

// Seed reads the optional seed query parameter. def is returned when the
// parameter is absent.
func Seed(ctx *fiber.Ctx, def uint64) (uint64, error) {
	var q SeedQuery
	if err := ValidQuery(ctx, &q); err != nil {
		return 0, err
	}
	if q.Seed == "" {
		return def, nil
	}
	// validated above
	seed, _ := strconv.ParseUint(q.Seed, 10, 64)
	return seed, nil
}
