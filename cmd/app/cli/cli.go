package cli

import (
	"context"

	"go.uber.org/fx"

	"exusiai.dev/chartboard/internal/app"
	"exusiai.dev/chartboard/internal/app/appcontext"
)

func Start(module fx.Option) {
	if err := app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background()); err != nil {
		panic(err)
	}
}

// DepsFn returns a lazy resolver for T, so the fx graph is only built when
// the command actually runs.
func DepsFn[T any]() func() T {
	return func() T {
		var deps T
		Start(fx.Populate(&deps))
		return deps
	}
}
