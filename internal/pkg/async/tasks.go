package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies f to every element of src with at most concurrencyLimit calls
// in flight, and returns the results in the order of src. The first error
// cancels the context passed to the remaining calls and is returned.
func Map[T any, D any](ctx context.Context, src []T, concurrencyLimit int, f func(context.Context, T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = len(src)
	}

	results := make([]D, len(src))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrencyLimit)

	for i, element := range src {
		i, element := i, element
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := f(gctx, element)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// FlatMap is Map for functions producing several results per element.
func FlatMap[T any, D any](ctx context.Context, src []T, concurrencyLimit int, f func(context.Context, T) ([]D, error)) ([]D, error) {
	r, err := Map(ctx, src, concurrencyLimit, f)
	if err != nil {
		return nil, err
	}

	flattened := make([]D, 0, len(r))
	for _, v := range r {
		flattened = append(flattened, v...)
	}

	return flattened, nil
}
