package warmwkr

import (
	"time"

	"exusiai.dev/chartboard/internal/pkg/observability"
)

func observeWarmDuration(chart string, locale string, f func() error) error {
	start := time.Now()
	defer func() {
		dur := time.Since(start)
		observability.WorkerWarmDuration.WithLabelValues(chart, locale).Set(dur.Seconds())
	}()
	return f()
}
