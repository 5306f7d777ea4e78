package warmwkr

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"exusiai.dev/chartboard/internal/gallery"
	"exusiai.dev/chartboard/internal/service"
)

type fakeRenderer struct {
	mu    sync.Mutex
	calls map[string]int
}

func (f *fakeRenderer) Render(ctx context.Context, id, locale string, seed uint64) (*service.RenderedChart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[locale+"/"+id]++
	return &service.RenderedChart{ID: id, Locale: locale, Seed: seed}, nil
}

func (f *fakeRenderer) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func TestWorkerWarmsEveryChartPerLocale(t *testing.T) {
	r := &fakeRenderer{calls: map[string]int{}}
	w := New(r, []string{"ko", "en"}, gallery.DefaultSeed, time.Hour)

	w.batch(context.Background())

	assert.Equal(t, 2*len(gallery.Charts()), r.total())
	assert.Equal(t, 1, r.calls["en/pie-composition"])
}

func TestWorkerStops(t *testing.T) {
	r := &fakeRenderer{calls: map[string]int{}}
	w := New(r, []string{"ko"}, gallery.DefaultSeed, time.Hour)

	cancel := w.do()
	assert.Eventually(t, func() bool { return r.total() >= len(gallery.Charts()) }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-w.done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, 1, w.Count())
}
