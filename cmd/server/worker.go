package main

import (
	"context"
	"image"
	"log"
	"sync"
	"time"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// renderScheduler runs at most cap(slots) renders at a time on renderer.
// Further requests wait for a free slot.
type renderScheduler struct {
	renderer buddha.Renderer
	slots    chan struct{}

	queued   int
	active   int
	finished int
	m        sync.Mutex
}

func newRenderScheduler(renderer buddha.Renderer, maxRenders int) *renderScheduler {
	if maxRenders <= 0 {
		panic("maxRenders must be positive")
	}
	return &renderScheduler{
		renderer: renderer,
		slots:    make(chan struct{}, maxRenders),
	}
}

// Render implements buddha.Renderer.
// can be called from multiple goroutines in parallel
func (rs *renderScheduler) Render(ctx context.Context, p buddha.Params, progress buddha.ProgressFunc) (*image.RGBA, error) {
	rs.update(func() { rs.queued++ })

	select {
	case rs.slots <- struct{}{}:
	case <-ctx.Done():
		rs.update(func() { rs.queued-- })
		return nil, ctx.Err()
	}
	defer func() { <-rs.slots }()

	rs.update(func() { rs.queued--; rs.active++ })
	defer rs.update(func() { rs.active--; rs.finished++ })

	log.Printf("render %dx%d x%d samples, iterations %v, region %s",
		p.Width, p.Height, p.Samples, p.Iterations, p.Region)
	start := time.Now()

	img, err := rs.renderer.Render(ctx, p, progress)
	if err != nil {
		log.Printf("render failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}
	log.Printf("render finished in %s", time.Since(start).Round(time.Millisecond))
	return img, nil
}

func (rs *renderScheduler) update(f func()) {
	rs.m.Lock()
	f()
	queued, active, finished := rs.queued, rs.active, rs.finished
	rs.m.Unlock()

	log.Printf("renders: %d active, %d queued, %d finished", active, queued, finished)
}

func (rs *renderScheduler) stats() (queued, active, finished int) {
	rs.m.Lock()
	defer rs.m.Unlock()
	return rs.queued, rs.active, rs.finished
}
