package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// ErrAlreadyRun is returned by Generate when called more than once.
var ErrAlreadyRun = errors.New("render: generate already called")

// State is the stage a Renderer is in.
type State int32

const (
	Idle State = iota
	Sampling
	Normalizing
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sampling:
		return "sampling"
	case Normalizing:
		return "normalizing"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProgress reports the completed percentage to fn while sampling, and
// a final 100 once every worker has finished.
func WithProgress(fn buddha.ProgressFunc) Option {
	return func(r *Renderer) {
		r.progressFn = fn
	}
}

// WithProgressInterval sets the reporting cadence. Non-positive values keep
// DefaultProgressInterval.
func WithProgressInterval(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.interval = d
		}
	}
}

// Renderer renders one Buddhabrot image. Every channel gets its own heatmap;
// all channels share a single maximum, so normalization preserves the
// relative brightness of the channels.
type Renderer struct {
	params    buddha.Params
	threshold float64
	workers   int

	progressFn buddha.ProgressFunc
	interval   time.Duration

	state    atomic.Int32
	heatmaps [3]*Heatmap
	peak     Max
	progress *Progress
}

// New validates p and returns an idle renderer.
func New(p buddha.Params, opts ...Option) (*Renderer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Iterations = slices.Clone(p.Iterations)

	r := &Renderer{
		params:    p,
		threshold: p.Threshold,
		workers:   p.Workers,
		interval:  DefaultProgressInterval,
		progress:  NewProgress(3 * p.SampleCount()),
	}
	if r.threshold == 0 {
		r.threshold = EscapeThreshold
	}
	if r.workers == 0 {
		r.workers = 1
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Renderer) State() State { return State(r.state.Load()) }

// Heatmap returns the heatmap of ch, or nil before Generate. After Generate
// it holds normalized values.
func (r *Renderer) Heatmap(ch buddha.Channel) *Heatmap { return r.heatmaps[ch] }

// Max returns the largest raw count seen in any channel.
func (r *Renderer) Max() uint32 { return r.peak.Load() }

func (r *Renderer) Progress() *Progress { return r.progress }

// Generate samples all three channels concurrently, waits for every worker,
// normalizes the heatmaps against the shared maximum and returns the image.
// If ctx is canceled the workers stop and its error is returned.
func (r *Renderer) Generate(ctx context.Context) (*image.RGBA, error) {
	if !r.state.CompareAndSwap(int32(Idle), int32(Sampling)) {
		return nil, ErrAlreadyRun
	}

	r.allocate()
	if err := r.sample(ctx); err != nil {
		return nil, err
	}

	r.state.Store(int32(Normalizing))
	peak := r.peak.Load()
	for _, h := range r.heatmaps {
		Normalize(h, peak)
	}
	img := compose(r.heatmaps)

	r.state.Store(int32(Done))
	return img, nil
}

func (r *Renderer) allocate() {
	for _, ch := range buddha.Channels {
		r.heatmaps[ch] = NewHeatmap(r.params.Width, r.params.Height, r.params.Region)
	}
}

// newWorkers splits every channel's samples across r.workers workers.
func (r *Renderer) newWorkers() []*worker {
	var workers []*worker
	for _, ch := range buddha.Channels {
		for part, n := range splitRange(r.params.SampleCount(), r.workers) {
			if n == 0 {
				continue
			}
			workers = append(workers, &worker{
				channel:    ch,
				part:       part,
				samples:    n,
				iterations: r.params.Iterations[ch],
				threshold:  r.threshold,
				seed:       r.params.Seed,
				region:     r.params.Region,
				heatmap:    r.heatmaps[ch],
				peak:       &r.peak,
				progress:   r.progress,
			})
		}
	}
	return workers
}

// sample runs all workers and blocks until each of them has returned.
func (r *Renderer) sample(ctx context.Context) error {
	stop := make(chan struct{})
	var observer sync.WaitGroup
	if r.progressFn != nil {
		observer.Add(1)
		go func() {
			defer observer.Done()
			r.progress.report(stop, r.interval, r.progressFn)
		}()
	}

	workers := r.newWorkers()
	errs := make([]error, len(workers))
	var wg sync.WaitGroup
	for i, w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = w.run(ctx)
		}()
	}
	wg.Wait()

	close(stop)
	observer.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	if r.progressFn != nil {
		r.progressFn(100)
	}
	return nil
}

// Service renders on the local machine. It implements buddha.Renderer.
type Service struct {
	// Interval is the progress reporting cadence; zero means
	// DefaultProgressInterval.
	Interval time.Duration
}

var _ buddha.Renderer = Service{}

func (s Service) Render(ctx context.Context, p buddha.Params, progress buddha.ProgressFunc) (*image.RGBA, error) {
	r, err := New(p, WithProgress(progress), WithProgressInterval(s.Interval))
	if err != nil {
		return nil, err
	}
	return r.Generate(ctx)
}
