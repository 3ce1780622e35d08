package render

import (
	"sync/atomic"
	"time"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// DefaultProgressInterval is how often progress is reported during a render.
const DefaultProgressInterval = time.Second

// Progress counts completed samples across all channels.
type Progress struct {
	done  atomic.Uint64
	total uint64
}

func NewProgress(total uint64) *Progress {
	return &Progress{total: total}
}

// Add records n more completed samples.
func (p *Progress) Add(n uint64) {
	p.done.Add(n)
}

func (p *Progress) Done() uint64  { return p.done.Load() }
func (p *Progress) Total() uint64 { return p.total }

// Percent returns the completed share in percent.
func (p *Progress) Percent() float64 {
	if p.total == 0 {
		return 100
	}
	return float64(p.done.Load()) / float64(p.total) * 100
}

// report calls fn with the current percentage every interval until stop
// is closed.
func (p *Progress) report(stop <-chan struct{}, interval time.Duration, fn buddha.ProgressFunc) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			fn(p.Percent())
		}
	}
}
