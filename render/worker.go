package render

import (
	"context"
	"math/rand/v2"
	"time"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// sampler draws points uniformly over a region, each axis independently.
type sampler struct {
	rng    *rand.Rand
	region buddha.Region
}

// newSampler returns the generator of one worker. A zero seed takes the
// clock reading at call time; the channel and part always select a distinct
// stream so that workers started in the same instant still differ.
func newSampler(region buddha.Region, seed uint64, ch buddha.Channel, part int) *sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	stream := uint64(ch)<<32 | uint64(part)
	return &sampler{
		rng:    rand.New(rand.NewPCG(seed, stream)),
		region: region,
	}
}

func (s *sampler) next() buddha.Complex {
	re := s.region.Min.Re + s.rng.Float64()*(s.region.Max.Re-s.region.Min.Re)
	im := s.region.Min.Im + s.rng.Float64()*(s.region.Max.Im-s.region.Min.Im)
	return buddha.Complex{Re: re, Im: im}
}

// worker accumulates one part of one channel's samples.
type worker struct {
	channel    buddha.Channel
	part       int
	samples    uint64
	iterations int
	threshold  float64
	seed       uint64
	region     buddha.Region

	heatmap  *Heatmap
	peak     *Max
	progress *Progress
}

// run draws the worker's samples. It stops early, returning the context's
// error, if ctx is canceled.
func (w *worker) run(ctx context.Context) error {
	s := newSampler(w.region, w.seed, w.channel, w.part)
	done := ctx.Done()

	var points []buddha.Complex
	for range w.samples {
		select {
		case <-done:
			return ctx.Err()
		default:
		}

		points = Trajectory(s.next(), w.iterations, w.threshold, points)
		for _, p := range points {
			w.heatmap.Accumulate(p, w.peak)
		}
		w.progress.Add(1)
	}
	return nil
}

// splitRange splits total into parts nearly equal shares. The first
// total%parts shares are one larger than the rest.
func splitRange(total uint64, parts int) []uint64 {
	if parts <= 0 {
		panic("parts must be positive")
	}

	shares := make([]uint64, parts)
	n := uint64(parts)
	for i := range shares {
		shares[i] = total / n
		if uint64(i) < total%n {
			shares[i]++
		}
	}
	return shares
}
