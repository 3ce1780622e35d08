package buddhabrot

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid render parameters")

// Channel is one of the three color channels of the image.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// MaxPixels bounds Width*Height. Every pixel costs three heatmap cells and
// one RGBA pixel.
const MaxPixels = 1 << 28

// Channels lists the channels in output order.
var Channels = [...]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Params describes one render. They are fixed for the duration of the render.
type Params struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Samples is the per-pixel multiplier: each channel draws
	// Width*Height*Samples random points.
	Samples int `json:"samples"`

	Region Region `json:"region"`

	// Iterations holds the iteration budget of each channel, indexed by
	// Channel. It must have one entry per channel.
	Iterations []int `json:"iterations"`

	// Threshold is the squared magnitude above which an orbit escapes.
	// Zero selects the default, so a zero threshold cannot be requested.
	Threshold float64 `json:"threshold,omitempty"`

	// Workers is the number of goroutines sharing each channel's samples.
	// Zero means one.
	Workers int `json:"workers,omitempty"`

	// Seed makes the render reproducible when non-zero. Otherwise every
	// worker seeds its generator from the clock.
	Seed uint64 `json:"seed,omitempty"`
}

// DefaultParams returns a 512x512 render of the Classic region with
// 100 samples per pixel and 200 iterations in every channel.
func DefaultParams() Params {
	return Params{
		Width:      512,
		Height:     512,
		Samples:    100,
		Region:     Classic,
		Iterations: []int{200, 200, 200},
	}
}

// SampleCount is the number of samples drawn by each channel. It is exact
// for parameters that pass Validate.
func (p Params) SampleCount() uint64 {
	return uint64(p.Width) * uint64(p.Height) * uint64(p.Samples)
}

// Validate checks the parameters before any sampling begins.
func (p Params) Validate() error {
	if p.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParams, p.Width)
	}
	if p.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidParams, p.Height)
	}
	if p.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidParams, p.Samples)
	}
	hi, pixels := bits.Mul64(uint64(p.Width), uint64(p.Height))
	if hi != 0 || pixels > MaxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidParams, p.Width, p.Height, MaxPixels)
	}
	// the progress total counts the samples of all channels
	hi, samples := bits.Mul64(pixels, uint64(p.Samples))
	if hi != 0 || samples > math.MaxUint64/uint64(len(Channels)) {
		return fmt.Errorf("%w: %d samples per pixel overflow the sample count", ErrInvalidParams, p.Samples)
	}
	if len(p.Iterations) != len(Channels) {
		return fmt.Errorf("%w: want %d iteration budgets, got %d", ErrInvalidParams, len(Channels), len(p.Iterations))
	}
	for _, ch := range Channels {
		if p.Iterations[ch] <= 0 {
			return fmt.Errorf("%w: %s iterations must be positive, got %d", ErrInvalidParams, ch, p.Iterations[ch])
		}
	}
	if math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) || p.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be a non-negative number, got %v", ErrInvalidParams, p.Threshold)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidParams, p.Workers)
	}
	return p.Region.Validate()
}
