package buddhabrot

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Region is the rectangle of the complex plane mapped onto the image.
// The real axis runs down the rows, the imaginary axis across the columns.
type Region struct {
	Min Complex `json:"min"`
	Max Complex `json:"max"`
}

// NewRegion builds a region from its four bounds.
func NewRegion(minRe, maxRe, minIm, maxIm float64) Region {
	return Region{
		Min: Complex{Re: minRe, Im: minIm},
		Max: Complex{Re: maxRe, Im: maxIm},
	}
}

// Validate reports a degenerate or non-finite region.
func (r Region) Validate() error {
	for _, v := range []float64{r.Min.Re, r.Min.Im, r.Max.Re, r.Max.Im} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: region bound %v is not finite", ErrInvalidParams, v)
		}
	}
	if r.Min.Re >= r.Max.Re {
		return fmt.Errorf("%w: min real %v must be below max real %v", ErrInvalidParams, r.Min.Re, r.Max.Re)
	}
	if r.Min.Im >= r.Max.Im {
		return fmt.Errorf("%w: min imaginary %v must be below max imaginary %v", ErrInvalidParams, r.Min.Im, r.Max.Im)
	}
	return nil
}

// Contains reports whether p lies inside r, bounds included.
func (r Region) Contains(p Complex) bool {
	return p.Re >= r.Min.Re && p.Re <= r.Max.Re &&
		p.Im >= r.Min.Im && p.Im <= r.Max.Im
}

func (r Region) String() string {
	return fmt.Sprintf("[%g%+gi, %g%+gi]", r.Min.Re, r.Min.Im, r.Max.Re, r.Max.Im)
}

// Classic windows and landmarks of the Mandelbrot set
var (
	// Classic is the usual Buddhabrot window, slightly off-centre on the real axis
	Classic = NewRegion(-2.0, 1.0, -2.0, 2.0)

	// Full covers the whole escape disk of radius 2
	Full = NewRegion(-2.0, 2.0, -2.0, 2.0)

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = NewRegion(-0.8, -0.7, 0.05, 0.15)

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = NewRegion(-1.85, -1.75, -0.10, -0.02)

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = NewRegion(-0.7435, -0.7420, 0.1310, 0.1325)

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = NewRegion(-0.7480, -0.7450, 0.0950, 0.0980)

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = NewRegion(-0.7400, -0.7350, 0.1800, 0.1850)
)

var regions = map[string]Region{
	"classic":  Classic,
	"full":     Full,
	"seahorse": SeahorseValley,
	"elephant": ElephantValley,
	"minibrot": SpiralMinibrot,
	"triple":   TripleSpiral,
	"dragon":   ValleyOfTheDragon,
}

// LookupRegion returns the named preset. Names are case-insensitive.
func LookupRegion(name string) (Region, bool) {
	r, ok := regions[strings.ToLower(name)]
	return r, ok
}

// RegionNames lists the preset names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for n := range regions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
