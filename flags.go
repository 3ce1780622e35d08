package buddhabrot

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// RegisterFlags binds p to command-line flags on fs. The current values of p
// become the flag defaults. Region bounds are applied in the order given, so
// -region followed by -max-re narrows a preset.
func (p *Params) RegisterFlags(fs *flag.FlagSet) {
	if len(p.Iterations) < len(Channels) {
		p.Iterations = append(p.Iterations, make([]int, len(Channels)-len(p.Iterations))...)
	}
	fs.IntVar(&p.Width, "width", p.Width, "image width in pixels")
	fs.IntVar(&p.Height, "height", p.Height, "image height in pixels")
	fs.IntVar(&p.Samples, "samples", p.Samples, "samples per pixel, per channel")
	fs.IntVar(&p.Iterations[Red], "red", p.Iterations[Red], "iteration budget of the red channel")
	fs.IntVar(&p.Iterations[Green], "green", p.Iterations[Green], "iteration budget of the green channel")
	fs.IntVar(&p.Iterations[Blue], "blue", p.Iterations[Blue], "iteration budget of the blue channel")
	fs.Float64Var(&p.Threshold, "threshold", p.Threshold, "squared magnitude escape threshold; 0 selects the default of 2")
	fs.IntVar(&p.Workers, "workers", p.Workers, "goroutines per channel (0 for one)")
	fs.Uint64Var(&p.Seed, "seed", p.Seed, "random seed, 0 seeds every worker from the clock")

	fs.Func("region", "preset region: "+strings.Join(RegionNames(), ", "), func(s string) error {
		r, ok := LookupRegion(s)
		if !ok {
			return fmt.Errorf("unknown region %q", s)
		}
		p.Region = r
		return nil
	})
	boundFlag(fs, "min-re", "lower real bound", &p.Region.Min.Re)
	boundFlag(fs, "max-re", "upper real bound", &p.Region.Max.Re)
	boundFlag(fs, "min-im", "lower imaginary bound", &p.Region.Min.Im)
	boundFlag(fs, "max-im", "upper imaginary bound", &p.Region.Max.Im)
}

func boundFlag(fs *flag.FlagSet, name, usage string, dst *float64) {
	fs.Func(name, fmt.Sprintf("%s (default %g)", usage, *dst), func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}
