package buddhabrot

import (
	"errors"
	"flag"
	"math"
	"slices"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
		ok     bool
	}{
		{"defaults", func(p *Params) {}, true},
		{"zero width", func(p *Params) { p.Width = 0 }, false},
		{"negative height", func(p *Params) { p.Height = -1 }, false},
		{"zero samples", func(p *Params) { p.Samples = 0 }, false},
		{"zero green budget", func(p *Params) { p.Iterations[Green] = 0 }, false},
		{"negative blue budget", func(p *Params) { p.Iterations[Blue] = -5 }, false},
		{"negative threshold", func(p *Params) { p.Threshold = -1 }, false},
		{"NaN threshold", func(p *Params) { p.Threshold = math.NaN() }, false},
		{"explicit threshold", func(p *Params) { p.Threshold = 4 }, true},
		{"negative workers", func(p *Params) { p.Workers = -2 }, false},
		{"real axis reversed", func(p *Params) { p.Region.Min.Re, p.Region.Max.Re = 1, -2 }, false},
		{"imaginary axis flat", func(p *Params) { p.Region.Max.Im = p.Region.Min.Im }, false},
		{"infinite bound", func(p *Params) { p.Region.Max.Re = math.Inf(1) }, false},
		{"two budgets", func(p *Params) { p.Iterations = p.Iterations[:2] }, false},
		{"no budgets", func(p *Params) { p.Iterations = nil }, false},
		{"largest image", func(p *Params) { p.Width, p.Height, p.Samples = 1<<14, 1<<14, 1 }, true},
		{"too many pixels", func(p *Params) { p.Width, p.Height = 1<<15, 1<<14 }, false},
		{"pixel count overflows", func(p *Params) { p.Width, p.Height = math.MaxInt, math.MaxInt }, false},
		{"sample count wraps to zero", func(p *Params) { p.Width, p.Height, p.Samples = 1<<22, 1<<21, 1<<21 }, false},
		{"sample count overflows", func(p *Params) { p.Width, p.Height, p.Samples = 1<<14, 1<<14, 1<<40 }, false},
		{"progress total overflows", func(p *Params) { p.Width, p.Height, p.Samples = 1<<14, 1<<14, 1<<35 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidParams) {
				t.Fatalf("got %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestSampleCount(t *testing.T) {
	p := Params{Width: 4096, Height: 4096, Samples: 1000}
	if got, want := p.SampleCount(), uint64(4096*4096)*1000; got != want {
		t.Errorf("SampleCount() = %d, want %d", got, want)
	}
}

func TestRegionContains(t *testing.T) {
	r := Full
	for _, p := range []Complex{{-2, -2}, {2, 2}, {0, 0}, {2, -2}} {
		if !r.Contains(p) {
			t.Errorf("%v should contain %v", r, p)
		}
	}
	for _, p := range []Complex{{-2.0001, 0}, {0, 2.0001}, {3, 3}} {
		if r.Contains(p) {
			t.Errorf("%v should not contain %v", r, p)
		}
	}
}

func TestLookupRegion(t *testing.T) {
	r, ok := LookupRegion("Seahorse")
	if !ok || r != SeahorseValley {
		t.Fatalf("LookupRegion(Seahorse) = %v, %v", r, ok)
	}
	if _, ok := LookupRegion("nowhere"); ok {
		t.Fatal("unexpected preset nowhere")
	}
	for _, name := range RegionNames() {
		r, _ := LookupRegion(name)
		if err := r.Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestRegisterFlags(t *testing.T) {
	p := DefaultParams()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p.RegisterFlags(fs)

	args := []string{"-width", "64", "-red", "5000", "-region", "full", "-max-re", "1.5", "-seed", "7"}
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	if p.Width != 64 || p.Height != 512 {
		t.Errorf("size = %dx%d, want 64x512", p.Width, p.Height)
	}
	if !slices.Equal(p.Iterations, []int{5000, 200, 200}) {
		t.Errorf("iterations = %v", p.Iterations)
	}
	if want := NewRegion(-2, 1.5, -2, 2); p.Region != want {
		t.Errorf("region = %v, want %v", p.Region, want)
	}
	if p.Seed != 7 {
		t.Errorf("seed = %d, want 7", p.Seed)
	}

	if err := fs.Parse([]string{"-region", "atlantis"}); err == nil {
		t.Error("expected an error for an unknown region")
	}
}

func TestRegisterFlagsAllocatesBudgets(t *testing.T) {
	var p Params
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p.RegisterFlags(fs)
	if err := fs.Parse([]string{"-blue", "30"}); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(p.Iterations, []int{0, 0, 30}) {
		t.Errorf("iterations = %v, want [0 0 30]", p.Iterations)
	}
}
