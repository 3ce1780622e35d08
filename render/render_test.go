package render

import (
	"context"
	"errors"
	"image/color"
	"math"
	"sync"
	"testing"
	"time"

	buddha "github.com/salindersidhu/Buddhabrot"
)

func testParams() buddha.Params {
	return buddha.Params{
		Width:      16,
		Height:     16,
		Samples:    4,
		Region:     buddha.Full,
		Iterations: []int{50, 20, 5},
		Seed:       3,
	}
}

func TestSingleIterationCountsEscapingSamples(t *testing.T) {
	p := buddha.Params{
		Width:      4,
		Height:     4,
		Samples:    1,
		Region:     buddha.Full,
		Iterations: []int{1, 1, 1},
		Seed:       9,
	}
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	r.allocate()
	if err := r.sample(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, ch := range buddha.Channels {
		s := newSampler(p.Region, p.Seed, ch, 0)
		var escaping uint64
		for range p.SampleCount() {
			if s.next().SqMag() > EscapeThreshold {
				escaping++
			}
		}
		if got := r.Heatmap(ch).Total(); got != escaping {
			t.Errorf("%s: %d increments, want %d", ch, got, escaping)
		}
	}
	if got := r.Progress().Done(); got != 3*16 {
		t.Errorf("progress = %d samples, want 48", got)
	}
}

func TestGenerateEmptyViewportIsBlack(t *testing.T) {
	p := buddha.Params{
		Width:      8,
		Height:     8,
		Samples:    2,
		Region:     buddha.NewRegion(-0.1, 0.1, -0.1, 0.1),
		Iterations: []int{50, 50, 50},
	}
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	img, err := r.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Max() != 0 {
		t.Fatalf("max = %d, want 0", r.Max())
	}
	black := color.RGBA{A: 255}
	for y := range p.Height {
		for x := range p.Width {
			if got := img.RGBAAt(x, y); got != black {
				t.Fatalf("pixel (%d, %d) = %v, want black", x, y, got)
			}
		}
	}
	if r.State() != Done {
		t.Errorf("state = %s, want done", r.State())
	}
}

func TestGenerateSharedMax(t *testing.T) {
	p := testParams()

	raw, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	raw.allocate()
	if err := raw.sample(context.Background()); err != nil {
		t.Fatal(err)
	}

	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	img, err := r.Generate(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.Max() != raw.Max() {
		t.Fatalf("seeded renders disagree on max: %d and %d", r.Max(), raw.Max())
	}
	if r.Max() == 0 {
		t.Fatal("nothing was accumulated")
	}

	brightest := uint32(0)
	for _, ch := range buddha.Channels {
		var chMax uint32
		for row := range p.Height {
			for col := range p.Width {
				v := raw.Heatmap(ch).At(row, col)
				chMax = max(chMax, v)

				want := Scale(v, raw.Max())
				if got := r.Heatmap(ch).At(row, col); got != uint32(want) {
					t.Fatalf("%s (%d, %d): normalized %d, want %d", ch, row, col, got, want)
				}
				px := img.RGBAAt(col, row)
				if got := []uint8{px.R, px.G, px.B}[ch]; got != want {
					t.Fatalf("%s pixel (%d, %d) = %d, want %d", ch, col, row, got, want)
				}
			}
		}
		// channels are scaled by the shared maximum, not their own, so
		// only the channel holding it reaches full brightness
		brightestCell := Scale(chMax, r.Max())
		if (brightestCell == 255) != (chMax == r.Max()) {
			t.Errorf("%s: own peak %d of shared %d scaled to %d", ch, chMax, r.Max(), brightestCell)
		}
		brightest = max(brightest, chMax)
	}
	if brightest != r.Max() {
		t.Errorf("brightest cell %d, shared max %d", brightest, r.Max())
	}
}

func TestConcurrentMatchesSequential(t *testing.T) {
	for _, workers := range []int{1, 3} {
		p := testParams()
		p.Seed = 42
		p.Workers = workers

		concurrent, err := New(p)
		if err != nil {
			t.Fatal(err)
		}
		concurrent.allocate()
		if err := concurrent.sample(context.Background()); err != nil {
			t.Fatal(err)
		}

		sequential, err := New(p)
		if err != nil {
			t.Fatal(err)
		}
		sequential.allocate()
		for _, w := range sequential.newWorkers() {
			if err := w.run(context.Background()); err != nil {
				t.Fatal(err)
			}
		}

		for _, ch := range buddha.Channels {
			if !concurrent.Heatmap(ch).Equal(sequential.Heatmap(ch)) {
				t.Errorf("workers=%d: %s heatmaps differ", workers, ch)
			}
		}
		if concurrent.Max() != sequential.Max() {
			t.Errorf("workers=%d: max %d, sequential max %d", workers, concurrent.Max(), sequential.Max())
		}
	}
}

func TestGenerateTwice(t *testing.T) {
	r, err := New(testParams())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Generate(context.Background()); !errors.Is(err, ErrAlreadyRun) {
		t.Fatalf("second Generate: %v, want ErrAlreadyRun", err)
	}
}

func TestGenerateCanceled(t *testing.T) {
	p := testParams()
	p.Samples = 1000

	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := r.Generate(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Generate: %v, want context.Canceled", err)
	}
	if r.State() != Sampling {
		t.Errorf("state = %s, want sampling", r.State())
	}
	if done := r.Progress().Done(); done != 0 {
		t.Errorf("%d samples drawn after cancellation", done)
	}
}

func TestGenerateReportsProgress(t *testing.T) {
	p := testParams()
	p.Samples = 200
	p.Iterations = []int{500, 500, 500}

	var mu sync.Mutex
	var reports []float64
	r, err := New(p,
		WithProgressInterval(time.Millisecond),
		WithProgress(func(percent float64) {
			mu.Lock()
			reports = append(reports, percent)
			mu.Unlock()
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Generate(context.Background()); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(reports) == 0 || reports[len(reports)-1] != 100 {
		t.Fatalf("reports = %v, want a final 100", reports)
	}
	for i, v := range reports {
		if v < 0 || v > 100 {
			t.Errorf("report %d out of range: %v", i, v)
		}
		if i > 0 && v < reports[i-1] {
			t.Errorf("progress went backwards: %v after %v", v, reports[i-1])
		}
	}
}

func TestNewRejectsInvalidParams(t *testing.T) {
	p := testParams()
	p.Region = buddha.NewRegion(1, -1, -1, 1)
	if _, err := New(p); !errors.Is(err, buddha.ErrInvalidParams) {
		t.Fatalf("New: %v, want ErrInvalidParams", err)
	}
}

func TestNewRejectsOversizedParams(t *testing.T) {
	tests := []struct {
		name                   string
		width, height, samples int
	}{
		{"sample count wraps to zero", 1 << 22, 1 << 21, 1 << 21},
		{"image too large to allocate", math.MaxInt, math.MaxInt, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			p.Width, p.Height, p.Samples = tt.width, tt.height, tt.samples
			if _, err := New(p); !errors.Is(err, buddha.ErrInvalidParams) {
				t.Fatalf("New: %v, want ErrInvalidParams", err)
			}
			if _, err := (Service{}).Render(context.Background(), p, nil); !errors.Is(err, buddha.ErrInvalidParams) {
				t.Fatalf("Service.Render: %v, want ErrInvalidParams", err)
			}
		})
	}
}

func TestNewCopiesBudgets(t *testing.T) {
	p := testParams()
	r, err := New(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Iterations[buddha.Red] = 0
	if r.params.Iterations[buddha.Red] != 50 {
		t.Errorf("red budget = %d after caller change, want 50", r.params.Iterations[buddha.Red])
	}
}

func TestServiceRender(t *testing.T) {
	p := testParams()
	p.Seed = 0
	p.Width, p.Height = 12, 5

	img, err := Service{}.Render(context.Background(), p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 5 {
		t.Errorf("bounds = %v, want 12x5", b)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Sampling: "sampling", Normalizing: "normalizing", Done: "done"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
