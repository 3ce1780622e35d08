package render

import (
	"sync/atomic"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// Max is the running maximum of all heatmap cells. It is shared by every
// worker of every channel.
type Max struct {
	v atomic.Uint32
}

// Observe raises the maximum to n if n is larger.
func (m *Max) Observe(n uint32) {
	for {
		cur := m.v.Load()
		if n <= cur || m.v.CompareAndSwap(cur, n) {
			return
		}
	}
}

// Load returns the current maximum.
func (m *Max) Load() uint32 {
	return m.v.Load()
}

// Heatmap counts how many trajectory points landed in each pixel of one
// channel. Cells are stored row-major in a single buffer.
//
// Cells are 32-bit counters. A cell passing math.MaxUint32 wraps to zero
// while Max stays at the top, so renders must keep per-pixel counts below
// that.
type Heatmap struct {
	width, height int
	region        buddha.Region

	// scale factors from region units to cells
	rowScale, colScale float64

	cells []uint32
}

// NewHeatmap returns a zero-filled heatmap of height rows and width columns
// covering region.
func NewHeatmap(width, height int, region buddha.Region) *Heatmap {
	return &Heatmap{
		width:    width,
		height:   height,
		region:   region,
		rowScale: float64(height) / (region.Max.Re - region.Min.Re),
		colScale: float64(width) / (region.Max.Im - region.Min.Im),
		cells:    make([]uint32, width*height),
	}
}

func (h *Heatmap) Width() int  { return h.width }
func (h *Heatmap) Height() int { return h.height }

// Cell maps a point of the region to its row and column. The real part
// selects the row, the imaginary part the column. Points on the upper bound
// of an axis fall into the last row or column.
func (h *Heatmap) Cell(p buddha.Complex) (row, col int) {
	row = int((p.Re - h.region.Min.Re) * h.rowScale)
	col = int((p.Im - h.region.Min.Im) * h.colScale)
	if row >= h.height {
		row = h.height - 1
	}
	if col >= h.width {
		col = h.width - 1
	}
	return row, col
}

// Accumulate counts p if it lies inside the region and raises peak when the
// cell's new count exceeds it. Points outside the region are dropped.
// Accumulate is safe for concurrent use.
func (h *Heatmap) Accumulate(p buddha.Complex, peak *Max) {
	if !h.region.Contains(p) {
		return
	}
	row, col := h.Cell(p)
	n := atomic.AddUint32(&h.cells[row*h.width+col], 1)
	peak.Observe(n)
}

// At returns the count of a cell.
func (h *Heatmap) At(row, col int) uint32 {
	return atomic.LoadUint32(&h.cells[row*h.width+col])
}

// Total returns the sum of all cells.
func (h *Heatmap) Total() uint64 {
	var sum uint64
	for i := range h.cells {
		sum += uint64(atomic.LoadUint32(&h.cells[i]))
	}
	return sum
}

// Equal reports whether both heatmaps hold the same counts.
func (h *Heatmap) Equal(o *Heatmap) bool {
	if h.width != o.width || h.height != o.height {
		return false
	}
	for i := range h.cells {
		if h.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
