// Package render implements the Buddhabrot core: escape trajectories,
// per-channel heatmaps, the concurrent channel workers and normalization
// of the heatmaps into an RGB image.
package render

import (
	buddha "github.com/salindersidhu/Buddhabrot"
)

const (
	// EscapeThreshold is the squared magnitude beyond which an orbit is
	// considered escaped. Note that 2.0 corresponds to a radius of √2, not
	// the textbook radius 2 of StandardEscapeThreshold.
	EscapeThreshold = 2.0

	// StandardEscapeThreshold is the squared textbook escape radius 2.
	StandardEscapeThreshold = 4.0
)

// Trajectory iterates z = z² + c from z = 0 for at most n steps and returns
// every visited z up to and including the first one whose squared magnitude
// exceeds threshold. If the orbit stays within the threshold for all n steps
// the sample is bounded and an empty slice is returned.
//
// The result is appended to buf[:0], so a caller may pass back the previous
// result to avoid allocating in the sampling loop.
func Trajectory(c buddha.Complex, n int, threshold float64, buf []buddha.Complex) []buddha.Complex {
	points := buf[:0]
	var z buddha.Complex
	for range n {
		z = z.Mul(z).Add(c)
		points = append(points, z)
		if z.SqMag() > threshold {
			return points
		}
	}
	return points[:0]
}
