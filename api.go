package buddhabrot

import (
	"context"
	"image"
)

// ProgressFunc receives the completed share of a render in percent.
// It may be called from a goroutine other than the caller's.
type ProgressFunc func(percent float64)

// Renderer renders a Buddhabrot image. Implementations exist for local
// rendering, for a render server's scheduler and for a remote server.
type Renderer interface {
	Render(ctx context.Context, p Params, progress ProgressFunc) (*image.RGBA, error)
}
