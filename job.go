package buddhabrot

import (
	"context"
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// RenderJob is served by a client that wants an image rendered. The render
// server pulls the parameters and reports progress while it renders, then
// finishes the job with either Deliver or Fail.
type RenderJob interface {
	Params(ctx context.Context) (Params, error)
	Progress(ctx context.Context, percent float64) error
	Deliver(ctx context.Context, img *image.RGBA) error
	Fail(ctx context.Context, reason string) error
}
