package remote

import (
	"context"
	"fmt"

	"github.com/marben/irpc/irpcgen"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// ServeJob renders the job served by the peer of ep with r. Render failures
// are reported to the job; the returned error covers only the conversation
// with the peer. The render stops when ctx is done.
//
// Servers call it from the irpc.WithOnConnect hook and close the endpoint
// once it returns.
func ServeJob(ctx context.Context, ep irpcgen.Endpoint, r buddha.Renderer) error {
	job, err := buddha.NewRenderJobIrpcClient(ep)
	if err != nil {
		return fmt.Errorf("new RenderJob client: %w", err)
	}

	p, err := job.Params(ctx)
	if err != nil {
		return fmt.Errorf("job.Params: %w", err)
	}

	// a failed progress report aborts the render
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	img, err := r.Render(ctx, p, func(percent float64) {
		if err := job.Progress(ctx, percent); err != nil {
			cancel(fmt.Errorf("job.Progress: %w", err))
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		if err := job.Fail(ctx, err.Error()); err != nil {
			return fmt.Errorf("job.Fail: %w", err)
		}
		return nil
	}

	if err := job.Deliver(ctx, img); err != nil {
		return fmt.Errorf("job.Deliver: %w", err)
	}
	return nil
}
