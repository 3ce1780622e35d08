package remote

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net"

	"github.com/marben/irpc"

	buddha "github.com/salindersidhu/Buddhabrot"
)

// Client renders on a remote server. It implements buddha.Renderer.
type Client struct {
	// Dial opens a new connection to the server for every render.
	Dial func(ctx context.Context) (net.Conn, error)
}

var _ buddha.Renderer = (*Client)(nil)

// DialTCP returns a client connecting to addr over TCP.
func DialTCP(addr string) *Client {
	return &Client{Dial: func(ctx context.Context) (net.Conn, error) {
		var d net.Dialer
		return d.DialContext(ctx, "tcp", addr)
	}}
}

// Render dials the server and serves it a job for p until the server
// finishes it. Closing the connection cancels the render on the server.
func (c *Client) Render(ctx context.Context, p buddha.Params, progress buddha.ProgressFunc) (*image.RGBA, error) {
	conn, err := c.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	j := NewJob(p, progress)
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(buddha.NewRenderJobIrpcService(j)))
	defer ep.Close()

	return j.Wait(ctx, ep)
}

type result struct {
	img *image.RGBA
	err error
}

// Job is the buddha.RenderJob a client serves to the server. It reports the
// server's progress to a callback and holds the outcome of the render.
type Job struct {
	params   buddha.Params
	progress buddha.ProgressFunc
	done     chan result
}

var errJobFinished = errors.New("job already finished")

var _ buddha.RenderJob = (*Job)(nil)

// NewJob returns a job rendering p. progress may be nil.
func NewJob(p buddha.Params, progress buddha.ProgressFunc) *Job {
	return &Job{
		params:   p,
		progress: progress,
		done:     make(chan result, 1),
	}
}

// Wait blocks until the server connected through ep finishes the job and
// hangs up, and returns the delivered image or the reason the render failed.
// If ctx is done first, Wait returns its error; closing ep then cancels the
// render on the server.
func (j *Job) Wait(ctx context.Context, ep *irpc.Endpoint) (*image.RGBA, error) {
	select {
	case res := <-j.done:
		// the server hangs up once it has its answer
		select {
		case <-ep.Context().Done():
		case <-ctx.Done():
		}
		return res.img, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-ep.Context().Done():
		select {
		case res := <-j.done:
			return res.img, res.err
		default:
		}
		return nil, fmt.Errorf("connection closed before the render finished: %w", context.Cause(ep.Context()))
	}
}

func (j *Job) Params(ctx context.Context) (buddha.Params, error) {
	return j.params, nil
}

func (j *Job) Progress(ctx context.Context, percent float64) error {
	if j.progress != nil {
		j.progress(percent)
	}
	return nil
}

func (j *Job) Deliver(ctx context.Context, img *image.RGBA) error {
	if img == nil {
		return j.finish(result{err: fmt.Errorf("%w: no image delivered", ErrRemote)})
	}
	return j.finish(result{img: img})
}

func (j *Job) Fail(ctx context.Context, reason string) error {
	return j.finish(result{err: fmt.Errorf("%w: %s", ErrRemote, reason)})
}

func (j *Job) finish(res result) error {
	select {
	case j.done <- res:
		return nil
	default:
		return errJobFinished
	}
}
