package main

import (
	"context"
	"errors"
	"image"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	buddha "github.com/salindersidhu/Buddhabrot"
	"github.com/salindersidhu/Buddhabrot/remote"
	"github.com/salindersidhu/Buddhabrot/render"
)

// blockingRenderer renders only once release is closed.
type blockingRenderer struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingRenderer) Render(ctx context.Context, p buddha.Params, progress buddha.ProgressFunc) (*image.RGBA, error) {
	b.started <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return image.NewRGBA(image.Rect(0, 0, p.Width, p.Height)), nil
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSchedulerLimitsConcurrentRenders(t *testing.T) {
	br := blockingRenderer{started: make(chan struct{}, 2), release: make(chan struct{})}
	rs := newRenderScheduler(br, 1)
	p := buddha.DefaultParams()

	errs := make(chan error, 2)
	for range 2 {
		go func() {
			_, err := rs.Render(context.Background(), p, nil)
			errs <- err
		}()
	}

	<-br.started
	waitFor(t, func() bool {
		queued, active, _ := rs.stats()
		return queued == 1 && active == 1
	})
	select {
	case <-br.started:
		t.Fatal("second render started while the only slot was taken")
	case <-time.After(20 * time.Millisecond):
	}

	close(br.release)
	for range 2 {
		if err := <-errs; err != nil {
			t.Fatal(err)
		}
	}
	if queued, active, finished := rs.stats(); queued != 0 || active != 0 || finished != 2 {
		t.Errorf("stats = %d queued, %d active, %d finished", queued, active, finished)
	}
}

func TestSchedulerCanceledWhileQueued(t *testing.T) {
	br := blockingRenderer{started: make(chan struct{}, 1), release: make(chan struct{})}
	defer close(br.release)
	rs := newRenderScheduler(br, 1)
	p := buddha.DefaultParams()

	go rs.Render(context.Background(), p, nil)
	<-br.started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := rs.Render(ctx, p, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("Render: %v, want context.Canceled", err)
	}
	if queued, _, _ := rs.stats(); queued != 0 {
		t.Errorf("%d renders still queued", queued)
	}
}

func TestWebsocketTransport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l, httpServer := webServer(ctx, ":0", "")
	ts := httptest.NewServer(httpServer.Handler)
	defer ts.Close()

	irpcServer := newIrpcServer(newRenderScheduler(render.Service{}, 1))
	defer irpcServer.Close()
	go irpcServer.Serve(l)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	client := &remote.Client{Dial: func(ctx context.Context) (net.Conn, error) {
		c, _, err := websocket.Dial(ctx, wsURL, nil)
		if err != nil {
			return nil, err
		}
		return websocket.NetConn(ctx, c, websocket.MessageBinary), nil
	}}

	p := buddha.Params{
		Width:      6,
		Height:     4,
		Samples:    2,
		Region:     buddha.Full,
		Iterations: []int{10, 10, 10},
		Seed:       5,
	}
	img, err := client.Render(ctx, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("bounds = %v, want 6x4", b)
	}

	if l.Addr().Network() != "ws" {
		t.Errorf("listener network = %q", l.Addr().Network())
	}
}
