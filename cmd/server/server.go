// Command server renders Buddhabrot images for remote clients.
// Requests arrive over TCP or over websockets and share one render scheduler.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"

	buddha "github.com/salindersidhu/Buddhabrot"
	"github.com/salindersidhu/Buddhabrot/remote"
	"github.com/salindersidhu/Buddhabrot/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	tcpAddr := flag.String("tcp", ":8081", "tcp listen address")
	httpAddr := flag.String("http", ":8080", "http listen address, serving the websocket endpoint /ws")
	staticDir := flag.String("static", "", "directory of static files served over http")
	renders := flag.Int("renders", 1, "number of renders running at the same time")
	flag.Parse()

	if *renders <= 0 {
		return fmt.Errorf("renders must be positive, got %d", *renders)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// both transports share the scheduler, so all clients queue for the same slots
	scheduler := newRenderScheduler(render.Service{}, *renders)

	// irpc server with onConnect hook running the job each client serves us
	irpcServer := newIrpcServer(scheduler)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, *httpAddr, *staticDir)
	log.Printf("listening on http://localhost%s", *httpAddr)

	errCh := make(chan error, 3)
	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("httpServer: %w", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve tcp: %w", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); !errors.Is(err, irpc.ErrServerClosed) {
			errCh <- fmt.Errorf("server.Serve ws: %w", err)
		}
	}()

	log.Printf("buddhabrot server waiting for tcp and websocket connections")
	select {
	case <-ctx.Done():
		log.Printf("shutting down")
	case err = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if serr := httpServer.Shutdown(shutdownCtx); serr != nil && err == nil {
		err = serr
	}
	// closing the endpoints cancels the renders still running
	irpcServer.Close()
	return err
}

// newIrpcServer returns an irpc server that renders the job of every
// connecting client on r and hangs up once the job is finished.
func newIrpcServer(r buddha.Renderer) *irpc.Server {
	return irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		defer ep.Close()
		log.Printf("got connection from: %s", ep.RemoteAddr())

		// Each client provides a buddha.RenderJob describing the image it wants
		if err := remote.ServeJob(ep.Context(), ep, r); err != nil {
			log.Printf("err: job of client %q: %v", ep.RemoteAddr(), err)
			return
		}
		log.Printf("finished job of client %q", ep.RemoteAddr())
	}))
}
