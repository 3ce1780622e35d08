// cliclient is a CLI client for the Buddhabrot render server.
// It sends the render parameters to the server, reports progress while the
// server renders and saves the returned image.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	buddha "github.com/salindersidhu/Buddhabrot"
	"github.com/salindersidhu/Buddhabrot/imgfile"
	"github.com/salindersidhu/Buddhabrot/remote"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the render server, requests a render and saves the result.
// Returns an error if any step fails.
func run() error {
	params := buddha.DefaultParams()
	params.RegisterFlags(flag.CommandLine)
	addr := flag.String("addr", "localhost:8081", "tcp address of the render server")
	wsURL := flag.String("ws", "", "websocket url of the render server, e.g. ws://localhost:8080/ws; overrides -addr")
	filename := flag.String("o", "buddhabrot.png", "output image (.ppm, .png, .tif, .bmp)")
	flag.Parse()

	// Step 1: Fail early on parameters the server would reject anyway
	if err := params.Validate(); err != nil {
		return err
	}
	if _, err := imgfile.FormatOf(*filename); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Step 2: Connect to the render server
	var conn net.Conn
	var err error
	if *wsURL != "" {
		log.Printf("Connecting to render server at %s...", *wsURL)
		conn, err = dialWebsocket(ctx, *wsURL)
	} else {
		log.Printf("Connecting to render server on %s...", *addr)
		var d net.Dialer
		conn, err = d.DialContext(ctx, "tcp", *addr)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}

	// Step 3: Serve the render job, which the server calls for the parameters,
	// progress reports and finally the image
	job := remote.NewJob(params, func(percent float64) {
		log.Printf("Progress: %.0f%%", percent)
	})
	ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(buddha.NewRenderJobIrpcService(job)))
	defer ep.Close()

	log.Printf("Waiting for the server to render...")
	img, err := job.Wait(ctx, ep)
	if err != nil {
		return fmt.Errorf("job.Wait: %w", err)
	}

	// Step 4: Save the rendered image
	log.Printf("Saving rendered image to %q...", *filename)
	if err := imgfile.Save(*filename, img); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	log.Printf("Fully rendered image saved to %q", *filename)
	return nil
}

// dialWebsocket opens a websocket to url and returns it as a connection
// carrying binary messages.
func dialWebsocket(ctx context.Context, url string) (net.Conn, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return websocket.NetConn(ctx, c, websocket.MessageBinary), nil
}
