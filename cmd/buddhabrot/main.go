// Command buddhabrot renders a Buddhabrot image on the local machine.
//
// Every color channel draws width*height*samples random points of the
// region and counts where the orbits of the escaping ones pass. The counts
// of the three channels become the red, green and blue components.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/superhawk610/bar"

	buddha "github.com/salindersidhu/Buddhabrot"
	"github.com/salindersidhu/Buddhabrot/imgfile"
	"github.com/salindersidhu/Buddhabrot/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	params := buddha.DefaultParams()
	params.RegisterFlags(flag.CommandLine)
	filename := flag.String("o", "out.ppm", "output image (.ppm, .png, .tif, .bmp)")
	verbose := flag.Bool("v", false, "show a progress bar and the elapsed time")
	flag.Parse()

	if _, err := imgfile.FormatOf(*filename); err != nil {
		return err
	}

	var opts []render.Option
	if *verbose {
		opts = append(opts, render.WithProgress(progressBar(bar.New(100))))
	}
	r, err := render.New(params, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("generating %dx%d image of %s, please wait...", params.Width, params.Height, params.Region)
	start := time.Now()
	img, err := r.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if *verbose {
		log.Printf("time elapsed: %s", time.Since(start).Round(time.Millisecond))
		log.Printf("peak count: %d", r.Max())
	}

	if err := imgfile.Save(*filename, img); err != nil {
		return fmt.Errorf("could not write %s: %w", *filename, err)
	}
	log.Printf("image saved to %s", *filename)
	return nil
}

// ticker is the part of *bar.Bar that progressBar drives.
type ticker interface {
	Tick()
	Done()
}

// progressBar returns a ProgressFunc advancing b by one tick per whole
// percent. b is done once the render reaches 100.
func progressBar(b ticker) buddha.ProgressFunc {
	shown := 0
	return func(percent float64) {
		for shown < int(percent) {
			b.Tick()
			shown++
		}
		if shown == 100 {
			b.Done()
			shown++
		}
	}
}
