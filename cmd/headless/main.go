package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"canvas-toys/internal/app"
	"canvas-toys/internal/core"
	"canvas-toys/internal/sims/conway"
	_ "canvas-toys/internal/sims/orbit"
	"canvas-toys/pkg/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "number of steps to run")
	every := flag.Int("every", 10, "print the parameter snapshot every N steps (0 = only at the end)")
	ascii := flag.Bool("ascii", false, "print the final life board as text")
	out := flag.String("png", "", "write the final frame to this PNG file")
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Set.Map())
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)
	ctl := app.NewController(sim, cfg.Seed, nil)

	for i := 1; i <= *steps; i++ {
		// Every tick steps: the run is not paced by wall time.
		ctl.StepOnce()
		if err := ctl.Tick(); err != nil {
			log.Fatalf("step %d: %v", i, err)
		}
		if *every > 0 && i%*every == 0 {
			log.Printf("step %d: %s", i, summary(sim))
		}
	}
	fmt.Printf("%s after %d steps: %s\n", sim.Name(), ctl.Steps(), summary(sim))

	if *ascii {
		if board, ok := sim.(*conway.Life); ok {
			size := board.Size()
			fmt.Print(life.Render(life.Bounds{W: size.W, H: size.H}, board.Alive()))
		} else {
			log.Printf("-ascii is only supported for the life sim")
		}
	}
	if *out != "" {
		if err := writePNG(*out, sim); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *out)
	}
}

func summary(sim core.Sim) string {
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return ""
	}
	var parts []string
	for _, g := range provider.Parameters().Groups {
		for _, p := range g.Params {
			parts = append(parts, p.Key+"="+p.Value)
		}
	}
	return strings.Join(parts, " ")
}

func writePNG(path string, sim core.Sim) error {
	size := sim.Size()
	img := image.NewGray(image.Rect(0, 0, size.W, size.H))
	copy(img.Pix, sim.Cells())
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
