package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/quadsphere/internal/config"
	"github.com/Faultbox/quadsphere/internal/logger"
	"github.com/Faultbox/quadsphere/internal/uvplot"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

// plotNames expands the uvmap arguments into projection names.
func plotNames(s *quadsphere.Sphere, args []string, fallback string) []string {
	if len(args) == 0 {
		return []string{fallback}
	}
	if len(args) == 1 && args[0] == "all" {
		var names []string
		for _, info := range s.Projections() {
			names = append(names, info.Name)
		}
		return names
	}
	return args
}

func cmdUVMap(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("uvmap", flag.ExitOnError)
	width := fs.Float64("w", 1, "Line width in pixels")
	fs.Parse(args)

	s := buildSphere(cfg)
	opt := uvplot.DefaultOptions()
	opt.Size = cfg.Output.PlotSize
	opt.LineWidth = float32(*width)

	failed := 0
	for _, name := range plotNames(s, fs.Args(), cfg.Output.PlotProjection) {
		img, st, err := uvplot.Sphere(s, name, opt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}

		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("uvmap-%s-%d.png", name, s.Divisions()))
		if err := uvplot.SavePNG(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
			continue
		}

		logger.Log.Debug("uvmap written",
			zap.String("projection", name),
			zap.Int("drawn", st.Drawn),
			zap.Int("out_of_view", st.OutOfView),
			zap.Int("wrapped", st.Wrapped),
		)
		fmt.Printf("Wrote: %s (%d segments, %d out of view, %d across the seam)\n",
			path, st.Drawn, st.OutOfView, st.Wrapped)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
