// spheretool builds the panorama sphere mesh and inspects or exports it.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/quadsphere/internal/config"
	"github.com/Faultbox/quadsphere/internal/logger"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

func main() {
	config.ParseFlags()
	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}
	switch args[0] {
	case "help", "-h", "--help":
		printUsage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(cfg)
	case "check":
		cmdCheck(cfg)
	case "dump":
		cmdDump(cfg, args)
	case "uvmap", "plot":
		cmdUVMap(cfg, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spheretool - panorama sphere mesh utility

Usage:
  spheretool [flags] <command> [options]

Flags:
  -config <file>   Config file (default $QUADSPHERE_CONFIG, then ./spheretool.yaml)
  -divs <n>        Subdivisions per cube edge
  -out <dir>       Output directory
  -size <px>       uvmap image size
  -debug           Debug logging

Commands:
  info                    Show mesh sizes, layout and projections
  check                   Verify the mesh invariants
  dump [file]             Write the binary block and its layout manifest
  uvmap [projection...]   Plot the wireframe in texture space (all = every projection)

Examples:
  spheretool -divs 16 info
  spheretool -out ./mesh dump
  spheretool -size 2048 uvmap equi merc`)
}

// buildSphere builds the mesh described by cfg, exiting on failure.
func buildSphere(cfg *config.Config) *quadsphere.Sphere {
	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := quadsphere.New(cfg.Sphere.Divisions,
		quadsphere.WithCatalog(catalog),
		quadsphere.WithLogger(logger.Named("quadsphere")),
	)
	if err := s.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if s.Divisions() != cfg.Sphere.Divisions {
		logger.Log.Info("divisions rounded",
			zap.Int("requested", cfg.Sphere.Divisions),
			zap.Int("used", s.Divisions()),
		)
	}
	return s
}

func cmdInfo(cfg *config.Config) {
	s := buildSphere(cfg)
	l := s.Layout()

	fmt.Printf("Divisions:  %d\n", s.Divisions())
	fmt.Printf("Vertices:   %d (%d duplicate pairs)\n", s.VertexCount(), len(s.Duplicates()))
	fmt.Printf("Quads:      %d\n", s.QuadIndexCount()/4)
	fmt.Printf("Lines:      %d\n", s.LineIndexCount()/2)
	fmt.Printf("Size:       %.2f MB\n", float64(l.TotalSize)/(1024*1024))
	fmt.Println()
	fmt.Println("Layout:")
	fmt.Printf("  %-10s %10s %10s\n", "block", "offset", "bytes")
	fmt.Printf("  %-10s %10d %10d\n", "vertices", l.VertexOffset, l.VertexSize)
	for _, info := range s.Projections() {
		fmt.Printf("  %-10s %10d %10d\n", info.Name, l.TexCoordOffsets[info.Slot], l.TexCoordSize)
	}
	fmt.Printf("  %-10s %10d %10d\n", "lines", l.LineIndexOffset, l.LineIndexSize)
	fmt.Printf("  %-10s %10d %10d\n", "quads", l.QuadIndexOffset, l.QuadIndexSize)
	fmt.Println()
	fmt.Println("Projections:")
	for _, info := range s.Catalog().Supported() {
		fmt.Printf("  %-5s slot %d  max %gx%g\n", info.Name, info.Slot, info.MaxFov.Width, info.MaxFov.Height)
	}
}

func cmdCheck(cfg *config.Config) {
	s := buildSphere(cfg)
	if err := s.Validate(); err != nil {
		logger.Log.Error("mesh check failed", zap.Int("divisions", s.Divisions()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d divisions, %d vertices, %d quads\n", s.Divisions(), s.VertexCount(), s.QuadIndexCount()/4)
}
