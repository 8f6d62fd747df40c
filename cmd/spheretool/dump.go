package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/quadsphere/internal/config"
	"github.com/Faultbox/quadsphere/internal/logger"
	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

// manifest describes a dumped block so it can be loaded without this
// package.
type manifest struct {
	Divisions   int             `yaml:"divisions"`
	ByteOrder   string          `yaml:"byte_order"`
	Vertices    block           `yaml:"vertices"`
	TexCoords   []texCoordBlock `yaml:"tex_coords"`
	LineIndices block           `yaml:"line_indices"`
	QuadIndices block           `yaml:"quad_indices"`
	TotalSize   int             `yaml:"total_size"`
}

type block struct {
	Offset int `yaml:"offset"`
	Size   int `yaml:"size"`
	Count  int `yaml:"count"`
}

type texCoordBlock struct {
	Name   string     `yaml:"name"`
	Offset int        `yaml:"offset"`
	Size   int        `yaml:"size"`
	MaxFov [2]float64 `yaml:"max_fov,flow"`
}

func newManifest(s *quadsphere.Sphere) manifest {
	l := s.Layout()
	m := manifest{
		Divisions:   s.Divisions(),
		ByteOrder:   nativeOrder(),
		Vertices:    block{l.VertexOffset, l.VertexSize, s.VertexCount()},
		LineIndices: block{l.LineIndexOffset, l.LineIndexSize, s.LineIndexCount()},
		QuadIndices: block{l.QuadIndexOffset, l.QuadIndexSize, s.QuadIndexCount()},
		TotalSize:   l.TotalSize,
	}
	for _, info := range s.Projections() {
		m.TexCoords = append(m.TexCoords, texCoordBlock{
			Name:   info.Name,
			Offset: l.TexCoordOffsets[info.Slot],
			Size:   l.TexCoordSize,
			MaxFov: [2]float64{info.MaxFov.Width, info.MaxFov.Height},
		})
	}
	return m
}

// writeDump writes the block to path and its manifest next to it.
func writeDump(s *quadsphere.Sphere, path string) (manifestPath string, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(newManifest(s))
	if err != nil {
		return "", err
	}
	manifestPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".yaml"
	return manifestPath, os.WriteFile(manifestPath, data, 0644)
}

func cmdDump(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	fs.Parse(args)

	s := buildSphere(cfg)
	path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("quadsphere-%d.bin", s.Divisions()))
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	manifestPath, err := writeDump(s, path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Log.Debug("dump written", zap.String("path", path), zap.String("manifest", manifestPath))
	fmt.Printf("Wrote: %s (%d bytes)\n", path, s.Layout().TotalSize)
	fmt.Printf("Wrote: %s\n", manifestPath)
}

func nativeOrder() string {
	if binary.NativeEndian.AppendUint16(nil, 1)[0] == 1 {
		return "little"
	}
	return "big"
}
