package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/quadsphere/pkg/quadsphere"
)

func TestWriteDump(t *testing.T) {
	s := quadsphere.New(4)
	path := filepath.Join(t.TempDir(), "out", "sphere.bin")

	manifestPath, err := writeDump(s, path)
	if err != nil {
		t.Fatalf("writeDump failed: %v", err)
	}
	if filepath.Base(manifestPath) != "sphere.yaml" {
		t.Errorf("unexpected manifest path %s", manifestPath)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("block not written: %v", err)
	}
	if int(info.Size()) != s.Layout().TotalSize {
		t.Errorf("block is %d bytes, want %d", info.Size(), s.Layout().TotalSize)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest does not parse: %v", err)
	}
	if m.Divisions != 4 || m.TotalSize != s.Layout().TotalSize {
		t.Errorf("unexpected manifest header %+v", m)
	}
	if len(m.TexCoords) != 7 || m.TexCoords[2].Name != "equi" {
		t.Fatalf("unexpected coordinate blocks %+v", m.TexCoords)
	}
	if off, _ := s.TexCoordOffset("equi"); m.TexCoords[2].Offset != off {
		t.Errorf("equi offset %d, want %d", m.TexCoords[2].Offset, off)
	}
	if m.QuadIndices.Count != s.QuadIndexCount() || m.QuadIndices.Offset != s.QuadIndexOffset() {
		t.Errorf("unexpected quad block %+v", m.QuadIndices)
	}
	if m.ByteOrder != "little" && m.ByteOrder != "big" {
		t.Errorf("unexpected byte order %q", m.ByteOrder)
	}
}

func TestWriteDumpFailedSphere(t *testing.T) {
	s := quadsphere.New(quadsphere.MaxDivisions + 1)
	if _, err := writeDump(s, filepath.Join(t.TempDir(), "x.bin")); err == nil {
		t.Error("expected an error for a failed sphere")
	}
}

func TestPlotNames(t *testing.T) {
	s := quadsphere.New(2)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"default", nil, []string{"equi"}},
		{"explicit", []string{"merc", "fish"}, []string{"merc", "fish"}},
		{"all", []string{"all"}, []string{"rect", "fish", "equi", "cyli", "sphr", "merc", "ster"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plotNames(s, tt.args, "equi")
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}
