// Package pictype is the catalog of panorama picture types: their short
// names, numeric codes, maximum fields of view and, for the projections the
// sphere mesh can texture, the slot their coordinate set occupies.
package pictype

import (
	"errors"
	"fmt"
	"sort"
)

// Catalog errors.
var (
	ErrUnknownProjection = errors.New("unknown projection")
	ErrInvalidFov        = errors.New("invalid field of view")
)

// Type is the numeric picture type code.
type Type int

// Picture type codes.
const (
	Unknown Type = iota
	Rectilinear
	Fisheye
	Equirectangular
	Cylindrical
	Equiangular
	Mercator
	Stereographic
	Cubic
)

// String returns the short name of the type.
func (t Type) String() string {
	for _, info := range defaultTable {
		if info.Type == t {
			return info.Name
		}
	}
	return fmt.Sprintf("Unknown(%d)", int(t))
}

// Fov is a field of view in degrees.
type Fov struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Info describes one picture type.
type Info struct {
	Type   Type
	Name   string
	Slot   int // index of the coordinate set, -1 when not texturable
	MaxFov Fov
}

// Supported reports whether the sphere carries coordinates for the type.
func (i Info) Supported() bool {
	return i.Slot >= 0
}

// Catalog resolves projection identifiers.
type Catalog interface {
	Lookup(name string) (Info, bool)
	LookupType(t Type) (Info, bool)
	// Supported lists the texturable types in slot order.
	Supported() []Info
}

var defaultTable = []Info{
	{Rectilinear, "rect", 0, Fov{162, 162}},
	{Fisheye, "fish", 1, Fov{360, 360}},
	{Equirectangular, "equi", 2, Fov{360, 180}},
	{Cylindrical, "cyli", 3, Fov{360, 160}},
	{Equiangular, "sphr", 4, Fov{360, 360}},
	{Mercator, "merc", 5, Fov{360, 160}},
	{Stereographic, "ster", 6, Fov{310, 310}},
	{Cubic, "cube", -1, Fov{360, 180}},
}

// Table is a Catalog backed by a fixed list of types.
type Table struct {
	infos []Info
}

// Default returns the standard catalog.
func Default() *Table {
	infos := make([]Info, len(defaultTable))
	copy(infos, defaultTable)
	return &Table{infos: infos}
}

// Lookup finds a type by its short name.
func (t *Table) Lookup(name string) (Info, bool) {
	for _, info := range t.infos {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

// LookupType finds a type by its numeric code.
func (t *Table) LookupType(typ Type) (Info, bool) {
	for _, info := range t.infos {
		if info.Type == typ {
			return info, true
		}
	}
	return Info{}, false
}

// Supported lists the texturable types in slot order.
func (t *Table) Supported() []Info {
	var out []Info
	for _, info := range t.infos {
		if info.Supported() {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// WithMaxFov returns a copy of the table with the named type's maximum field
// of view replaced.
func (t *Table) WithMaxFov(name string, fov Fov) (*Table, error) {
	if fov.Width <= 0 || fov.Width > 360 || fov.Height <= 0 || fov.Height > 360 {
		return nil, fmt.Errorf("%s %gx%g: %w", name, fov.Width, fov.Height, ErrInvalidFov)
	}
	infos := make([]Info, len(t.infos))
	copy(infos, t.infos)
	for i := range infos {
		if infos[i].Name == name {
			infos[i].MaxFov = fov
			return &Table{infos: infos}, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownProjection)
}
