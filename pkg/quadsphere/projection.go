package quadsphere

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/quadsphere/pkg/math"
	"github.com/Faultbox/quadsphere/pkg/pictype"
)

// Coordinates outside a projection's field of view are pushed just past the
// unit square on the side the point lies.
const (
	lowMark  = -0.01
	highMark = 1.01

	// below this, sin(za) or cos(lat) is treated as zero
	onAxis = 1e-4
)

// angles describes a direction for the mappers. Viewing toward +Z with +X
// left and +Y up: xa is the horizontal angle from +Z, ya the angle down from
// +Y, za the angle away from +Z. The trigonometric terms come straight from
// the components.
type angles struct {
	xa, ya, za     float64
	sinLat, cosLat float64
	sinZa, cosZa   float64
	// radial direction in the image plane, (0, 0) on the Z axis
	sx, sy float64
}

func anglesOf(v math.Vec3) angles {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	a := angles{
		ya:     gomath.Acos(clamp1(y)),
		za:     gomath.Acos(clamp1(z)),
		sinLat: y,
		cosLat: gomath.Sqrt(x*x + z*z),
		sinZa:  gomath.Sqrt(x*x + y*y),
		cosZa:  z,
	}
	// xa is undefined at the poles; 0 puts them on the centre line
	if a.cosLat >= onAxis {
		a.xa = -gomath.Atan2(x, z)
	}
	if a.sinZa >= onAxis {
		a.sx = -x / a.sinZa
		a.sy = -y / a.sinZa
	}
	return a
}

// towards keeps a's angles but takes the radial direction of v.
func (a angles) towards(v math.Vec3) angles {
	b := anglesOf(v)
	a.sx, a.sy = b.sx, b.sy
	return a
}

func clamp1(v float64) float64 {
	return gomath.Max(-1, gomath.Min(1, v))
}

func mark(v float64) float32 {
	if v > 0 {
		return highMark
	}
	return lowMark
}

func clip(v float64) float32 {
	return float32(gomath.Max(lowMark, gomath.Min(highMark, v)))
}

// radial places a point at distance scale·(sx, sy) from the image centre.
func radial(scale float64, a angles) math.Vec2 {
	return math.Vec2{X: clip(0.5 + scale*a.sx), Y: clip(0.5 + scale*a.sy)}
}

func radialMark(a angles) math.Vec2 {
	return math.Vec2{X: mark(a.sx), Y: mark(a.sy)}
}

func wrapMark(a angles) math.Vec2 {
	return math.Vec2{X: mark(a.xa), Y: mark(a.ya - 0.5*gomath.Pi)}
}

func equirectS(a angles) float32 {
	return clip(0.5 + 0.5*a.xa/gomath.Pi)
}

// seamKind selects how a projection is split along the wrap seam.
type seamKind int

const (
	// s jumps between 0 and 1 across the meridian behind the viewer
	wrapSeam seamKind = iota
	// continuous except at the antipode of +Z
	radialSeam
)

type projector struct {
	info   pictype.Info
	seam   seamKind
	mapDir func(a angles) math.Vec2
}

var requiredTypes = []pictype.Type{
	pictype.Rectilinear,
	pictype.Fisheye,
	pictype.Equirectangular,
	pictype.Cylindrical,
	pictype.Equiangular,
	pictype.Mercator,
	pictype.Stereographic,
}

// newProjectors builds one mapper per supported catalog entry, in slot
// order. Limits are fixed here, before any vertex is mapped.
func newProjectors(cat pictype.Catalog) ([]projector, error) {
	infos := cat.Supported()
	projs := make([]projector, 0, len(infos))
	seen := make(map[pictype.Type]bool)
	for i, info := range infos {
		if info.Slot != i {
			return nil, fmt.Errorf("%s in slot %d, expected %d: %w", info.Name, info.Slot, i, ErrSlotOrder)
		}
		p, err := newProjector(info)
		if err != nil {
			return nil, err
		}
		projs = append(projs, p)
		seen[info.Type] = true
	}
	for _, t := range requiredTypes {
		if !seen[t] {
			return nil, fmt.Errorf("%v: %w", t, ErrMissingProjection)
		}
	}
	return projs, nil
}

func newProjector(info pictype.Info) (projector, error) {
	half := degToRad(0.5 * info.MaxFov.Width)
	lat := degToRad(0.5 * info.MaxFov.Height)
	badFov := func() (projector, error) {
		return projector{}, fmt.Errorf("%s %gx%g: %w",
			info.Name, info.MaxFov.Width, info.MaxFov.Height, pictype.ErrInvalidFov)
	}

	switch info.Type {
	case pictype.Rectilinear:
		if half <= 0 || half >= 0.5*gomath.Pi {
			return badFov()
		}
		norm := 0.5 / gomath.Tan(half)
		return projector{info, wrapSeam, func(a angles) math.Vec2 {
			if a.za > half {
				return radialMark(a)
			}
			return radial(norm*a.sinZa/a.cosZa, a)
		}}, nil

	case pictype.Fisheye:
		if half <= 0 || half > gomath.Pi {
			return badFov()
		}
		norm := 0.5 / gomath.Sin(0.5*half)
		return projector{info, radialSeam, func(a angles) math.Vec2 {
			if a.za > half {
				return radialMark(a)
			}
			return radial(norm*gomath.Sqrt(0.5*(1-a.cosZa)), a)
		}}, nil

	case pictype.Equirectangular:
		return projector{info, wrapSeam, func(a angles) math.Vec2 {
			return math.Vec2{X: equirectS(a), Y: clip(a.ya / gomath.Pi)}
		}}, nil

	case pictype.Cylindrical:
		if lat <= 0 || lat >= 0.5*gomath.Pi {
			return badFov()
		}
		norm := 0.5 / gomath.Tan(lat)
		return projector{info, wrapSeam, func(a angles) math.Vec2 {
			if gomath.Abs(a.ya-0.5*gomath.Pi) > lat {
				return wrapMark(a)
			}
			return math.Vec2{X: equirectS(a), Y: clip(0.5 - norm*a.sinLat/a.cosLat)}
		}}, nil

	case pictype.Equiangular:
		if half <= 0 || half > gomath.Pi {
			return badFov()
		}
		norm := 0.5 / half
		return projector{info, radialSeam, func(a angles) math.Vec2 {
			if a.za > half {
				return radialMark(a)
			}
			return radial(norm*a.za, a)
		}}, nil

	case pictype.Mercator:
		if lat <= 0 || lat >= 0.5*gomath.Pi {
			return badFov()
		}
		norm := 0.5 / gomath.Log((gomath.Sin(lat)+1)/gomath.Cos(lat))
		return projector{info, wrapSeam, func(a angles) math.Vec2 {
			if gomath.Abs(a.ya-0.5*gomath.Pi) > lat || a.cosLat < onAxis {
				return wrapMark(a)
			}
			return math.Vec2{X: equirectS(a), Y: clip(0.5 - norm*gomath.Log((a.sinLat+1)/a.cosLat))}
		}}, nil

	case pictype.Stereographic:
		if half <= 0 || half >= gomath.Pi {
			return badFov()
		}
		norm := 0.5 / gomath.Tan(0.5*half)
		return projector{info, radialSeam, func(a angles) math.Vec2 {
			if a.za > half {
				return radialMark(a)
			}
			return radial(norm*gomath.Tan(0.5*a.za), a)
		}}, nil
	}

	return projector{}, fmt.Errorf("no mapping for %s: %w", info.Name, pictype.ErrUnknownProjection)
}

func degToRad(d float64) float64 {
	return d * gomath.Pi / 180
}
