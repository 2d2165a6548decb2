// Package vector implements a 3D vector value with synchronized cartesian and spherical views
//
// Cartesian components are the only stored state. Spherical components (r, lat, lon) are
// recomputed on every read through vmath, and every spherical write converts back to
// cartesian before it lands. Whole-triple writes go through the coerce protocol and are
// atomic: a failed write leaves the vector untouched.
//
// A Vector is not safe for concurrent mutation; independent vectors need no coordination.
package vector

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vector/coerce"
	"github.com/lixenwraith/vector/vmath"
)

// Error message prefixes for the coerce protocol call sites
const (
	ctxConstructor = "Vector constructor first argument"
	ctxCartesian   = "Vector cartesian component"
	ctxSpherical   = "Vector spherical component"
)

// Vector is a 3D vector; the zero value is the origin of kind Base
type Vector struct {
	p    vmath.Vec3F
	kind Kind
}

// New constructs a Base vector from a Sequence or Iterable of three numbers
func New(v any) (*Vector, error) {
	return NewOf(Base, v)
}

// Of constructs a Base vector from explicit components
func Of(x, y, z float64) *Vector {
	return OfKind(Base, x, y, z)
}

// Kind returns the vector's variant
func (v *Vector) Kind() Kind {
	if v.kind == nil {
		return Base
	}
	return v.kind
}

// TypeName reports the kind name, used when a vector appears in an error message
func (v *Vector) TypeName() string {
	if v == nil {
		return "nil"
	}
	return v.Kind().Name()
}

// Clone returns an independent copy with the same kind
func (v *Vector) Clone() *Vector {
	c := *v
	return &c
}

// Len and At make a vector a coerce.Sequence over (x, y, z), so New(v) copies v
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return 3
}

func (v *Vector) At(i int) any { return v.Cart()[i] }

// --- Cartesian ---

// Cart returns a snapshot of (x, y, z)
func (v *Vector) Cart() [3]float64 {
	return vmath.V3FArray(v.p)
}

// SetCart replaces (x, y, z) from any input accepted by coerce.Triple
func (v *Vector) SetCart(value any) error {
	c, err := coerce.Triple(ctxCartesian, value)
	if err != nil {
		return err
	}
	v.p = vmath.V3FFromArray(c)
	return nil
}

func (v *Vector) X() float64 { return v.p.X }
func (v *Vector) Y() float64 { return v.p.Y }
func (v *Vector) Z() float64 { return v.p.Z }

func (v *Vector) SetX(x float64) { v.p.X = x }
func (v *Vector) SetY(y float64) { v.p.Y = y }
func (v *Vector) SetZ(z float64) { v.p.Z = z }

// --- Spherical ---

// Sph returns (r, lat, lon) computed from the current cartesian state
func (v *Vector) Sph() [3]float64 {
	return vmath.V3FToSph(v.p)
}

// SetSph validates (r, lat, lon) and stores its cartesian equivalent
func (v *Vector) SetSph(value any) error {
	s, err := coerce.Triple(ctxSpherical, value)
	if err != nil {
		return err
	}
	v.p = vmath.V3FFromSph(s)
	return nil
}

func (v *Vector) R() float64   { return v.Sph()[0] }
func (v *Vector) Lat() float64 { return v.Sph()[1] }
func (v *Vector) Lon() float64 { return v.Sph()[2] }

func (v *Vector) SetR(r float64)     { v.setSphComponent(0, r) }
func (v *Vector) SetLat(lat float64) { v.setSphComponent(1, lat) }
func (v *Vector) SetLon(lon float64) { v.setSphComponent(2, lon) }

// setSphComponent reads the full spherical triple, replaces one entry and converts back
func (v *Vector) setSphComponent(i int, value float64) {
	s := v.Sph()
	s[i] = value
	v.p = vmath.V3FFromSph(s)
}

// --- Dynamic field access ---

// Fields lists the names accepted by Get and Set
var Fields = []string{"x", "y", "z", "r", "lat", "lon"}

// ErrUnknownField is wrapped by Get and Set for names outside Fields
var ErrUnknownField = errors.New("unknown vector field")

// Get returns one named component
func (v *Vector) Get(field string) (float64, error) {
	switch field {
	case "x":
		return v.X(), nil
	case "y":
		return v.Y(), nil
	case "z":
		return v.Z(), nil
	case "r":
		return v.R(), nil
	case "lat":
		return v.Lat(), nil
	case "lon":
		return v.Lon(), nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownField, field)
}

// Set assigns one named component from a dynamic value
// Non-numeric values are rejected before any state changes
func (v *Vector) Set(field string, value any) error {
	var set func(float64)
	switch field {
	case "x":
		set = v.SetX
	case "y":
		set = v.SetY
	case "z":
		set = v.SetZ
	case "r":
		set = v.SetR
	case "lat":
		set = v.SetLat
	case "lon":
		set = v.SetLon
	default:
		return fmt.Errorf("%w %q", ErrUnknownField, field)
	}

	f, ok := coerce.Number(value)
	if !ok {
		return coerce.TypeErrorf("Vector.%s must be numeric, got %s", field, coerce.TypeName(value))
	}
	set(f)
	return nil
}
