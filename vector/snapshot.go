package vector

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/vector/toml"
	"github.com/lixenwraith/vector/vmath"
)

// Binary layout: [Format:1][X:8][Y:8][Z:8], float bits big-endian
const (
	binaryFormat byte = 0x01
	binarySize        = 1 + 3*8
)

var (
	ErrBinaryFormat = errors.New("vector: unknown binary format")
	ErrBinarySize   = errors.New("vector: invalid binary length")
	ErrUnknownKind  = errors.New("vector: unknown kind")
)

// MarshalBinary implements encoding.BinaryMarshaler; the kind is not encoded
func (v *Vector) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binarySize)
	buf[0] = binaryFormat
	binary.BigEndian.PutUint64(buf[1:9], math.Float64bits(v.p.X))
	binary.BigEndian.PutUint64(buf[9:17], math.Float64bits(v.p.Y))
	binary.BigEndian.PutUint64(buf[17:25], math.Float64bits(v.p.Z))
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler
// The receiver keeps its kind and is left untouched on error
func (v *Vector) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBinarySize, len(data), binarySize)
	}
	if data[0] != binaryFormat {
		return fmt.Errorf("%w: 0x%02x", ErrBinaryFormat, data[0])
	}
	v.p = vmath.Vec3F{
		X: math.Float64frombits(binary.BigEndian.Uint64(data[1:9])),
		Y: math.Float64frombits(binary.BigEndian.Uint64(data[9:17])),
		Z: math.Float64frombits(binary.BigEndian.Uint64(data[17:25])),
	}
	return nil
}

// Snapshot is the persisted form of a vector; spherical values are derived and never stored
type Snapshot struct {
	Kind string     `toml:"kind"`
	Cart [3]float64 `toml:"cart"`
}

// Snapshot captures the kind name and cartesian state
func (v *Vector) Snapshot() Snapshot {
	return Snapshot{Kind: v.TypeName(), Cart: v.Cart()}
}

// Restore rebuilds a vector from a snapshot
// Kinds other than Base must be supplied so their names can be resolved
func Restore(s Snapshot, kinds ...Kind) (*Vector, error) {
	k, ok := findKind(s.Kind, kinds)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
	}
	return &Vector{p: vmath.V3FFromArray(s.Cart), kind: k}, nil
}

// MarshalTOML encodes the snapshot as a TOML document
func (v *Vector) MarshalTOML() ([]byte, error) {
	return toml.Marshal(v.Snapshot())
}

// UnmarshalTOML decodes a TOML snapshot; both keys are required
func UnmarshalTOML(data []byte, kinds ...Kind) (*Vector, error) {
	parsed, err := toml.NewParser(data).Parse()
	if err != nil {
		return nil, fmt.Errorf("vector snapshot: %w", err)
	}
	for _, key := range []string{"kind", "cart"} {
		if _, ok := parsed[key]; !ok {
			return nil, fmt.Errorf("vector snapshot: missing key %q", key)
		}
	}

	var s Snapshot
	if err := toml.Decode(parsed, &s); err != nil {
		return nil, fmt.Errorf("vector snapshot: %w", err)
	}
	return Restore(s, kinds...)
}
