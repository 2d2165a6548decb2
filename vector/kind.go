package vector

import (
	"github.com/lixenwraith/vector/coerce"
	"github.com/lixenwraith/vector/vmath"
)

// Kind identifies a vector variant
//
// Binary operators consult the left operand's kind: when left.Combine(right) holds, the
// result keeps the left kind, otherwise it falls back to Base. Kinds are compared by identity.
type Kind interface {
	Name() string
	Combine(other Kind) bool
}

type variant struct {
	name string
}

func (k *variant) Name() string { return k.name }

func (k *variant) Combine(other Kind) bool {
	o, ok := other.(*variant)
	return ok && o == k
}

// Base is the kind of vectors created by New and Of
var Base Kind = &variant{name: "vector.Vector"}

// NewKind declares a variant that keeps its kind only when both operands share it
func NewKind(name string) Kind {
	return &variant{name: name}
}

// resultKind picks the kind of a binary operator result
func resultKind(left, right Kind) Kind {
	if left.Combine(right) {
		return left
	}
	return Base
}

// NewOf constructs a vector of kind k from any input accepted by coerce.Triple
func NewOf(k Kind, v any) (*Vector, error) {
	c, err := coerce.Triple(ctxConstructor, v)
	if err != nil {
		return nil, err
	}
	return &Vector{p: vmath.V3FFromArray(c), kind: k}, nil
}

// OfKind constructs a vector of kind k from explicit components
func OfKind(k Kind, x, y, z float64) *Vector {
	return &Vector{p: vmath.Vec3F{X: x, Y: y, Z: z}, kind: k}
}

// findKind resolves a kind name against Base and the supplied kinds
func findKind(name string, kinds []Kind) (Kind, bool) {
	if name == Base.Name() {
		return Base, true
	}
	for _, k := range kinds {
		if k != nil && k.Name() == name {
			return k, true
		}
	}
	return nil, false
}
