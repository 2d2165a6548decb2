package vector

import (
	"math"

	"github.com/golang/geo/s1"

	"github.com/lixenwraith/vector/coerce"
	"github.com/lixenwraith/vector/vmath"
)

// Add returns v + o, kind chosen by resultKind
func (v *Vector) Add(o *Vector) *Vector {
	return &Vector{p: vmath.V3FAdd(v.p, o.p), kind: resultKind(v.Kind(), o.Kind())}
}

// Sub returns v - o, kind chosen by resultKind
func (v *Vector) Sub(o *Vector) *Vector {
	return &Vector{p: vmath.V3FSub(v.p, o.p), kind: resultKind(v.Kind(), o.Kind())}
}

// SubAssign subtracts o from v in place
func (v *Vector) SubAssign(o *Vector) {
	v.p = vmath.V3FSub(v.p, o.p)
}

// Cross returns the cross product v × o
func (v *Vector) Cross(o *Vector) *Vector {
	return &Vector{p: vmath.V3FCross(v.p, o.p), kind: resultKind(v.Kind(), o.Kind())}
}

// Neg returns -v
func (v *Vector) Neg() *Vector {
	return &Vector{p: vmath.V3FNeg(v.p), kind: unaryKind(v.Kind())}
}

// Scale returns v * k
func (v *Vector) Scale(k float64) *Vector {
	return &Vector{p: vmath.V3FScale(v.p, k), kind: unaryKind(v.Kind())}
}

// Dot returns the scalar product, symmetric in its operands
func (v *Vector) Dot(o *Vector) float64 {
	return vmath.V3FDot(v.p, o.p)
}

// Abs returns the Euclidean norm, equal to R
func (v *Vector) Abs() float64 {
	return vmath.V3FMag(v.p)
}

// Angle returns the unsigned angle between v and o
// Zero vectors produce a zero angle
func (v *Vector) Angle(o *Vector) s1.Angle {
	cross := vmath.V3FMag(vmath.V3FCross(v.p, o.p))
	return s1.Angle(math.Atan2(cross, vmath.V3FDot(v.p, o.p))) * s1.Radian
}

func unaryKind(k Kind) Kind {
	if k.Combine(k) {
		return k
	}
	return Base
}

// --- Dynamic dispatch ---

// Op is a binary operator reachable through Apply
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpSubAssign
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpSubAssign:
		return "-="
	}
	return "?"
}

// Apply evaluates left op right for a dynamically typed right operand
//
// OpMul scales by a numeric right operand and takes the cross product with a vector one.
// OpSubAssign mutates left and returns it. Unsupported operands yield an *OperandError.
func Apply(op Op, left *Vector, right any) (*Vector, error) {
	if op == OpMul {
		if k, ok := coerce.Number(right); ok {
			return left.Scale(k), nil
		}
	}

	o, ok := right.(*Vector)
	if !ok || o == nil {
		return nil, &OperandError{Op: op, Left: left.TypeName(), Right: coerce.TypeName(right)}
	}

	switch op {
	case OpAdd:
		return left.Add(o), nil
	case OpSub:
		return left.Sub(o), nil
	case OpMul:
		return left.Cross(o), nil
	case OpSubAssign:
		left.SubAssign(o)
		return left, nil
	}
	return nil, &OperandError{Op: op, Left: left.TypeName(), Right: coerce.TypeName(right)}
}

// DotOf computes v · other for a dynamically typed argument
func DotOf(v *Vector, other any) (float64, error) {
	o, ok := other.(*Vector)
	if !ok || o == nil {
		return 0, &ValueError{Msg: "Vector.dot takes another Vector as an argument, got " + coerce.TypeName(other)}
	}
	return v.Dot(o), nil
}
