package vector

import (
	"fmt"
	"hash/maphash"
)

// Equal reports whether both vectors hold the same (x, y, z), regardless of kind
func (v *Vector) Equal(o *Vector) bool {
	return v.p == o.p
}

// Key returns (x, y, z) as a comparable array, usable as a map key
func (v *Vector) Key() [3]float64 {
	return v.Cart()
}

var hashSeed = maphash.MakeSeed()

// HashTriple hashes an ordered triple the way Go hashes a [3]float64 map key
// Stable within a process only
func HashTriple(t [3]float64) uint64 {
	return maphash.Comparable(hashSeed, t)
}

// Hash returns HashTriple(v.Key()); equal vectors hash equally
func (v *Vector) Hash() uint64 {
	return HashTriple(v.Key())
}

// String renders the plain form: [x, y, z>
func (v *Vector) String() string {
	return fmt.Sprintf("[%f, %f, %f>", v.p.X, v.p.Y, v.p.Z)
}

// GoString renders the constructor form used by %#v: vector.Vector([x, y, z])
func (v *Vector) GoString() string {
	return fmt.Sprintf("%s([%f, %f, %f])", v.TypeName(), v.p.X, v.p.Y, v.p.Z)
}

// Set is a collection of distinct vectors keyed by (x, y, z)
type Set struct {
	m map[[3]float64]*Vector
}

// NewSet returns a set holding the given vectors; later duplicates are ignored
func NewSet(vs ...*Vector) *Set {
	s := &Set{m: make(map[[3]float64]*Vector, len(vs))}
	for _, v := range vs {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present
func (s *Set) Add(v *Vector) bool {
	if s.m == nil {
		s.m = make(map[[3]float64]*Vector)
	}
	k := v.Key()
	if _, ok := s.m[k]; ok {
		return false
	}
	s.m[k] = v
	return true
}

func (s *Set) Contains(v *Vector) bool {
	_, ok := s.m[v.Key()]
	return ok
}

func (s *Set) Remove(v *Vector) {
	delete(s.m, v.Key())
}

func (s *Set) Len() int { return len(s.m) }
