// Package coerce turns caller-supplied collections into exactly three float64 values
//
// Inputs are matched against two capabilities in priority order: Sequence (length plus
// indexed access) and Iterable (pull-based production with an end signal). Anything else
// is rejected with a TypeError naming the concrete type.
package coerce

import (
	"iter"
	"reflect"
)

// Sequence supports a length query and indexed element access
type Sequence interface {
	Len() int
	At(i int) any
}

// Iterator produces values until it reports false
type Iterator interface {
	Next() (any, bool)
}

// Iterable hands out a fresh Iterator
type Iterable interface {
	Iter() Iterator
}

// IteratorFunc adapts a plain function to Iterator
type IteratorFunc func() (any, bool)

func (f IteratorFunc) Next() (any, bool) { return f() }

// maxPull bounds Iterator consumption: 3 values plus one overflow probe
const maxPull = 4

// Triple extracts three numbers from v; prefix names the value in error messages
func Triple(prefix string, v any) ([3]float64, error) {
	if seq, ok := AsSequence(v); ok {
		return FromSequence(prefix, seq)
	}
	if it, stop, ok := AsIterator(v); ok {
		defer stop()
		return FromIterator(prefix, it)
	}
	return [3]float64{}, shapeError(prefix, v)
}

// FromSequence reads the length first, then elements 0, 1, 2 in order
func FromSequence(prefix string, seq Sequence) ([3]float64, error) {
	var out [3]float64
	if n := seq.Len(); n != len(out) {
		return [3]float64{}, &ArityError{Prefix: prefix, Got: n}
	}
	for i := range out {
		v := seq.At(i)
		f, ok := Number(v)
		if !ok {
			return [3]float64{}, elementError(prefix, v, i)
		}
		out[i] = f
	}
	return out, nil
}

// FromIterator pulls at most maxPull values; a 4th value is reported as "more"
// without draining the rest
func FromIterator(prefix string, it Iterator) ([3]float64, error) {
	var out [3]float64
	for i := range out {
		v, ok := it.Next()
		if !ok {
			return [3]float64{}, &ArityError{Prefix: prefix, Got: i}
		}
		f, ok := Number(v)
		if !ok {
			return [3]float64{}, elementError(prefix, v, i)
		}
		out[i] = f
	}
	if _, ok := it.Next(); ok {
		return [3]float64{}, &ArityError{Prefix: prefix, More: true}
	}
	return out, nil
}

// AsSequence reports whether v has the Sequence capability
// Go slices, arrays and pointers to arrays qualify; strings do not
func AsSequence(v any) (Sequence, bool) {
	if seq, ok := v.(Sequence); ok {
		return seq, true
	}
	if v == nil {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() && rv.Elem().Kind() == reflect.Array {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return reflectSequence{rv}, true
	}
	return nil, false
}

// AsIterator reports whether v has the Iterable capability
// The returned stop func must be called once extraction is done
func AsIterator(v any) (Iterator, func(), bool) {
	switch s := v.(type) {
	case Iterator:
		return s, noop, true
	case Iterable:
		return s.Iter(), noop, true
	case iter.Seq[any]:
		return pullSeq(s)
	case iter.Seq[float64]:
		return pullSeq(s)
	case iter.Seq[int]:
		return pullSeq(s)
	case func(func(any) bool):
		return pullSeq(iter.Seq[any](s))
	case func(func(float64) bool):
		return pullSeq(iter.Seq[float64](s))
	case func(func(int) bool):
		return pullSeq(iter.Seq[int](s))
	case nil:
		return nil, noop, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Chan && rv.Type().ChanDir()&reflect.RecvDir != 0 && !rv.IsNil() {
		return chanIterator{rv}, noop, true
	}
	return nil, noop, false
}

func noop() {}

func pullSeq[T any](seq iter.Seq[T]) (Iterator, func(), bool) {
	next, stop := iter.Pull(seq)
	return IteratorFunc(func() (any, bool) {
		v, ok := next()
		if !ok {
			return nil, false
		}
		return v, true
	}), stop, true
}

type reflectSequence struct {
	rv reflect.Value
}

func (s reflectSequence) Len() int { return s.rv.Len() }

func (s reflectSequence) At(i int) any { return s.rv.Index(i).Interface() }

// chanIterator receives until the channel is closed
type chanIterator struct {
	rv reflect.Value
}

func (c chanIterator) Next() (any, bool) {
	v, ok := c.rv.Recv()
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}
