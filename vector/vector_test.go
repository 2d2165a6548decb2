package vector

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/lixenwraith/vector/coerce"
)

const eps = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearTriple(a, b [3]float64) bool {
	return near(a[0], b[0]) && near(a[1], b[1]) && near(a[2], b[2])
}

func TestNew_Accepted(t *testing.T) {
	ch := make(chan any, 3)
	ch <- 7
	ch <- 8.5
	ch <- int16(-9)
	close(ch)

	tests := []struct {
		name string
		in   any
		want [3]float64
	}{
		{"float slice", []float64{1, 2, 3}, [3]float64{1, 2, 3}},
		{"any slice", []any{1, 2.5, uint8(3)}, [3]float64{1, 2.5, 3}},
		{"array", [3]int{4, 5, 6}, [3]float64{4, 5, 6}},
		{"seq", slices.Values([]float64{0.1, 0.2, 0.3}), [3]float64{0.1, 0.2, 0.3}},
		{"channel", ch, [3]float64{7, 8.5, -9}},
		{"vector", Of(-1, 0, 1), [3]float64{-1, 0, 1}},
		{"zeros", []int{0, 0, 0}, [3]float64{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.in)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if got := v.Cart(); got != tc.want {
				t.Errorf("Cart() = %v, want %v", got, tc.want)
			}
			if v.Kind() != Base {
				t.Errorf("Kind() = %s, want %s", v.Kind().Name(), Base.Name())
			}
		})
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantErr error
		msg     string
	}{
		{"short slice", []any{1, 2}, coerce.ErrArity,
			"Vector constructor first argument must contain 3 elements, got 2"},
		{"empty slice", []float64{}, coerce.ErrArity,
			"Vector constructor first argument must contain 3 elements, got 0"},
		{"long iterable", slices.Values([]int{1, 2, 3, 4, 5}), coerce.ErrArity,
			"Vector constructor first argument must contain 3 elements, got more"},
		{"short iterable", slices.Values([]int{1, 2}), coerce.ErrArity,
			"Vector constructor first argument must contain 3 elements, got 2"},
		{"non-numeric element", []any{1, "a", 3}, coerce.ErrType,
			"Vector constructor first argument must contain numeric values, got string at 1"},
		{"scalar", 5, coerce.ErrType,
			"Vector constructor first argument must be a Sequence or Iterable, got int"},
		{"string", "xyz", coerce.ErrType,
			"Vector constructor first argument must be a Sequence or Iterable, got string"},
		{"nil", nil, coerce.ErrType,
			"Vector constructor first argument must be a Sequence or Iterable, got nil"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.in)
			if err == nil {
				t.Fatalf("expected error, got %v", v)
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error %v is not %v", err, tc.wantErr)
			}
			if err.Error() != tc.msg {
				t.Errorf("message mismatch:\ngot:  %s\nwant: %s", err.Error(), tc.msg)
			}
		})
	}
}

func TestZeroValue(t *testing.T) {
	var v Vector
	if v.Kind() != Base {
		t.Errorf("zero value kind = %s", v.Kind().Name())
	}
	if v.Cart() != [3]float64{} || v.Sph() != [3]float64{} {
		t.Errorf("zero value not at origin: cart=%v sph=%v", v.Cart(), v.Sph())
	}
}

func TestSetCart_Atomic(t *testing.T) {
	v := Of(1, 2, 3)

	err := v.SetCart([]any{4, 5, 6, 7})
	if err == nil || err.Error() != "Vector cartesian component must contain 3 elements, got 4" {
		t.Errorf("unexpected error: %v", err)
	}
	err = v.SetCart([]any{4, 5, "z"})
	if err == nil || err.Error() != "Vector cartesian component must contain numeric values, got string at 2" {
		t.Errorf("unexpected error: %v", err)
	}
	if v.Cart() != [3]float64{1, 2, 3} {
		t.Errorf("failed write modified vector: %v", v.Cart())
	}

	if err := v.SetCart([]float64{-1, -2, -3}); err != nil {
		t.Fatalf("SetCart failed: %v", err)
	}
	if v.Cart() != [3]float64{-1, -2, -3} {
		t.Errorf("Cart() = %v", v.Cart())
	}
}

func TestSetSph(t *testing.T) {
	v := Of(1, 2, 3)

	err := v.SetSph([]any{1, nil, 0})
	if err == nil || err.Error() != "Vector spherical component must contain numeric values, got nil at 1" {
		t.Errorf("unexpected error: %v", err)
	}
	if v.Cart() != [3]float64{1, 2, 3} {
		t.Errorf("failed write modified vector: %v", v.Cart())
	}

	if err := v.SetSph([]float64{2, 0, math.Pi}); err != nil {
		t.Fatalf("SetSph failed: %v", err)
	}
	if !nearTriple(v.Cart(), [3]float64{-2, 0, 0}) {
		t.Errorf("Cart() = %v, want (-2, 0, 0)", v.Cart())
	}
}

func TestSpherical_Axes(t *testing.T) {
	tests := []struct {
		name string
		v    *Vector
		want [3]float64
	}{
		{"origin", Of(0, 0, 0), [3]float64{0, 0, 0}},
		{"+x", Of(1, 0, 0), [3]float64{1, 0, 0}},
		{"+y", Of(0, 2, 0), [3]float64{2, 0, math.Pi / 2}},
		{"-x", Of(-3, 0, 0), [3]float64{3, 0, math.Pi}},
		{"-y", Of(0, -1, 0), [3]float64{1, 0, 3 * math.Pi / 2}},
		{"+z", Of(0, 0, 5), [3]float64{5, math.Pi / 2, 0}},
		{"-z", Of(0, 0, -5), [3]float64{5, -math.Pi / 2, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Sph()
			if !nearTriple(got, tc.want) {
				t.Errorf("Sph() = %v, want %v", got, tc.want)
			}
			if got != [3]float64{tc.v.R(), tc.v.Lat(), tc.v.Lon()} {
				t.Errorf("R/Lat/Lon disagree with Sph()")
			}
		})
	}
}

func TestSingleSphericalWrites(t *testing.T) {
	t.Run("lat keeps r and lon", func(t *testing.T) {
		v := Of(0.1, 0.2, 0.3)
		r0, lon0 := v.R(), v.Lon()
		v.SetLat(1.5)
		if !near(v.R(), r0) || !near(v.Lat(), 1.5) || !near(v.Lon(), lon0) {
			t.Errorf("after SetLat: r=%v lat=%v lon=%v, want r=%v lat=1.5 lon=%v", v.R(), v.Lat(), v.Lon(), r0, lon0)
		}
	})

	t.Run("r scales cartesian", func(t *testing.T) {
		v := Of(3, 4, 0)
		v.SetR(10)
		if !nearTriple(v.Cart(), [3]float64{6, 8, 0}) {
			t.Errorf("Cart() = %v, want (6, 8, 0)", v.Cart())
		}
	})

	t.Run("lon rotates about z", func(t *testing.T) {
		v := Of(1, 0, 1)
		v.SetLon(math.Pi / 2)
		if !nearTriple(v.Cart(), [3]float64{0, 1, 1}) {
			t.Errorf("Cart() = %v, want (0, 1, 1)", v.Cart())
		}
	})

	t.Run("cartesian write refreshes spherical", func(t *testing.T) {
		v := Of(1, 0, 0)
		v.SetZ(1)
		if !near(v.Lat(), math.Pi/4) || !near(v.R(), math.Sqrt2) {
			t.Errorf("after SetZ: r=%v lat=%v", v.R(), v.Lat())
		}
	})
}

func TestGetSet_Fields(t *testing.T) {
	v := Of(3, 4, 0)
	for _, f := range Fields {
		if _, err := v.Get(f); err != nil {
			t.Errorf("Get(%q) failed: %v", f, err)
		}
	}
	if r, _ := v.Get("r"); r != 5 {
		t.Errorf("Get(r) = %v, want 5", r)
	}

	if err := v.Set("x", int64(6)); err != nil {
		t.Fatalf("Set(x) failed: %v", err)
	}
	if err := v.Set("y", float32(8)); err != nil {
		t.Fatalf("Set(y) failed: %v", err)
	}
	if v.Cart() != [3]float64{6, 8, 0} {
		t.Errorf("Cart() = %v", v.Cart())
	}
	if err := v.Set("r", 5); err != nil {
		t.Fatalf("Set(r) failed: %v", err)
	}
	if !nearTriple(v.Cart(), [3]float64{3, 4, 0}) {
		t.Errorf("Cart() after Set(r) = %v", v.Cart())
	}
}

func TestSet_Errors(t *testing.T) {
	tests := []struct {
		field string
		value any
		msg   string
	}{
		{"x", "a", "Vector.x must be numeric, got string"},
		{"lat", nil, "Vector.lat must be numeric, got nil"},
		{"lon", true, "Vector.lon must be numeric, got bool"},
		{"r", []float64{1}, "Vector.r must be numeric, got []float64"},
		{"z", Of(1, 2, 3), "Vector.z must be numeric, got vector.Vector"},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			v := Of(1, 2, 3)
			err := v.Set(tc.field, tc.value)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, coerce.ErrType) {
				t.Errorf("error %v is not a type error", err)
			}
			if err.Error() != tc.msg {
				t.Errorf("message mismatch:\ngot:  %s\nwant: %s", err.Error(), tc.msg)
			}
			if v.Cart() != [3]float64{1, 2, 3} {
				t.Errorf("failed Set modified vector: %v", v.Cart())
			}
		})
	}

	v := Of(1, 2, 3)
	if _, err := v.Get("w"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(w) error = %v", err)
	}
	if err := v.Set("w", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(w) error = %v", err)
	}
}

func TestClone_Independent(t *testing.T) {
	velocity := NewKind("Velocity")
	v := OfKind(velocity, 1, 2, 3)
	c := v.Clone()
	c.SetX(9)
	if v.X() != 1 {
		t.Errorf("Clone shares state with its source")
	}
	if c.Kind() != velocity {
		t.Errorf("Clone lost kind: %s", c.Kind().Name())
	}
}
