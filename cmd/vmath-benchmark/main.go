package main

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vector/vmath"
)

const (
	sampleCount = 10000
	iterations  = 1000000
)

// Test data: random cartesian points spread over several magnitudes
var testPoints []vmath.Vec3F

func init() {
	rng := rand.New(rand.NewSource(1))
	testPoints = make([]vmath.Vec3F, sampleCount)
	for i := range testPoints {
		scale := math.Pow(10, float64(rng.Intn(13)-6))
		testPoints[i] = vmath.Vec3F{
			X: (rng.Float64()*2 - 1) * scale,
			Y: (rng.Float64()*2 - 1) * scale,
			Z: (rng.Float64()*2 - 1) * scale,
		}
	}
}

// === LATITUDE STRATEGIES ===

// asinLat is the textbook form; loses precision as |z/r| approaches 1
func asinLat(p vmath.Vec3F) float64 {
	r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	if r == 0 {
		return 0
	}
	return math.Asin(p.Z / r)
}

// atan2Lat matches vmath.CartToSph
func atan2Lat(p vmath.Vec3F) float64 {
	_, lat, _ := vmath.CartToSph(p.X, p.Y, p.Z)
	return lat
}

// === BENCHMARKS ===

func BenchmarkAsinLat(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = asinLat(testPoints[i%sampleCount])
	}
	_ = sink
}

func BenchmarkAtan2Lat(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = atan2Lat(testPoints[i%sampleCount])
	}
	_ = sink
}

func BenchmarkRoundTrip(b *testing.B) {
	var sink vmath.Vec3F
	for i := 0; i < b.N; i++ {
		sink = vmath.V3FFromSph(vmath.V3FToSph(testPoints[i%sampleCount]))
	}
	_ = sink
}

// === ACCURACY VERIFICATION ===

func verifyAccuracy() {
	fmt.Println("=== Latitude Accuracy near the Poles ===")
	fmt.Println()

	// Latitudes approaching pi/2; the point is built from (1, lat, 0) and read back
	offsets := []float64{1e-1, 1e-3, 1e-5, 1e-7, 1e-8, 1e-10, 1e-12}

	fmt.Printf("%-14s %14s %14s\n", "pi/2 - lat", "asin error", "atan2 error")
	fmt.Println(strings.Repeat("-", 44))

	for _, d := range offsets {
		lat := math.Pi/2 - d
		x, y, z := vmath.SphToCart(1, lat, 0)
		p := vmath.Vec3F{X: x, Y: y, Z: z}

		fmt.Printf("%-14g %14.3e %14.3e\n", d, math.Abs(asinLat(p)-lat), math.Abs(atan2Lat(p)-lat))
	}

	fmt.Println()
	fmt.Println("=== Cartesian Round Trip (sample set) ===")
	fmt.Println()

	var maxRel float64
	for _, p := range testPoints {
		q := vmath.V3FFromSph(vmath.V3FToSph(p))
		mag := vmath.V3FMag(p)
		if mag == 0 {
			continue
		}
		if rel := vmath.V3FMag(vmath.V3FSub(p, q)) / mag; rel > maxRel {
			maxRel = rel
		}
	}
	fmt.Printf("max relative error over %d points: %.3e\n", sampleCount, maxRel)
}

func main() {
	fmt.Println("vector vmath Spherical Conversion Benchmark")
	fmt.Println("===========================================")
	fmt.Println()

	verifyAccuracy()

	fmt.Println()
	fmt.Println("=== Running Benchmarks ===")
	fmt.Println("Run with: go test -bench=. -benchmem ./cmd/vmath-benchmark/")
	fmt.Println()

	var sink float64

	start := time.Now()
	for i := 0; i < iterations; i++ {
		sink += asinLat(testPoints[i%sampleCount])
	}
	asinTime := time.Since(start)

	start = time.Now()
	for i := 0; i < iterations; i++ {
		sink += atan2Lat(testPoints[i%sampleCount])
	}
	atan2Time := time.Since(start)
	_ = sink

	fmt.Printf("Quick benchmark (%d iterations):\n", iterations)
	fmt.Printf("  asin(z/r):              %v\n", asinTime)
	fmt.Printf("  atan2(z, hypot(x, y)):  %v (%+.1f%% vs asin)\n",
		atan2Time, float64(atan2Time-asinTime)/float64(asinTime)*100)
}
