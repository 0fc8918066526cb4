package centroid_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/treedist/builder"
	"github.com/katalvlaran/treedist/centroid"
)

const benchN = 100000

// BenchmarkBuild_Path measures preprocessing on the deepest shape.
func BenchmarkBuild_Path(b *testing.B) {
	t, err := builder.BuildTree(builder.Path(benchN))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = centroid.Build(t); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Prufer measures preprocessing on a uniform random tree.
func BenchmarkBuild_Prufer(b *testing.B) {
	t, err := builder.BuildTree(builder.Prufer(benchN), builder.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = centroid.Build(t); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDist measures single queries on random pairs.
func BenchmarkDist(b *testing.B) {
	t, err := builder.BuildTree(builder.Prufer(benchN), builder.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}
	dec, err := centroid.Build(t)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(3))
	pairs := make([]centroid.Pair, 4096)
	for i := range pairs {
		pairs[i] = centroid.Pair{A: r.Intn(benchN), B: r.Intn(benchN)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		_, _ = dec.Dist(p.A, p.B)
	}
}

// BenchmarkDistMany measures the concurrent batch path.
func BenchmarkDistMany(b *testing.B) {
	t, err := builder.BuildTree(builder.Prufer(benchN), builder.WithSeed(4))
	if err != nil {
		b.Fatal(err)
	}
	dec, err := centroid.Build(t)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(5))
	pairs := make([]centroid.Pair, 1<<16)
	for i := range pairs {
		pairs[i] = centroid.Pair{A: r.Intn(benchN), B: r.Intn(benchN)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dec.DistMany(context.Background(), pairs); err != nil {
			b.Fatal(err)
		}
	}
}
