// Package builder provides deterministic tree fixtures for tests,
// benchmarks and the treedist CLI, in the functional-options style of a
// constructor plus BuilderOption knobs.
//
// Constructors (each returns a Constructor; run it with BuildTree):
//
//   - Path(n):             0—1—…—(n-1). Deepest inner traversals.
//   - Star(n):             center 0 with leaves 1..n-1. Widest fan-out.
//   - Caterpillar(n, legs): a spine with up to legs pendant vertices per spine vertex.
//   - KAry(n, k):          heap-ordered complete k-ary tree, parent(i) = (i-1)/k.
//   - RandomRecursive(n):  vertex i attaches to a uniform earlier vertex.
//   - Prufer(n):           uniform random labelled tree decoded from a Prüfer sequence.
//
// Options:
//
//   - WithSeed(seed) / WithRand(r): RNG for the random constructors and shuffles.
//   - WithShuffledLabels():         relabel vertices with a random permutation.
//   - WithShuffledEdges():          emit edges in random order (changes adjacency order).
//
// Guarantees:
//
//   - Every constructor emits exactly n-1 edges forming a tree on [0, n).
//   - Same constructor, options and seed ⇒ identical edge list.
//   - Constructors never panic at runtime; they return sentinel errors.
//     Option constructors panic on nil arguments (programmer error).
package builder
