package cli

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedist/bfs"
	"github.com/katalvlaran/treedist/builder"
	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/converters"
	"github.com/katalvlaran/treedist/internal/config"
	"github.com/katalvlaran/treedist/tree"
)

// ErrMismatch is returned when verify finds a distance the reference disagrees with.
var ErrMismatch = errors.New("cli: oracle disagrees with reference")

// maxReported bounds the mismatches logged per tree.
const maxReported = 5

func (c *CLI) verifyCommand() *cobra.Command {
	var (
		trees     int
		maxN      int
		seed      int64
		treeSeed  int64
		reference string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the oracle against a brute-force reference",
		Long: `Generate random trees, decompose each one and compare every pair distance
with BFS or with gonum's Dijkstra. Exits non-zero on the first tree that disagrees.`,
		Example: `  treedist verify --trees 500 --max-n 300 --reference gonum`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("trees") {
				trees = c.cfg.Verify.Trees
			}
			if !flags.Changed("max-n") {
				maxN = c.cfg.Verify.MaxN
			}
			if !flags.Changed("seed") {
				seed = c.cfg.Seed
			}
			if !flags.Changed("reference") {
				reference = c.cfg.Verify.Reference
			}
			if trees < 1 || maxN < 1 {
				return fmt.Errorf("%w: --trees and --max-n must be >= 1", config.ErrInvalid)
			}
			ref, err := referenceFunc(reference)
			if err != nil {
				return err
			}

			// --tree-seed replays the single tree a failed run reported
			seeds := func() int64 { return treeSeed }
			if flags.Changed("tree-seed") {
				trees = 1
			} else {
				rng := rand.New(rand.NewSource(seed))
				seeds = func() int64 { return rng.Int63() }
			}

			p := newProgress(c.Logger)
			pairs := 0
			for i := 0; i < trees; i++ {
				// each tree gets its own seed so a failure is reproducible alone
				ts := seeds()
				n, err := c.verifyOne(cmd, ts, maxN, ref)
				if err != nil {
					c.printError("tree #%d: %v (replay: --tree-seed %d --max-n %d)", i, err, ts, maxN)
					return err
				}
				pairs += n * n
			}
			p.done(fmt.Sprintf("Verified %d trees", trees))
			c.printSuccess("%s trees, %s pairs agree with %s",
				StyleNumber.Render(fmt.Sprint(trees)), StyleNumber.Render(fmt.Sprint(pairs)), reference)
			return nil
		},
	}

	cmd.Flags().IntVar(&trees, "trees", 0, "number of random trees (default from config)")
	cmd.Flags().IntVar(&maxN, "max-n", 0, "maximum vertex count (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().Int64Var(&treeSeed, "tree-seed", 0, "verify only the tree derived from this per-tree seed")
	cmd.Flags().StringVar(&reference, "reference", "", "reference oracle: bfs or gonum (default from config)")

	return cmd
}

// referenceFunc returns the all-pairs reference for name.
func referenceFunc(name string) (func(*tree.Tree) ([][]int, error), error) {
	switch name {
	case config.ReferenceBFS:
		return bfs.AllPairs, nil
	case config.ReferenceGonum:
		return func(t *tree.Tree) ([][]int, error) {
			out := make([][]int, t.VertexCount())
			for v := range out {
				d, err := converters.Distances(t, v)
				if err != nil {
					return nil, err
				}
				out[v] = d
			}
			return out, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: reference %q", config.ErrInvalid, name)
	}
}

// randomTree derives size, shape and labelling from seed alone: the same
// (seed, maxN) always yields the same tree.
func randomTree(seed int64, maxN int) (*tree.Tree, error) {
	rng := rand.New(rand.NewSource(seed))
	n := 1 + rng.Intn(maxN)
	ctor := builder.RandomRecursive(n)
	if rng.Intn(2) == 1 {
		ctor = builder.Prufer(n)
	}
	return builder.BuildTree(ctor, builder.WithRand(rng), builder.WithShuffledLabels(), builder.WithShuffledEdges())
}

// verifyOne checks the tree derived from seed and returns its vertex count.
func (c *CLI) verifyOne(cmd *cobra.Command, seed int64, maxN int, ref func(*tree.Tree) ([][]int, error)) (int, error) {
	t, err := randomTree(seed, maxN)
	if err != nil {
		return 0, err
	}
	n := t.VertexCount()
	want, err := ref(t)
	if err != nil {
		return 0, err
	}
	dec, err := centroid.Build(t, centroid.WithContext(cmd.Context()))
	if err != nil {
		return 0, err
	}

	pairs := make([]centroid.Pair, 0, n*n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			pairs = append(pairs, centroid.Pair{A: a, B: b})
		}
	}
	got, err := dec.DistMany(cmd.Context(), pairs, c.queryOptions()...)
	if err != nil {
		return 0, err
	}

	bad := 0
	for i, p := range pairs {
		if got[i] == want[p.A][p.B] {
			continue
		}
		if bad < maxReported {
			c.Logger.Error("Distance mismatch", "n", n, "a", p.A, "b", p.B, "oracle", got[i], "reference", want[p.A][p.B])
		}
		bad++
	}
	if bad > 0 {
		return n, fmt.Errorf("%w: %d of %d pairs on n=%d", ErrMismatch, bad, len(pairs), n)
	}
	c.Logger.Debug("Tree verified", "n", n, "root", dec.Root(), "max_trail", dec.MaxTrail())

	return n, nil
}
