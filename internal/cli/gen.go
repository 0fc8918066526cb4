package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedist/builder"
	"github.com/katalvlaran/treedist/tree"
)

func (c *CLI) genCommand() *cobra.Command {
	var (
		shape   string
		n       int
		seed    int64
		output  string
		shuffle bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a generated tree as an edge list",
		Long:  fmt.Sprintf("Generate a tree of a known shape (%v) and write it in edge-list format.", builder.Shapes),
		Example: `  treedist gen --shape prufer -n 10000 --seed 3 -o big.txt
  treedist gen --shape caterpillar -n 50 | treedist build -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("shape") {
				shape = c.cfg.Gen.Shape
			}
			if !flags.Changed("vertices") {
				n = c.cfg.Gen.N
			}
			if !flags.Changed("seed") {
				seed = c.cfg.Seed
			}

			ctor, err := builder.ByName(shape, n)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			if shuffle {
				opts = append(opts, builder.WithShuffledLabels())
			}
			t, err := builder.BuildTree(ctor, opts...)
			if err != nil {
				return err
			}
			c.Logger.Debug("Generated tree", "shape", shape, "n", n, "seed", seed)

			if output == "" {
				return tree.WriteEdgeList(cmd.OutOrStdout(), t)
			}
			if err = writeFile(output, t); err != nil {
				return err
			}
			c.printSuccess("Wrote %s vertices to %s", StyleNumber.Render(fmt.Sprint(n)), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "", "tree shape (default from config)")
	cmd.Flags().IntVarP(&n, "vertices", "n", 0, "vertex count (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "relabel vertices randomly")

	return cmd
}

func writeFile(path string, t *tree.Tree) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return tree.WriteEdgeList(f, t)
}
