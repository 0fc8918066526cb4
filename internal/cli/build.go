package cli

import (
	"fmt"
	"math/bits"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/tree"
)

func (c *CLI) buildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <edgelist>",
		Short: "Decompose an edge list and report statistics",
		Long:  `Build the centroid decomposition of a tree read from an edge-list file ("-" for stdin). Use -v to log every extracted centroid.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := loadTree(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			dec, elapsed, err := c.decompose(cmd, t)
			if err != nil {
				return err
			}

			n := dec.Len()
			fmt.Fprintln(c.out, StyleTitle.Render("Centroid decomposition"))
			c.printStat("vertices", n)
			c.printStat("root", dec.Root())
			c.printStat("max trail", dec.MaxTrail())
			c.printStat("bound", bits.Len(uint(n)))
			c.printStat("build time", elapsed)
			return nil
		},
	}
}

// decompose builds t with the command's context, logging each centroid at
// debug level.
func (c *CLI) decompose(cmd *cobra.Command, t *tree.Tree) (*centroid.Decomposition, string, error) {
	p := newProgress(c.Logger)
	dec, err := centroid.Build(t,
		centroid.WithContext(cmd.Context()),
		centroid.WithOnCentroid(func(v, level, size int) error {
			c.Logger.Debug("Centroid", "vertex", v, "level", level, "size", size)
			return nil
		}),
	)
	if err != nil {
		return nil, "", err
	}
	p.done(fmt.Sprintf("Decomposed %d vertices", t.VertexCount()))

	return dec, p.elapsed().String(), nil
}
