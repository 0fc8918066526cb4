package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedist/centroid"
)

func (c *CLI) queryCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "query <edgelist> a:b [a:b ...]",
		Short:   "Print the distance between vertex pairs",
		Long:    `Decompose the tree read from an edge-list file ("-" for stdin) and print one "a:b distance" line per pair.`,
		Example: `  treedist query tree.txt 0:4 17:3`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([]centroid.Pair, 0, len(args)-1)
			for _, arg := range args[1:] {
				p, err := parsePair(arg)
				if err != nil {
					return err
				}
				pairs = append(pairs, p)
			}

			t, err := loadTree(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			dec, _, err := c.decompose(cmd, t)
			if err != nil {
				return err
			}
			dists, err := dec.DistMany(cmd.Context(), pairs, c.queryOptions()...)
			if err != nil {
				return err
			}

			for i, p := range pairs {
				fmt.Fprintf(c.out, "%d:%d %d\n", p.A, p.B, dists[i])
			}
			return nil
		},
	}
}
