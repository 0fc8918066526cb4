package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/tree"
)

// ErrBadPair is returned for a query argument that is not "a:b".
var ErrBadPair = errors.New("cli: query pair must be a:b")

// loadTree reads an edge list from path, or from stdin when path is "-".
func loadTree(path string, stdin io.Reader) (*tree.Tree, error) {
	if path == "-" {
		t, err := tree.ReadEdgeList(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := tree.ReadEdgeList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// parsePair parses "a:b" into a Pair. Range checks are left to the oracle.
func parsePair(s string) (centroid.Pair, error) {
	as, bs, ok := strings.Cut(s, ":")
	if !ok {
		return centroid.Pair{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	a, errA := strconv.Atoi(strings.TrimSpace(as))
	b, errB := strconv.Atoi(strings.TrimSpace(bs))
	if errA != nil || errB != nil {
		return centroid.Pair{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	return centroid.Pair{A: a, B: b}, nil
}

// queryOptions translates the configured worker count (0 = default).
func (c *CLI) queryOptions() []centroid.QueryOption {
	if c.cfg.Workers > 0 {
		return []centroid.QueryOption{centroid.WithWorkers(c.cfg.Workers)}
	}
	return nil
}
