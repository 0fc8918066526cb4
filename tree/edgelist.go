// SPDX-License-Identifier: MIT
// Package: treedist/tree
//
// edgelist.go - plain text edge-list format.
//
// Format:
//
//	# comment
//	5        <- vertex count
//	0 1      <- one edge per line
//	1 2
//
// Blank lines and everything after '#' are ignored.

package tree

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadEdgeList parses the edge-list format from r and builds a Tree.
// Parse failures wrap ErrMalformedInput with the offending line number;
// AddEdge failures keep their own sentinel.
func ReadEdgeList(r io.Reader) (*Tree, error) {
	var (
		t    *Tree
		line int
		err  error
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if t == nil {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want vertex count, got %q", ErrMalformedInput, line, text)
			}
			n, convErr := strconv.Atoi(fields[0])
			if convErr != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, convErr)
			}
			if t, err = New(n); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, line, err)
			}
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"a b\", got %q", ErrMalformedInput, line, text)
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil {
			return nil, fmt.Errorf("%w: line %d: non-integer vertex in %q", ErrMalformedInput, line, text)
		}
		if err = t.AddEdge(a, b); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("tree: read edge list: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("%w: missing vertex count", ErrMalformedInput)
	}

	return t, nil
}

// WriteEdgeList writes t in the format accepted by ReadEdgeList, edges in
// Edges() order.
func WriteEdgeList(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", t.VertexCount())
	for _, e := range t.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.A, e.B)
	}
	return bw.Flush()
}
