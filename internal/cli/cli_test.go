package cli

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedist/builder"
	"github.com/katalvlaran/treedist/centroid"
	"github.com/katalvlaran/treedist/internal/config"
	"github.com/katalvlaran/treedist/tree"
)

const path5 = "5\n0 1\n1 2\n2 3\n3 4\n"

// execute runs the root command with args on a fresh CLI.
func execute(t *testing.T, stdin string, args ...string) (out, logs string, err error) {
	t.Helper()
	var outBuf, logBuf bytes.Buffer
	c := New(&outBuf, &logBuf, LogInfo)
	root := c.RootCommand()
	root.SetIn(strings.NewReader(stdin))
	root.SetErr(&logBuf)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return outBuf.String(), logBuf.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestGen_Stdout(t *testing.T) {
	out, _, err := execute(t, "", "gen", "--shape", "path", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n0 1\n1 2\n2 3\n", out)
}

func TestGen_FileThenBuild(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tree.txt")
	out, _, err := execute(t, "", "gen", "--shape", "prufer", "-n", "300", "--seed", "9", "--shuffle", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 300 vertices")

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	tr, err := tree.ReadEdgeList(f)
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 300, tr.VertexCount())

	out, logs, err := execute(t, "", "build", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Centroid decomposition")
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, "300")
	assert.Contains(t, logs, "Decomposed 300 vertices")
}

func TestGen_UnknownShape(t *testing.T) {
	_, _, err := execute(t, "", "gen", "--shape", "cycle")
	assert.ErrorIs(t, err, builder.ErrUnknownShape)
}

func TestQuery(t *testing.T) {
	file := writeTemp(t, "path.txt", path5)

	out, _, err := execute(t, "", "query", file, "0:4", "1:3", "2:2")
	require.NoError(t, err)
	assert.Equal(t, "0:4 4\n1:3 2\n2:2 0\n", out)

	out, _, err = execute(t, path5, "query", "-", "4:0")
	require.NoError(t, err)
	assert.Equal(t, "4:0 4\n", out)
}

func TestQuery_Errors(t *testing.T) {
	file := writeTemp(t, "path.txt", path5)

	_, _, err := execute(t, "", "query", file, "0-4")
	assert.ErrorIs(t, err, ErrBadPair)

	_, _, err = execute(t, "", "query", file, "0:5")
	assert.ErrorIs(t, err, centroid.ErrVertexOutOfRange)

	_, _, err = execute(t, "5\n0 1\n", "query", "-", "0:1")
	assert.ErrorIs(t, err, tree.ErrNotTree)

	_, _, err = execute(t, "", "query", filepath.Join(t.TempDir(), "missing.txt"), "0:1")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerify(t *testing.T) {
	for _, ref := range []string{config.ReferenceBFS, config.ReferenceGonum} {
		out, _, err := execute(t, "", "verify", "--trees", "6", "--max-n", "40", "--seed", "5", "--reference", ref)
		require.NoError(t, err, ref)
		assert.Contains(t, out, "agree with "+ref)
	}

	_, _, err := execute(t, "", "verify", "--reference", "dfs")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRandomTree_ReproducibleFromSeed(t *testing.T) {
	for _, seed := range []int64{1, 42, -7, 1 << 40} {
		a, err := randomTree(seed, 60)
		require.NoError(t, err)
		b, err := randomTree(seed, 60)
		require.NoError(t, err)
		assert.Equal(t, a.VertexCount(), b.VertexCount(), "seed %d", seed)
		assert.Equal(t, a.Edges(), b.Edges(), "seed %d", seed)
		assert.LessOrEqual(t, a.VertexCount(), 60)
	}
}

// TestVerify_SeedDeterminism reruns verify with the same base seed and
// expects the same trees, hence the same pair count.
func TestVerify_SeedDeterminism(t *testing.T) {
	args := []string{"verify", "--trees", "4", "--max-n", "25", "--seed", "11"}
	first, _, err := execute(t, "", args...)
	require.NoError(t, err)
	second, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestVerify_TreeSeedReplay replays the first tree of a --seed run.
func TestVerify_TreeSeedReplay(t *testing.T) {
	ts := rand.New(rand.NewSource(11)).Int63()
	tr, err := randomTree(ts, 25)
	require.NoError(t, err)
	n := tr.VertexCount()

	out, _, err := execute(t, "", "verify", "--tree-seed", strconv.FormatInt(ts, 10), "--max-n", "25", "--trees", "9")
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("1 trees, %d pairs", n*n))
}

func TestConfigFile(t *testing.T) {
	cfg := writeTemp(t, "treedist.toml", `
log_level = "debug"

[gen]
shape = "star"
n = 4
`)
	out, _, err := execute(t, "", "--config", cfg, "gen")
	require.NoError(t, err)
	assert.Equal(t, "4\n0 1\n0 2\n0 3\n", out)

	// flags override the file
	out, _, err = execute(t, "", "--config", cfg, "gen", "--shape", "path")
	require.NoError(t, err)
	assert.Equal(t, "4\n0 1\n1 2\n2 3\n", out)

	// debug level from the file traces every centroid
	_, logs, err := execute(t, path5, "--config", cfg, "build", "-")
	require.NoError(t, err)
	assert.Contains(t, logs, "Centroid")
	assert.Contains(t, logs, "level=0")

	bad := writeTemp(t, "bad.toml", "workers = -3\n")
	_, _, err = execute(t, "", "--config", bad, "gen")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestParsePair(t *testing.T) {
	tests := []struct {
		in      string
		want    centroid.Pair
		wantErr bool
	}{
		{"0:4", centroid.Pair{A: 0, B: 4}, false},
		{" 7 : 2 ", centroid.Pair{A: 7, B: 2}, false},
		{"-1:3", centroid.Pair{A: -1, B: 3}, false},
		{"3", centroid.Pair{}, true},
		{"a:b", centroid.Pair{}, true},
		{"1:", centroid.Pair{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePair(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadPair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	l.Debug("hidden")
	assert.Zero(t, buf.Len())

	l.SetLevel(log.DebugLevel)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Finished")
	assert.Contains(t, buf.String(), "Finished (")
}
