package builder

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/treedist/tree"
)

// TestDecodePrufer checks a textbook sequence.
//
// Sequence [3 3 3 4] on 6 vertices decodes to leaves 0,1,2 on 3, then 3—4, 4—5.
func TestDecodePrufer(t *testing.T) {
	got := decodePrufer(6, []int{3, 3, 3, 4})
	want := []tree.Edge{{0, 3}, {1, 3}, {2, 3}, {3, 4}, {4, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("decodePrufer = %v; want %v", got, want)
	}
}

// TestNewBuilderConfig_Defaults checks the zero configuration.
func TestNewBuilderConfig_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	if cfg.rng != nil || cfg.shuffleLabels || cfg.shuffleEdges {
		t.Errorf("default config = %+v; want zero value", cfg)
	}
	cfg = newBuilderConfig(WithSeed(1), WithShuffledEdges())
	if cfg.rng == nil || !cfg.shuffleEdges {
		t.Errorf("options not applied: %+v", cfg)
	}
}
