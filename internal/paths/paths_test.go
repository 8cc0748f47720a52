package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bensuk23/Optimisation/internal/solver"
)

func TestResolve(t *testing.T) {
	base := filepath.Join(t.TempDir(), "project", "plots", "bin")

	ga := Resolve(solver.GA, base)
	assert.Equal(t, filepath.Join(base, "..", "..", "ga_progression_log.csv"), ga.Input)
	assert.Equal(t, filepath.Join(base, "ga_fitness_progression_finale.png"), ga.Output)
	assert.Equal(t, "Classic GA", ga.TitleSuffix)

	neat := Resolve(solver.NEAT, base)
	assert.Equal(t, filepath.Join(filepath.Dir(filepath.Dir(base)), "neat_progression_log_complet.csv"), neat.Input)
	assert.Equal(t, filepath.Join(base, "neat_fitness_progression_finale.png"), neat.Output)
	assert.Equal(t, "Simplified NEAT", neat.TitleSuffix)
}

func TestResolveIsPure(t *testing.T) {
	base := t.TempDir()
	for _, v := range solver.Variants {
		first := Resolve(v, base)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Resolve(v, base))
		}
		assert.True(t, filepath.IsAbs(first.Input))
		assert.NoFileExists(t, first.Output)
	}
}

func TestInstallDir(t *testing.T) {
	dir, err := InstallDir()
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
