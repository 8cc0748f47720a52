// Package paths holds the fixed file-location convention shared with the
// solvers that write the progression logs.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bensuk23/Optimisation/internal/solver"
)

// Paths is the resolved input, output and title for one run.
type Paths struct {
	Input       string // progression log written by the solver
	Output      string // chart image
	TitleSuffix string // human-readable solver name
}

type layout struct {
	logFile   string
	plotFile  string
	titleName string
}

var layouts = map[solver.Variant]layout{
	solver.GA: {
		logFile:   "ga_progression_log.csv",
		plotFile:  "ga_fitness_progression_finale.png",
		titleName: "Classic GA",
	},
	solver.NEAT: {
		logFile:   "neat_progression_log_complet.csv",
		plotFile:  "neat_fitness_progression_finale.png",
		titleName: "Simplified NEAT",
	},
}

// Resolve computes the paths for variant relative to baseDir, the tool's
// installation directory. The log lives two levels above baseDir, the chart
// inside it. Nothing is checked on disk.
func Resolve(variant solver.Variant, baseDir string) Paths {
	l, ok := layouts[variant]
	if !ok {
		l = layouts[solver.GA]
	}
	input := filepath.Join(baseDir, "..", "..", l.logFile)
	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}
	return Paths{
		Input:       input,
		Output:      filepath.Join(baseDir, l.plotFile),
		TitleSuffix: l.titleName,
	}
}

// InstallDir returns the directory holding the running executable.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
