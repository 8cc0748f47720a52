// Package chart draws the fitness progression of one solver run.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bensuk23/Optimisation/internal/fitlog"
)

// LogFloor replaces fitness values that a log axis cannot show (<= 0).
// It matches the six decimals the solvers print.
const LogFloor = 1e-6

// Series styling. The y-axis is always logarithmic: early generations span
// several orders of magnitude and vanish on a linear scale.
var (
	maxColor = color.NRGBA{R: 255, A: 230} // red, alpha 0.9
	avgColor = color.NRGBA{B: 255, A: 179} // blue, alpha 0.7
	maxWidth = vg.Points(2)
	avgWidth = vg.Points(1.5)
	avgDash  = []vg.Length{vg.Points(6), vg.Points(3)}
)

// Options sizes the image in inches.
type Options struct {
	WidthIn  float64
	HeightIn float64
}

// DefaultOptions is a 10x6 inch figure.
func DefaultOptions() Options { return Options{WidthIn: 10, HeightIn: 6} }

// Artifact describes a written chart.
type Artifact struct {
	Path    string
	Bytes   int
	Clamped int // points raised to LogFloor
}

// RenderError reports that the chart could not be produced or written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render chart %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Title is the chart heading for a solver name.
func Title(suffix string) string {
	return fmt.Sprintf("Fitness progression for the XOR problem (%s)", suffix)
}

// Render draws series to a PNG at outPath, replacing any existing file.
// The image is encoded in memory first, so a failed render leaves no file.
func Render(series fitlog.Series, outPath, titleSuffix string, opts Options) (Artifact, error) {
	if len(series) == 0 {
		return Artifact{}, &RenderError{Path: outPath, Err: fmt.Errorf("empty series")}
	}
	if opts.WidthIn <= 0 || opts.HeightIn <= 0 {
		opts = DefaultOptions()
	}

	p, clamped, err := build(series, titleSuffix)
	if err != nil {
		return Artifact{}, &RenderError{Path: outPath, Err: err}
	}

	wt, err := p.WriterTo(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, "png")
	if err != nil {
		return Artifact{}, &RenderError{Path: outPath, Err: err}
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return Artifact{}, &RenderError{Path: outPath, Err: err}
	}

	if err := writeReplace(outPath, buf.Bytes()); err != nil {
		return Artifact{}, &RenderError{Path: outPath, Err: err}
	}
	return Artifact{Path: outPath, Bytes: buf.Len(), Clamped: clamped}, nil
}

// build lays out the plot and reports how many values were clamped.
func build(series fitlog.Series, titleSuffix string) (*plot.Plot, int, error) {
	p := plot.New()
	p.Title.Text = Title(titleSuffix)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Fitness (log scale)"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{}

	maxPts := make(plotter.XYs, len(series))
	avgPts := make(plotter.XYs, len(series))
	clamped := 0
	lo, hi := 0.0, 0.0
	for i, r := range series {
		mx, c1 := floor(r.Max)
		av, c2 := floor(r.Avg)
		if c1 {
			clamped++
		}
		if c2 {
			clamped++
		}

		maxPts[i].X = float64(r.Generation)
		maxPts[i].Y = mx
		avgPts[i].X = float64(r.Generation)
		avgPts[i].Y = av

		if i == 0 {
			lo, hi = min(mx, av), max(mx, av)
			continue
		}
		lo, hi = min(lo, mx, av), max(hi, mx, av)
	}

	maxLine, err := plotter.NewLine(maxPts)
	if err != nil {
		return nil, 0, err
	}
	maxLine.LineStyle.Color = maxColor
	maxLine.LineStyle.Width = maxWidth

	avgLine, err := plotter.NewLine(avgPts)
	if err != nil {
		return nil, 0, err
	}
	avgLine.LineStyle.Color = avgColor
	avgLine.LineStyle.Width = avgWidth
	avgLine.LineStyle.Dashes = avgDash

	p.Add(plotter.NewGrid(), maxLine, avgLine)
	p.Legend.Add("Max fitness (best individual)", maxLine)
	p.Legend.Add("Avg fitness (population mean)", avgLine)
	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.TextStyle.Font.Size = vg.Points(10)

	// A flat series would otherwise get a linear +-1 pad, which can go
	// below zero on a log axis.
	if lo == hi {
		lo, hi = lo/10, hi*10
	}
	p.Y.Min, p.Y.Max = lo, hi
	return p, clamped, nil
}

func floor(v float64) (float64, bool) {
	if v <= 0 {
		return LogFloor, true
	}
	return v, false
}

// writeReplace writes data next to path and renames it into place, keeping
// the permissions of a file it replaces.
func writeReplace(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fitplot-*.tmp")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(name, mode); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
