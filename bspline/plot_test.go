package bspline

import (
	"fmt"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotParameterization draws arc length over spline parameter, together with
// the samples of both re-parameterizations.
func plotParameterization(t *testing.T, filename string, order int) {
	s := mustSpline(t, wave(), order)
	_, hi := s.Domain()
	const n = 100
	curve := make(plotter.XYs, n+1)
	for i := range curve {
		x := hi * float64(i) / n
		curve[i].X, curve[i].Y = x, s.ArcLength(x)
	}
	samples := func(params []float64) plotter.XYs {
		xys := make(plotter.XYs, len(params))
		for i, p := range params {
			xys[i].X, xys[i].Y = p, s.ArcLength(p)
		}
		return xys
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		t.Fatal(err)
	}
	line.LineStyle.Width = vg.Points(1)
	linear, err := plotter.NewScatter(samples(s.ParameterizeLinear(10)))
	if err != nil {
		t.Fatal(err)
	}
	linear.GlyphStyle.Shape = draw.CircleGlyph{}
	linear.GlyphStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	sigmoid, err := plotter.NewScatter(samples(s.ParameterizeSigmoid(10)))
	if err != nil {
		t.Fatal(err)
	}
	sigmoid.GlyphStyle.Shape = draw.CrossGlyph{}
	sigmoid.GlyphStyle.Color = color.RGBA{R: 255, G: 69, B: 0, A: 255}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("order %d, length %.4f", order, s.Length())
	p.X.Label.Text = "t"
	p.Y.Label.Text = "arc length"
	p.Add(line, linear, sigmoid)
	p.Legend.Add("arc length", line)
	p.Legend.Add("linear", linear)
	p.Legend.Add("sigmoid", sigmoid)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote %s", filename)
}

func TestPlotParameterization(t *testing.T) {
	if !testing.Verbose() {
		t.SkipNow()
		return
	}
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	plotParameterization(t, filepath.Join(dir, "param_order3.png"), 3)
	plotParameterization(t, filepath.Join(dir, "param_order4.png"), 4)
}
