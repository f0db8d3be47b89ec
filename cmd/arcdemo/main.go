// Command arcdemo builds a B-spline through a fixed set of 3D way points and
// prints how equal-arc-length and sigmoid samplings distribute along it.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/npillmayer/arclen"
	"github.com/npillmayer/arclen/bspline"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var wayPoints = []arclen.VecN{
	arclen.V(-2, -1, 0),
	arclen.V(-1, 1, 0),
	arclen.V(-0.25, 1, 0),
	arclen.V(0.25, -1, 0),
	arclen.V(1, -1, 0),
	arclen.V(2, 1, 0),
}

func main() {
	order := flag.Int("order", bspline.DefaultOrder, "spline order (degree + 1)")
	divisions := flag.Int("divisions", 10, "number of arcs per sampling")
	plotFile := flag.String("plot", "", "render curve and samplings to this PNG file")
	debug := flag.Bool("debug", false, "trace spline internals")
	flag.Parse()

	if *debug {
		for _, key := range []string{"arclen.bspline", "arclen.newton"} {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	s, err := bspline.New(wayPoints, *order)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Spline length: %.6f\n\n", s.Length())

	linear := s.ParameterizeLinear(*divisions)
	fmt.Println("Linear interpolation")
	printTable(s, linear)
	sigmoid := s.ParameterizeSigmoid(*divisions)
	fmt.Println("Sigmoid interpolation")
	printTable(s, sigmoid)

	for i := 0; i <= 10; i++ {
		u := float64(i) / 10
		fmt.Printf("u: %.1f, p: %s\n", u, s.Evaluate(u))
	}

	if *plotFile != "" {
		if err := render(s, linear, sigmoid, *plotFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote %s\n", *plotFile)
	}
}

func printTable(s *bspline.Spline[arclen.VecN], params []float64) {
	for i := 1; i < len(params); i++ {
		t0, t1 := params[i-1], params[i]
		a0, a1 := s.ArcLength(t0), s.ArcLength(t1)
		fmt.Printf("Arc %2d t: %.6f dt: %.6f l: %.6f d: %.6f\n", i, t1, t1-t0, a1, a1-a0)
	}
	fmt.Println()
}

// render plots the x/y projection of the curve, the control polygon and the
// points of both samplings.
func render(s *bspline.Spline[arclen.VecN], linear, sigmoid []float64, filename string) error {
	project := func(v arclen.VecN) plotter.XY {
		return plotter.XY{X: v.At(0), Y: v.At(1)}
	}
	lo, hi := s.Domain()
	const n = 200
	curve := make(plotter.XYs, n+1)
	for i := range curve {
		curve[i] = project(s.P(lo + (hi-lo)*float64(i)/n))
	}
	cps := make(plotter.XYs, len(wayPoints))
	for i, cp := range wayPoints {
		cps[i] = project(cp)
	}
	samples := func(params []float64) plotter.XYs {
		xys := make(plotter.XYs, len(params))
		for i, t := range params {
			xys[i] = project(s.P(t))
		}
		return xys
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("order %d, length %.4f", s.Order(), s.Length())
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1)
	hull, err := plotter.NewLine(cps)
	if err != nil {
		return err
	}
	hull.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	hull.LineStyle.Color = color.Gray{Y: 128}
	lin, err := plotter.NewScatter(samples(linear))
	if err != nil {
		return err
	}
	lin.GlyphStyle.Shape = draw.CircleGlyph{}
	lin.GlyphStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	sig, err := plotter.NewScatter(samples(sigmoid))
	if err != nil {
		return err
	}
	sig.GlyphStyle.Shape = draw.CrossGlyph{}
	sig.GlyphStyle.Color = color.RGBA{R: 255, G: 69, B: 0, A: 255}
	p.Add(hull, line, lin, sig)
	p.Legend.Add("control polygon", hull)
	p.Legend.Add("spline", line)
	p.Legend.Add("linear", lin)
	p.Legend.Add("sigmoid", sig)
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
