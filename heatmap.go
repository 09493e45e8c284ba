package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// weightGrid adapts a Table to plotter.GridXYZ: two columns, one per
// geometry, one row per configuration. Rows are flipped so the first
// (heaviest) configuration lands at the top of the plot.
type weightGrid struct {
	t Table
}

func (g weightGrid) Dims() (c, r int) { return 2, len(g.t.Confs) }

func (g weightGrid) Z(c, r int) float64 {
	return g.t.W.At(len(g.t.Confs)-1-r, c)
}

func (g weightGrid) X(c int) float64 { return float64(c) }

func (g weightGrid) Y(r int) float64 { return float64(r) }

// SaveHeatmap renders the merged table for one root as a two-column
// heatmap and saves it to filename. Cell intensity is the CI weight
// on a fixed 0-1 scale so plots for different roots are comparable.
func SaveHeatmap(filename string, t Table, conf Config, thres float64,
	tag1, tag2 string) error {
	if t.Empty() {
		return fmt.Errorf("root %d: empty table", t.Root)
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf(
		"Configuration weights, root %d (|c| > %g)\nΔE = %.4f eV",
		t.Root, thres, t.DeltaE*htToEv,
	)
	p.Title.Padding = 3 * vg.Millimeter
	grid := weightGrid{t: t}
	h := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	h.Min = 0
	h.Max = 1
	p.Add(h)
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: 0, Label: conf.Geometry(tag1)},
		{Value: 1, Label: conf.Geometry(tag2)},
	})
	n := len(t.Confs)
	yticks := make([]plot.Tick, n)
	for i, c := range t.Confs {
		yticks[i] = plot.Tick{
			Value: float64(n - 1 - i),
			Label: conf.Label(c),
		}
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
