// Package chart draws grouped and stacked bar charts of benchmark
// measurements, one group of bars per category (typically the number of
// nodes of a simulation).
//
// All the inputs are passed explicitly to Render, which returns a Figure
// that can be written in any of the supported formats:
//
//	fig, err := chart.Render(series, []string{"8", "16", "32"}, chart.Config{
//		YLabel:   "Wall clock time in second",
//		XLabel:   "Number of nodes",
//		LogScale: true,
//	})
//	if err != nil {
//		return err
//	}
//	return fig.Save("clk.png")
package chart

import (
	"image/color"
	"math"

	"go.dedis.ch/onet/v3/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DefaultBarWidth is the width of a bar, as a fraction of the space
// between two categories, when Config.BarWidth is zero.
const DefaultBarWidth = 0.3

// Default size of a figure, in inches.
const (
	DefaultWidth  = 6.4
	DefaultHeight = 4.8
)

// Series is one labeled row of measurements, holding exactly one value
// per category.
type Series struct {
	Label  string
	Values []float64
	// Color is a matplotlib letter ("c"), a color name ("red") or a hex
	// value ("#DC143C"). An empty color picks one from the default
	// palette.
	Color string
}

// Config holds everything about a chart that is not data.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	// LogScale draws the y-axis in base 10, for values spreading over
	// several orders of magnitude. Zero values are then left out.
	LogScale bool
	// BarWidth is a fraction of the space between two categories.
	BarWidth float64
	// StackGroups lists groups of series indices. The series of a group
	// are drawn on top of each other, in the order of the group, instead
	// of side by side.
	StackGroups [][]int
	// ValueLabels prints the value of every bar above it.
	ValueLabels bool
	// LegendLeft moves the legend to the top-left corner.
	LegendLeft bool
	// Width and Height of the figure in inches.
	Width, Height float64
}

func (c Config) barWidth() float64 {
	if c.BarWidth == 0 {
		return DefaultBarWidth
	}
	return c.BarWidth
}

func (c Config) size() (vg.Length, vg.Length) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return vg.Length(w) * vg.Inch, vg.Length(h) * vg.Inch
}

// Render checks the inputs and lays out the chart. It fails with a
// *ValidationError if the inputs are inconsistent, or a *RenderError if
// a color is unknown. The inputs are not modified.
func Render(series []Series, categories []string, cfg Config) (*Figure, error) {
	if err := Validate(series, categories, cfg); err != nil {
		return nil, err
	}
	colors, err := seriesColors(series)
	if err != nil {
		return nil, err
	}

	fig := newFigure(series, categories, cfg)
	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = cfg.YLabel
	p.Legend.Top = true
	p.Legend.Left = cfg.LegendLeft

	for i, s := range series {
		bs := &barSet{
			width:    cfg.barWidth(),
			logScale: cfg.LogScale,
			color:    colors[i],
			line:     draw.LineStyle{Color: color.Black, Width: vg.Points(0.5)},
		}
		for _, b := range fig.Bars {
			if b.Series == i {
				bs.bars = append(bs.bars, b)
			}
		}
		p.Add(bs)
		p.Legend.Add(s.Label, bs)
		fig.Legend = append(fig.Legend, LegendEntry{Label: s.Label, Color: colors[i]})
	}

	if cfg.ValueLabels {
		labels, err := valueLabels(fig.Bars, cfg.LogScale)
		if err != nil {
			return nil, newRenderError("labels", err)
		}
		p.Add(labels)
	}

	p.NominalX(categories...)
	p.X.Min = -0.5
	p.X.Max = float64(len(categories)) - 0.5
	setValueAxis(p, fig.Bars, cfg)

	fig.plot = p
	fig.width, fig.height = cfg.size()
	log.Lvlf3("Rendered %d series over %d categories", len(series), len(categories))
	return fig, nil
}

// RenderFile renders the chart and saves it to path, whose extension
// gives the format.
func RenderFile(series []Series, categories []string, cfg Config, path string) error {
	fig, err := Render(series, categories, cfg)
	if err != nil {
		return err
	}
	return fig.Save(path)
}

// setValueAxis fixes the range of the y-axis. A logarithmic axis spans
// whole decades around the drawn values.
func setValueAxis(p *plot.Plot, bars []Bar, cfg Config) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bars {
		for _, v := range []float64{b.Bottom, b.Top} {
			if cfg.LogScale && v <= 0 {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}

	if cfg.LogScale {
		if cfg.ValueLabels {
			hi *= 1.1
		}
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Min = math.Pow(10, math.Floor(math.Log10(lo)))
		p.Y.Max = math.Pow(10, math.Ceil(math.Log10(hi)))
		if p.Y.Max <= p.Y.Min {
			p.Y.Max = p.Y.Min * 10
		}
		return
	}

	p.Y.Min = math.Min(0, lo)
	p.Y.Max = math.Max(0, hi)
	if p.Y.Max == p.Y.Min {
		p.Y.Max = p.Y.Min + 1
	}
	// Leave some room above the highest bar for the value labels.
	p.Y.Max += (p.Y.Max - p.Y.Min) * 0.05
}

func valueLabels(bars []Bar, logScale bool) (*plotter.Labels, error) {
	var xyl plotter.XYLabels
	for _, b := range bars {
		if logScale && (b.Top <= 0 || b.Value <= 0) {
			continue
		}
		y := b.Top
		if logScale {
			y *= 1.05
		}
		xyl.XYs = append(xyl.XYs, plotter.XY{X: b.Center, Y: y})
		xyl.Labels = append(xyl.Labels, formatValue(b.Value))
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
	}
	return labels, nil
}
