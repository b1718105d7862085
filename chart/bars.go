package chart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// barSet draws the bars of one series. It follows plotter.BarChart, but
// places bars in data coordinates and lets a logarithmic axis start them
// at the bottom of the axis rather than at zero.
type barSet struct {
	bars     []Bar
	width    float64
	logScale bool
	color    color.Color
	line     draw.LineStyle
}

// Plot implements plot.Plotter.
func (bs *barSet) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, b := range bs.bars {
		lo, hi := math.Min(b.Bottom, b.Top), math.Max(b.Bottom, b.Top)
		if bs.logScale {
			if hi <= 0 {
				continue
			}
			lo = math.Max(lo, plt.Y.Min)
		}
		if hi == lo {
			continue
		}

		xmin := trX(b.Center - bs.width/2)
		xmax := trX(b.Center + bs.width/2)
		ymin, ymax := trY(lo), trY(hi)
		pts := []vg.Point{
			{X: xmin, Y: ymin},
			{X: xmin, Y: ymax},
			{X: xmax, Y: ymax},
			{X: xmax, Y: ymin},
		}
		c.FillPolygon(bs.color, c.ClipPolygonXY(pts))
		outline := append(pts, pts[0])
		c.StrokeLines(bs.line, c.ClipLinesXY(outline)...)
	}
}

// DataRange implements plot.DataRanger. On a logarithmic axis only the
// positive values count.
func (bs *barSet) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, b := range bs.bars {
		xmin = math.Min(xmin, b.Center-bs.width/2)
		xmax = math.Max(xmax, b.Center+bs.width/2)
		for _, v := range []float64{b.Bottom, b.Top} {
			if bs.logScale && v <= 0 {
				continue
			}
			ymin = math.Min(ymin, v)
			ymax = math.Max(ymax, v)
		}
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (bs *barSet) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(bs.color, c.ClipPolygonY(pts))
	pts = append(pts, pts[0])
	c.StrokeLines(bs.line, c.ClipLinesY(pts)...)
}
