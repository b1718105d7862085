package chart

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Bar is one drawn bar: the value of a series for a category. Center is
// on the category axis, where category i sits at i. Bottom and Top are on
// the value axis; Bottom is non-zero only for stacked bars.
type Bar struct {
	Series   int
	Category int
	Slot     int
	Center   float64
	Value    float64
	Bottom   float64
	Top      float64
}

// LegendEntry is the label and color of a series as shown in the legend.
type LegendEntry struct {
	Label string
	Color color.Color
}

// Figure is a rendered chart, ready to be written out.
type Figure struct {
	Categories []string
	// Bars holds one bar per series and category, series by series.
	Bars   []Bar
	Legend []LegendEntry
	// Slots is the number of bars side by side in a category: one per
	// series that is not stacked, plus one per stack group.
	Slots int

	series []Series
	config Config
	plot   *plot.Plot
	width  vg.Length
	height vg.Length
}

// Plot returns the underlying gonum plot, for callers that want to
// tweak it before saving.
func (f *Figure) Plot() *plot.Plot {
	return f.plot
}

// Height returns the height of the bar as a fraction of the value axis.
// On a logarithmic axis, bars start at the bottom of the axis.
func (f *Figure) Height(b Bar) float64 {
	bottom := b.Bottom
	if f.config.LogScale {
		if b.Top <= 0 {
			return 0
		}
		if bottom < f.plot.Y.Min {
			bottom = f.plot.Y.Min
		}
	}
	return f.plot.Y.Norm(b.Top) - f.plot.Y.Norm(bottom)
}

// slots gives the slot of every series. Series of the same stack group
// share a slot; slots are numbered in the order of their first series.
func slots(nseries int, groups [][]int) ([]int, int) {
	group := make(map[int]int)
	for g, members := range groups {
		for _, s := range members {
			group[s] = g
		}
	}

	slot := make([]int, nseries)
	groupSlot := make(map[int]int)
	n := 0
	for s := 0; s < nseries; s++ {
		g, stacked := group[s]
		if !stacked {
			slot[s] = n
			n++
			continue
		}
		if k, ok := groupSlot[g]; ok {
			slot[s] = k
			continue
		}
		groupSlot[g] = n
		slot[s] = n
		n++
	}
	return slot, n
}

// newFigure lays out the bars of the validated inputs. The slots of a
// category are centered on its tick and BarWidth apart.
func newFigure(series []Series, categories []string, cfg Config) *Figure {
	f := &Figure{
		Categories: append([]string(nil), categories...),
		series:     make([]Series, len(series)),
		config:     cfg,
	}
	for i, s := range series {
		s.Values = append([]float64(nil), s.Values...)
		f.series[i] = s
	}

	slot, n := slots(len(series), cfg.StackGroups)
	f.Slots = n
	width := cfg.barWidth()

	// below[s] is the series drawn right under s in its stack, if any.
	below := make(map[int]int)
	for _, members := range cfg.StackGroups {
		for j := 1; j < len(members); j++ {
			below[members[j]] = members[j-1]
		}
	}

	tops := make([][]float64, len(series))
	bottoms := make([][]float64, len(series))
	done := make([]bool, len(series))
	var place func(s int)
	place = func(s int) {
		if done[s] {
			return
		}
		tops[s] = make([]float64, len(categories))
		bottoms[s] = make([]float64, len(categories))
		prev, stacked := below[s]
		if stacked {
			place(prev)
		}
		for c, v := range series[s].Values {
			if stacked {
				bottoms[s][c] = tops[prev][c]
			}
			tops[s][c] = bottoms[s][c] + v
		}
		done[s] = true
	}

	for s := range series {
		place(s)
		for c := range categories {
			center := float64(c) + (float64(slot[s])-float64(n-1)/2)*width
			f.Bars = append(f.Bars, Bar{
				Series:   s,
				Category: c,
				Slot:     slot[s],
				Center:   center,
				Value:    series[s].Values[c],
				Bottom:   bottoms[s][c],
				Top:      tops[s][c],
			})
		}
	}
	return f
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
