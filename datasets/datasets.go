// Package datasets holds the results of the RandShare and RandShare with
// PVSS simulations, as charts ready to be rendered.
//
// The runs used 8 to 128 nodes, a third of them faulty. Wall clock times
// are those of the whole protocol run, CPU usage is user plus system
// time summed over all nodes.
package datasets

import (
	"sort"

	"go.dedis.ch/benchplot/chart"
	"golang.org/x/xerrors"
)

// Nodes are the categories of all the datasets.
var Nodes = []string{"8", "16", "32", "64", "128"}

const (
	labelRandShare = "RandShare"
	labelPVSS      = "RandShare with PVSS"
	colorRandShare = "c"
	colorPVSS      = "#DC143C"
	xLabel         = "Number of nodes"
	yLabelClock    = "Wall clock time in second"
)

// Dataset is a named chart.
type Dataset struct {
	Name        string
	Description string
	Series      []chart.Series
	Categories  []string
	Config      chart.Config
}

// Render draws the dataset.
func (d Dataset) Render() (*chart.Figure, error) {
	return chart.Render(d.Series, d.Categories, d.Config)
}

func logConfig(ylabel string) chart.Config {
	return chart.Config{
		XLabel:   xLabel,
		YLabel:   ylabel,
		LogScale: true,
		BarWidth: 0.3,
	}
}

var all = map[string]func() Dataset{
	"clk": func() Dataset {
		return Dataset{
			Description: "Total wall clock time of a RandShare protocol run",
			Series: []chart.Series{
				{Label: labelRandShare, Color: colorRandShare,
					Values: []float64{2.310495, 3.923671, 8.043795, 33.1127, 119.00754}},
				{Label: labelPVSS, Color: colorPVSS,
					Values: []float64{1.973887, 3.876256, 13.502286, 70.227279, 414.789531}},
			},
			Config: logConfig(yLabelClock),
		}
	},
	"cpu": func() Dataset {
		return Dataset{
			Description: "Overall CPU usage of a RandShare protocol run",
			Series: []chart.Series{
				{Label: labelRandShare, Color: colorRandShare,
					Values: []float64{0.092, 0.956, 10.244, 129.168, 1057.917}},
				{Label: labelPVSS, Color: colorPVSS,
					Values: []float64{0.34, 2.372, 24.624, 408.768, 2970.450249}},
			},
			Config: logConfig("CPU usage in second"),
		}
	},
	// The first measurements; the 128 nodes RandShare run did not finish.
	"clk-early": func() Dataset {
		cfg := logConfig(yLabelClock)
		cfg.LegendLeft = true
		return Dataset{
			Description: "Wall clock time, first measurements",
			Series: []chart.Series{
				{Label: labelRandShare, Color: "y",
					Values: []float64{1.851608, 2.669098, 26.431824, 476.390824, 0}},
				{Label: labelPVSS, Color: "red",
					Values: []float64{2.593622, 4.971902, 16.419024, 95.415956, 570.450249}},
			},
			Config: cfg,
		}
	},
	"breakdown": func() Dataset {
		cfg := logConfig(yLabelClock)
		cfg.StackGroups = [][]int{{1, 2}}
		return Dataset{
			Description: "Wall clock time with the PVSS generation and verification split",
			Series: []chart.Series{
				{Label: labelRandShare, Color: colorRandShare,
					Values: []float64{2.310495, 3.923671, 8.043795, 33.1127, 119.00754}},
				{Label: labelPVSS + " - generation", Color: colorPVSS,
					Values: []float64{1.593877, 3.73225, 13.090557, 68.552564, 408.415956}},
				{Label: labelPVSS + " - verification", Color: "k",
					Values: []float64{0.038001, 0.144006, 0.411729, 1.674715, 6.373575}},
			},
			Config: cfg,
		}
	},
}

// Names returns the names of the datasets, sorted.
func Names() []string {
	var names []string
	for n := range all {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns a fresh copy of the named dataset.
func Get(name string) (Dataset, error) {
	f, ok := all[name]
	if !ok {
		return Dataset{}, xerrors.Errorf("unknown dataset %q, known are %v", name, Names())
	}
	d := f()
	d.Name = name
	d.Categories = append([]string(nil), Nodes...)
	return d, nil
}
