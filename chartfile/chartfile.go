// Package chartfile reads chart descriptions written in TOML.
//
// A description gives the axes and options of a chart and its series,
// either with literal values or with values taken from a simulation
// file:
//
//	ylabel = "Wall clock time in second"
//	xlabel = "Number of nodes"
//	log = true
//	categories = ["8", "16", "32", "64", "128"]
//	output = "clk.png"
//
//	[[series]]
//	label = "RandShare"
//	color = "c"
//	values = [2.310495, 3.923671, 8.043795, 33.1127, 119.00754]
//
//	[[series]]
//	label = "RandShare with PVSS"
//	color = "#DC143C"
//	csv = "test_data/randshare_pvss.csv"
//	measure = "tgen-randshare"
//	metric = "wall"
//
// Series sharing the same stack name are drawn on top of each other.
package chartfile

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/benchplot"
	"go.dedis.ch/benchplot/chart"
	"go.dedis.ch/benchplot/simdata"
	"go.dedis.ch/onet/v3/log"
	"golang.org/x/xerrors"
)

// File is the content of a chart description.
type File struct {
	Title       string  `toml:"title"`
	XLabel      string  `toml:"xlabel"`
	YLabel      string  `toml:"ylabel"`
	Log         bool    `toml:"log"`
	BarWidth    float64 `toml:"bar_width"`
	ValueLabels bool    `toml:"value_labels"`
	LegendLeft  bool    `toml:"legend_left"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	// Output is where the chart is written, relative to the file.
	Output     string   `toml:"output"`
	Categories []string `toml:"categories"`
	Series     []Series `toml:"series"`
}

// Series is one series of a chart description. It has either Values, or
// a CSV file with the Measure and Metric to read from it.
type Series struct {
	Label   string    `toml:"label"`
	Color   string    `toml:"color"`
	Values  []float64 `toml:"values"`
	Stack   string    `toml:"stack"`
	CSV     string    `toml:"csv"`
	Measure string    `toml:"measure"`
	Metric  string    `toml:"metric"`
}

// Parse decodes a chart description. Unknown keys are logged and
// ignored.
func Parse(data string) (*File, error) {
	f := &File{}
	md, err := toml.Decode(data, f)
	if err != nil {
		return nil, benchplot.ErrorOrNil(err, "decoding chart description")
	}
	for _, k := range md.Undecoded() {
		log.Warn("Ignoring unknown key in chart description:", k.String())
	}
	return f, nil
}

// Load reads and decodes the chart description stored in path.
func Load(path string) (*File, error) {
	f := &File{}
	md, err := toml.DecodeFile(path, f)
	if err != nil {
		return nil, benchplot.ErrorOrNil(err, "decoding "+path)
	}
	for _, k := range md.Undecoded() {
		log.Warnf("Ignoring unknown key %s in %s", k.String(), path)
	}
	log.Lvl3("Loaded chart description", path)
	return f, nil
}

// Config returns the rendering options of the description. Stack groups
// are filled in by Resolve.
func (f *File) Config() chart.Config {
	return chart.Config{
		Title:       f.Title,
		XLabel:      f.XLabel,
		YLabel:      f.YLabel,
		LogScale:    f.Log,
		BarWidth:    f.BarWidth,
		ValueLabels: f.ValueLabels,
		LegendLeft:  f.LegendLeft,
		Width:       f.Width,
		Height:      f.Height,
	}
}

// Resolve returns the inputs of chart.Render. The CSV files are read
// relative to baseDir. Without categories in the description, the host
// counts of the first CSV file are used.
func (f *File) Resolve(baseDir string) ([]chart.Series, []string, chart.Config, error) {
	cfg := f.Config()
	categories := append([]string(nil), f.Categories...)
	tables := make(map[string]*simdata.Table)

	series := make([]chart.Series, len(f.Series))
	groups := make(map[string]int)
	for i, s := range f.Series {
		series[i] = chart.Series{Label: s.Label, Color: s.Color, Values: s.Values}
		switch {
		case s.CSV != "" && s.Values != nil:
			return nil, nil, cfg, xerrors.Errorf("series %d (%q) has both values and a csv file", i, s.Label)
		case s.CSV == "" && s.Values == nil:
			return nil, nil, cfg, xerrors.Errorf("series %d (%q) has neither values nor a csv file", i, s.Label)
		case s.CSV != "":
			values, cats, err := csvValues(tables, baseDir, s, categories)
			if err != nil {
				return nil, nil, cfg, benchplot.ErrorOrNil(err, "series "+s.Label)
			}
			categories = cats
			series[i].Values = values
		}

		if s.Stack == "" {
			continue
		}
		g, ok := groups[s.Stack]
		if !ok {
			g = len(cfg.StackGroups)
			groups[s.Stack] = g
			cfg.StackGroups = append(cfg.StackGroups, nil)
		}
		cfg.StackGroups[g] = append(cfg.StackGroups[g], i)
	}
	return series, categories, cfg, nil
}

// OutputPath returns where the chart of the description stored in path
// goes: its output key relative to the description, or the description's
// name with a .png extension.
func (f *File) OutputPath(path string) string {
	if f.Output != "" {
		if filepath.IsAbs(f.Output) {
			return f.Output
		}
		return filepath.Join(filepath.Dir(path), f.Output)
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
}

func csvValues(tables map[string]*simdata.Table, baseDir string, s Series, categories []string) ([]float64, []string, error) {
	if s.Measure == "" {
		return nil, nil, xerrors.New("a csv series needs a measure")
	}
	path := s.CSV
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	table, ok := tables[path]
	if !ok {
		var err error
		table, err = simdata.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		tables[path] = table
	}

	if len(categories) == 0 {
		categories = table.Categories()
	}
	hosts, err := simdata.ParseHosts(categories)
	if err != nil {
		return nil, nil, err
	}
	metric := simdata.Wall
	if s.Metric != "" {
		metric = simdata.Metric(s.Metric)
	}
	values, err := table.Values(s.Measure, metric, hosts)
	if err != nil {
		return nil, nil, err
	}
	return values, categories, nil
}
