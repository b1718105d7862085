package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"go.dedis.ch/benchplot"
	"go.dedis.ch/benchplot/chart"
	"go.dedis.ch/benchplot/chartfile"
	"go.dedis.ch/benchplot/datasets"
	"go.dedis.ch/onet/v3/log"
	"golang.org/x/xerrors"
	"gopkg.in/urfave/cli.v1"
)

// openChart is a function pointer so that tests don't start a viewer.
var openChart = browser.OpenFile

// render draws the chart of a TOML description.
func render(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("please give the chart description to render")
	}
	f, err := chartfile.Load(path)
	if err != nil {
		return err
	}
	series, categories, cfg, err := f.Resolve(filepath.Dir(path))
	if err != nil {
		return benchplot.ErrorOrNil(err, "resolving "+path)
	}

	out := c.String("out")
	if out == "" {
		out = f.OutputPath(path)
	}
	if err := chart.RenderFile(series, categories, cfg, out); err != nil {
		return err
	}
	return written(c, out)
}

func dataset(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("please give a dataset, one of %s", strings.Join(datasets.Names(), ", "))
	}
	d, err := datasets.Get(name)
	if err != nil {
		return err
	}
	fig, err := d.Render()
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		out = name + ".png"
	}
	if err := fig.Save(out); err != nil {
		return err
	}
	return written(c, out)
}

func datasetList(c *cli.Context) error {
	for _, name := range datasets.Names() {
		d, err := datasets.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.App.Writer, "%-10s %s\n", name, d.Description)
	}
	return nil
}

// csvChart draws one series per simulation file, labeled with the name of
// the file. The categories are the host counts of the first file.
func csvChart(c *cli.Context) error {
	if !c.Args().Present() {
		return errors.New("please give at least one simulation file")
	}
	if c.String("measure") == "" {
		return errors.New("--measure is required")
	}

	f := &chartfile.File{
		Title:    c.String("title"),
		XLabel:   c.String("xlabel"),
		YLabel:   c.String("ylabel"),
		Log:      c.BoolT("log"),
		BarWidth: c.Float64("bar-width"),
	}
	for _, file := range c.Args() {
		s := chartfile.Series{
			Label:   strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)),
			CSV:     file,
			Measure: c.String("measure"),
			Metric:  c.String("metric"),
		}
		if c.Bool("stack") {
			s.Stack = "all"
		}
		f.Series = append(f.Series, s)
	}
	series, categories, cfg, err := f.Resolve(".")
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		first := c.Args().First()
		out = strings.TrimSuffix(first, filepath.Ext(first)) + ".png"
	}
	if err := chart.RenderFile(series, categories, cfg, out); err != nil {
		return err
	}
	return written(c, out)
}

func written(c *cli.Context, path string) error {
	log.Info("Chart written to", path)
	if !c.Bool("open") {
		return nil
	}
	if err := openChart(path); err != nil {
		return xerrors.Errorf("opening %s: %v", path, err)
	}
	return nil
}
