package main

import (
	"gopkg.in/urfave/cli.v1"
)

var openFlag = cli.BoolFlag{
	Name:  "open",
	Usage: "open the chart once it is written",
}

var cmds = cli.Commands{
	{
		Name:      "render",
		Usage:     "render a chart description",
		Aliases:   []string{"r"},
		ArgsUsage: "chart.toml",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Usage: "output file, overrides the output of the description",
			},
			openFlag,
		},
		Action: render,
	},
	{
		Name:      "dataset",
		Usage:     "render one of the built-in datasets",
		Aliases:   []string{"ds"},
		ArgsUsage: "name",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "out, o",
				Usage: "output file, defaults to name.png",
			},
			openFlag,
		},
		Action: dataset,
		Subcommands: cli.Commands{
			{
				Name:   "list",
				Usage:  "list the built-in datasets",
				Action: datasetList,
			},
		},
	},
	{
		Name:      "csv",
		Usage:     "render simulation results, one series per file",
		ArgsUsage: "file.csv [file.csv...]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "measure, m",
				Usage: "measure to plot, e.g. round or tgen-randshare",
			},
			cli.StringFlag{
				Name:  "metric",
				Value: "wall",
				Usage: "wall, user, system, cpu or a raw column suffix like wall_min",
			},
			cli.StringFlag{
				Name:  "title",
				Usage: "title of the chart",
			},
			cli.StringFlag{
				Name:  "xlabel",
				Value: "Number of nodes",
				Usage: "label of the category axis",
			},
			cli.StringFlag{
				Name:  "ylabel",
				Value: "Time in second",
				Usage: "label of the value axis",
			},
			cli.BoolTFlag{
				Name:  "log",
				Usage: "logarithmic value axis, use --log=false for a linear one",
			},
			cli.Float64Flag{
				Name:  "bar-width",
				Value: 0.3,
				Usage: "width of a bar, as a fraction of a category",
			},
			cli.BoolFlag{
				Name:  "stack",
				Usage: "stack all the series in one bar",
			},
			cli.StringFlag{
				Name:  "out, o",
				Usage: "output file, defaults to the first file with a .png extension",
			},
			openFlag,
		},
		Action: csvChart,
	},
}
