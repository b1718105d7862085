// benchplot draws bar charts of simulation results.
//
// Charts come from a TOML description, from one of the built-in
// RandShare datasets, or directly from the CSV files written by the onet
// simulations.
package main

import (
	"os"

	"go.dedis.ch/onet/v3/log"
	"gopkg.in/urfave/cli.v1"
)

var cliApp = cli.NewApp()

var gitTag = "dev"

func init() {
	cliApp.Name = "benchplot"
	cliApp.Usage = "Draw bar charts of benchmark results."
	cliApp.Version = gitTag
	cliApp.Commands = cmds // stored in "commands.go"
	cliApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "debug, d",
			Value: 0,
			Usage: "debug-level: 1 for terse, 5 for maximal",
		},
	}
	cliApp.Before = func(c *cli.Context) error {
		log.SetDebugVisible(c.Int("debug"))
		return nil
	}
}

func main() {
	log.ErrFatal(cliApp.Run(os.Args))
}
