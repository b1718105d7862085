/*
Package benchplot renders the benchmark results of onet simulations as
bar charts.

A simulation run writes its measures into test_data/<name>.csv, one row
per run configuration. The packages of this repository turn those files,
or literal numbers, into grouped and stacked bar charts:

	chart      the renderer: series, categories and options in, an image out
	simdata    reads simulation CSV files
	chartfile  TOML descriptions of a chart
	datasets   the RandShare and RandShare-with-PVSS results
	benchplot  the command line tool

To draw the wall clock time of the RandShare runs:

	cd benchplot
	go build
	./benchplot dataset -o clk.png clk

This package only holds the error helpers shared by the others.
*/
package benchplot
