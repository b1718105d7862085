// Package simdata reads the CSV files written by onet simulations.
//
// A simulation writes one row per run configuration into
// test_data/<name>.csv. The first columns hold the run configuration
// (hosts, bf, rounds, ...), then every measure comes with its statistics:
//
//	hosts, bf, tgen-randshare_wall_min, tgen-randshare_wall_max, tgen-randshare_wall_avg, ...
//
// A time measure is split in wall, user and system time; a counter
// measure, like bandwidth, in its own parts (tx, rx).
package simdata

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.dedis.ch/benchplot"
	"go.dedis.ch/onet/v3/log"
	"golang.org/x/xerrors"
)

// HostsColumn is the run configuration column giving the number of nodes.
const HostsColumn = "hosts"

// Metric selects which part of a measure is plotted.
type Metric string

const (
	// Wall is the wall clock time.
	Wall Metric = "wall"
	// User is the CPU time spent in user space.
	User Metric = "user"
	// System is the CPU time spent in the kernel.
	System Metric = "system"
	// CPU is the total CPU time, user plus system.
	CPU Metric = "cpu"
)

// ErrUnknownColumn is returned when a measure is not in the file.
var ErrUnknownColumn = xerrors.New("unknown column")

// ErrUnknownHosts is returned when values are asked for a number of hosts
// that was not simulated.
var ErrUnknownHosts = xerrors.New("unknown number of hosts")

// Table holds the rows of a simulation file, averaged per number of
// hosts.
type Table struct {
	columns []string
	rows    map[int]map[string]float64
}

// ReadFile reads the simulation results stored in path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, benchplot.ErrorOrNil(err, "opening simulation data")
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, benchplot.ErrorOrNil(err, path)
	}
	log.Lvlf3("Read %d host counts from %s", len(t.rows), path)
	return t, nil
}

// Read parses a simulation CSV. Every cell must be a number. Rows with the
// same number of hosts, as written by repeated runs, are averaged.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, benchplot.WrapError(err)
	}
	if len(records) == 0 {
		return nil, xerrors.New("empty file")
	}

	header := records[0]
	hostsCol := -1
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
		if strings.EqualFold(header[i], HostsColumn) {
			header[i] = HostsColumn
			hostsCol = i
		}
	}
	if hostsCol < 0 {
		return nil, xerrors.Errorf("no %q column in %v", HostsColumn, header)
	}

	sums := make(map[int]map[string]float64)
	runs := make(map[int]int)
	for l, record := range records[1:] {
		line := l + 2
		hosts, err := strconv.Atoi(strings.TrimSpace(record[hostsCol]))
		if err != nil || hosts <= 0 {
			return nil, xerrors.Errorf("line %d: %q is not a number of hosts", line, record[hostsCol])
		}
		if sums[hosts] == nil {
			sums[hosts] = make(map[string]float64)
		}
		for i, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, xerrors.Errorf("line %d: column %q: %q is not a number", line, header[i], cell)
			}
			sums[hosts][header[i]] += v
		}
		runs[hosts]++
	}

	for hosts, row := range sums {
		for k := range row {
			row[k] /= float64(runs[hosts])
		}
	}
	return &Table{columns: header, rows: sums}, nil
}

// Columns returns the header of the file.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Hosts returns the numbers of hosts present in the file, in increasing
// order.
func (t *Table) Hosts() []int {
	hosts := make([]int, 0, len(t.rows))
	for h := range t.rows {
		hosts = append(hosts, h)
	}
	sort.Ints(hosts)
	return hosts
}

// Categories returns Hosts as labels for a chart.
func (t *Table) Categories() []string {
	var cats []string
	for _, h := range t.Hosts() {
		cats = append(cats, strconv.Itoa(h))
	}
	return cats
}

// Value returns the averaged column for the given number of hosts.
func (t *Table) Value(hosts int, column string) (float64, error) {
	row, ok := t.rows[hosts]
	if !ok {
		return 0, xerrors.Errorf("%d: %w", hosts, ErrUnknownHosts)
	}
	v, ok := row[column]
	if !ok {
		return 0, xerrors.Errorf("%q: %w", column, ErrUnknownColumn)
	}
	return v, nil
}

// Values returns the average of the metric of the measure for each of
// the given numbers of hosts. A nil hosts means all of them. A metric
// that is none of Wall, User, System and CPU is used as a column suffix,
// e.g. "tx_avg" for the bandwidth measures.
func (t *Table) Values(measure string, metric Metric, hosts []int) ([]float64, error) {
	if hosts == nil {
		hosts = t.Hosts()
	}
	var columns []string
	switch metric {
	case Wall, User, System:
		columns = []string{measure + "_" + string(metric) + "_avg"}
	case CPU:
		columns = []string{measure + "_user_avg", measure + "_system_avg"}
	default:
		columns = []string{measure + "_" + string(metric)}
	}

	values := make([]float64, len(hosts))
	for i, h := range hosts {
		for _, c := range columns {
			v, err := t.Value(h, c)
			if err != nil {
				return nil, err
			}
			values[i] += v
		}
	}
	return values, nil
}

// ParseHosts turns chart categories back into numbers of hosts.
func ParseHosts(categories []string) ([]int, error) {
	hosts := make([]int, len(categories))
	for i, c := range categories {
		h, err := strconv.Atoi(strings.TrimSpace(c))
		if err != nil {
			return nil, xerrors.Errorf("category %q is not a number of hosts", c)
		}
		hosts[i] = h
	}
	return hosts, nil
}
