package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/benchplot/simdata"
	"go.dedis.ch/onet/v3/log"
	"golang.org/x/xerrors"
)

func TestMain(m *testing.M) {
	log.MainTest(m)
}

// inTempDir runs the test in a fresh directory and returns its path.
func inTempDir(t *testing.T) string {
	tmp, err := os.MkdirTemp("", "benchplot")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.RemoveAll(tmp)
	})
	return tmp
}

func requireFile(t *testing.T, path string) {
	st, err := os.Stat(path)
	require.NoError(t, err, path)
	require.True(t, st.Size() > 0, path)
}

func TestDataset(t *testing.T) {
	inTempDir(t)

	require.NoError(t, cliApp.Run([]string{"", "dataset", "clk"}))
	requireFile(t, "clk.png")

	require.NoError(t, cliApp.Run([]string{"", "-d", "2", "ds", "-o", "breakdown.svg", "breakdown"}))
	requireFile(t, "breakdown.svg")

	require.Error(t, cliApp.Run([]string{"", "dataset"}))
	require.Error(t, cliApp.Run([]string{"", "dataset", "plotCLK"}))
	require.Error(t, cliApp.Run([]string{"", "dataset", "-o", "cpu.gif", "cpu"}))
	_, err := os.Stat("cpu.gif")
	require.True(t, os.IsNotExist(err))
}

func TestDataset_List(t *testing.T) {
	var buf bytes.Buffer
	cliApp.Writer = &buf
	defer func() { cliApp.Writer = os.Stdout }()

	require.NoError(t, cliApp.Run([]string{"", "dataset", "list"}))
	require.Contains(t, buf.String(), "clk-early")
	require.Contains(t, buf.String(), "breakdown")
}

func TestDataset_Open(t *testing.T) {
	inTempDir(t)
	var opened string
	defer func(f func(string) error) { openChart = f }(openChart)
	openChart = func(path string) error {
		opened = path
		return nil
	}
	require.NoError(t, cliApp.Run([]string{"", "dataset", "--open", "cpu"}))
	require.Equal(t, "cpu.png", opened)
}

const clkToml = `
ylabel = "Wall clock time in second"
xlabel = "Number of nodes"
log = true
categories = ["8", "16", "32", "64", "128"]
output = "out/clk.svg"

[[series]]
label = "RandShare"
color = "c"
values = [2.310495, 3.923671, 8.043795, 33.1127, 119.00754]

[[series]]
label = "RandShare with PVSS"
color = "#DC143C"
values = [1.973887, 3.876256, 13.502286, 70.227279, 414.789531]
`

func TestRender(t *testing.T) {
	tmp := inTempDir(t)
	require.NoError(t, os.Mkdir("out", 0755))
	require.NoError(t, os.WriteFile("clk.toml", []byte(clkToml), 0644))

	require.NoError(t, cliApp.Run([]string{"", "render", "clk.toml"}))
	requireFile(t, filepath.Join("out", "clk.svg"))

	require.NoError(t, cliApp.Run([]string{"", "render", "-o", filepath.Join(tmp, "clk.pdf"), "clk.toml"}))
	requireFile(t, "clk.pdf")

	require.Error(t, cliApp.Run([]string{"", "render"}))
	require.Error(t, cliApp.Run([]string{"", "render", "missing.toml"}))

	// Five values for two categories.
	bad := `categories = ["1", "2"]` + "\n" + `[[series]]` + "\n" + `label = "A"` + "\n" + `values = [1.0, 2.0, 3.0, 4.0, 5.0]` + "\n"
	require.NoError(t, os.WriteFile("bad.toml", []byte(bad), 0644))
	require.Error(t, cliApp.Run([]string{"", "render", "bad.toml"}))
	_, err := os.Stat("bad.png")
	require.True(t, os.IsNotExist(err))
}

const randshareCSV = `hosts, bf, round_wall_avg, round_user_avg, round_system_avg
8, 2, 2.31, 0.08, 0.012
16, 2, 3.92, 0.8, 0.156
32, 2, 8.04, 9.0, 1.244
`

const pvssCSV = `hosts, bf, round_wall_avg, round_user_avg, round_system_avg
32, 2, 13.5, 21.0, 3.624
16, 2, 3.87, 2.0, 0.372
8, 2, 1.97, 0.3, 0.04
`

func TestCSV(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("randshare.csv", []byte(randshareCSV), 0644))
	require.NoError(t, os.WriteFile("pvss.csv", []byte(pvssCSV), 0644))

	require.NoError(t, cliApp.Run([]string{"", "csv", "--measure", "round", "randshare.csv", "pvss.csv"}))
	requireFile(t, "randshare.png")

	require.NoError(t, cliApp.Run([]string{"", "csv", "-m", "round", "--metric", "cpu",
		"--log=false", "--stack", "-o", "cpu.xlsx", "randshare.csv", "pvss.csv"}))
	requireFile(t, "cpu.xlsx")

	require.Error(t, cliApp.Run([]string{"", "csv", "randshare.csv"}))
	require.Error(t, cliApp.Run([]string{"", "csv", "-m", "round"}))
	require.Error(t, cliApp.Run([]string{"", "csv", "-m", "tgen", "randshare.csv"}))
	require.Error(t, cliApp.Run([]string{"", "csv", "-m", "round", "--bar-width", "2", "randshare.csv"}))
}

// Errors of the simulation data keep their kind through the command.
func TestRender_CSVErrors(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("randshare.csv", []byte(randshareCSV), 0644))

	desc := "categories = [\"64\"]\n[[series]]\nlabel = \"RandShare\"\ncsv = \"randshare.csv\"\nmeasure = \"round\"\n"
	require.NoError(t, os.WriteFile("hosts.toml", []byte(desc), 0644))
	err := cliApp.Run([]string{"", "render", "hosts.toml"})
	require.True(t, xerrors.Is(err, simdata.ErrUnknownHosts), "%v", err)
	require.Contains(t, err.Error(), "hosts.toml")

	desc = "[[series]]\nlabel = \"RandShare\"\ncsv = \"randshare.csv\"\nmeasure = \"tgen\"\n"
	require.NoError(t, os.WriteFile("measure.toml", []byte(desc), 0644))
	err = cliApp.Run([]string{"", "render", "measure.toml"})
	require.True(t, xerrors.Is(err, simdata.ErrUnknownColumn), "%v", err)
}
