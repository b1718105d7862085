package chart

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/xerrors"
)

func TestFigure_Save(t *testing.T) {
	tmp, err := os.MkdirTemp("", "chart")
	require.NoError(t, err)
	defer os.RemoveAll(tmp)

	fig, err := Render(clkSeries(), nodes, Config{LogScale: true})
	require.NoError(t, err)

	for _, name := range []string{"clk.png", "clk.svg", "clk.pdf", "clk.JPG"} {
		path := filepath.Join(tmp, name)
		require.NoError(t, fig.Save(path))
		st, err := os.Stat(path)
		require.NoError(t, err)
		require.NotZero(t, st.Size())
	}

	png, err := os.ReadFile(filepath.Join(tmp, "clk.png"))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestFigure_SaveUnsupported(t *testing.T) {
	tmp, err := os.MkdirTemp("", "chart")
	require.NoError(t, err)
	defer os.RemoveAll(tmp)

	fig, err := Render(clkSeries(), nodes, Config{})
	require.NoError(t, err)

	for _, name := range []string{"clk.gif", "clk"} {
		path := filepath.Join(tmp, name)
		err = fig.Save(path)
		var rerr *RenderError
		require.True(t, xerrors.As(err, &rerr), "%s: %v", name, err)
		_, err = os.Stat(path)
		require.True(t, os.IsNotExist(err))
	}
}

func TestRenderFile(t *testing.T) {
	tmp, err := os.MkdirTemp("", "chart")
	require.NoError(t, err)
	defer os.RemoveAll(tmp)

	path := filepath.Join(tmp, "clk.png")
	err = RenderFile([]Series{{Label: "A", Values: []float64{1, 2}}}, nodes, Config{}, path)
	var verr *ValidationError
	require.True(t, xerrors.As(err, &verr))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	require.NoError(t, RenderFile(clkSeries(), nodes, Config{LogScale: true}, path))
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFormatOf(t *testing.T) {
	require.Equal(t, "png", FormatOf("test_data/clk.png"))
	require.Equal(t, "svg", FormatOf("CLK.SVG"))
	require.Equal(t, "", FormatOf("clk"))
}

func TestFigure_XLSX(t *testing.T) {
	series := []Series{
		{Label: "RandShare", Values: []float64{2.31, 3.92, 8.04, 33.11, 119.01}, Color: "c"},
		{Label: "generation", Values: []float64{1.59, 3.73, 13.09, 68.55, 408.42}, Color: "#DC143C"},
		{Label: "verification", Values: []float64{0.04, 0.14, 0.41, 1.67, 6.37}, Color: "k"},
	}
	fig, err := Render(series, nodes, Config{
		XLabel:      "Number of nodes",
		YLabel:      "Wall clock time in second",
		LogScale:    true,
		StackGroups: [][]int{{1, 2}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.WriteTo(&buf, "xlsx"))

	book, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows(DataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	require.Equal(t, []string{"Number of nodes", "RandShare", "generation", "verification"}, rows[0])
	require.Equal(t, "128", rows[5][0])
	require.Equal(t, "408.42", rows[5][2])

	// One clustered chart and one chart for the stack group.
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	charts := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "xl/charts/chart") {
			charts++
		}
	}
	require.Equal(t, 2, charts)
}
