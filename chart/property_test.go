package chart

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
	"pgregory.net/rapid"
)

func genCategories(t *rapid.T) []string {
	n := rapid.IntRange(1, 8).Draw(t, "categories")
	cats := make([]string, n)
	for i := range cats {
		cats[i] = strconv.Itoa(8 << uint(i))
	}
	return cats
}

func TestProperty_ValidInputs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cats := genCategories(t)
		n := rapid.IntRange(1, 5).Draw(t, "series")
		series := make([]Series, n)
		for i := range series {
			series[i] = Series{
				Label:  "s" + strconv.Itoa(i),
				Values: rapid.SliceOfN(rapid.Float64Range(0.01, 5000), len(cats), len(cats)).Draw(t, "values"),
			}
		}
		logScale := rapid.Bool().Draw(t, "log")

		fig, err := Render(series, cats, Config{LogScale: logScale})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fig.Categories) != len(cats) || len(fig.Legend) != n {
			t.Fatalf("got %d categories and %d legend entries", len(fig.Categories), len(fig.Legend))
		}
		if len(fig.Bars) != n*len(cats) || fig.Slots != n {
			t.Fatalf("got %d bars in %d slots", len(fig.Bars), fig.Slots)
		}
	})
}

func TestProperty_LengthMismatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cats := genCategories(t)
		l := rapid.IntRange(0, 10).Filter(func(l int) bool { return l != len(cats) }).Draw(t, "length")
		series := []Series{
			{Label: "ok", Values: make([]float64, len(cats))},
			{Label: "bad", Values: make([]float64, l)},
		}

		_, err := Render(series, cats, Config{})
		var verr *ValidationError
		if !xerrors.As(err, &verr) {
			t.Fatalf("expected a validation error, got %v", err)
		}
	})
}

// Sorting the values must sort the bar heights, whatever the scale.
func TestProperty_Monotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cats := genCategories(t)
		values := rapid.SliceOfN(rapid.Float64Range(0.001, 1e5), len(cats), len(cats)).Draw(t, "values")
		logScale := rapid.Bool().Draw(t, "log")

		fig, err := Render([]Series{{Label: "s", Values: values}}, cats, Config{LogScale: logScale})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		bars := append([]Bar(nil), fig.Bars...)
		sort.Slice(bars, func(i, j int) bool { return bars[i].Value < bars[j].Value })
		for i := 1; i < len(bars); i++ {
			if fig.Height(bars[i-1]) > fig.Height(bars[i]) {
				t.Fatalf("bar %v is higher than bar %v", bars[i-1], bars[i])
			}
		}
	})
}

func TestProperty_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cats := genCategories(t)
		a := rapid.SliceOfN(rapid.Float64Range(0.01, 100), len(cats), len(cats)).Draw(t, "a")
		b := rapid.SliceOfN(rapid.Float64Range(0.01, 100), len(cats), len(cats)).Draw(t, "b")
		cfg := Config{LogScale: true, StackGroups: [][]int{{0, 1}}}
		series := []Series{{Label: "a", Values: a}, {Label: "b", Values: b}}

		f1, err := Render(series, cats, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		f2, err := Render(series, cats, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		require.Equal(t, f1.Bars, f2.Bars)
		require.Equal(t, f1.Legend, f2.Legend)
	})
}
