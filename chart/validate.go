package chart

import (
	"fmt"
	"math"
)

// Validate returns a *ValidationError describing the first problem that
// prevents the inputs from being drawn, or nil.
func Validate(series []Series, categories []string, cfg Config) error {
	if len(categories) == 0 {
		return newValidationError("categories", "no categories")
	}
	seen := make(map[string]int)
	for i, c := range categories {
		if j, ok := seen[c]; ok {
			return newValidationError(fmt.Sprintf("categories[%d]", i),
				"%q already used by category %d", c, j)
		}
		seen[c] = i
	}

	if len(series) == 0 {
		return newValidationError("series", "no series")
	}
	positive := false
	for i, s := range series {
		field := fmt.Sprintf("series[%d].values", i)
		if len(s.Values) != len(categories) {
			return newValidationError(field, "%q has %d values for %d categories",
				s.Label, len(s.Values), len(categories))
		}
		for j, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return newValidationError(field, "value %d of %q is %v", j, s.Label, v)
			}
			if cfg.LogScale && v < 0 {
				return newValidationError(field,
					"value %d of %q is negative on a logarithmic scale", j, s.Label)
			}
			positive = positive || v > 0
		}
	}
	if cfg.LogScale && !positive {
		return newValidationError("series", "a logarithmic scale needs at least one positive value")
	}

	if cfg.BarWidth < 0 || cfg.BarWidth > 1 || math.IsNaN(cfg.BarWidth) {
		return newValidationError("bar width", "%v is not in [0, 1]", cfg.BarWidth)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return newValidationError("size", "%vx%v is negative", cfg.Width, cfg.Height)
	}

	stacked := make(map[int]int)
	for g, members := range cfg.StackGroups {
		field := fmt.Sprintf("stack group %d", g)
		if len(members) == 0 {
			return newValidationError(field, "empty group")
		}
		for _, s := range members {
			if s < 0 || s >= len(series) {
				return newValidationError(field, "series index %d out of range [0, %d)", s, len(series))
			}
			if other, ok := stacked[s]; ok {
				return newValidationError(field, "series %d is already in stack group %d", s, other)
			}
			stacked[s] = g
		}
	}
	return checkExtent(series, categories, cfg, stacked)
}

// checkExtent makes sure the stacked tops and the value axis built
// around them stay finite.
func checkExtent(series []Series, categories []string, cfg Config, stacked map[int]int) error {
	lo, hi := 0.0, 0.0
	for c := range categories {
		for s := range series {
			if _, ok := stacked[s]; ok {
				continue
			}
			lo = math.Min(lo, series[s].Values[c])
			hi = math.Max(hi, series[s].Values[c])
		}
		for g, members := range cfg.StackGroups {
			top := 0.0
			for _, s := range members {
				top += series[s].Values[c]
				if math.IsInf(top, 0) {
					return newValidationError(fmt.Sprintf("stack group %d", g),
						"stacked values of category %q overflow", categories[c])
				}
				lo = math.Min(lo, top)
				hi = math.Max(hi, top)
			}
		}
	}

	if cfg.LogScale {
		if cfg.ValueLabels {
			hi *= 1.1
		}
		if math.IsInf(math.Pow(10, math.Ceil(math.Log10(hi))), 0) {
			return newValidationError("series", "%v is too large for a logarithmic axis", hi)
		}
		return nil
	}
	span := hi - lo
	if math.IsInf(span, 0) || math.IsInf(hi+span*0.05, 0) {
		return newValidationError("series", "values from %v to %v overflow the axis", lo, hi)
	}
	return nil
}
