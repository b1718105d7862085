package chart

import (
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/plot/vg"
)

// DataSheet is the name of the spreadsheet sheet holding the values.
const DataSheet = "data"

const pixelsPerInch = 96

// writeXLSX writes a workbook with the values in a table and native
// column charts next to it: a clustered chart for the series that are
// not stacked, and a stacked chart for every stack group.
func (f *Figure) writeXLSX(w io.Writer) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := book.SetSheetName("Sheet1", DataSheet); err != nil {
		return newRenderError("xlsx sheet", err)
	}
	if err := f.fillSheet(book); err != nil {
		return newRenderError("xlsx data", err)
	}

	stacked := make(map[int]bool)
	for _, g := range f.config.StackGroups {
		for _, s := range g {
			stacked[s] = true
		}
	}
	var clustered []int
	for s := range f.series {
		if !stacked[s] {
			clustered = append(clustered, s)
		}
	}

	row := 1
	if len(clustered) > 0 {
		if err := f.addChart(book, excelize.Col, clustered, row); err != nil {
			return newRenderError("xlsx chart", err)
		}
		row += 25
	}
	for _, g := range f.config.StackGroups {
		if err := f.addChart(book, excelize.ColStacked, g, row); err != nil {
			return newRenderError("xlsx chart", err)
		}
		row += 25
	}

	if _, err := book.WriteTo(w); err != nil {
		return newRenderError("write xlsx", err)
	}
	return nil
}

// fillSheet writes the categories in the first column and one column per
// series, with the labels in the first row.
func (f *Figure) fillSheet(book *excelize.File) error {
	header := f.config.XLabel
	if header == "" {
		header = "category"
	}
	if err := book.SetCellValue(DataSheet, "A1", header); err != nil {
		return err
	}
	for i, c := range f.Categories {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(DataSheet, cell, c); err != nil {
			return err
		}
	}

	for s, series := range f.series {
		cell, err := excelize.CoordinatesToCellName(s+2, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(DataSheet, cell, series.Label); err != nil {
			return err
		}
		for i, v := range series.Values {
			cell, err := excelize.CoordinatesToCellName(s+2, i+2)
			if err != nil {
				return err
			}
			if err := book.SetCellValue(DataSheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Figure) addChart(book *excelize.File, kind excelize.ChartType, members []int, row int) error {
	last := len(f.Categories) + 1
	categories := DataSheet + "!$A$2:$A$" + strconv.Itoa(last)

	var series []excelize.ChartSeries
	for _, s := range members {
		col, err := excelize.ColumnNumberToName(s + 2)
		if err != nil {
			return err
		}
		series = append(series, excelize.ChartSeries{
			Name:       DataSheet + "!$" + col + "$1",
			Categories: categories,
			Values:     DataSheet + "!$" + col + "$2:$" + col + "$" + strconv.Itoa(last),
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{hexColor(f.Legend[s].Color)},
			},
		})
	}

	width, height := f.config.size()
	c := &excelize.Chart{
		Type:   kind,
		Series: series,
		Legend: excelize.ChartLegend{Position: "top"},
		XAxis: excelize.ChartAxis{
			Title: richText(f.config.XLabel),
		},
		YAxis: excelize.ChartAxis{
			Title:          richText(f.config.YLabel),
			MajorGridLines: true,
		},
		Title: richText(f.config.Title),
		Dimension: excelize.ChartDimension{
			Width:  uint(width / vg.Inch * pixelsPerInch),
			Height: uint(height / vg.Inch * pixelsPerInch),
		},
	}
	if f.config.LogScale {
		c.YAxis.LogBase = 10
	}

	anchor, err := excelize.CoordinatesToCellName(len(f.series)+3, row)
	if err != nil {
		return err
	}
	return book.AddChart(DataSheet, anchor, c)
}

func richText(s string) []excelize.RichTextRun {
	if s == "" {
		return nil
	}
	return []excelize.RichTextRun{{Text: s}}
}
