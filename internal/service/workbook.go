package service

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"exusiai.dev/chartboard/internal/model"
)

const defaultSheet = "Sheet1"

type column struct {
	header string
	values []any
}

func floats(xs []float64) []any {
	return lo.Map(xs, func(x float64, _ int) any { return x })
}

func strs(xs []string) []any {
	return lo.Map(xs, func(x string, _ int) any { return x })
}

func prefixed(label, name string) string {
	if label == "" {
		return name
	}
	return label + " " + name
}

// figureColumns flattens the sample arrays of fig into spreadsheet columns.
func figureColumns(fig *model.Figure) []column {
	var cols []column
	for i, series := range fig.Series {
		switch s := series.(type) {
		case *model.LineSeries:
			label := lo.Ternary(s.Label != "", s.Label, "series "+strconv.Itoa(i+1))
			cols = append(cols,
				column{prefixed(label, "x"), floats(s.X)},
				column{prefixed(label, "y"), floats(s.Y)},
			)
		case *model.BarSeries:
			cols = append(cols,
				column{"category", strs(s.Categories)},
				column{"value", floats(s.Values)},
			)
		case *model.ScatterSeries:
			cols = append(cols,
				column{prefixed(s.Label, "x"), floats(s.X)},
				column{prefixed(s.Label, "y"), floats(s.Y)},
			)
			if len(s.Values) > 0 {
				cols = append(cols, column{prefixed(s.Label, "value"), floats(s.Values)})
			}
		case *model.HistogramSeries:
			cols = append(cols, column{"value", floats(s.Values)})
		case *model.PieSeries:
			cols = append(cols,
				column{"label", strs(s.Labels)},
				column{"size", floats(s.Sizes)},
				column{"fraction", floats(s.Fractions())},
			)
		case *model.BoxSeries:
			for j, g := range s.Groups {
				cols = append(cols, column{s.Labels[j], floats(g)})
			}
		}
	}
	return cols
}

// writeWorkbook puts each figure on its own sheet named after the chart id,
// headers in the first row.
func writeWorkbook(figs []*model.Figure) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	for _, fig := range figs {
		if _, err := f.NewSheet(fig.ID); err != nil {
			return nil, errors.Wrapf(err, "create sheet %s", fig.ID)
		}
		cols := figureColumns(fig)
		for c, col := range cols {
			cell, err := excelize.CoordinatesToCellName(c+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(fig.ID, cell, col.header); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(fig.ID, cell, cell, header); err != nil {
				return nil, err
			}
			for r, v := range col.values {
				cell, err := excelize.CoordinatesToCellName(c+1, r+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(fig.ID, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	if len(figs) > 0 {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return nil, errors.Wrap(err, "drop default sheet")
		}
		f.SetActiveSheet(0)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "encode workbook")
	}
	return buf.Bytes(), nil
}
