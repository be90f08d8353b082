package featureprep

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineChart generates an echart multi-line chart of the bundle's continuous columns after any
// center scaling. The x axis is the dataset time when present and the 1-based row number
// otherwise. Missing values are left as gaps.
func LineChart(b *Bundle) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Continuous Inputs",
			},
		),
	)
	if !b.Validated() {
		return line
	}

	rows := b.Data.Rows()
	if b.Data.T != nil {
		line.SetXAxis(b.Data.T)
	} else {
		rowNums := make([]int, 0, rows)
		for i := 1; i <= rows; i++ {
			rowNums = append(rowNums, i)
		}
		line.SetXAxis(rowNums)
	}

	for _, name := range b.Continuous {
		col, exists := b.Data.Column(name)
		if !exists {
			continue
		}
		lineData := make([]opts.LineData, 0, rows)
		for _, v := range col.Num {
			if math.IsNaN(v) {
				lineData = append(lineData, opts.LineData{Value: nil})
				continue
			}
			lineData = append(lineData, opts.LineData{Value: v})
		}
		line.AddSeries(name, lineData)
	}
	return line
}
