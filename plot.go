package stepcast

import (
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// LineForecast generates an echart line chart of the forecast against the
// recorded ground truth, prefixed by the initial window. Series are aligned
// on absolute sample indices with gaps where a series has no values.
func LineForecast(r *ForecastResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Forecast Fit",
			},
		),
	)

	windowLen := len(r.InitialWindow)
	horizon := max(len(r.Predictions), len(r.Actual))
	total := windowLen + horizon

	x := make([]int, 0, total)
	for i := 0; i < total; i++ {
		x = append(x, r.StartIndex+i)
	}

	windowData := make([]opts.LineData, 0, total)
	forecastData := make([]opts.LineData, 0, total)
	actualData := make([]opts.LineData, 0, total)
	for i := 0; i < total; i++ {
		if i < windowLen {
			windowData = append(windowData, opts.LineData{Value: r.InitialWindow[i]})
			forecastData = append(forecastData, opts.LineData{Value: nil})
			actualData = append(actualData, opts.LineData{Value: nil})
			continue
		}
		windowData = append(windowData, opts.LineData{Value: nil})
		if i-windowLen < len(r.Predictions) {
			forecastData = append(forecastData, opts.LineData{Value: r.Predictions[i-windowLen]})
		} else {
			forecastData = append(forecastData, opts.LineData{Value: nil})
		}
		if i-windowLen < len(r.Actual) {
			actualData = append(actualData, opts.LineData{Value: r.Actual[i-windowLen]})
		} else {
			actualData = append(actualData, opts.LineData{Value: nil})
		}
	}

	line.SetXAxis(x).
		AddSeries("Initial Window", windowData).
		AddSeries("Forecast", forecastData).
		AddSeries("Actual", actualData)
	return line
}

// Plot uses the Apache Echarts library to generate an html file showing the
// initial window, the forecast, and the recorded ground truth.
func (r *ForecastResult) Plot(path string) error {
	page := components.NewPage()
	page.AddCharts(LineForecast(r))

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return page.Render(io.MultiWriter(file))
}
