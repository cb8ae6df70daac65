package plot

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DrawProductBars renders the top-products ranking as a PNG bar chart.
// Returns nil bytes without error on empty input, the caller decides how to
// tell the user there was nothing to draw.
func DrawProductBars(products []string, revenues []float64) ([]byte, error) {
	if len(products) == 0 {
		return nil, nil
	}
	data := NewDataProductsForGraph(products, revenues, "Total Sales", "Top Products by Total Sales")
	return DrawPlotBar(data)
}

// DrawTrendLine renders the monthly revenue series as a PNG line chart with
// one tick per "YYYY-MM" bucket. Returns nil bytes on empty input.
func DrawTrendLine(buckets []string, revenues []float64) ([]byte, error) {
	if len(buckets) == 0 {
		return nil, nil
	}

	xValues := make([]float64, len(buckets))
	ticks := make([]chart.Tick, len(buckets))
	for i, bucket := range buckets {
		xValues[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: bucket}
	}

	series := &chart.ContinuousSeries{
		XValues: xValues,
		YValues: revenues,
		Style: chart.Style{
			StrokeColor: drawing.ColorBlue,
			StrokeWidth: 2,
			DotColor:    drawing.ColorBlue,
			DotWidth:    4,
		},
	}

	graph := chart.Chart{
		Title: "Monthly Sales Trend",
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 60,
			},
			FillColor: drawing.ColorWhite,
		},
		Width:  2048,
		Height: 1024,
		XAxis: chart.XAxis{
			Name:  "Year-Month",
			Style: chart.Style{TextRotationDegrees: 45},
			Ticks: ticks,
			// half a bucket of slack keeps a single point renderable
			Range: &chart.ContinuousRange{
				Min: -0.5,
				Max: float64(len(buckets)-1) + 0.5,
			},
		},
		YAxis: chart.YAxis{
			Name: "Total Sales",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: findMaxValue(revenues) * 1.1,
			},
			Ticks: generateGrid(revenues),
			ValueFormatter: func(v interface{}) string {
				if vf, isFloat := v.(float64); isFloat {
					return fmt.Sprintf("%.0f", vf)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}
	graph.Background.StrokeWidth = 1
	graph.Background.StrokeColor = drawing.ColorFromHex("efefef")

	buffer := bytes.NewBuffer([]byte{})
	err := graph.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering trend chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func generateGrid(yValues []float64) []chart.Tick {
	max := findMaxValue(yValues)
	gridStep := calculateGridStep(max)
	if gridStep <= 0 {
		return nil
	}
	var ticks []chart.Tick
	for i := 0.0; i <= max*1.1; i += gridStep {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.0f", i),
		})
	}
	return ticks
}

func calculateGridStep(maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	if maxValue < 1e-10 {
		return 1e-10
	}

	magnitude := math.Pow(10, math.Floor(math.Log10(maxValue)))
	normalized := maxValue / magnitude

	var step float64
	switch {
	case normalized <= 1:
		step = 0.2
	case normalized <= 2:
		step = 0.5
	case normalized <= 5:
		step = 1.0
	default:
		step = 2.0
	}

	finalStep := step * magnitude
	if finalStep >= 1000 {
		return math.Round(finalStep/100) * 100
	}
	if finalStep >= 100 {
		return math.Round(finalStep/10) * 10
	}
	return finalStep
}

func DrawPlotBar(data dataForGraph) ([]byte, error) {
	var ticks []chart.Tick
	barValues := data.generateBarValues()
	paddingX := customizePaddingXBottom(barValues)
	width, height := data.calculateChartDimensions(100)

	bar := chart.BarChart{}
	bar.Title = data.GetNameGraph()
	bar.Background = chart.Style{
		FontSize:    160,
		StrokeColor: chart.ColorBlack,
		Padding: chart.Box{
			Bottom: paddingX,
			Top:    50,
		},
	}
	bar.Height = height + 50
	bar.Width = width + paddingX + 50
	bar.BarWidth = 60
	bar.Bars = barValues
	bar.YAxis = chart.YAxis{
		Name: data.getNameYAxis(),
		Range: &chart.ContinuousRange{
			Min: 0.0,
			Max: findMaxValue(data.getYValues()),
		},
		Style: chart.Style{
			StrokeWidth: 2,
			StrokeColor: chart.ColorBlack,
			FontSize:    17,
		},
		Ticks: ticks,
		GridMinorStyle: chart.Style{
			StrokeColor: chart.ColorBlack,
			StrokeWidth: 1,
			DotWidth:    1,
		},
		GridMajorStyle: chart.Style{
			StrokeColor:     chart.ColorBlack,
			StrokeWidth:     1,
			DotWidth:        1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
	bar.XAxis = chart.Style{
		StrokeWidth:         2,
		StrokeColor:         chart.ColorBlack,
		TextRotationDegrees: 88,
		FontSize:            17,
	}

	buffer := bytes.NewBuffer([]byte{})
	err := bar.Render(chart.PNG, buffer)
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func findMaxValue(y []float64) float64 {
	if len(y) == 0 {
		return 0
	}
	max := y[0]
	for _, v := range y {
		if v > max {
			max = v
		}
	}
	return max
}

func customizePaddingXBottom(values []chart.Value) int {
	count := 0
	for _, v := range values {
		if len(v.Label) > count {
			count = len(v.Label)
		}
	}
	return int(count * 8)
}
