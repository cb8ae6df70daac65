package plot

import (
	"github.com/mozillazg/go-unidecode"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataProductsForGraph feeds the top-products bar chart. Labels are product
// identifiers straight from the dataset.
type dataProductsForGraph struct {
	products  []string
	revenues  []float64
	nameYAxis string
	nameGraph string
}

func NewDataProductsForGraph(products []string, revenues []float64, nameYAxis, nameGraph string) dataProductsForGraph {
	return dataProductsForGraph{
		products:  products,
		revenues:  revenues,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataProductsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataProductsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataProductsForGraph) getYValues() []float64 {
	return d.revenues
}
func (d dataProductsForGraph) lenXValues() int {
	return len(d.products)
}

func (d dataProductsForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.revenues) == 0 || d.lenXValues() <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if d.lenXValues() < 2 {
		x = 10.0
	} else if d.lenXValues() < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataProductsForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i := 0; i < len(d.products); i++ {
		bars = append(bars, chart.Value{
			Value: d.revenues[i],
			// the bundled chart font renders non-Latin runes as boxes
			Label: unidecode.Unidecode(d.products[i]),
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}
	return bars
}
