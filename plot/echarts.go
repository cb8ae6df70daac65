package plot

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// BuildChartsPage assembles the interactive HTML page with the monthly trend
// line and the top-products bar chart. Empty result sets are skipped so an
// empty page never renders an axis with no data.
func BuildChartsPage(buckets []string, monthlyRevenues []float64, products []string, productRevenues []float64) *components.Page {
	page := components.NewPage()
	page.PageTitle = "Sales Insights"

	if len(buckets) > 0 {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Monthly Sales Trend"}),
			charts.WithXAxisOpts(opts.XAxis{Name: "Year-Month"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Total Sales"}),
		)
		items := make([]opts.LineData, 0, len(monthlyRevenues))
		for _, v := range monthlyRevenues {
			items = append(items, opts.LineData{Value: v})
		}
		line.SetXAxis(buckets).AddSeries("Total Sales", items)
		page.AddCharts(line)
	}

	if len(products) > 0 {
		bar := charts.NewBar()
		bar.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Top Products by Total Sales"}),
			charts.WithXAxisOpts(opts.XAxis{Name: "Product"}),
			charts.WithYAxisOpts(opts.YAxis{Name: "Total Sales"}),
		)
		items := make([]opts.BarData, 0, len(productRevenues))
		for _, v := range productRevenues {
			items = append(items, opts.BarData{Value: v})
		}
		bar.SetXAxis(products).AddSeries("Total Sales", items)
		page.AddCharts(bar)
	}

	return page
}

// RenderChartsPage writes the interactive page as standalone HTML.
func RenderChartsPage(w io.Writer, buckets []string, monthlyRevenues []float64, products []string, productRevenues []float64) error {
	return BuildChartsPage(buckets, monthlyRevenues, products, productRevenues).Render(w)
}
