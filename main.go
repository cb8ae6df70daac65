package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"salesinsights/config"
	"salesinsights/domain/models"
	"salesinsights/plot"
)

func main() {
	cfg := config.GetConfig()
	if err := run(cfg); err != nil {
		log.Fatalln(err)
	}
}

func run(cfg *config.Config) error {
	path := cfg.InputPath
	unpacked, err := unpackArchive(path)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", path, err)
	}
	if unpacked != "" {
		path = unpacked
	}

	raw, err := LoadData(path)
	if err != nil {
		return err
	}

	cleaned := CleanData(cfg, raw)
	featured, err := AddTimeFeatures(cfg, cleaned)
	if err != nil {
		return err
	}

	stats, err := BasicStats(cfg, featured)
	if err != nil {
		return err
	}
	top, err := TopProducts(cfg, featured, cfg.TopN)
	if err != nil {
		return err
	}
	monthly, err := MonthlyTrends(cfg, featured)
	if err != nil {
		return err
	}

	fmt.Print(BuildReport(stats, top, monthly))

	if cfg.ShowTables {
		fmt.Println(GenerateTrendsTable(monthly))
		fmt.Println(GenerateTopProductsTable(top))
	}

	if err := writeCharts(filepath.Dir(path), top, monthly); err != nil {
		return err
	}

	if cfg.ServeAddr != "" {
		return serveReport(cfg.ServeAddr, stats, top, monthly)
	}
	return nil
}

// writeCharts renders the PNG charts and the interactive HTML page next to
// the input file. Empty result sets print an informational message instead of
// rendering an empty chart.
func writeCharts(dir string, top []models.ProductSales, monthly []models.MonthlySales) error {
	if len(monthly) == 0 {
		fmt.Println("No monthly sales data to plot.")
	} else {
		buckets, revenues := splitMonthly(monthly)
		png, err := plot.DrawTrendLine(buckets, revenues)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "monthly_trend.png"), png, 0644); err != nil {
			return err
		}
	}

	if len(top) == 0 {
		fmt.Println("No top products data to plot.")
	} else {
		products, revenues := splitTop(top)
		png, err := plot.DrawProductBars(products, revenues)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "top_products.png"), png, 0644); err != nil {
			return err
		}
	}

	if len(monthly) == 0 && len(top) == 0 {
		return nil
	}
	buckets, monthlyRevenues := splitMonthly(monthly)
	products, productRevenues := splitTop(top)
	f, err := os.Create(filepath.Join(dir, "charts.html"))
	if err != nil {
		return err
	}
	defer f.Close()
	return plot.RenderChartsPage(f, buckets, monthlyRevenues, products, productRevenues)
}

func splitMonthly(monthly []models.MonthlySales) ([]string, []float64) {
	buckets := make([]string, len(monthly))
	revenues := make([]float64, len(monthly))
	for i, m := range monthly {
		buckets[i] = m.YearMonth
		revenues[i] = m.Revenue
	}
	return buckets, revenues
}

func splitTop(top []models.ProductSales) ([]string, []float64) {
	products := make([]string, len(top))
	revenues := make([]float64, len(top))
	for i, p := range top {
		products[i] = p.Product
		revenues[i] = p.Revenue
	}
	return products, revenues
}
