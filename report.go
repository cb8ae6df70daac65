package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"salesinsights/domain/models"
)

const reportSeparator = "============================================================"

// money renders a revenue figure with thousands separators and two decimals.
func money(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}

// BuildReport renders the fixed-format text report. Sections with no data are
// omitted rather than rendered empty, and a NaN average (empty table) prints
// as n/a.
func BuildReport(stats models.SummaryStats, top []models.ProductSales, monthly []models.MonthlySales) string {
	b := &strings.Builder{}
	fmt.Fprintln(b, reportSeparator)
	fmt.Fprintln(b, "BASIC SALES ANALYSIS REPORT")
	fmt.Fprintln(b, reportSeparator)

	fmt.Fprintf(b, "Total rows (order lines): %d\n", stats.TotalRows)
	fmt.Fprintf(b, "Total revenue           : %s\n", money(stats.TotalRevenue))
	if math.IsNaN(stats.AvgOrderValue) {
		fmt.Fprintf(b, "Average order value     : n/a\n")
	} else {
		fmt.Fprintf(b, "Average order value     : %s\n", money(stats.AvgOrderValue))
	}
	if stats.UniqueProducts != nil {
		fmt.Fprintf(b, "Unique products         : %d\n", *stats.UniqueProducts)
	}
	fmt.Fprintln(b)

	if len(top) > 0 {
		fmt.Fprintln(b, "Top 5 products by total sales:")
		for i, p := range top {
			if i == 5 {
				break
			}
			fmt.Fprintf(b, "- %s: %s\n", p.Product, money(p.Revenue))
		}
		fmt.Fprintln(b)
	}

	if len(monthly) > 0 {
		best, worst := monthly[0], monthly[0]
		for _, m := range monthly[1:] {
			// strict comparisons keep the earliest bucket on ties
			if m.Revenue > best.Revenue {
				best = m
			}
			if m.Revenue < worst.Revenue {
				worst = m
			}
		}
		fmt.Fprintln(b, "Monthly sales summary:")
		fmt.Fprintf(b, "- Best month : %s  (Sales: %s)\n", best.YearMonth, money(best.Revenue))
		fmt.Fprintf(b, "- Worst month: %s (Sales: %s)\n", worst.YearMonth, money(worst.Revenue))
		fmt.Fprintln(b)
	}

	fmt.Fprintln(b, "End of report.")
	fmt.Fprintln(b, reportSeparator)
	return b.String()
}

// GenerateTopProductsTable renders the full ranking (not just the report's
// top 5) as an ASCII table.
func GenerateTopProductsTable(top []models.ProductSales) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Product", "Revenue"})
	for _, p := range top {
		t.AppendRows([]table.Row{{p.Product, money(p.Revenue)}})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

func GenerateTrendsTable(monthly []models.MonthlySales) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"YearMonth", "Revenue"})
	for _, m := range monthly {
		t.AppendRows([]table.Row{{m.YearMonth, money(m.Revenue)}})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
