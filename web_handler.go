package main

import (
	"fmt"
	"io"
	"net/http"

	"salesinsights/domain/models"
	"salesinsights/plot"
)

// serveReport keeps the process alive after the run, serving the text report
// at / and the interactive charts page at /charts.
func serveReport(addr string, stats models.SummaryStats, top []models.ProductSales, monthly []models.MonthlySales) error {
	report := BuildReport(stats, top, monthly)
	buckets, monthlyRevenues := splitMonthly(monthly)
	products, productRevenues := splitTop(top)

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, report)
	})
	http.HandleFunc("/charts", func(w http.ResponseWriter, r *http.Request) {
		err := plot.RenderChartsPage(w, buckets, monthlyRevenues, products, productRevenues)
		if err != nil {
			http.Error(w, "Error rendering charts page", http.StatusInternalServerError)
		}
	})

	fmt.Println("listen on: http://localhost" + addr)
	return http.ListenAndServe(addr, nil)
}
