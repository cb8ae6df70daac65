package main

import "salesinsights/config"

func testConfig() *config.Config {
	return &config.Config{
		DateColumn:    "ORDERDATE",
		ProductColumn: "PRODUCTLINE",
		QtyColumn:     "QUANTITYORDERED",
		PriceColumn:   "PRICEEACH",
		SalesColumn:   "SALES",
		TopN:          10,
	}
}
