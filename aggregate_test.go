package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesinsights/domain/models"
)

func productTable(rows ...Row) Table {
	return Table{
		Columns: []string{"PRODUCTLINE", "SALES", "YearMonth"},
		Rows:    rows,
	}
}

func TestTopProducts(t *testing.T) {
	table := productTable(
		Row{"PRODUCTLINE": "Motorcycles", "SALES": 3000.0},
		Row{"PRODUCTLINE": "Classic Cars", "SALES": 200.0},
		Row{"PRODUCTLINE": "Classic Cars", "SALES": 300.0},
		Row{"PRODUCTLINE": "Planes", "SALES": 100.0},
	)
	top, err := TopProducts(testConfig(), table, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.ProductSales{
		{Product: "Motorcycles", Revenue: 3000},
		{Product: "Classic Cars", Revenue: 500},
		{Product: "Planes", Revenue: 100},
	}, top)
}

func TestTopProductsTruncatesToN(t *testing.T) {
	table := productTable(
		Row{"PRODUCTLINE": "A", "SALES": 3.0},
		Row{"PRODUCTLINE": "B", "SALES": 2.0},
		Row{"PRODUCTLINE": "C", "SALES": 1.0},
	)
	top, err := TopProducts(testConfig(), table, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Product)
	assert.Equal(t, "B", top[1].Product)

	// n larger than the group count returns everything
	top, err = TopProducts(testConfig(), table, 50)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestTopProductsTieKeepsFirstSeenOrder(t *testing.T) {
	table := productTable(
		Row{"PRODUCTLINE": "Ships", "SALES": 100.0},
		Row{"PRODUCTLINE": "Trains", "SALES": 100.0},
		Row{"PRODUCTLINE": "Planes", "SALES": 100.0},
	)
	top, err := TopProducts(testConfig(), table, 10)
	require.NoError(t, err)
	assert.Equal(t, "Ships", top[0].Product)
	assert.Equal(t, "Trains", top[1].Product)
	assert.Equal(t, "Planes", top[2].Product)
}

func TestTopProductsMissingProductColumn(t *testing.T) {
	table := Table{Columns: []string{"SALES"}, Rows: []Row{{"SALES": 1.0}}}
	_, err := TopProducts(testConfig(), table, 10)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "PRODUCTLINE", missing.Column)
}

func TestMonthlyTrends(t *testing.T) {
	table := productTable(
		Row{"PRODUCTLINE": "A", "SALES": 500.0, "YearMonth": "2003-02"},
		Row{"PRODUCTLINE": "B", "SALES": 3000.0, "YearMonth": "2003-01"},
		Row{"PRODUCTLINE": "C", "SALES": 500.0, "YearMonth": "2003-01"},
	)
	monthly, err := MonthlyTrends(testConfig(), table)
	require.NoError(t, err)
	assert.Equal(t, []models.MonthlySales{
		{YearMonth: "2003-01", Revenue: 3500},
		{YearMonth: "2003-02", Revenue: 500},
	}, monthly)
}

func TestMonthlyTrendsWithoutFeatures(t *testing.T) {
	table := Table{Columns: []string{"SALES"}, Rows: nil}
	_, err := MonthlyTrends(testConfig(), table)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "YearMonth", missing.Column)
}

func TestBasicStats(t *testing.T) {
	table := productTable(
		Row{"PRODUCTLINE": "Motorcycles", "SALES": 3000.0},
		Row{"PRODUCTLINE": "Classic Cars", "SALES": 500.0},
	)
	stats, err := BasicStats(testConfig(), table)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRows)
	assert.Equal(t, 3500.0, stats.TotalRevenue)
	assert.Equal(t, 1750.0, stats.AvgOrderValue)
	require.NotNil(t, stats.UniqueProducts)
	assert.Equal(t, 2, *stats.UniqueProducts)
}

func TestBasicStatsEmptyTable(t *testing.T) {
	table := Table{Columns: []string{"PRODUCTLINE", "SALES"}}
	stats, err := BasicStats(testConfig(), table)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalRows)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.True(t, math.IsNaN(stats.AvgOrderValue))
	require.NotNil(t, stats.UniqueProducts)
	assert.Equal(t, 0, *stats.UniqueProducts)
}

func TestBasicStatsWithoutProductColumn(t *testing.T) {
	table := Table{
		Columns: []string{"SALES"},
		Rows:    []Row{{"SALES": 100.0}},
	}
	stats, err := BasicStats(testConfig(), table)
	require.NoError(t, err)
	// nil means "no product column", not zero products
	assert.Nil(t, stats.UniqueProducts)
}
