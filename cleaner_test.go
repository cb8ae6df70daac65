package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanDataTrimsColumnNames(t *testing.T) {
	raw := Table{
		Columns: []string{" ORDERDATE ", "PRODUCTLINE", "SALES"},
		Rows: []Row{
			{" ORDERDATE ": "2003-01-06", "PRODUCTLINE": "Motorcycles", "SALES": "100"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	assert.Equal(t, []string{"ORDERDATE", "PRODUCTLINE", "SALES"}, cleaned.Columns)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, "Motorcycles", cleaned.Rows[0]["PRODUCTLINE"])
}

func TestCleanDataDropsFullyEmptyRows(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "PRODUCTLINE", "SALES"},
		Rows: []Row{
			{"ORDERDATE": nil, "PRODUCTLINE": nil, "SALES": nil},
			{"ORDERDATE": "2003-01-06", "PRODUCTLINE": "Motorcycles", "SALES": "100"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, "Motorcycles", cleaned.Rows[0]["PRODUCTLINE"])
}

func TestCleanDataCoercesNumbersToZero(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "PRODUCTLINE", "QUANTITYORDERED", "PRICEEACH", "SALES"},
		Rows: []Row{
			{"ORDERDATE": "2003-01-06", "PRODUCTLINE": "Motorcycles", "QUANTITYORDERED": "bad", "PRICEEACH": "20", "SALES": "100"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, 0.0, cleaned.Rows[0]["QUANTITYORDERED"])
	assert.Equal(t, 20.0, cleaned.Rows[0]["PRICEEACH"])
}

func TestCleanDataDropsUnparseableDates(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "SALES"},
		Rows: []Row{
			{"ORDERDATE": "not a date", "SALES": "100"},
			{"ORDERDATE": "2003-01-06", "SALES": "100"},
			{"ORDERDATE": "2/24/2003 0:00", "SALES": "50"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.Len(t, cleaned.Rows, 2)
	d, ok := cleaned.Rows[0]["ORDERDATE"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2003, d.Year())
	d2 := cleaned.Rows[1]["ORDERDATE"].(time.Time)
	assert.Equal(t, time.February, d2.Month())
	assert.Equal(t, 24, d2.Day())
}

func TestCleanDataDerivesRevenue(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "QUANTITYORDERED", "PRICEEACH"},
		Rows: []Row{
			{"ORDERDATE": "2003-01-06", "QUANTITYORDERED": "30", "PRICEEACH": "100"},
			{"ORDERDATE": "2003-01-09", "QUANTITYORDERED": "10", "PRICEEACH": "50"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.True(t, cleaned.HasColumn("SALES"))
	require.Len(t, cleaned.Rows, 2)
	assert.Equal(t, 3000.0, cleaned.Rows[0]["SALES"])
	assert.Equal(t, 500.0, cleaned.Rows[1]["SALES"])
}

func TestCleanDataKeepsExistingRevenueColumn(t *testing.T) {
	raw := Table{
		Columns: []string{"QUANTITYORDERED", "PRICEEACH", "SALES"},
		Rows: []Row{
			// existing SALES wins over qty*price
			{"QUANTITYORDERED": "2", "PRICEEACH": "10", "SALES": "99.5"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, 99.5, cleaned.Rows[0]["SALES"])
}

func TestCleanDataFiltersNonPositiveRevenue(t *testing.T) {
	raw := Table{
		Columns: []string{"SALES"},
		Rows: []Row{
			{"SALES": "100"},
			{"SALES": "0"},
			{"SALES": "-5"},
			{"SALES": "garbage"}, // coerced to 0, then filtered
		},
	}
	cleaned := CleanData(testConfig(), raw)
	require.Len(t, cleaned.Rows, 1)
	assert.Equal(t, 100.0, cleaned.Rows[0]["SALES"])
}

func TestCleanDataWithoutRevenueInputsLeavesNoRevenueColumn(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "PRODUCTLINE"},
		Rows: []Row{
			{"ORDERDATE": "2003-01-06", "PRODUCTLINE": "Motorcycles"},
		},
	}
	cleaned := CleanData(testConfig(), raw)
	assert.False(t, cleaned.HasColumn("SALES"))

	// downstream aggregation surfaces the missing column
	_, err := BasicStats(testConfig(), cleaned)
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "SALES", missing.Column)
}

func TestCleanDataDoesNotMutateInput(t *testing.T) {
	raw := Table{
		Columns: []string{"ORDERDATE", "QUANTITYORDERED", "PRICEEACH"},
		Rows: []Row{
			{"ORDERDATE": "2003-01-06", "QUANTITYORDERED": "30", "PRICEEACH": "100"},
		},
	}
	_ = CleanData(testConfig(), raw)
	assert.Equal(t, "30", raw.Rows[0]["QUANTITYORDERED"])
	assert.Equal(t, "2003-01-06", raw.Rows[0]["ORDERDATE"])
	assert.Equal(t, []string{"ORDERDATE", "QUANTITYORDERED", "PRICEEACH"}, raw.Columns)
}
