package main

import (
	"strings"

	"salesinsights/config"
)

// CleanData normalizes a raw table into the shape the aggregations expect:
// trimmed column names, numeric quantity/price, valid dates, and a strictly
// positive revenue column. It degrades bad values instead of failing: numbers
// that do not parse become 0, rows with unparseable dates are dropped.
//
// Note the cleaner itself never errors. When neither a revenue column nor the
// quantity/price pair is present the output simply has no revenue column and
// the aggregations report the missing column.
func CleanData(cfg *config.Config, t Table) Table {
	out := trimColumnNames(t)
	out = dropEmptyRows(out)

	for _, col := range []string{cfg.QtyColumn, cfg.PriceColumn} {
		if out.HasColumn(col) {
			coerceNumeric(out, col)
		}
	}

	if out.HasColumn(cfg.DateColumn) {
		out = coerceDates(out, cfg.DateColumn)
	}

	if !out.HasColumn(cfg.SalesColumn) && out.HasColumn(cfg.QtyColumn) && out.HasColumn(cfg.PriceColumn) {
		out = deriveRevenue(out, cfg)
	}

	if out.HasColumn(cfg.SalesColumn) {
		coerceNumeric(out, cfg.SalesColumn)
		out = filterPositive(out, cfg.SalesColumn)
	}
	return out
}

func trimColumnNames(t Table) Table {
	out := Table{
		Columns: make([]string, len(t.Columns)),
		Rows:    make([]Row, 0, len(t.Rows)),
	}
	for i, c := range t.Columns {
		out.Columns[i] = strings.TrimSpace(c)
	}
	for _, row := range t.Rows {
		cp := make(Row, len(row))
		for i, c := range t.Columns {
			cp[out.Columns[i]] = row[c]
		}
		out.Rows = append(out.Rows, cp)
	}
	return out
}

func dropEmptyRows(t Table) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		empty := true
		for _, c := range t.Columns {
			if row[c] != nil {
				empty = false
				break
			}
		}
		if !empty {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// coerceNumeric rewrites a column in place within the current snapshot.
// Unparseable values become 0, never an error and never a dropped row.
func coerceNumeric(t Table, col string) {
	for _, row := range t.Rows {
		f, ok := toFloat(row[col])
		if !ok {
			f = 0
		}
		row[col] = f
	}
}

// coerceDates keeps only rows whose date cell parses. Unlike the numeric
// coercion there is no usable zero value for a date.
func coerceDates(t Table, col string) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		d, ok := toDate(row[col])
		if !ok {
			continue
		}
		row[col] = d
		out.Rows = append(out.Rows, row)
	}
	return out
}

func deriveRevenue(t Table, cfg *config.Config) Table {
	out := Table{
		Columns: append(append([]string(nil), t.Columns...), cfg.SalesColumn),
		Rows:    t.Rows,
	}
	for _, row := range out.Rows {
		qty, _ := toFloat(row[cfg.QtyColumn])
		price, _ := toFloat(row[cfg.PriceColumn])
		row[cfg.SalesColumn] = qty * price
	}
	return out
}

func filterPositive(t Table, col string) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if f, ok := row[col].(float64); ok && f > 0 {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
