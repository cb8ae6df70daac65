package main

import (
	"fmt"
	"time"

	"salesinsights/config"
)

// Names of the calendar columns appended by AddTimeFeatures.
const (
	YearColumn      = "Year"
	MonthColumn     = "Month"
	YearMonthColumn = "YearMonth"
)

// AddTimeFeatures appends Year, Month and YearMonth ("YYYY-MM") columns
// derived from the configured date column. Fails when the date column is
// missing, time analysis is meaningless without it.
func AddTimeFeatures(cfg *config.Config, t Table) (Table, error) {
	if !t.HasColumn(cfg.DateColumn) {
		return Table{}, &MissingColumnError{Column: cfg.DateColumn}
	}

	out := t.Clone()
	out.Columns = append(out.Columns, YearColumn, MonthColumn, YearMonthColumn)
	for _, row := range out.Rows {
		d, ok := row[cfg.DateColumn].(time.Time)
		if !ok {
			// cleaned tables only hold parsed dates; tolerate raw input
			parsed, okRaw := toDate(row[cfg.DateColumn])
			if !okRaw {
				row[YearColumn] = nil
				row[MonthColumn] = nil
				row[YearMonthColumn] = nil
				continue
			}
			d = parsed
		}
		row[YearColumn] = float64(d.Year())
		row[MonthColumn] = float64(int(d.Month()))
		row[YearMonthColumn] = fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
	}
	return out, nil
}
