// Package exporter renders the logbook as an xlsx workbook for download.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cropdiary/pkg/enrich"
)

const sheet = "Logbook"

var header = []string{
	"Date", "Task", "Crop", "Area", "Field", "Action", "Quantity", "Unit", "Notes", "Skip reason",
}

// LogbookXlsx writes one row per enriched log, newest first as given.
func LogbookXlsx(logs []enrich.EnrichedLog) (*excelize.File, error) {
	f := excelize.NewFile()
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, h := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, l := range logs {
		row := []any{
			l.Timestamp.Format("2006-01-02 15:04"),
			l.TaskName,
			l.CropName,
			l.AreaName,
			l.FieldName,
			l.Action,
			nil,
			l.UnitSymbol,
			l.Notes,
			l.SkipReason,
		}
		if l.Quantity != nil {
			row[6] = *l.Quantity
		}
		for col, v := range row {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
		}
	}
	return f, nil
}
