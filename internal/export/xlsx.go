// Package export writes the repaired fitness series to a spreadsheet.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bensuk23/Optimisation/internal/fitlog"
)

// SheetName is the worksheet holding the series.
const SheetName = "Progression"

var headers = []string{"Generation", "MaxFitness", "AvgFitness"}

// WriteXLSX saves series to a workbook at path, one row per generation.
func WriteXLSX(series fitlog.Series, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for i, r := range series {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{r.Generation, r.Max, r.Avg}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write generation %d: %w", r.Generation, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
