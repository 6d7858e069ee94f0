package export

import (
	"bytes"
	"fmt"

	"monplanting/models"

	"github.com/xuri/excelize/v2"
)

const (
	ActivitiesSheet = "Activities"
	ParcelsSheet    = "Parcels"
)

var ActivitiesHeader = []string{
	"Date", "Parcel", "Activity Type", "Crop", "Variety",
	"Quantity", "Unit", "Cost", "Weather", "Notes",
}

var ParcelsHeader = []string{
	"Name", "Surface (ha)", "Location", "Soil Type", "Activities", "Total Cost",
}

var activityColumnWidths = []float64{12, 20, 16, 16, 16, 10, 8, 10, 14, 40}
var parcelColumnWidths = []float64{20, 12, 24, 14, 12, 12}

// ActivitiesWorkbook renders an account's activity journal as an xlsx file.
// The Parcels sheet totals the given activities per parcel.
func ActivitiesWorkbook(parcels []models.Parcel, activities []models.Activity) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	names := make(map[int64]string, len(parcels))
	for _, p := range parcels {
		names[p.ID] = p.Name
	}

	activityRows := make([][]any, 0, len(activities))
	counts := make(map[int64]int)
	costs := make(map[int64]float64)
	for _, a := range activities {
		var quantity any
		if a.Quantity != nil {
			quantity = *a.Quantity
		}
		activityRows = append(activityRows, []any{
			a.Date, names[a.ParcelID], a.ActivityType, a.CropType, a.Variety,
			quantity, a.Unit, a.Cost, a.WeatherConditions, a.Notes,
		})
		counts[a.ParcelID]++
		costs[a.ParcelID] += a.Cost
	}

	parcelRows := make([][]any, 0, len(parcels))
	for _, p := range parcels {
		parcelRows = append(parcelRows, []any{
			p.Name, p.Surface, p.Location, p.SoilType, counts[p.ID], costs[p.ID],
		})
	}

	if err := f.SetSheetName("Sheet1", ActivitiesSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ParcelsSheet); err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeSheet(f, ActivitiesSheet, ActivitiesHeader, activityColumnWidths, activityRows, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSheet(f, ParcelsSheet, ParcelsHeader, parcelColumnWidths, parcelRows, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, header []string, widths []float64, rows [][]any, headerStyle int) error {
	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
