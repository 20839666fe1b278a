package httpapi

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"dairycoop-data/internal/domain"
)

// Column headers for the downloadable registers.
var milkCollectionExportHeader = []string{
	"Entry ID",
	"Farmer ID",
	"Collection Date",
	"Shift",
	"Quantity (L)",
	"Fat %",
	"SNF %",
	"Rate/L",
	"Total Amount",
	"Grade",
	"Status",
}

var paymentsExportHeader = []string{
	"Payment ID",
	"Farmer ID",
	"Period Start",
	"Period End",
	"Amount",
	"Payment Date",
	"Method",
	"Status",
}

// GenerateMilkCollectionExport renders the milk collection register for a
// date range as an xlsx workbook.
func GenerateMilkCollectionExport(entries []*domain.MilkEntry) ([]byte, error) {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.ID,
			e.FarmerID,
			fmtDate(e.CollectionDate),
			e.Shift,
			e.QuantityLiters,
			e.FatPercent,
			e.SNFPercent,
			e.RatePerLiter,
			e.TotalAmount,
			e.QualityGrade,
			e.Status,
		})
	}
	return generateReportExcel("Milk Collection", milkCollectionExportHeader, rows)
}

// GeneratePaymentsExport renders the payout register as an xlsx workbook.
func GeneratePaymentsExport(payments []*domain.Payment) ([]byte, error) {
	rows := make([][]any, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []any{
			p.ID,
			p.FarmerID,
			fmtDate(p.PeriodStart),
			fmtDate(p.PeriodEnd),
			p.Amount,
			nullDate(p.PaymentDate, "2006-01-02"),
			p.Method,
			p.Status,
		})
	}
	return generateReportExcel("Payments", paymentsExportHeader, rows)
}

// generateReportExcel writes a single-sheet workbook: styled header row,
// frozen pane, then one row per record.
func generateReportExcel(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, 16); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == nil || value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	// Freeze the header row
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}

	return buf.Bytes(), nil
}
