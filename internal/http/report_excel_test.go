package httpapi

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dairycoop-data/internal/domain"
)

func TestGenerateMilkCollectionExport(t *testing.T) {
	entries := []*domain.MilkEntry{
		{
			ID:             1,
			FarmerID:       "FARM0001",
			CollectionDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			Shift:          "Morning",
			QuantityLiters: 42.5,
			FatPercent:     4.2,
			SNFPercent:     8.6,
			RatePerLiter:   38.0,
			TotalAmount:    1615.0,
			QualityGrade:   "A",
			Status:         "Recorded",
		},
		{
			ID:             2,
			FarmerID:       "FARM0002",
			CollectionDate: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
			Shift:          "Evening",
			QuantityLiters: 30.0,
			FatPercent:     3.9,
			SNFPercent:     8.4,
			RatePerLiter:   36.0,
			TotalAmount:    1080.0,
			QualityGrade:   "B",
			Status:         "Verified",
		},
	}

	data, err := GenerateMilkCollectionExport(entries)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Milk Collection")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two entries")

	assert.Equal(t, milkCollectionExportHeader, rows[0])
	assert.Equal(t, "FARM0001", rows[1][1])
	assert.Equal(t, "2025-06-09", rows[1][2])
	assert.Equal(t, "Morning", rows[1][3])
	assert.Equal(t, "FARM0002", rows[2][1])
}

func TestGeneratePaymentsExport_NullPaymentDate(t *testing.T) {
	payments := []*domain.Payment{
		{
			ID:          1,
			FarmerID:    "FARM0001",
			PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Amount:      12500,
			PaymentDate: sql.NullTime{Time: time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC), Valid: true},
			Method:      "Bank",
			Status:      "Paid",
		},
		{
			ID:          2,
			FarmerID:    "FARM0002",
			PeriodStart: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			PeriodEnd:   time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			Amount:      8000,
			Method:      "UPI",
			Status:      "Pending",
		},
	}

	data, err := GeneratePaymentsExport(payments)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Payments")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, paymentsExportHeader, rows[0])
	assert.Equal(t, "2025-06-18", rows[1][5])

	// Unpaid rows leave the payment date cell empty.
	paid, err := f.GetCellValue("Payments", "F3")
	require.NoError(t, err)
	assert.Empty(t, paid)
	assert.Equal(t, "Pending", rows[2][7])
}

func TestGenerateReportExcel_EmptyRows(t *testing.T) {
	data, err := GenerateMilkCollectionExport(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Milk Collection")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
