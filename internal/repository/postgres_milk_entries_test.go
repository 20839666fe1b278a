package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairycoop-data/internal/domain"
)

func setupMockMilkEntriesDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresMilkEntriesRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresMilkEntriesRepository(db)
}

// Create assigns the server-side id back onto the entry.
func TestCreateMilkEntry_AssignsID(t *testing.T) {
	db, mock, repo := setupMockMilkEntriesDB(t)
	defer db.Close()

	e := &domain.MilkEntry{
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
	}

	mock.ExpectQuery(`INSERT INTO milk_entries .+ RETURNING id`).
		WithArgs(e.FarmerID, e.CollectionDate, e.Shift, e.QuantityLiters, e.FatPercent,
			e.SNFPercent, e.RatePerLiter, e.TotalAmount, e.QualityGrade, e.Status).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	require.NoError(t, repo.CreateMilkEntry(context.Background(), e))
	assert.Equal(t, int64(7), e.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMilkEntriesBetween(t *testing.T) {
	db, mock, repo := setupMockMilkEntriesDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "farmer_id", "collection_date", "shift", "quantity_liters",
		"fat_percent", "snf_percent", "rate_per_liter", "total_amount",
		"quality_grade", "status", "created_at",
	}).AddRow(int64(1), "FARM0001", time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), "Morning",
		42.5, 4.2, 8.6, 38.0, 1615.0, "A", "Recorded", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM milk_entries\s+WHERE collection_date`).
		WithArgs("2025-06-01", "2025-06-30").
		WillReturnRows(rows)

	entries, err := repo.ListMilkEntriesBetween(context.Background(), "2025-06-01", "2025-06-30")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FARM0001", entries[0].FarmerID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMilkEntry_NotFound(t *testing.T) {
	db, mock, repo := setupMockMilkEntriesDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE milk_entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateMilkEntry(context.Background(), &domain.MilkEntry{ID: 999})

	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
