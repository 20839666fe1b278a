package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairycoop-data/internal/domain"
)

func setupMockComplianceRecordsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresComplianceRecordsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresComplianceRecordsRepository(db)
}

func TestCreateComplianceRecord_AssignsID(t *testing.T) {
	db, mock, repo := setupMockComplianceRecordsDB(t)
	defer db.Close()

	c := &domain.ComplianceRecord{
		Title:      "FSSAI annual filing",
		Category:   "FoodSafety",
		Authority:  "FSSAI",
		RecordDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:     "Pending",
	}

	mock.ExpectQuery(`INSERT INTO compliance_records .+ RETURNING id`).
		WithArgs(c.Title, c.Category, c.Authority, c.RecordDate, c.Status, c.Notes).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	require.NoError(t, repo.CreateComplianceRecord(context.Background(), c))
	assert.Equal(t, int64(3), c.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// A value longer than its column raises pq 22001; the caller must get a
// ConstraintError (400), not a raw driver error (500).
func TestCreateComplianceRecord_ValueTooLong(t *testing.T) {
	db, mock, repo := setupMockComplianceRecordsDB(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO compliance_records`).
		WillReturnError(&pq.Error{Code: "22001"})

	err := repo.CreateComplianceRecord(context.Background(), &domain.ComplianceRecord{
		Title:      "FSSAI annual filing",
		Category:   "FoodSafety",
		Authority:  "FSSAI",
		RecordDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:     "Pending",
	})

	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.Contains(t, err.Error(), "longer than the column allows")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetComplianceRecord_NotFound(t *testing.T) {
	db, mock, repo := setupMockComplianceRecordsDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM compliance_records WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	c, err := repo.GetComplianceRecord(context.Background(), 999)

	assert.Nil(t, c)
	assert.True(t, IsNotFound(err))

	require.NoError(t, mock.ExpectationsWereMet())
}
