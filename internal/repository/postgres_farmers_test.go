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

func setupMockFarmersDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresFarmersRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresFarmersRepository(db)
}

func farmerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "village", "cattle_count",
		"daily_capacity", "join_date", "bank_account", "status", "created_at",
	})
}

func TestListFarmers_Success(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	joined := time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)
	rows := farmerRows().
		AddRow("FARM0002", "Savita Devi", "+91-9876500002", nil, "Gokulpur", 6, 40.0, joined, nil, "Active", time.Now()).
		AddRow("FARM0001", "Ramesh Patel", "+91-9876500001", "ramesh@example.com", "Anandpur", 12, 85.0, joined, "1234567890", "Active", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM farmers ORDER BY created_at DESC`).
		WillReturnRows(rows)

	farmers, err := repo.ListFarmers(context.Background())

	require.NoError(t, err)
	require.Len(t, farmers, 2)
	assert.Equal(t, "FARM0002", farmers[0].ID)
	assert.False(t, farmers[0].Email.Valid)
	assert.Equal(t, "ramesh@example.com", farmers[1].Email.String)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFarmer_NotFound(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM farmers WHERE id = \$1`).
		WithArgs("FARM9999").
		WillReturnError(sql.ErrNoRows)

	f, err := repo.GetFarmer(context.Background(), "FARM9999")

	assert.Nil(t, f)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "FARM9999")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFarmer_Success(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	f := &domain.Farmer{
		ID:            "FARM0001",
		Name:          "Ramesh Patel",
		Phone:         "+91-9876500001",
		Village:       "Anandpur",
		CattleCount:   12,
		DailyCapacity: 85.0,
		JoinDate:      time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:        "Active",
	}

	mock.ExpectExec(`INSERT INTO farmers`).
		WithArgs(f.ID, f.Name, f.Phone, f.Email, f.Village,
			f.CattleCount, f.DailyCapacity, f.JoinDate, f.BankAccount, f.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateFarmer(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFarmer_DuplicateID(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO farmers`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "farmers_pkey"})

	err := repo.CreateFarmer(context.Background(), &domain.Farmer{ID: "FARM0001"})

	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFarmer_NotFound(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE farmers`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFarmer(context.Background(), &domain.Farmer{ID: "FARM9999"})

	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFarmer_Success(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM farmers WHERE id = \$1`).
		WithArgs("FARM0001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteFarmer(context.Background(), "FARM0001"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFarmer_NotFound(t *testing.T) {
	db, mock, repo := setupMockFarmersDB(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM farmers WHERE id = \$1`).
		WithArgs("FARM9999").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteFarmer(context.Background(), "FARM9999")

	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
