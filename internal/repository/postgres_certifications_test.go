package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockCertificationsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresCertificationsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresCertificationsRepository(db)
}

func TestListExpiringCertifications(t *testing.T) {
	db, mock, repo := setupMockCertificationsDB(t)
	defer db.Close()

	soon := time.Now().AddDate(0, 0, 10)
	rows := sqlmock.NewRows([]string{
		"id", "name", "issuing_body", "issue_date", "expiry_date", "status", "created_at",
	}).AddRow("CERT0001", "FSSAI License", "FSSAI", time.Now().AddDate(-1, 0, 0), soon, "Valid", time.Now())

	mock.ExpectQuery(`SELECT .+ FROM certifications\s+WHERE expiry_date >= CURRENT_DATE`).
		WithArgs(30).
		WillReturnRows(rows)

	certs, err := repo.ListExpiringCertifications(context.Background(), 30)

	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "CERT0001", certs[0].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationStats(t *testing.T) {
	db, mock, repo := setupMockCertificationsDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"count", "valid", "expired", "suspended", "expiring"}).
		AddRow(10, 7, 2, 1, 3)

	mock.ExpectQuery(`SELECT\s+COUNT`).WillReturnRows(rows)

	stats, err := repo.CertificationStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, stats.Total)
	assert.Equal(t, 7, stats.Valid)
	assert.Equal(t, 2, stats.Expired)
	assert.Equal(t, 1, stats.Suspended)
	assert.Equal(t, 3, stats.ExpiringSoon)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCertification_NotFound(t *testing.T) {
	db, mock, repo := setupMockCertificationsDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM certifications WHERE id = \$1`).
		WithArgs("CERT9999").
		WillReturnError(sql.ErrNoRows)

	c, err := repo.GetCertification(context.Background(), "CERT9999")

	assert.Nil(t, c)
	assert.True(t, IsNotFound(err))

	require.NoError(t, mock.ExpectationsWereMet())
}
