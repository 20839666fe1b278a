package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairycoop-data/internal/domain"
)

func setupMockDocumentsDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresDocumentsRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresDocumentsRepository(db)
}

func TestCreateDocument_AssignsUUID(t *testing.T) {
	db, mock, repo := setupMockDocumentsDB(t)
	defer db.Close()

	d := &domain.Document{
		Title:    "FSSAI License Scan",
		Category: "License",
		FileName: "fssai.pdf",
	}

	mock.ExpectExec(`INSERT INTO documents`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateDocument(context.Background(), d))

	_, err := uuid.Parse(d.ID)
	assert.NoError(t, err, "create assigns a uuid id")

	require.NoError(t, mock.ExpectationsWereMet())
}

// A malformed id is answered with not-found before the query runs; the UUID
// column would otherwise reject it with a driver error.
func TestDocuments_MalformedIDIsNotFound(t *testing.T) {
	db, mock, repo := setupMockDocumentsDB(t)
	defer db.Close()

	ctx := context.Background()

	d, err := repo.GetDocument(ctx, "not-a-uuid")
	assert.Nil(t, d)
	assert.True(t, IsNotFound(err))

	err = repo.UpdateDocument(ctx, &domain.Document{ID: "not-a-uuid", Title: "x", Category: "Other", FileName: "x.pdf"})
	assert.True(t, IsNotFound(err))

	err = repo.DeleteDocument(ctx, "not-a-uuid")
	assert.True(t, IsNotFound(err))

	require.NoError(t, mock.ExpectationsWereMet(), "no query may reach the database")
}

func TestDeleteDocument_NotFound(t *testing.T) {
	db, mock, repo := setupMockDocumentsDB(t)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec(`DELETE FROM documents WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteDocument(context.Background(), id)

	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
