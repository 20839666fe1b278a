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

func setupMockMessagesDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *PostgresMessagesRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	return db, mock, NewPostgresMessagesRepository(db)
}

func TestCreateMessage_Success(t *testing.T) {
	db, mock, repo := setupMockMessagesDB(t)
	defer db.Close()

	m := &domain.Message{
		ID:        "MSG001",
		FarmerID:  "FARM0001",
		Subject:   "Test",
		Message:   "Hello",
		Timestamp: time.Date(2025, 6, 9, 14, 30, 0, 0, time.UTC),
		Status:    "Sent",
		Priority:  "Medium",
	}

	mock.ExpectExec(`INSERT INTO messages`).
		WithArgs(m.ID, m.FarmerID, m.Subject, m.Message, m.Timestamp, m.Status, m.Priority).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateMessage(context.Background(), m))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Sending to a farmer that does not exist hits the farmer_id FK; the caller
// must get a ConstraintError, not a raw driver error.
func TestCreateMessage_UnknownFarmer(t *testing.T) {
	db, mock, repo := setupMockMessagesDB(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO messages`).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "messages_farmer_id_fkey"})

	err := repo.CreateMessage(context.Background(), &domain.Message{
		ID:       "MSG001",
		FarmerID: "FARM9999",
	})

	require.Error(t, err)
	assert.True(t, IsConstraint(err))
	assert.Contains(t, err.Error(), "foreign key")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessageStatus(t *testing.T) {
	db, mock, repo := setupMockMessagesDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE messages SET status = \$2 WHERE id = \$1`).
		WithArgs("MSG001", "Read").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateMessageStatus(context.Background(), "MSG001", "Read"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessageStatus_NotFound(t *testing.T) {
	db, mock, repo := setupMockMessagesDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE messages SET status = \$2 WHERE id = \$1`).
		WithArgs("MSG999", "Read").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateMessageStatus(context.Background(), "MSG999", "Read")

	assert.True(t, IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages_OrderedByTimestamp(t *testing.T) {
	db, mock, repo := setupMockMessagesDB(t)
	defer db.Close()

	later := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, 6, 9, 14, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "farmer_id", "subject", "message", "timestamp", "status", "priority",
	}).
		AddRow("MSG002", "FARM0002", "Later", "b", later, "Sent", "Low").
		AddRow("MSG001", "FARM0001", "Earlier", "a", earlier, "Read", "Medium")

	mock.ExpectQuery(`SELECT .+ FROM messages ORDER BY "timestamp" DESC`).
		WillReturnRows(rows)

	messages, err := repo.ListMessages(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "MSG002", messages[0].ID)
	assert.Equal(t, "MSG001", messages[1].ID)

	require.NoError(t, mock.ExpectationsWereMet())
}
