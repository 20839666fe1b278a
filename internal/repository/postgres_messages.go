package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresMessagesRepository struct {
	db *sql.DB
}

func NewPostgresMessagesRepository(db *sql.DB) *PostgresMessagesRepository {
	return &PostgresMessagesRepository{db: db}
}

var _ MessagesRepository = (*PostgresMessagesRepository)(nil)

const messageColumns = `id, farmer_id, subject, message, "timestamp", status, priority`

func scanMessage(row interface{ Scan(...any) error }) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(
		&m.ID,
		&m.FarmerID,
		&m.Subject,
		&m.Message,
		&m.Timestamp,
		&m.Status,
		&m.Priority,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresMessagesRepository) ListMessages(ctx context.Context) ([]*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages ORDER BY "timestamp" DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func (r *PostgresMessagesRepository) GetMessage(ctx context.Context, id string) (*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	m, err := scanMessage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("message", id)
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return m, nil
}

// CreateMessage relies on the farmer_id FK: sending to an unknown farmer
// comes back as a ConstraintError, which the handler turns into a 400.
func (r *PostgresMessagesRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	query := `
		INSERT INTO messages (id, farmer_id, subject, message, "timestamp", status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.FarmerID, m.Subject, m.Message, m.Timestamp, m.Status, m.Priority,
	)
	if err != nil {
		if err = translatePQ(err, "message"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *PostgresMessagesRepository) UpdateMessage(ctx context.Context, m *domain.Message) error {
	query := `
		UPDATE messages
		SET farmer_id = $2, subject = $3, message = $4, "timestamp" = $5, status = $6, priority = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		m.ID, m.FarmerID, m.Subject, m.Message, m.Timestamp, m.Status, m.Priority,
	)
	if err != nil {
		if err = translatePQ(err, "message"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update message: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("message", m.ID)
	}
	return nil
}

func (r *PostgresMessagesRepository) UpdateMessageStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE messages SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("message", id)
	}
	return nil
}

func (r *PostgresMessagesRepository) DeleteMessage(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("message", id)
	}
	return nil
}
