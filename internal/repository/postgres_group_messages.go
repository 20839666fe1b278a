package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresGroupMessagesRepository struct {
	db *sql.DB
}

func NewPostgresGroupMessagesRepository(db *sql.DB) *PostgresGroupMessagesRepository {
	return &PostgresGroupMessagesRepository{db: db}
}

var _ GroupMessagesRepository = (*PostgresGroupMessagesRepository)(nil)

const groupMessageColumns = `id, group_name, subject, message, "timestamp", recipients_count, status, priority`

func scanGroupMessage(row interface{ Scan(...any) error }) (*domain.GroupMessage, error) {
	var m domain.GroupMessage
	err := row.Scan(
		&m.ID,
		&m.GroupName,
		&m.Subject,
		&m.Message,
		&m.Timestamp,
		&m.RecipientsCount,
		&m.Status,
		&m.Priority,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PostgresGroupMessagesRepository) ListGroupMessages(ctx context.Context) ([]*domain.GroupMessage, error) {
	query := `SELECT ` + groupMessageColumns + ` FROM group_messages ORDER BY "timestamp" DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list group messages: %w", err)
	}
	defer rows.Close()

	messages := []*domain.GroupMessage{}
	for rows.Next() {
		m, err := scanGroupMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group message: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group messages: %w", err)
	}

	return messages, nil
}

func (r *PostgresGroupMessagesRepository) GetGroupMessage(ctx context.Context, id string) (*domain.GroupMessage, error) {
	query := `SELECT ` + groupMessageColumns + ` FROM group_messages WHERE id = $1`

	m, err := scanGroupMessage(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("group message", id)
		}
		return nil, fmt.Errorf("failed to get group message: %w", err)
	}
	return m, nil
}

func (r *PostgresGroupMessagesRepository) CreateGroupMessage(ctx context.Context, m *domain.GroupMessage) error {
	query := `
		INSERT INTO group_messages (id, group_name, subject, message, "timestamp", recipients_count, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.GroupName, m.Subject, m.Message, m.Timestamp, m.RecipientsCount, m.Status, m.Priority,
	)
	if err != nil {
		if err = translatePQ(err, "group message"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create group message: %w", err)
	}
	return nil
}

func (r *PostgresGroupMessagesRepository) UpdateGroupMessage(ctx context.Context, m *domain.GroupMessage) error {
	query := `
		UPDATE group_messages
		SET group_name = $2, subject = $3, message = $4, "timestamp" = $5,
		    recipients_count = $6, status = $7, priority = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		m.ID, m.GroupName, m.Subject, m.Message, m.Timestamp, m.RecipientsCount, m.Status, m.Priority,
	)
	if err != nil {
		return fmt.Errorf("failed to update group message: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("group message", m.ID)
	}
	return nil
}

func (r *PostgresGroupMessagesRepository) DeleteGroupMessage(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group message: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("group message", id)
	}
	return nil
}
