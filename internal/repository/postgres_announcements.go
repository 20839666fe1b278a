package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresAnnouncementsRepository struct {
	db *sql.DB
}

func NewPostgresAnnouncementsRepository(db *sql.DB) *PostgresAnnouncementsRepository {
	return &PostgresAnnouncementsRepository{db: db}
}

var _ AnnouncementsRepository = (*PostgresAnnouncementsRepository)(nil)

const announcementColumns = `id, title, content, category, publish_date, expiry_date, priority, status, created_at`

func scanAnnouncement(row interface{ Scan(...any) error }) (*domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.PublishDate,
		&a.ExpiryDate,
		&a.Priority,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresAnnouncementsRepository) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements ORDER BY publish_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	announcements := []*domain.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate announcements: %w", err)
	}

	return announcements, nil
}

func (r *PostgresAnnouncementsRepository) GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE id = $1`

	a, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("announcement", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return a, nil
}

func (r *PostgresAnnouncementsRepository) CreateAnnouncement(ctx context.Context, a *domain.Announcement) error {
	query := `
		INSERT INTO announcements (title, content, category, publish_date, expiry_date, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		a.Title, a.Content, a.Category, a.PublishDate, a.ExpiryDate, a.Priority, a.Status,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	return nil
}

func (r *PostgresAnnouncementsRepository) UpdateAnnouncement(ctx context.Context, a *domain.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, content = $3, category = $4, publish_date = $5,
		    expiry_date = $6, priority = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ID, a.Title, a.Content, a.Category, a.PublishDate, a.ExpiryDate, a.Priority, a.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update announcement: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("announcement", strconv.FormatInt(a.ID, 10))
	}
	return nil
}

func (r *PostgresAnnouncementsRepository) DeleteAnnouncement(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("announcement", strconv.FormatInt(id, 10))
	}
	return nil
}
