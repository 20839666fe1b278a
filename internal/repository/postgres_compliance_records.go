package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresComplianceRecordsRepository struct {
	db *sql.DB
}

func NewPostgresComplianceRecordsRepository(db *sql.DB) *PostgresComplianceRecordsRepository {
	return &PostgresComplianceRecordsRepository{db: db}
}

var _ ComplianceRecordsRepository = (*PostgresComplianceRecordsRepository)(nil)

const complianceColumns = `id, title, category, authority, record_date, status, notes, created_at`

func scanComplianceRecord(row interface{ Scan(...any) error }) (*domain.ComplianceRecord, error) {
	var c domain.ComplianceRecord
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Category,
		&c.Authority,
		&c.RecordDate,
		&c.Status,
		&c.Notes,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresComplianceRecordsRepository) ListComplianceRecords(ctx context.Context) ([]*domain.ComplianceRecord, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_records ORDER BY record_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list compliance records: %w", err)
	}
	defer rows.Close()

	records := []*domain.ComplianceRecord{}
	for rows.Next() {
		c, err := scanComplianceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compliance record: %w", err)
		}
		records = append(records, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate compliance records: %w", err)
	}

	return records, nil
}

func (r *PostgresComplianceRecordsRepository) GetComplianceRecord(ctx context.Context, id int64) (*domain.ComplianceRecord, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_records WHERE id = $1`

	c, err := scanComplianceRecord(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("compliance record", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get compliance record: %w", err)
	}
	return c, nil
}

func (r *PostgresComplianceRecordsRepository) CreateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error {
	query := `
		INSERT INTO compliance_records (title, category, authority, record_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Category, c.Authority, c.RecordDate, c.Status, c.Notes,
	).Scan(&c.ID)
	if err != nil {
		if err = translatePQ(err, "compliance record"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create compliance record: %w", err)
	}
	return nil
}

func (r *PostgresComplianceRecordsRepository) UpdateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error {
	query := `
		UPDATE compliance_records
		SET title = $2, category = $3, authority = $4, record_date = $5, status = $6, notes = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		c.ID, c.Title, c.Category, c.Authority, c.RecordDate, c.Status, c.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update compliance record: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("compliance record", strconv.FormatInt(c.ID, 10))
	}
	return nil
}

func (r *PostgresComplianceRecordsRepository) DeleteComplianceRecord(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM compliance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compliance record: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("compliance record", strconv.FormatInt(id, 10))
	}
	return nil
}
