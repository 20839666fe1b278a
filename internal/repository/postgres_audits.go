package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresAuditsRepository struct {
	db *sql.DB
}

func NewPostgresAuditsRepository(db *sql.DB) *PostgresAuditsRepository {
	return &PostgresAuditsRepository{db: db}
}

var _ AuditsRepository = (*PostgresAuditsRepository)(nil)

const auditColumns = `id, audit_date, auditor, scope, findings, rating, status, created_at`

func scanAudit(row interface{ Scan(...any) error }) (*domain.Audit, error) {
	var a domain.Audit
	err := row.Scan(
		&a.ID,
		&a.AuditDate,
		&a.Auditor,
		&a.Scope,
		&a.Findings,
		&a.Rating,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PostgresAuditsRepository) ListAudits(ctx context.Context) ([]*domain.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits ORDER BY audit_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list audits: %w", err)
	}
	defer rows.Close()

	audits := []*domain.Audit{}
	for rows.Next() {
		a, err := scanAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit: %w", err)
		}
		audits = append(audits, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audits: %w", err)
	}

	return audits, nil
}

func (r *PostgresAuditsRepository) GetAudit(ctx context.Context, id int64) (*domain.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits WHERE id = $1`

	a, err := scanAudit(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("audit", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get audit: %w", err)
	}
	return a, nil
}

func (r *PostgresAuditsRepository) CreateAudit(ctx context.Context, a *domain.Audit) error {
	query := `
		INSERT INTO audits (audit_date, auditor, scope, findings, rating, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		a.AuditDate, a.Auditor, a.Scope, a.Findings, a.Rating, a.Status,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create audit: %w", err)
	}
	return nil
}

func (r *PostgresAuditsRepository) UpdateAudit(ctx context.Context, a *domain.Audit) error {
	query := `
		UPDATE audits
		SET audit_date = $2, auditor = $3, scope = $4, findings = $5, rating = $6, status = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		a.ID, a.AuditDate, a.Auditor, a.Scope, a.Findings, a.Rating, a.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update audit: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("audit", strconv.FormatInt(a.ID, 10))
	}
	return nil
}

func (r *PostgresAuditsRepository) DeleteAudit(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM audits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete audit: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("audit", strconv.FormatInt(id, 10))
	}
	return nil
}
