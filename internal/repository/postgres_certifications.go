package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresCertificationsRepository struct {
	db *sql.DB
}

func NewPostgresCertificationsRepository(db *sql.DB) *PostgresCertificationsRepository {
	return &PostgresCertificationsRepository{db: db}
}

var _ CertificationsRepository = (*PostgresCertificationsRepository)(nil)

const certificationColumns = `id, name, issuing_body, issue_date, expiry_date, status, created_at`

func scanCertification(row interface{ Scan(...any) error }) (*domain.Certification, error) {
	var c domain.Certification
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.IssuingBody,
		&c.IssueDate,
		&c.ExpiryDate,
		&c.Status,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCertificationsRepository) ListCertifications(ctx context.Context) ([]*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications ORDER BY expiry_date ASC`
	return r.queryCertifications(ctx, query)
}

// ListExpiringCertifications: window is [today, today+days], both ends
// inclusive, so days=0 returns certifications expiring today.
func (r *PostgresCertificationsRepository) ListExpiringCertifications(ctx context.Context, days int) ([]*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications
		WHERE expiry_date >= CURRENT_DATE
		  AND expiry_date <= CURRENT_DATE + make_interval(days => $1)
		ORDER BY expiry_date ASC`
	return r.queryCertifications(ctx, query, days)
}

func (r *PostgresCertificationsRepository) queryCertifications(ctx context.Context, query string, args ...any) ([]*domain.Certification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	defer rows.Close()

	certs := []*domain.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certification: %w", err)
		}
		certs = append(certs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate certifications: %w", err)
	}

	return certs, nil
}

func (r *PostgresCertificationsRepository) CertificationStats(ctx context.Context) (*domain.CertificationStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Valid'),
			COUNT(*) FILTER (WHERE status = 'Expired'),
			COUNT(*) FILTER (WHERE status = 'Suspended'),
			COUNT(*) FILTER (WHERE expiry_date >= CURRENT_DATE AND expiry_date <= CURRENT_DATE + INTERVAL '30 days')
		FROM certifications
	`

	var s domain.CertificationStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Total, &s.Valid, &s.Expired, &s.Suspended, &s.ExpiringSoon,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get certification stats: %w", err)
	}
	return &s, nil
}

func (r *PostgresCertificationsRepository) GetCertification(ctx context.Context, id string) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1`

	c, err := scanCertification(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("certification", id)
		}
		return nil, fmt.Errorf("failed to get certification: %w", err)
	}
	return c, nil
}

func (r *PostgresCertificationsRepository) CreateCertification(ctx context.Context, c *domain.Certification) error {
	query := `
		INSERT INTO certifications (id, name, issuing_body, issue_date, expiry_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.IssuingBody, c.IssueDate, c.ExpiryDate, c.Status,
	)
	if err != nil {
		if err = translatePQ(err, "certification"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create certification: %w", err)
	}
	return nil
}

func (r *PostgresCertificationsRepository) UpdateCertification(ctx context.Context, c *domain.Certification) error {
	query := `
		UPDATE certifications
		SET name = $2, issuing_body = $3, issue_date = $4, expiry_date = $5, status = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.IssuingBody, c.IssueDate, c.ExpiryDate, c.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update certification: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("certification", c.ID)
	}
	return nil
}

func (r *PostgresCertificationsRepository) DeleteCertification(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete certification: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("certification", id)
	}
	return nil
}
