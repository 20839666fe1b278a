package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresPaymentsRepository struct {
	db *sql.DB
}

func NewPostgresPaymentsRepository(db *sql.DB) *PostgresPaymentsRepository {
	return &PostgresPaymentsRepository{db: db}
}

var _ PaymentsRepository = (*PostgresPaymentsRepository)(nil)

const paymentColumns = `id, farmer_id, period_start, period_end, amount, payment_date, method, status, created_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.ID,
		&p.FarmerID,
		&p.PeriodStart,
		&p.PeriodEnd,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		&p.Status,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPaymentsRepository) ListPayments(ctx context.Context) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY period_end DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	payments := []*domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

func (r *PostgresPaymentsRepository) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("payment", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

func (r *PostgresPaymentsRepository) CreatePayment(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (farmer_id, period_start, period_end, amount, payment_date, method, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		p.FarmerID, p.PeriodStart, p.PeriodEnd, p.Amount, p.PaymentDate, p.Method, p.Status,
	).Scan(&p.ID)
	if err != nil {
		if err = translatePQ(err, "payment"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PostgresPaymentsRepository) UpdatePayment(ctx context.Context, p *domain.Payment) error {
	query := `
		UPDATE payments
		SET farmer_id = $2, period_start = $3, period_end = $4, amount = $5,
		    payment_date = $6, method = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.FarmerID, p.PeriodStart, p.PeriodEnd, p.Amount, p.PaymentDate, p.Method, p.Status,
	)
	if err != nil {
		if err = translatePQ(err, "payment"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("payment", strconv.FormatInt(p.ID, 10))
	}
	return nil
}

func (r *PostgresPaymentsRepository) DeletePayment(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("payment", strconv.FormatInt(id, 10))
	}
	return nil
}

// PaymentStats aggregates the collection in one statement; the dashboard
// polls this, so it stays a single round trip.
func (r *PostgresPaymentsRepository) PaymentStats(ctx context.Context) (*domain.PaymentStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Paid'),
			COUNT(*) FILTER (WHERE status = 'Failed'),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'Paid'), 0)
		FROM payments
	`

	var s domain.PaymentStats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&s.Total, &s.Pending, &s.Paid, &s.Failed, &s.TotalAmount, &s.PaidAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment stats: %w", err)
	}
	return &s, nil
}
