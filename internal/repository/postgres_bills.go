package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresBillsRepository struct {
	db *sql.DB
}

func NewPostgresBillsRepository(db *sql.DB) *PostgresBillsRepository {
	return &PostgresBillsRepository{db: db}
}

var _ BillsRepository = (*PostgresBillsRepository)(nil)

const billColumns = `id, supplier_id, bill_date, due_date, amount, category, status, created_at`

func scanBill(row interface{ Scan(...any) error }) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(
		&b.ID,
		&b.SupplierID,
		&b.BillDate,
		&b.DueDate,
		&b.Amount,
		&b.Category,
		&b.Status,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBillsRepository) ListBills(ctx context.Context) ([]*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY bill_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []*domain.Bill{}
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	return bills, nil
}

func (r *PostgresBillsRepository) GetBill(ctx context.Context, id string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE id = $1`

	b, err := scanBill(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("bill", id)
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return b, nil
}

func (r *PostgresBillsRepository) CreateBill(ctx context.Context, b *domain.Bill) error {
	query := `
		INSERT INTO bills (id, supplier_id, bill_date, due_date, amount, category, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.SupplierID, b.BillDate, b.DueDate, b.Amount, b.Category, b.Status,
	)
	if err != nil {
		if err = translatePQ(err, "bill"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

func (r *PostgresBillsRepository) UpdateBill(ctx context.Context, b *domain.Bill) error {
	query := `
		UPDATE bills
		SET supplier_id = $2, bill_date = $3, due_date = $4, amount = $5, category = $6, status = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		b.ID, b.SupplierID, b.BillDate, b.DueDate, b.Amount, b.Category, b.Status,
	)
	if err != nil {
		if err = translatePQ(err, "bill"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update bill: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("bill", b.ID)
	}
	return nil
}

func (r *PostgresBillsRepository) DeleteBill(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("bill", id)
	}
	return nil
}
