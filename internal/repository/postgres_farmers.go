package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

// PostgresFarmersRepository implements FarmersRepository over the farmers
// table.
type PostgresFarmersRepository struct {
	db *sql.DB
}

func NewPostgresFarmersRepository(db *sql.DB) *PostgresFarmersRepository {
	return &PostgresFarmersRepository{db: db}
}

var _ FarmersRepository = (*PostgresFarmersRepository)(nil)

const farmerColumns = `id, name, phone, email, village, cattle_count, daily_capacity, join_date, bank_account, status, created_at`

func scanFarmer(row interface{ Scan(...any) error }) (*domain.Farmer, error) {
	var f domain.Farmer
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Phone,
		&f.Email,
		&f.Village,
		&f.CattleCount,
		&f.DailyCapacity,
		&f.JoinDate,
		&f.BankAccount,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PostgresFarmersRepository) ListFarmers(ctx context.Context) ([]*domain.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	defer rows.Close()

	farmers := []*domain.Farmer{}
	for rows.Next() {
		f, err := scanFarmer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan farmer: %w", err)
		}
		farmers = append(farmers, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate farmers: %w", err)
	}

	return farmers, nil
}

func (r *PostgresFarmersRepository) GetFarmer(ctx context.Context, id string) (*domain.Farmer, error) {
	query := `SELECT ` + farmerColumns + ` FROM farmers WHERE id = $1`

	f, err := scanFarmer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("farmer", id)
		}
		return nil, fmt.Errorf("failed to get farmer: %w", err)
	}
	return f, nil
}

func (r *PostgresFarmersRepository) CreateFarmer(ctx context.Context, f *domain.Farmer) error {
	query := `
		INSERT INTO farmers (id, name, phone, email, village, cattle_count, daily_capacity, join_date, bank_account, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Phone, f.Email, f.Village,
		f.CattleCount, f.DailyCapacity, f.JoinDate, f.BankAccount, f.Status,
	)
	if err != nil {
		if err = translatePQ(err, "farmer"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create farmer: %w", err)
	}
	return nil
}

func (r *PostgresFarmersRepository) UpdateFarmer(ctx context.Context, f *domain.Farmer) error {
	query := `
		UPDATE farmers
		SET name = $2, phone = $3, email = $4, village = $5, cattle_count = $6,
		    daily_capacity = $7, join_date = $8, bank_account = $9, status = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.Phone, f.Email, f.Village,
		f.CattleCount, f.DailyCapacity, f.JoinDate, f.BankAccount, f.Status,
	)
	if err != nil {
		if err = translatePQ(err, "farmer"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update farmer: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("farmer", f.ID)
	}
	return nil
}

func (r *PostgresFarmersRepository) DeleteFarmer(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM farmers WHERE id = $1`, id)
	if err != nil {
		if err = translatePQ(err, "farmer"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to delete farmer: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("farmer", id)
	}
	return nil
}
