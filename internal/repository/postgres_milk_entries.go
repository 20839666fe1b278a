package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresMilkEntriesRepository struct {
	db *sql.DB
}

func NewPostgresMilkEntriesRepository(db *sql.DB) *PostgresMilkEntriesRepository {
	return &PostgresMilkEntriesRepository{db: db}
}

var _ MilkEntriesRepository = (*PostgresMilkEntriesRepository)(nil)

const milkEntryColumns = `id, farmer_id, collection_date, shift, quantity_liters, fat_percent, snf_percent, rate_per_liter, total_amount, quality_grade, status, created_at`

func scanMilkEntry(row interface{ Scan(...any) error }) (*domain.MilkEntry, error) {
	var e domain.MilkEntry
	err := row.Scan(
		&e.ID,
		&e.FarmerID,
		&e.CollectionDate,
		&e.Shift,
		&e.QuantityLiters,
		&e.FatPercent,
		&e.SNFPercent,
		&e.RatePerLiter,
		&e.TotalAmount,
		&e.QualityGrade,
		&e.Status,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PostgresMilkEntriesRepository) ListMilkEntries(ctx context.Context) ([]*domain.MilkEntry, error) {
	query := `SELECT ` + milkEntryColumns + ` FROM milk_entries ORDER BY collection_date DESC, id DESC`
	return r.queryMilkEntries(ctx, query)
}

func (r *PostgresMilkEntriesRepository) ListMilkEntriesBetween(ctx context.Context, from, to string) ([]*domain.MilkEntry, error) {
	query := `SELECT ` + milkEntryColumns + ` FROM milk_entries
		WHERE collection_date >= $1 AND collection_date <= $2
		ORDER BY collection_date ASC, id ASC`
	return r.queryMilkEntries(ctx, query, from, to)
}

func (r *PostgresMilkEntriesRepository) queryMilkEntries(ctx context.Context, query string, args ...any) ([]*domain.MilkEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list milk entries: %w", err)
	}
	defer rows.Close()

	entries := []*domain.MilkEntry{}
	for rows.Next() {
		e, err := scanMilkEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milk entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate milk entries: %w", err)
	}

	return entries, nil
}

func (r *PostgresMilkEntriesRepository) GetMilkEntry(ctx context.Context, id int64) (*domain.MilkEntry, error) {
	query := `SELECT ` + milkEntryColumns + ` FROM milk_entries WHERE id = $1`

	e, err := scanMilkEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("milk entry", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get milk entry: %w", err)
	}
	return e, nil
}

func (r *PostgresMilkEntriesRepository) CreateMilkEntry(ctx context.Context, e *domain.MilkEntry) error {
	query := `
		INSERT INTO milk_entries (farmer_id, collection_date, shift, quantity_liters, fat_percent, snf_percent, rate_per_liter, total_amount, quality_grade, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		e.FarmerID, e.CollectionDate, e.Shift, e.QuantityLiters, e.FatPercent,
		e.SNFPercent, e.RatePerLiter, e.TotalAmount, e.QualityGrade, e.Status,
	).Scan(&e.ID)
	if err != nil {
		if err = translatePQ(err, "milk entry"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create milk entry: %w", err)
	}
	return nil
}

func (r *PostgresMilkEntriesRepository) UpdateMilkEntry(ctx context.Context, e *domain.MilkEntry) error {
	query := `
		UPDATE milk_entries
		SET farmer_id = $2, collection_date = $3, shift = $4, quantity_liters = $5,
		    fat_percent = $6, snf_percent = $7, rate_per_liter = $8, total_amount = $9,
		    quality_grade = $10, status = $11
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		e.ID, e.FarmerID, e.CollectionDate, e.Shift, e.QuantityLiters,
		e.FatPercent, e.SNFPercent, e.RatePerLiter, e.TotalAmount, e.QualityGrade, e.Status,
	)
	if err != nil {
		if err = translatePQ(err, "milk entry"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update milk entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("milk entry", strconv.FormatInt(e.ID, 10))
	}
	return nil
}

func (r *PostgresMilkEntriesRepository) DeleteMilkEntry(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM milk_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete milk entry: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("milk entry", strconv.FormatInt(id, 10))
	}
	return nil
}
