package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"dairycoop-data/internal/domain"
)

type PostgresQualityTestsRepository struct {
	db *sql.DB
}

func NewPostgresQualityTestsRepository(db *sql.DB) *PostgresQualityTestsRepository {
	return &PostgresQualityTestsRepository{db: db}
}

var _ QualityTestsRepository = (*PostgresQualityTestsRepository)(nil)

const qualityTestColumns = `id, farmer_id, test_date, test_type, fat_percent, snf_percent, bacterial_count, result, notes, created_at`

func scanQualityTest(row interface{ Scan(...any) error }) (*domain.QualityTest, error) {
	var t domain.QualityTest
	err := row.Scan(
		&t.ID,
		&t.FarmerID,
		&t.TestDate,
		&t.TestType,
		&t.FatPercent,
		&t.SNFPercent,
		&t.BacterialCount,
		&t.Result,
		&t.Notes,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresQualityTestsRepository) ListQualityTests(ctx context.Context) ([]*domain.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + ` FROM quality_tests ORDER BY test_date DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quality tests: %w", err)
	}
	defer rows.Close()

	tests := []*domain.QualityTest{}
	for rows.Next() {
		t, err := scanQualityTest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quality test: %w", err)
		}
		tests = append(tests, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quality tests: %w", err)
	}

	return tests, nil
}

func (r *PostgresQualityTestsRepository) GetQualityTest(ctx context.Context, id int64) (*domain.QualityTest, error) {
	query := `SELECT ` + qualityTestColumns + ` FROM quality_tests WHERE id = $1`

	t, err := scanQualityTest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("quality test", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to get quality test: %w", err)
	}
	return t, nil
}

func (r *PostgresQualityTestsRepository) CreateQualityTest(ctx context.Context, t *domain.QualityTest) error {
	query := `
		INSERT INTO quality_tests (farmer_id, test_date, test_type, fat_percent, snf_percent, bacterial_count, result, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		t.FarmerID, t.TestDate, t.TestType, t.FatPercent, t.SNFPercent,
		t.BacterialCount, t.Result, t.Notes,
	).Scan(&t.ID)
	if err != nil {
		if err = translatePQ(err, "quality test"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create quality test: %w", err)
	}
	return nil
}

func (r *PostgresQualityTestsRepository) UpdateQualityTest(ctx context.Context, t *domain.QualityTest) error {
	query := `
		UPDATE quality_tests
		SET farmer_id = $2, test_date = $3, test_type = $4, fat_percent = $5,
		    snf_percent = $6, bacterial_count = $7, result = $8, notes = $9
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		t.ID, t.FarmerID, t.TestDate, t.TestType, t.FatPercent,
		t.SNFPercent, t.BacterialCount, t.Result, t.Notes,
	)
	if err != nil {
		if err = translatePQ(err, "quality test"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update quality test: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("quality test", strconv.FormatInt(t.ID, 10))
	}
	return nil
}

func (r *PostgresQualityTestsRepository) DeleteQualityTest(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM quality_tests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quality test: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("quality test", strconv.FormatInt(id, 10))
	}
	return nil
}
