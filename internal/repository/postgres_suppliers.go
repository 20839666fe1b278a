package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresSuppliersRepository struct {
	db *sql.DB
}

func NewPostgresSuppliersRepository(db *sql.DB) *PostgresSuppliersRepository {
	return &PostgresSuppliersRepository{db: db}
}

var _ SuppliersRepository = (*PostgresSuppliersRepository)(nil)

const supplierColumns = `id, name, contact_person, phone, email, address, supply_type, status, created_at`

func scanSupplier(row interface{ Scan(...any) error }) (*domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.ContactPerson,
		&s.Phone,
		&s.Email,
		&s.Address,
		&s.SupplyType,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSuppliersRepository) ListSuppliers(ctx context.Context) ([]*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []*domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate suppliers: %w", err)
	}

	return suppliers, nil
}

func (r *PostgresSuppliersRepository) GetSupplier(ctx context.Context, id string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`

	s, err := scanSupplier(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("supplier", id)
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return s, nil
}

func (r *PostgresSuppliersRepository) CreateSupplier(ctx context.Context, s *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, phone, email, address, supply_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, s.SupplyType, s.Status,
	)
	if err != nil {
		if err = translatePQ(err, "supplier"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *PostgresSuppliersRepository) UpdateSupplier(ctx context.Context, s *domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6,
		    supply_type = $7, status = $8
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Phone, s.Email, s.Address, s.SupplyType, s.Status,
	)
	if err != nil {
		if err = translatePQ(err, "supplier"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("supplier", s.ID)
	}
	return nil
}

func (r *PostgresSuppliersRepository) DeleteSupplier(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if err = translatePQ(err, "supplier"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("supplier", id)
	}
	return nil
}
