package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dairycoop-data/internal/domain"
)

type PostgresDeliveriesRepository struct {
	db *sql.DB
}

func NewPostgresDeliveriesRepository(db *sql.DB) *PostgresDeliveriesRepository {
	return &PostgresDeliveriesRepository{db: db}
}

var _ DeliveriesRepository = (*PostgresDeliveriesRepository)(nil)

const deliveryColumns = `id, route, vehicle_number, driver_name, departure_time, arrival_time, quantity_liters, destination, notes, status, created_at`

func scanDelivery(row interface{ Scan(...any) error }) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(
		&d.ID,
		&d.Route,
		&d.VehicleNumber,
		&d.DriverName,
		&d.DepartureTime,
		&d.ArrivalTime,
		&d.QuantityLiters,
		&d.Destination,
		&d.Notes,
		&d.Status,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresDeliveriesRepository) ListDeliveries(ctx context.Context) ([]*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries ORDER BY departure_time DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := []*domain.Delivery{}
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}

func (r *PostgresDeliveriesRepository) GetDelivery(ctx context.Context, id string) (*domain.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE id = $1`

	d, err := scanDelivery(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, notFound("delivery", id)
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	return d, nil
}

func (r *PostgresDeliveriesRepository) CreateDelivery(ctx context.Context, d *domain.Delivery) error {
	query := `
		INSERT INTO deliveries (id, route, vehicle_number, driver_name, departure_time, arrival_time, quantity_liters, destination, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Route, d.VehicleNumber, d.DriverName, d.DepartureTime,
		d.ArrivalTime, d.QuantityLiters, d.Destination, d.Notes, d.Status,
	)
	if err != nil {
		if err = translatePQ(err, "delivery"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to create delivery: %w", err)
	}
	return nil
}

func (r *PostgresDeliveriesRepository) UpdateDelivery(ctx context.Context, d *domain.Delivery) error {
	query := `
		UPDATE deliveries
		SET route = $2, vehicle_number = $3, driver_name = $4, departure_time = $5,
		    arrival_time = $6, quantity_liters = $7, destination = $8, notes = $9, status = $10
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		d.ID, d.Route, d.VehicleNumber, d.DriverName, d.DepartureTime,
		d.ArrivalTime, d.QuantityLiters, d.Destination, d.Notes, d.Status,
	)
	if err != nil {
		if err = translatePQ(err, "delivery"); IsConstraint(err) {
			return err
		}
		return fmt.Errorf("failed to update delivery: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("delivery", d.ID)
	}
	return nil
}

func (r *PostgresDeliveriesRepository) UpdateDeliveryStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE deliveries SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update delivery status: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("delivery", id)
	}
	return nil
}

func (r *PostgresDeliveriesRepository) DeleteDelivery(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return notFound("delivery", id)
	}
	return nil
}
