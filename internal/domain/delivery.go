package domain

import (
	"database/sql"
	"time"
)

// Delivery maps the deliveries table (tanker runs from collection centers to
// the processing plant or buyers).
type Delivery struct {
	ID             string         `db:"id"` // DEL[0-9]{4}
	Route          string         `db:"route"`
	VehicleNumber  string         `db:"vehicle_number"`
	DriverName     string         `db:"driver_name"`
	DepartureTime  time.Time      `db:"departure_time"`
	ArrivalTime    sql.NullTime   `db:"arrival_time"` // nullable until delivered
	QuantityLiters float64        `db:"quantity_liters"`
	Destination    string         `db:"destination"`
	Notes          sql.NullString `db:"notes"`  // nullable
	Status         string         `db:"status"` // Scheduled, InTransit, Delivered, Cancelled
	CreatedAt      time.Time      `db:"created_at"`
}

// Delivery status values; set directly by the dispatch screen, no workflow
// engine sits behind them.
const (
	DeliveryStatusScheduled = "Scheduled"
	DeliveryStatusInTransit = "InTransit"
	DeliveryStatusDelivered = "Delivered"
	DeliveryStatusCancelled = "Cancelled"
)
