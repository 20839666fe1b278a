package domain

import "time"

// Bill maps the bills table: invoices received from suppliers.
// supplier_id references suppliers(id).
type Bill struct {
	ID         string    `db:"id"` // BILL[0-9]{4}
	SupplierID string    `db:"supplier_id"`
	BillDate   time.Time `db:"bill_date"`
	DueDate    time.Time `db:"due_date"`
	Amount     float64   `db:"amount"`
	Category   string    `db:"category"` // Feed, Equipment, Veterinary, Packaging, Other
	Status     string    `db:"status"`   // Unpaid, Paid, Overdue
	CreatedAt  time.Time `db:"created_at"`
}
