package domain

import (
	"database/sql"
	"time"
)

// Payment maps the payments table: periodic payouts to farmers for collected
// milk. farmer_id references farmers(id).
type Payment struct {
	ID          int64        `db:"id"` // auto-increment
	FarmerID    string       `db:"farmer_id"`
	PeriodStart time.Time    `db:"period_start"`
	PeriodEnd   time.Time    `db:"period_end"`
	Amount      float64      `db:"amount"`
	PaymentDate sql.NullTime `db:"payment_date"` // nullable until paid
	Method      string       `db:"method"`       // Bank, Cash, UPI
	Status      string       `db:"status"`       // Pending, Paid, Failed
	CreatedAt   time.Time    `db:"created_at"`
}

// PaymentStats is the aggregate returned by GET /api/payments/stats.
type PaymentStats struct {
	Total       int     `json:"total"`
	Pending     int     `json:"pending"`
	Paid        int     `json:"paid"`
	Failed      int     `json:"failed"`
	TotalAmount float64 `json:"total_amount"`
	PaidAmount  float64 `json:"paid_amount"`
}
