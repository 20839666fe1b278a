package domain

import (
	"database/sql"
	"time"
)

// Farmer maps the farmers table. IDs are member-entered and follow the
// cooperative's FARM0000 numbering.
type Farmer struct {
	ID            string         `db:"id"` // FARM[0-9]{4}
	Name          string         `db:"name"`
	Phone         string         `db:"phone"`
	Email         sql.NullString `db:"email"` // nullable
	Village       string         `db:"village"`
	CattleCount   int            `db:"cattle_count"`
	DailyCapacity float64        `db:"daily_capacity"` // liters per day
	JoinDate      time.Time      `db:"join_date"`
	BankAccount   sql.NullString `db:"bank_account"` // nullable
	Status        string         `db:"status"`       // Active, Inactive, Suspended
	CreatedAt     time.Time      `db:"created_at"`
}

// FarmerStatus values accepted by the edit forms.
const (
	FarmerStatusActive    = "Active"
	FarmerStatusInactive  = "Inactive"
	FarmerStatusSuspended = "Suspended"
)
