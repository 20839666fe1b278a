package domain

import (
	"database/sql"
	"time"
)

// Supplier maps the suppliers table (feed, equipment, veterinary, packaging).
type Supplier struct {
	ID            string         `db:"id"` // SUP[0-9]{4}
	Name          string         `db:"name"`
	ContactPerson string         `db:"contact_person"`
	Phone         string         `db:"phone"`
	Email         sql.NullString `db:"email"` // nullable
	Address       string         `db:"address"`
	SupplyType    string         `db:"supply_type"` // Feed, Equipment, Veterinary, Packaging
	Status        string         `db:"status"`      // Active, Inactive
	CreatedAt     time.Time      `db:"created_at"`
}
