package domain

import (
	"database/sql"
	"time"
)

// QualityTest maps the quality_tests table. Lab checks run on collected milk,
// independent of the per-entry grading done at the collection point.
type QualityTest struct {
	ID             int64          `db:"id"` // auto-increment
	FarmerID       string         `db:"farmer_id"`
	TestDate       time.Time      `db:"test_date"`
	TestType       string         `db:"test_type"` // Adulteration, Bacterial, Composition
	FatPercent     float64        `db:"fat_percent"`
	SNFPercent     float64        `db:"snf_percent"`
	BacterialCount sql.NullInt64  `db:"bacterial_count"` // nullable, CFU/ml
	Result         string         `db:"result"`          // Pass, Fail
	Notes          sql.NullString `db:"notes"`           // nullable
	CreatedAt      time.Time      `db:"created_at"`
}
