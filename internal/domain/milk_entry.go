package domain

import "time"

// MilkEntry maps the milk_entries table, one row per farmer per collection
// shift. farmer_id references farmers(id).
type MilkEntry struct {
	ID             int64     `db:"id"` // auto-increment
	FarmerID       string    `db:"farmer_id"`
	CollectionDate time.Time `db:"collection_date"`
	Shift          string    `db:"shift"` // Morning, Evening
	QuantityLiters float64   `db:"quantity_liters"`
	FatPercent     float64   `db:"fat_percent"`
	SNFPercent     float64   `db:"snf_percent"` // solids-not-fat
	RatePerLiter   float64   `db:"rate_per_liter"`
	TotalAmount    float64   `db:"total_amount"`
	QualityGrade   string    `db:"quality_grade"` // A, B, C
	Status         string    `db:"status"`        // Recorded, Verified, Rejected
	CreatedAt      time.Time `db:"created_at"`
}
