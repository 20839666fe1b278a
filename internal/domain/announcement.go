package domain

import (
	"database/sql"
	"time"
)

// Announcement maps the announcements table: notices shown on the portal
// dashboard to every member.
type Announcement struct {
	ID          int64        `db:"id"` // auto-increment
	Title       string       `db:"title"`
	Content     string       `db:"content"`
	Category    string       `db:"category"` // General, Price, Schedule, Event
	PublishDate time.Time    `db:"publish_date"`
	ExpiryDate  sql.NullTime `db:"expiry_date"` // nullable
	Priority    string       `db:"priority"`    // Low, Medium, High
	Status      string       `db:"status"`      // Draft, Published, Archived
	CreatedAt   time.Time    `db:"created_at"`
}
