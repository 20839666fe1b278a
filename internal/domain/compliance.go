package domain

import (
	"database/sql"
	"time"
)

// ComplianceRecord maps the compliance_records table (FSSAI filings,
// pollution-board clearances and similar obligations).
type ComplianceRecord struct {
	ID         int64          `db:"id"` // auto-increment
	Title      string         `db:"title"`
	Category   string         `db:"category"` // FoodSafety, Environmental, Labor, Tax
	Authority  string         `db:"authority"`
	RecordDate time.Time      `db:"record_date"`
	Status     string         `db:"status"` // Compliant, NonCompliant, Pending
	Notes      sql.NullString `db:"notes"`  // nullable
	CreatedAt  time.Time      `db:"created_at"`
}

// Certification maps the certifications table.
type Certification struct {
	ID          string    `db:"id"` // CERT[0-9]{4}
	Name        string    `db:"name"`
	IssuingBody string    `db:"issuing_body"`
	IssueDate   time.Time `db:"issue_date"`
	ExpiryDate  time.Time `db:"expiry_date"`
	Status      string    `db:"status"` // Valid, Expired, Suspended
	CreatedAt   time.Time `db:"created_at"`
}

// CertificationStats is the aggregate returned by GET /api/certifications/stats.
type CertificationStats struct {
	Total        int `json:"total"`
	Valid        int `json:"valid"`
	Expired      int `json:"expired"`
	Suspended    int `json:"suspended"`
	ExpiringSoon int `json:"expiring_soon"` // within 30 days
}

// Audit maps the audits table.
type Audit struct {
	ID        int64          `db:"id"` // auto-increment
	AuditDate time.Time      `db:"audit_date"`
	Auditor   string         `db:"auditor"`
	Scope     string         `db:"scope"`
	Findings  sql.NullString `db:"findings"` // nullable until closed
	Rating    sql.NullString `db:"rating"`   // nullable, A/B/C
	Status    string         `db:"status"`   // Planned, InProgress, Closed
	CreatedAt time.Time      `db:"created_at"`
}

// Document maps the documents table: metadata for uploaded files. IDs are
// server-assigned UUIDs; the files themselves live outside this service.
type Document struct {
	ID            string         `db:"id"` // uuid
	Title         string         `db:"title"`
	Category      string         `db:"category"` // License, Certificate, Report, Contract, Other
	FileName      string         `db:"file_name"`
	RelatedEntity sql.NullString `db:"related_entity"` // nullable, e.g. "FARM0001"
	UploadedAt    time.Time      `db:"uploaded_at"`
}
