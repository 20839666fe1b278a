// Package repository holds one repository per resource. Each is a thin
// translation between the domain record and parameterized SQL: full-table
// list ordered by recency, point lookups by id, and single-statement writes.
// Not-found surfaces as ErrNotFound, constraint violations as
// ConstraintError; no other logic lives here.
package repository

import (
	"context"

	"dairycoop-data/internal/domain"
)

type FarmersRepository interface {
	ListFarmers(ctx context.Context) ([]*domain.Farmer, error)
	GetFarmer(ctx context.Context, id string) (*domain.Farmer, error)
	CreateFarmer(ctx context.Context, f *domain.Farmer) error
	UpdateFarmer(ctx context.Context, f *domain.Farmer) error
	DeleteFarmer(ctx context.Context, id string) error
}

type SuppliersRepository interface {
	ListSuppliers(ctx context.Context) ([]*domain.Supplier, error)
	GetSupplier(ctx context.Context, id string) (*domain.Supplier, error)
	CreateSupplier(ctx context.Context, s *domain.Supplier) error
	UpdateSupplier(ctx context.Context, s *domain.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
}

type MilkEntriesRepository interface {
	ListMilkEntries(ctx context.Context) ([]*domain.MilkEntry, error)
	// ListMilkEntriesBetween serves the collection report export.
	ListMilkEntriesBetween(ctx context.Context, from, to string) ([]*domain.MilkEntry, error)
	GetMilkEntry(ctx context.Context, id int64) (*domain.MilkEntry, error)
	CreateMilkEntry(ctx context.Context, e *domain.MilkEntry) error
	UpdateMilkEntry(ctx context.Context, e *domain.MilkEntry) error
	DeleteMilkEntry(ctx context.Context, id int64) error
}

type QualityTestsRepository interface {
	ListQualityTests(ctx context.Context) ([]*domain.QualityTest, error)
	GetQualityTest(ctx context.Context, id int64) (*domain.QualityTest, error)
	CreateQualityTest(ctx context.Context, t *domain.QualityTest) error
	UpdateQualityTest(ctx context.Context, t *domain.QualityTest) error
	DeleteQualityTest(ctx context.Context, id int64) error
}

type DeliveriesRepository interface {
	ListDeliveries(ctx context.Context) ([]*domain.Delivery, error)
	GetDelivery(ctx context.Context, id string) (*domain.Delivery, error)
	CreateDelivery(ctx context.Context, d *domain.Delivery) error
	UpdateDelivery(ctx context.Context, d *domain.Delivery) error
	UpdateDeliveryStatus(ctx context.Context, id, status string) error
	DeleteDelivery(ctx context.Context, id string) error
}

type PaymentsRepository interface {
	ListPayments(ctx context.Context) ([]*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	CreatePayment(ctx context.Context, p *domain.Payment) error
	UpdatePayment(ctx context.Context, p *domain.Payment) error
	DeletePayment(ctx context.Context, id int64) error
	PaymentStats(ctx context.Context) (*domain.PaymentStats, error)
}

type BillsRepository interface {
	ListBills(ctx context.Context) ([]*domain.Bill, error)
	GetBill(ctx context.Context, id string) (*domain.Bill, error)
	CreateBill(ctx context.Context, b *domain.Bill) error
	UpdateBill(ctx context.Context, b *domain.Bill) error
	DeleteBill(ctx context.Context, id string) error
}

type ComplianceRecordsRepository interface {
	ListComplianceRecords(ctx context.Context) ([]*domain.ComplianceRecord, error)
	GetComplianceRecord(ctx context.Context, id int64) (*domain.ComplianceRecord, error)
	CreateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error
	UpdateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error
	DeleteComplianceRecord(ctx context.Context, id int64) error
}

type CertificationsRepository interface {
	ListCertifications(ctx context.Context) ([]*domain.Certification, error)
	// ListExpiringCertifications returns certifications whose expiry_date
	// lies in [today, today+days], inclusive, ascending by expiry_date.
	ListExpiringCertifications(ctx context.Context, days int) ([]*domain.Certification, error)
	CertificationStats(ctx context.Context) (*domain.CertificationStats, error)
	GetCertification(ctx context.Context, id string) (*domain.Certification, error)
	CreateCertification(ctx context.Context, c *domain.Certification) error
	UpdateCertification(ctx context.Context, c *domain.Certification) error
	DeleteCertification(ctx context.Context, id string) error
}

type AuditsRepository interface {
	ListAudits(ctx context.Context) ([]*domain.Audit, error)
	GetAudit(ctx context.Context, id int64) (*domain.Audit, error)
	CreateAudit(ctx context.Context, a *domain.Audit) error
	UpdateAudit(ctx context.Context, a *domain.Audit) error
	DeleteAudit(ctx context.Context, id int64) error
}

type DocumentsRepository interface {
	ListDocuments(ctx context.Context) ([]*domain.Document, error)
	GetDocument(ctx context.Context, id string) (*domain.Document, error)
	// CreateDocument assigns d.ID (uuid) before inserting.
	CreateDocument(ctx context.Context, d *domain.Document) error
	UpdateDocument(ctx context.Context, d *domain.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

type MessagesRepository interface {
	ListMessages(ctx context.Context) ([]*domain.Message, error)
	GetMessage(ctx context.Context, id string) (*domain.Message, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	UpdateMessage(ctx context.Context, m *domain.Message) error
	UpdateMessageStatus(ctx context.Context, id, status string) error
	DeleteMessage(ctx context.Context, id string) error
}

type GroupMessagesRepository interface {
	ListGroupMessages(ctx context.Context) ([]*domain.GroupMessage, error)
	GetGroupMessage(ctx context.Context, id string) (*domain.GroupMessage, error)
	CreateGroupMessage(ctx context.Context, m *domain.GroupMessage) error
	UpdateGroupMessage(ctx context.Context, m *domain.GroupMessage) error
	DeleteGroupMessage(ctx context.Context, id string) error
}

type AnnouncementsRepository interface {
	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	GetAnnouncement(ctx context.Context, id int64) (*domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *domain.Announcement) error
	UpdateAnnouncement(ctx context.Context, a *domain.Announcement) error
	DeleteAnnouncement(ctx context.Context, id int64) error
}
