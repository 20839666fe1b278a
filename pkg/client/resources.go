package client

import "context"

// Thin per-resource wrappers over the generic CRUD core. Records stay in
// wire format; pkg/hub does the UI-shape mapping.

func (c *Client) ListFarmers(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "farmers")
}

func (c *Client) GetFarmer(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "farmers", id)
}

func (c *Client) CreateFarmer(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "farmers", body)
}

func (c *Client) UpdateFarmer(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "farmers", id, body)
}

func (c *Client) DeleteFarmer(ctx context.Context, id string) error {
	return c.Delete(ctx, "farmers", id)
}

func (c *Client) ListSuppliers(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "suppliers")
}

func (c *Client) GetSupplier(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "suppliers", id)
}

func (c *Client) CreateSupplier(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "suppliers", body)
}

func (c *Client) UpdateSupplier(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "suppliers", id, body)
}

func (c *Client) DeleteSupplier(ctx context.Context, id string) error {
	return c.Delete(ctx, "suppliers", id)
}

func (c *Client) ListMilkEntries(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "milk-entries")
}

func (c *Client) GetMilkEntry(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "milk-entries", id)
}

func (c *Client) CreateMilkEntry(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "milk-entries", body)
}

func (c *Client) UpdateMilkEntry(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "milk-entries", id, body)
}

func (c *Client) DeleteMilkEntry(ctx context.Context, id string) error {
	return c.Delete(ctx, "milk-entries", id)
}

func (c *Client) ListQualityTests(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "quality-tests")
}

func (c *Client) GetQualityTest(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "quality-tests", id)
}

func (c *Client) CreateQualityTest(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "quality-tests", body)
}

func (c *Client) UpdateQualityTest(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "quality-tests", id, body)
}

func (c *Client) DeleteQualityTest(ctx context.Context, id string) error {
	return c.Delete(ctx, "quality-tests", id)
}

func (c *Client) ListDeliveries(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "deliveries")
}

func (c *Client) GetDelivery(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "deliveries", id)
}

func (c *Client) CreateDelivery(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "deliveries", body)
}

func (c *Client) UpdateDelivery(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "deliveries", id, body)
}

func (c *Client) DeleteDelivery(ctx context.Context, id string) error {
	return c.Delete(ctx, "deliveries", id)
}

func (c *Client) ListPayments(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "payments")
}

func (c *Client) GetPayment(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "payments", id)
}

func (c *Client) CreatePayment(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "payments", body)
}

func (c *Client) UpdatePayment(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "payments", id, body)
}

func (c *Client) DeletePayment(ctx context.Context, id string) error {
	return c.Delete(ctx, "payments", id)
}

func (c *Client) ListBills(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "bills")
}

func (c *Client) GetBill(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "bills", id)
}

func (c *Client) CreateBill(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "bills", body)
}

func (c *Client) UpdateBill(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "bills", id, body)
}

func (c *Client) DeleteBill(ctx context.Context, id string) error {
	return c.Delete(ctx, "bills", id)
}

func (c *Client) ListComplianceRecords(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "compliance-records")
}

func (c *Client) GetComplianceRecord(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "compliance-records", id)
}

func (c *Client) CreateComplianceRecord(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "compliance-records", body)
}

func (c *Client) UpdateComplianceRecord(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "compliance-records", id, body)
}

func (c *Client) DeleteComplianceRecord(ctx context.Context, id string) error {
	return c.Delete(ctx, "compliance-records", id)
}

func (c *Client) ListCertifications(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "certifications")
}

func (c *Client) GetCertification(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "certifications", id)
}

func (c *Client) CreateCertification(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "certifications", body)
}

func (c *Client) UpdateCertification(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "certifications", id, body)
}

func (c *Client) DeleteCertification(ctx context.Context, id string) error {
	return c.Delete(ctx, "certifications", id)
}

func (c *Client) ListAudits(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "audits")
}

func (c *Client) GetAudit(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "audits", id)
}

func (c *Client) CreateAudit(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "audits", body)
}

func (c *Client) UpdateAudit(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "audits", id, body)
}

func (c *Client) DeleteAudit(ctx context.Context, id string) error {
	return c.Delete(ctx, "audits", id)
}

func (c *Client) ListDocuments(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "documents")
}

func (c *Client) GetDocument(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "documents", id)
}

func (c *Client) CreateDocument(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "documents", body)
}

func (c *Client) UpdateDocument(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "documents", id, body)
}

func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	return c.Delete(ctx, "documents", id)
}

func (c *Client) ListMessages(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "messages")
}

func (c *Client) GetMessage(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "messages", id)
}

func (c *Client) CreateMessage(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "messages", body)
}

func (c *Client) UpdateMessage(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "messages", id, body)
}

func (c *Client) DeleteMessage(ctx context.Context, id string) error {
	return c.Delete(ctx, "messages", id)
}

func (c *Client) ListGroupMessages(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "group-messages")
}

func (c *Client) GetGroupMessage(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "group-messages", id)
}

func (c *Client) CreateGroupMessage(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "group-messages", body)
}

func (c *Client) UpdateGroupMessage(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "group-messages", id, body)
}

func (c *Client) DeleteGroupMessage(ctx context.Context, id string) error {
	return c.Delete(ctx, "group-messages", id)
}

func (c *Client) ListAnnouncements(ctx context.Context) ([]Record, error) {
	return c.List(ctx, "announcements")
}

func (c *Client) GetAnnouncement(ctx context.Context, id string) (Record, error) {
	return c.Get(ctx, "announcements", id)
}

func (c *Client) CreateAnnouncement(ctx context.Context, body Record) (Record, error) {
	return c.Create(ctx, "announcements", body)
}

func (c *Client) UpdateAnnouncement(ctx context.Context, id string, body Record) (Record, error) {
	return c.Update(ctx, "announcements", id, body)
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.Delete(ctx, "announcements", id)
}
