package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dairycoop-data/internal/domain"
)

type fakeCertificationsRepo struct {
	certs       []*domain.Certification
	stats       *domain.CertificationStats
	gotDays     int
	statsCalled bool
}

func (r *fakeCertificationsRepo) ListCertifications(ctx context.Context) ([]*domain.Certification, error) {
	return r.certs, nil
}

func (r *fakeCertificationsRepo) ListExpiringCertifications(ctx context.Context, days int) ([]*domain.Certification, error) {
	r.gotDays = days
	return r.certs, nil
}

func (r *fakeCertificationsRepo) CertificationStats(ctx context.Context) (*domain.CertificationStats, error) {
	r.statsCalled = true
	return r.stats, nil
}

func (r *fakeCertificationsRepo) GetCertification(ctx context.Context, id string) (*domain.Certification, error) {
	return nil, notFoundErr("certification", id)
}

func (r *fakeCertificationsRepo) CreateCertification(ctx context.Context, c *domain.Certification) error {
	return nil
}

func (r *fakeCertificationsRepo) UpdateCertification(ctx context.Context, c *domain.Certification) error {
	return nil
}

func (r *fakeCertificationsRepo) DeleteCertification(ctx context.Context, id string) error {
	return nil
}

type stubComplianceRecordsRepo struct{}

func (stubComplianceRecordsRepo) ListComplianceRecords(ctx context.Context) ([]*domain.ComplianceRecord, error) {
	return []*domain.ComplianceRecord{}, nil
}
func (stubComplianceRecordsRepo) GetComplianceRecord(ctx context.Context, id int64) (*domain.ComplianceRecord, error) {
	return nil, notFoundErr("compliance record", "")
}
func (stubComplianceRecordsRepo) CreateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error {
	return nil
}
func (stubComplianceRecordsRepo) UpdateComplianceRecord(ctx context.Context, c *domain.ComplianceRecord) error {
	return nil
}
func (stubComplianceRecordsRepo) DeleteComplianceRecord(ctx context.Context, id int64) error {
	return nil
}

type stubAuditsRepo struct{}

func (stubAuditsRepo) ListAudits(ctx context.Context) ([]*domain.Audit, error) {
	return []*domain.Audit{}, nil
}
func (stubAuditsRepo) GetAudit(ctx context.Context, id int64) (*domain.Audit, error) {
	return nil, notFoundErr("audit", "")
}
func (stubAuditsRepo) CreateAudit(ctx context.Context, a *domain.Audit) error { return nil }
func (stubAuditsRepo) UpdateAudit(ctx context.Context, a *domain.Audit) error { return nil }
func (stubAuditsRepo) DeleteAudit(ctx context.Context, id int64) error        { return nil }

// fakeDocumentsRepo mimics the server-side uuid assignment the real
// repository does on create.
type fakeDocumentsRepo struct {
	created *domain.Document
}

func (r *fakeDocumentsRepo) ListDocuments(ctx context.Context) ([]*domain.Document, error) {
	return []*domain.Document{}, nil
}
func (r *fakeDocumentsRepo) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	return nil, notFoundErr("document", id)
}
func (r *fakeDocumentsRepo) CreateDocument(ctx context.Context, d *domain.Document) error {
	d.ID = uuid.NewString()
	d.UploadedAt = time.Now()
	r.created = d
	return nil
}
func (r *fakeDocumentsRepo) UpdateDocument(ctx context.Context, d *domain.Document) error {
	return nil
}
func (r *fakeDocumentsRepo) DeleteDocument(ctx context.Context, id string) error { return nil }

func newComplianceTestServer(certs *fakeCertificationsRepo, docs *fakeDocumentsRepo) *httptest.Server {
	h := NewComplianceHandler(stubComplianceRecordsRepo{}, certs, stubAuditsRepo{}, docs, zap.NewNop())
	mux := http.NewServeMux()
	for _, p := range []string{"/api/compliance-records", "/api/certifications", "/api/audits", "/api/documents"} {
		mux.Handle(p, h)
		mux.Handle(p+"/", h)
	}
	return httptest.NewServer(mux)
}

func TestExpiringCertifications_Window(t *testing.T) {
	certs := &fakeCertificationsRepo{
		certs: []*domain.Certification{{
			ID:          "CERT0001",
			Name:        "FSSAI License",
			IssuingBody: "FSSAI",
			IssueDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ExpiryDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
			Status:      "Valid",
		}},
	}
	srv := newComplianceTestServer(certs, &fakeDocumentsRepo{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/certifications/expiring/30")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 30, certs.gotDays)

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)

	list, ok := env.Data.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	first := list[0].(map[string]any)
	assert.Equal(t, "CERT0001", first["id"])
	assert.Equal(t, "2025-07-01", first["expiry_date"])
}

func TestExpiringCertifications_InvalidDays(t *testing.T) {
	certs := &fakeCertificationsRepo{}
	srv := newComplianceTestServer(certs, &fakeDocumentsRepo{})
	defer srv.Close()

	for _, raw := range []string{"abc", "-5"} {
		resp, err := http.Get(srv.URL + "/api/certifications/expiring/" + raw)
		require.NoError(t, err)

		var env Envelope
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "days=%s", raw)
		assert.False(t, env.Success)
		assert.Equal(t, "invalid days", env.Message)
	}
	assert.Equal(t, 0, certs.gotDays)
}

func TestCertificationStats_Endpoint(t *testing.T) {
	certs := &fakeCertificationsRepo{
		stats: &domain.CertificationStats{Total: 10, Valid: 7, Expired: 2, Suspended: 1, ExpiringSoon: 3},
	}
	srv := newComplianceTestServer(certs, &fakeDocumentsRepo{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/certifications/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, certs.statsCalled)

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(10), data["total"])
	assert.Equal(t, float64(3), data["expiring_soon"])
}

// Document ids are assigned server-side; an id supplied by the client must
// not survive into the stored record.
func TestCreateDocument_IgnoresClientID(t *testing.T) {
	docs := &fakeDocumentsRepo{}
	srv := newComplianceTestServer(&fakeCertificationsRepo{}, docs)
	defer srv.Close()

	body, err := json.Marshal(map[string]any{
		"id":        "CLIENT-CHOSEN",
		"title":     "FSSAI License Scan",
		"category":  "License",
		"file_name": "fssai.pdf",
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/documents", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, docs.created)
	assert.NotEqual(t, "CLIENT-CHOSEN", docs.created.ID)

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	data, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, docs.created.ID, data["id"])
}

func TestCreateCertification_Validation(t *testing.T) {
	srv := newComplianceTestServer(&fakeCertificationsRepo{}, &fakeDocumentsRepo{})
	defer srv.Close()

	body, err := json.Marshal(map[string]any{
		"id":           "BAD-ID",
		"name":         "FSSAI License",
		"issuing_body": "FSSAI",
		"issue_date":   "2024-06-01",
		"expiry_date":  "2025-06-01",
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/api/certifications", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "id", env.Errors[0].Field)
}
