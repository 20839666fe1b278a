package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// ComplianceHandler serves the regulatory surface: compliance records,
// certifications (with the expiring/:days and stats views), audits and
// document metadata.
type ComplianceHandler struct {
	records        repository.ComplianceRecordsRepository
	certifications repository.CertificationsRepository
	audits         repository.AuditsRepository
	documents      repository.DocumentsRepository
	logger         *zap.Logger
}

func NewComplianceHandler(
	records repository.ComplianceRecordsRepository,
	certifications repository.CertificationsRepository,
	audits repository.AuditsRepository,
	documents repository.DocumentsRepository,
	logger *zap.Logger,
) *ComplianceHandler {
	return &ComplianceHandler{
		records:        records,
		certifications: certifications,
		audits:         audits,
		documents:      documents,
		logger:         logger,
	}
}

func (h *ComplianceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/compliance-records" && r.Method == http.MethodGet:
		h.ListComplianceRecords(w, r)
	case r.URL.Path == "/api/compliance-records" && r.Method == http.MethodPost:
		h.CreateComplianceRecord(w, r)
	case hasIDPath(r.URL.Path, "/api/compliance-records/") && r.Method == http.MethodGet:
		h.GetComplianceRecord(w, r)
	case hasIDPath(r.URL.Path, "/api/compliance-records/") && r.Method == http.MethodPut:
		h.UpdateComplianceRecord(w, r)
	case hasIDPath(r.URL.Path, "/api/compliance-records/") && r.Method == http.MethodDelete:
		h.DeleteComplianceRecord(w, r)

	case r.URL.Path == "/api/certifications" && r.Method == http.MethodGet:
		h.ListCertifications(w, r)
	case r.URL.Path == "/api/certifications" && r.Method == http.MethodPost:
		h.CreateCertification(w, r)
	case r.URL.Path == "/api/certifications/stats" && r.Method == http.MethodGet:
		h.CertificationStats(w, r)
	case strings.HasPrefix(r.URL.Path, "/api/certifications/expiring/") && r.Method == http.MethodGet:
		h.ExpiringCertifications(w, r)
	case hasIDPath(r.URL.Path, "/api/certifications/") && r.Method == http.MethodGet:
		h.GetCertification(w, r)
	case hasIDPath(r.URL.Path, "/api/certifications/") && r.Method == http.MethodPut:
		h.UpdateCertification(w, r)
	case hasIDPath(r.URL.Path, "/api/certifications/") && r.Method == http.MethodDelete:
		h.DeleteCertification(w, r)

	case r.URL.Path == "/api/audits" && r.Method == http.MethodGet:
		h.ListAudits(w, r)
	case r.URL.Path == "/api/audits" && r.Method == http.MethodPost:
		h.CreateAudit(w, r)
	case hasIDPath(r.URL.Path, "/api/audits/") && r.Method == http.MethodGet:
		h.GetAudit(w, r)
	case hasIDPath(r.URL.Path, "/api/audits/") && r.Method == http.MethodPut:
		h.UpdateAudit(w, r)
	case hasIDPath(r.URL.Path, "/api/audits/") && r.Method == http.MethodDelete:
		h.DeleteAudit(w, r)

	case r.URL.Path == "/api/documents" && r.Method == http.MethodGet:
		h.ListDocuments(w, r)
	case r.URL.Path == "/api/documents" && r.Method == http.MethodPost:
		h.CreateDocument(w, r)
	case hasIDPath(r.URL.Path, "/api/documents/") && r.Method == http.MethodGet:
		h.GetDocument(w, r)
	case hasIDPath(r.URL.Path, "/api/documents/") && r.Method == http.MethodPut:
		h.UpdateDocument(w, r)
	case hasIDPath(r.URL.Path, "/api/documents/") && r.Method == http.MethodDelete:
		h.DeleteDocument(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ============================================
// Compliance records
// ============================================

func (h *ComplianceHandler) ListComplianceRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.ListComplianceRecords(r.Context())
	if err != nil {
		h.logger.Error("ListComplianceRecords failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(records))
	for _, rec := range records {
		out = append(out, complianceRecordToJSON(rec))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *ComplianceHandler) GetComplianceRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/compliance-records/")
	if !ok {
		return
	}

	rec, err := h.records.GetComplianceRecord(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(complianceRecordToJSON(rec)))
}

func (h *ComplianceHandler) CreateComplianceRecord(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.ComplianceRecords.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	rec := complianceRecordFromPayload(0, payload)
	if err := h.records.CreateComplianceRecord(r.Context(), rec); err != nil {
		h.logger.Error("CreateComplianceRecord failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(complianceRecordToJSON(rec), "compliance record created"))
}

func (h *ComplianceHandler) UpdateComplianceRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/compliance-records/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.ComplianceRecords.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	rec := complianceRecordFromPayload(id, payload)
	if err := h.records.UpdateComplianceRecord(r.Context(), rec); err != nil {
		h.logger.Error("UpdateComplianceRecord failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(complianceRecordToJSON(rec), "compliance record updated"))
}

func (h *ComplianceHandler) DeleteComplianceRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/compliance-records/")
	if !ok {
		return
	}

	if err := h.records.DeleteComplianceRecord(r.Context(), id); err != nil {
		h.logger.Error("DeleteComplianceRecord failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "compliance record deleted"})
}

func complianceRecordToJSON(rec *domain.ComplianceRecord) map[string]any {
	return map[string]any{
		"id":          rec.ID,
		"title":       rec.Title,
		"category":    rec.Category,
		"authority":   rec.Authority,
		"record_date": fmtDate(rec.RecordDate),
		"status":      rec.Status,
		"notes":       nullStr(rec.Notes),
	}
}

func complianceRecordFromPayload(id int64, p map[string]any) *domain.ComplianceRecord {
	return &domain.ComplianceRecord{
		ID:         id,
		Title:      strField(p, "title"),
		Category:   strField(p, "category"),
		Authority:  strField(p, "authority"),
		RecordDate: dateField(p, "record_date"),
		Status:     strFieldDefault(p, "status", "Pending"),
		Notes:      nullStrField(p, "notes"),
	}
}

// ============================================
// Certifications
// ============================================

func (h *ComplianceHandler) ListCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certifications.ListCertifications(r.Context())
	if err != nil {
		h.logger.Error("ListCertifications failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(certs))
	for _, c := range certs {
		out = append(out, certificationToJSON(c))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

// ExpiringCertifications lists certifications whose expiry falls within the
// next N days, N taken from the path.
func (h *ComplianceHandler) ExpiringCertifications(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/api/certifications/expiring/")
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 {
		writeJSON(w, http.StatusBadRequest, Fail("invalid days"))
		return
	}

	certs, err := h.certifications.ListExpiringCertifications(r.Context(), days)
	if err != nil {
		h.logger.Error("ListExpiringCertifications failed", zap.Error(err), zap.Int("days", days))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(certs))
	for _, c := range certs {
		out = append(out, certificationToJSON(c))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *ComplianceHandler) CertificationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.certifications.CertificationStats(r.Context())
	if err != nil {
		h.logger.Error("CertificationStats failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(stats))
}

func (h *ComplianceHandler) GetCertification(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/certifications/", "")

	c, err := h.certifications.GetCertification(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(certificationToJSON(c)))
}

func (h *ComplianceHandler) CreateCertification(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Certifications.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	c := certificationFromPayload(strField(payload, "id"), payload)
	if err := h.certifications.CreateCertification(r.Context(), c); err != nil {
		h.logger.Error("CreateCertification failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(certificationToJSON(c), "certification created"))
}

func (h *ComplianceHandler) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/certifications/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.Certifications.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	c := certificationFromPayload(id, payload)
	if err := h.certifications.UpdateCertification(r.Context(), c); err != nil {
		h.logger.Error("UpdateCertification failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(certificationToJSON(c), "certification updated"))
}

func (h *ComplianceHandler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/certifications/", "")

	if err := h.certifications.DeleteCertification(r.Context(), id); err != nil {
		h.logger.Error("DeleteCertification failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "certification deleted"})
}

func certificationToJSON(c *domain.Certification) map[string]any {
	return map[string]any{
		"id":           c.ID,
		"name":         c.Name,
		"issuing_body": c.IssuingBody,
		"issue_date":   fmtDate(c.IssueDate),
		"expiry_date":  fmtDate(c.ExpiryDate),
		"status":       c.Status,
	}
}

func certificationFromPayload(id string, p map[string]any) *domain.Certification {
	return &domain.Certification{
		ID:          id,
		Name:        strField(p, "name"),
		IssuingBody: strField(p, "issuing_body"),
		IssueDate:   dateField(p, "issue_date"),
		ExpiryDate:  dateField(p, "expiry_date"),
		Status:      strFieldDefault(p, "status", "Valid"),
	}
}

// ============================================
// Audits
// ============================================

func (h *ComplianceHandler) ListAudits(w http.ResponseWriter, r *http.Request) {
	audits, err := h.audits.ListAudits(r.Context())
	if err != nil {
		h.logger.Error("ListAudits failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(audits))
	for _, a := range audits {
		out = append(out, auditToJSON(a))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *ComplianceHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/audits/")
	if !ok {
		return
	}

	a, err := h.audits.GetAudit(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(auditToJSON(a)))
}

func (h *ComplianceHandler) CreateAudit(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Audits.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	a := auditFromPayload(0, payload)
	if err := h.audits.CreateAudit(r.Context(), a); err != nil {
		h.logger.Error("CreateAudit failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(auditToJSON(a), "audit created"))
}

func (h *ComplianceHandler) UpdateAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/audits/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Audits.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	a := auditFromPayload(id, payload)
	if err := h.audits.UpdateAudit(r.Context(), a); err != nil {
		h.logger.Error("UpdateAudit failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(auditToJSON(a), "audit updated"))
}

func (h *ComplianceHandler) DeleteAudit(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/audits/")
	if !ok {
		return
	}

	if err := h.audits.DeleteAudit(r.Context(), id); err != nil {
		h.logger.Error("DeleteAudit failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "audit deleted"})
}

func auditToJSON(a *domain.Audit) map[string]any {
	return map[string]any{
		"id":         a.ID,
		"audit_date": fmtDate(a.AuditDate),
		"auditor":    a.Auditor,
		"scope":      a.Scope,
		"findings":   nullStr(a.Findings),
		"rating":     nullStr(a.Rating),
		"status":     a.Status,
	}
}

func auditFromPayload(id int64, p map[string]any) *domain.Audit {
	return &domain.Audit{
		ID:        id,
		AuditDate: dateField(p, "audit_date"),
		Auditor:   strField(p, "auditor"),
		Scope:     strField(p, "scope"),
		Findings:  nullStrField(p, "findings"),
		Rating:    nullStrField(p, "rating"),
		Status:    strFieldDefault(p, "status", "Planned"),
	}
}

// ============================================
// Documents
// ============================================

func (h *ComplianceHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documents.ListDocuments(r.Context())
	if err != nil {
		h.logger.Error("ListDocuments failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentToJSON(d))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *ComplianceHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/documents/", "")

	d, err := h.documents.GetDocument(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(documentToJSON(d)))
}

// CreateDocument assigns the id server-side; any id in the body is ignored.
func (h *ComplianceHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Documents.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	d := documentFromPayload("", payload)
	if err := h.documents.CreateDocument(r.Context(), d); err != nil {
		h.logger.Error("CreateDocument failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(documentToJSON(d), "document created"))
}

func (h *ComplianceHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/documents/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Documents.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	d := documentFromPayload(id, payload)
	if err := h.documents.UpdateDocument(r.Context(), d); err != nil {
		h.logger.Error("UpdateDocument failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(documentToJSON(d), "document updated"))
}

func (h *ComplianceHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/documents/", "")

	if err := h.documents.DeleteDocument(r.Context(), id); err != nil {
		h.logger.Error("DeleteDocument failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "document deleted"})
}

func documentToJSON(d *domain.Document) map[string]any {
	return map[string]any{
		"id":             d.ID,
		"title":          d.Title,
		"category":       d.Category,
		"file_name":      d.FileName,
		"related_entity": nullStr(d.RelatedEntity),
		"uploaded_at":    fmtDateTime(d.UploadedAt),
	}
}

func documentFromPayload(id string, p map[string]any) *domain.Document {
	return &domain.Document{
		ID:            id,
		Title:         strField(p, "title"),
		Category:      strField(p, "category"),
		FileName:      strField(p, "file_name"),
		RelatedEntity: nullStrField(p, "related_entity"),
	}
}
