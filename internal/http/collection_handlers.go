package httpapi

import (
	"net/http"
	"strconv"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// CollectionHandler serves milk collection: milk entries and lab quality
// tests.
type CollectionHandler struct {
	entries repository.MilkEntriesRepository
	tests   repository.QualityTestsRepository
	logger  *zap.Logger
}

func NewCollectionHandler(entries repository.MilkEntriesRepository, tests repository.QualityTestsRepository, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{entries: entries, tests: tests, logger: logger}
}

func (h *CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/milk-entries" && r.Method == http.MethodGet:
		h.ListMilkEntries(w, r)
	case r.URL.Path == "/api/milk-entries" && r.Method == http.MethodPost:
		h.CreateMilkEntry(w, r)
	case hasIDPath(r.URL.Path, "/api/milk-entries/") && r.Method == http.MethodGet:
		h.GetMilkEntry(w, r)
	case hasIDPath(r.URL.Path, "/api/milk-entries/") && r.Method == http.MethodPut:
		h.UpdateMilkEntry(w, r)
	case hasIDPath(r.URL.Path, "/api/milk-entries/") && r.Method == http.MethodDelete:
		h.DeleteMilkEntry(w, r)

	case r.URL.Path == "/api/quality-tests" && r.Method == http.MethodGet:
		h.ListQualityTests(w, r)
	case r.URL.Path == "/api/quality-tests" && r.Method == http.MethodPost:
		h.CreateQualityTest(w, r)
	case hasIDPath(r.URL.Path, "/api/quality-tests/") && r.Method == http.MethodGet:
		h.GetQualityTest(w, r)
	case hasIDPath(r.URL.Path, "/api/quality-tests/") && r.Method == http.MethodPut:
		h.UpdateQualityTest(w, r)
	case hasIDPath(r.URL.Path, "/api/quality-tests/") && r.Method == http.MethodDelete:
		h.DeleteQualityTest(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func numericID(w http.ResponseWriter, path, prefix string) (int64, bool) {
	raw, _ := idFromPath(path, prefix, "")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid id"))
		return 0, false
	}
	return id, true
}

// ============================================
// Milk entries
// ============================================

func (h *CollectionHandler) ListMilkEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entries.ListMilkEntries(r.Context())
	if err != nil {
		h.logger.Error("ListMilkEntries failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, milkEntryToJSON(e))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *CollectionHandler) GetMilkEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/milk-entries/")
	if !ok {
		return
	}

	e, err := h.entries.GetMilkEntry(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(milkEntryToJSON(e)))
}

func (h *CollectionHandler) CreateMilkEntry(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.MilkEntries.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	e := milkEntryFromPayload(0, payload)
	if err := h.entries.CreateMilkEntry(r.Context(), e); err != nil {
		h.logger.Error("CreateMilkEntry failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(milkEntryToJSON(e), "milk entry created"))
}

func (h *CollectionHandler) UpdateMilkEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/milk-entries/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.MilkEntries.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	e := milkEntryFromPayload(id, payload)
	if err := h.entries.UpdateMilkEntry(r.Context(), e); err != nil {
		h.logger.Error("UpdateMilkEntry failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(milkEntryToJSON(e), "milk entry updated"))
}

func (h *CollectionHandler) DeleteMilkEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/milk-entries/")
	if !ok {
		return
	}

	if err := h.entries.DeleteMilkEntry(r.Context(), id); err != nil {
		h.logger.Error("DeleteMilkEntry failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "milk entry deleted"})
}

func milkEntryToJSON(e *domain.MilkEntry) map[string]any {
	return map[string]any{
		"id":              e.ID,
		"farmer_id":       e.FarmerID,
		"collection_date": fmtDate(e.CollectionDate),
		"shift":           e.Shift,
		"quantity_liters": e.QuantityLiters,
		"fat_percent":     e.FatPercent,
		"snf_percent":     e.SNFPercent,
		"rate_per_liter":  e.RatePerLiter,
		"total_amount":    e.TotalAmount,
		"quality_grade":   e.QualityGrade,
		"status":          e.Status,
	}
}

func milkEntryFromPayload(id int64, p map[string]any) *domain.MilkEntry {
	e := &domain.MilkEntry{
		ID:             id,
		FarmerID:       strField(p, "farmer_id"),
		CollectionDate: dateField(p, "collection_date"),
		Shift:          strField(p, "shift"),
		QuantityLiters: numField(p, "quantity_liters"),
		FatPercent:     numField(p, "fat_percent"),
		SNFPercent:     numField(p, "snf_percent"),
		RatePerLiter:   numField(p, "rate_per_liter"),
		TotalAmount:    numField(p, "total_amount"),
		QualityGrade:   strFieldDefault(p, "quality_grade", "A"),
		Status:         strFieldDefault(p, "status", "Recorded"),
	}
	// The entry form leaves total_amount blank and lets the server derive it.
	if e.TotalAmount == 0 {
		e.TotalAmount = e.QuantityLiters * e.RatePerLiter
	}
	return e
}

// ============================================
// Quality tests
// ============================================

func (h *CollectionHandler) ListQualityTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.tests.ListQualityTests(r.Context())
	if err != nil {
		h.logger.Error("ListQualityTests failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(tests))
	for _, t := range tests {
		out = append(out, qualityTestToJSON(t))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *CollectionHandler) GetQualityTest(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/quality-tests/")
	if !ok {
		return
	}

	t, err := h.tests.GetQualityTest(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(qualityTestToJSON(t)))
}

func (h *CollectionHandler) CreateQualityTest(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.QualityTests.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	t := qualityTestFromPayload(0, payload)
	if err := h.tests.CreateQualityTest(r.Context(), t); err != nil {
		h.logger.Error("CreateQualityTest failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(qualityTestToJSON(t), "quality test created"))
}

func (h *CollectionHandler) UpdateQualityTest(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/quality-tests/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.QualityTests.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	t := qualityTestFromPayload(id, payload)
	if err := h.tests.UpdateQualityTest(r.Context(), t); err != nil {
		h.logger.Error("UpdateQualityTest failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(qualityTestToJSON(t), "quality test updated"))
}

func (h *CollectionHandler) DeleteQualityTest(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/quality-tests/")
	if !ok {
		return
	}

	if err := h.tests.DeleteQualityTest(r.Context(), id); err != nil {
		h.logger.Error("DeleteQualityTest failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "quality test deleted"})
}

func qualityTestToJSON(t *domain.QualityTest) map[string]any {
	return map[string]any{
		"id":              t.ID,
		"farmer_id":       t.FarmerID,
		"test_date":       fmtDate(t.TestDate),
		"test_type":       t.TestType,
		"fat_percent":     t.FatPercent,
		"snf_percent":     t.SNFPercent,
		"bacterial_count": nullInt(t.BacterialCount),
		"result":          t.Result,
		"notes":           nullStr(t.Notes),
	}
}

func qualityTestFromPayload(id int64, p map[string]any) *domain.QualityTest {
	return &domain.QualityTest{
		ID:             id,
		FarmerID:       strField(p, "farmer_id"),
		TestDate:       dateField(p, "test_date"),
		TestType:       strField(p, "test_type"),
		FatPercent:     numField(p, "fat_percent"),
		SNFPercent:     numField(p, "snf_percent"),
		BacterialCount: nullIntField(p, "bacterial_count"),
		Result:         strField(p, "result"),
		Notes:          nullStrField(p, "notes"),
	}
}
