package httpapi

import (
	"net/http"
	"time"

	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves downloadable xlsx registers built from the live
// tables.
type ReportHandler struct {
	entries  repository.MilkEntriesRepository
	payments repository.PaymentsRepository
	logger   *zap.Logger
}

func NewReportHandler(entries repository.MilkEntriesRepository, payments repository.PaymentsRepository, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{entries: entries, payments: payments, logger: logger}
}

func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/reports/milk-collection.xlsx" && r.Method == http.MethodGet:
		h.MilkCollectionReport(w, r)
	case r.URL.Path == "/api/reports/payments.xlsx" && r.Method == http.MethodGet:
		h.PaymentsReport(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// MilkCollectionReport exports the collection register between ?from= and
// ?to= (inclusive, YYYY-MM-DD). Defaults to the last 30 days.
func (h *ReportHandler) MilkCollectionReport(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format(validation.DateOnly)
	}
	if to == "" {
		to = time.Now().Format(validation.DateOnly)
	}
	if _, err := time.Parse(validation.DateOnly, from); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid from date"))
		return
	}
	if _, err := time.Parse(validation.DateOnly, to); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid to date"))
		return
	}

	entries, err := h.entries.ListMilkEntriesBetween(r.Context(), from, to)
	if err != nil {
		h.logger.Error("ListMilkEntriesBetween failed", zap.Error(err),
			zap.String("from", from), zap.String("to", to))
		writeRepoError(w, err)
		return
	}

	data, err := GenerateMilkCollectionExport(entries)
	if err != nil {
		h.logger.Error("GenerateMilkCollectionExport failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate report"))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="milk-collection.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *ReportHandler) PaymentsReport(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("ListPayments failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	data, err := GeneratePaymentsExport(payments)
	if err != nil {
		h.logger.Error("GeneratePaymentsExport failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail("failed to generate report"))
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="payments.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
