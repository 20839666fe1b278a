package httpapi

import (
	"net/http"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// FinanceHandler serves farmer payouts and supplier bills.
type FinanceHandler struct {
	payments repository.PaymentsRepository
	bills    repository.BillsRepository
	logger   *zap.Logger
}

func NewFinanceHandler(payments repository.PaymentsRepository, bills repository.BillsRepository, logger *zap.Logger) *FinanceHandler {
	return &FinanceHandler{payments: payments, bills: bills, logger: logger}
}

func (h *FinanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/payments" && r.Method == http.MethodGet:
		h.ListPayments(w, r)
	case r.URL.Path == "/api/payments" && r.Method == http.MethodPost:
		h.CreatePayment(w, r)
	case r.URL.Path == "/api/payments/stats" && r.Method == http.MethodGet:
		h.PaymentStats(w, r)
	case hasIDPath(r.URL.Path, "/api/payments/") && r.Method == http.MethodGet:
		h.GetPayment(w, r)
	case hasIDPath(r.URL.Path, "/api/payments/") && r.Method == http.MethodPut:
		h.UpdatePayment(w, r)
	case hasIDPath(r.URL.Path, "/api/payments/") && r.Method == http.MethodDelete:
		h.DeletePayment(w, r)

	case r.URL.Path == "/api/bills" && r.Method == http.MethodGet:
		h.ListBills(w, r)
	case r.URL.Path == "/api/bills" && r.Method == http.MethodPost:
		h.CreateBill(w, r)
	case hasIDPath(r.URL.Path, "/api/bills/") && r.Method == http.MethodGet:
		h.GetBill(w, r)
	case hasIDPath(r.URL.Path, "/api/bills/") && r.Method == http.MethodPut:
		h.UpdateBill(w, r)
	case hasIDPath(r.URL.Path, "/api/bills/") && r.Method == http.MethodDelete:
		h.DeleteBill(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ============================================
// Payments
// ============================================

func (h *FinanceHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPayments(r.Context())
	if err != nil {
		h.logger.Error("ListPayments failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(payments))
	for _, p := range payments {
		out = append(out, paymentToJSON(p))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *FinanceHandler) PaymentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.payments.PaymentStats(r.Context())
	if err != nil {
		h.logger.Error("PaymentStats failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(stats))
}

func (h *FinanceHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/payments/")
	if !ok {
		return
	}

	p, err := h.payments.GetPayment(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(paymentToJSON(p)))
}

func (h *FinanceHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Payments.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	p := paymentFromPayload(0, payload)
	if err := h.payments.CreatePayment(r.Context(), p); err != nil {
		h.logger.Error("CreatePayment failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(paymentToJSON(p), "payment created"))
}

func (h *FinanceHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/payments/")
	if !ok {
		return
	}

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Payments.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	p := paymentFromPayload(id, payload)
	if err := h.payments.UpdatePayment(r.Context(), p); err != nil {
		h.logger.Error("UpdatePayment failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(paymentToJSON(p), "payment updated"))
}

func (h *FinanceHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := numericID(w, r.URL.Path, "/api/payments/")
	if !ok {
		return
	}

	if err := h.payments.DeletePayment(r.Context(), id); err != nil {
		h.logger.Error("DeletePayment failed", zap.Error(err), zap.Int64("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "payment deleted"})
}

func paymentToJSON(p *domain.Payment) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"farmer_id":    p.FarmerID,
		"period_start": fmtDate(p.PeriodStart),
		"period_end":   fmtDate(p.PeriodEnd),
		"amount":       p.Amount,
		"payment_date": nullDate(p.PaymentDate, validation.DateOnly),
		"method":       p.Method,
		"status":       p.Status,
	}
}

func paymentFromPayload(id int64, p map[string]any) *domain.Payment {
	return &domain.Payment{
		ID:          id,
		FarmerID:    strField(p, "farmer_id"),
		PeriodStart: dateField(p, "period_start"),
		PeriodEnd:   dateField(p, "period_end"),
		Amount:      numField(p, "amount"),
		PaymentDate: nullDateField(p, "payment_date", validation.DateOnly),
		Method:      strField(p, "method"),
		Status:      strFieldDefault(p, "status", "Pending"),
	}
}

// ============================================
// Bills
// ============================================

func (h *FinanceHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	bills, err := h.bills.ListBills(r.Context())
	if err != nil {
		h.logger.Error("ListBills failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(bills))
	for _, b := range bills {
		out = append(out, billToJSON(b))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *FinanceHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/bills/", "")

	b, err := h.bills.GetBill(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(billToJSON(b)))
}

func (h *FinanceHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Bills.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	b := billFromPayload(strField(payload, "id"), payload)
	if err := h.bills.CreateBill(r.Context(), b); err != nil {
		h.logger.Error("CreateBill failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(billToJSON(b), "bill created"))
}

func (h *FinanceHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/bills/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.Bills.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	b := billFromPayload(id, payload)
	if err := h.bills.UpdateBill(r.Context(), b); err != nil {
		h.logger.Error("UpdateBill failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(billToJSON(b), "bill updated"))
}

func (h *FinanceHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/bills/", "")

	if err := h.bills.DeleteBill(r.Context(), id); err != nil {
		h.logger.Error("DeleteBill failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "bill deleted"})
}

func billToJSON(b *domain.Bill) map[string]any {
	return map[string]any{
		"id":          b.ID,
		"supplier_id": b.SupplierID,
		"bill_date":   fmtDate(b.BillDate),
		"due_date":    fmtDate(b.DueDate),
		"amount":      b.Amount,
		"category":    b.Category,
		"status":      b.Status,
	}
}

func billFromPayload(id string, p map[string]any) *domain.Bill {
	return &domain.Bill{
		ID:         id,
		SupplierID: strField(p, "supplier_id"),
		BillDate:   dateField(p, "bill_date"),
		DueDate:    dateField(p, "due_date"),
		Amount:     numField(p, "amount"),
		Category:   strField(p, "category"),
		Status:     strFieldDefault(p, "status", "Unpaid"),
	}
}
