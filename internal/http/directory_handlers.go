package httpapi

import (
	"net/http"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// DirectoryHandler serves the member directory: farmers and suppliers.
type DirectoryHandler struct {
	farmers   repository.FarmersRepository
	suppliers repository.SuppliersRepository
	logger    *zap.Logger
}

func NewDirectoryHandler(farmers repository.FarmersRepository, suppliers repository.SuppliersRepository, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{farmers: farmers, suppliers: suppliers, logger: logger}
}

func (h *DirectoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/farmers" && r.Method == http.MethodGet:
		h.ListFarmers(w, r)
	case r.URL.Path == "/api/farmers" && r.Method == http.MethodPost:
		h.CreateFarmer(w, r)
	case hasIDPath(r.URL.Path, "/api/farmers/") && r.Method == http.MethodGet:
		h.GetFarmer(w, r)
	case hasIDPath(r.URL.Path, "/api/farmers/") && r.Method == http.MethodPut:
		h.UpdateFarmer(w, r)
	case hasIDPath(r.URL.Path, "/api/farmers/") && r.Method == http.MethodDelete:
		h.DeleteFarmer(w, r)

	case r.URL.Path == "/api/suppliers" && r.Method == http.MethodGet:
		h.ListSuppliers(w, r)
	case r.URL.Path == "/api/suppliers" && r.Method == http.MethodPost:
		h.CreateSupplier(w, r)
	case hasIDPath(r.URL.Path, "/api/suppliers/") && r.Method == http.MethodGet:
		h.GetSupplier(w, r)
	case hasIDPath(r.URL.Path, "/api/suppliers/") && r.Method == http.MethodPut:
		h.UpdateSupplier(w, r)
	case hasIDPath(r.URL.Path, "/api/suppliers/") && r.Method == http.MethodDelete:
		h.DeleteSupplier(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// ============================================
// Farmers
// ============================================

func (h *DirectoryHandler) ListFarmers(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.farmers.ListFarmers(r.Context())
	if err != nil {
		h.logger.Error("ListFarmers failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(farmers))
	for _, f := range farmers {
		out = append(out, farmerToJSON(f))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *DirectoryHandler) GetFarmer(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/farmers/", "")

	f, err := h.farmers.GetFarmer(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(farmerToJSON(f)))
}

func (h *DirectoryHandler) CreateFarmer(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Farmers.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	f := farmerFromPayload(strField(payload, "id"), payload)
	if err := h.farmers.CreateFarmer(r.Context(), f); err != nil {
		h.logger.Error("CreateFarmer failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(farmerToJSON(f), "farmer created"))
}

func (h *DirectoryHandler) UpdateFarmer(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/farmers/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	// The path id wins over anything in the body; records are addressed by
	// stable id only.
	payload["id"] = id
	if errs := validation.Farmers.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	f := farmerFromPayload(id, payload)
	if err := h.farmers.UpdateFarmer(r.Context(), f); err != nil {
		h.logger.Error("UpdateFarmer failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(farmerToJSON(f), "farmer updated"))
}

func (h *DirectoryHandler) DeleteFarmer(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/farmers/", "")

	if err := h.farmers.DeleteFarmer(r.Context(), id); err != nil {
		h.logger.Error("DeleteFarmer failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "farmer deleted"})
}

func farmerToJSON(f *domain.Farmer) map[string]any {
	return map[string]any{
		"id":             f.ID,
		"name":           f.Name,
		"phone":          f.Phone,
		"email":          nullStr(f.Email),
		"village":        f.Village,
		"cattle_count":   f.CattleCount,
		"daily_capacity": f.DailyCapacity,
		"join_date":      fmtDate(f.JoinDate),
		"bank_account":   nullStr(f.BankAccount),
		"status":         f.Status,
	}
}

func farmerFromPayload(id string, p map[string]any) *domain.Farmer {
	return &domain.Farmer{
		ID:            id,
		Name:          strField(p, "name"),
		Phone:         strField(p, "phone"),
		Email:         nullStrField(p, "email"),
		Village:       strField(p, "village"),
		CattleCount:   intField(p, "cattle_count"),
		DailyCapacity: numField(p, "daily_capacity"),
		JoinDate:      dateField(p, "join_date"),
		BankAccount:   nullStrField(p, "bank_account"),
		Status:        strFieldDefault(p, "status", domain.FarmerStatusActive),
	}
}

// ============================================
// Suppliers
// ============================================

func (h *DirectoryHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.suppliers.ListSuppliers(r.Context())
	if err != nil {
		h.logger.Error("ListSuppliers failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, supplierToJSON(s))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *DirectoryHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/suppliers/", "")

	s, err := h.suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(supplierToJSON(s)))
}

func (h *DirectoryHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Suppliers.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	s := supplierFromPayload(strField(payload, "id"), payload)
	if err := h.suppliers.CreateSupplier(r.Context(), s); err != nil {
		h.logger.Error("CreateSupplier failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(supplierToJSON(s), "supplier created"))
}

func (h *DirectoryHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/suppliers/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.Suppliers.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	s := supplierFromPayload(id, payload)
	if err := h.suppliers.UpdateSupplier(r.Context(), s); err != nil {
		h.logger.Error("UpdateSupplier failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(supplierToJSON(s), "supplier updated"))
}

func (h *DirectoryHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/suppliers/", "")

	if err := h.suppliers.DeleteSupplier(r.Context(), id); err != nil {
		h.logger.Error("DeleteSupplier failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "supplier deleted"})
}

func supplierToJSON(s *domain.Supplier) map[string]any {
	return map[string]any{
		"id":             s.ID,
		"name":           s.Name,
		"contact_person": s.ContactPerson,
		"phone":          s.Phone,
		"email":          nullStr(s.Email),
		"address":        s.Address,
		"supply_type":    s.SupplyType,
		"status":         s.Status,
	}
}

func supplierFromPayload(id string, p map[string]any) *domain.Supplier {
	return &domain.Supplier{
		ID:            id,
		Name:          strField(p, "name"),
		ContactPerson: strField(p, "contact_person"),
		Phone:         strField(p, "phone"),
		Email:         nullStrField(p, "email"),
		Address:       strField(p, "address"),
		SupplyType:    strField(p, "supply_type"),
		Status:        strFieldDefault(p, "status", "Active"),
	}
}
