package httpapi

import (
	"net/http"

	"dairycoop-data/internal/domain"
	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"

	"go.uber.org/zap"
)

// LogisticsHandler serves tanker deliveries, including the dispatch screen's
// PATCH /:id/status shortcut.
type LogisticsHandler struct {
	deliveries repository.DeliveriesRepository
	logger     *zap.Logger
}

func NewLogisticsHandler(deliveries repository.DeliveriesRepository, logger *zap.Logger) *LogisticsHandler {
	return &LogisticsHandler{deliveries: deliveries, logger: logger}
}

func (h *LogisticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.URL.Path == "/api/deliveries" && r.Method == http.MethodGet:
		h.ListDeliveries(w, r)
	case r.URL.Path == "/api/deliveries" && r.Method == http.MethodPost:
		h.CreateDelivery(w, r)
	case hasIDActionPath(r.URL.Path, "/api/deliveries/", "/status") && r.Method == http.MethodPatch:
		h.UpdateDeliveryStatus(w, r)
	case hasIDPath(r.URL.Path, "/api/deliveries/") && r.Method == http.MethodGet:
		h.GetDelivery(w, r)
	case hasIDPath(r.URL.Path, "/api/deliveries/") && r.Method == http.MethodPut:
		h.UpdateDelivery(w, r)
	case hasIDPath(r.URL.Path, "/api/deliveries/") && r.Method == http.MethodDelete:
		h.DeleteDelivery(w, r)

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *LogisticsHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	deliveries, err := h.deliveries.ListDeliveries(r.Context())
	if err != nil {
		h.logger.Error("ListDeliveries failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}

	out := make([]any, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, deliveryToJSON(d))
	}
	writeJSON(w, http.StatusOK, Ok(out))
}

func (h *LogisticsHandler) GetDelivery(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/deliveries/", "")

	d, err := h.deliveries.GetDelivery(r.Context(), id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(deliveryToJSON(d)))
}

func (h *LogisticsHandler) CreateDelivery(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	if errs := validation.Deliveries.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	d := deliveryFromPayload(strField(payload, "id"), payload)
	if err := h.deliveries.CreateDelivery(r.Context(), d); err != nil {
		h.logger.Error("CreateDelivery failed", zap.Error(err))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, OkMessage(deliveryToJSON(d), "delivery created"))
}

func (h *LogisticsHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/deliveries/", "")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	payload["id"] = id
	if errs := validation.Deliveries.Validate(payload, false); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, FailValidation(errs))
		return
	}

	d := deliveryFromPayload(id, payload)
	if err := h.deliveries.UpdateDelivery(r.Context(), d); err != nil {
		h.logger.Error("UpdateDelivery failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, OkMessage(deliveryToJSON(d), "delivery updated"))
}

func (h *LogisticsHandler) UpdateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/deliveries/", "/status")

	var payload map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body"))
		return
	}
	status := strField(payload, "status")
	switch status {
	case domain.DeliveryStatusScheduled, domain.DeliveryStatusInTransit,
		domain.DeliveryStatusDelivered, domain.DeliveryStatusCancelled:
	default:
		writeJSON(w, http.StatusBadRequest, FailValidation([]validation.FieldError{
			{Field: "status", Message: "status must be one of [Scheduled InTransit Delivered Cancelled]"},
		}))
		return
	}

	if err := h.deliveries.UpdateDeliveryStatus(r.Context(), id, status); err != nil {
		h.logger.Error("UpdateDeliveryStatus failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "delivery status updated"})
}

func (h *LogisticsHandler) DeleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, _ := idFromPath(r.URL.Path, "/api/deliveries/", "")

	if err := h.deliveries.DeleteDelivery(r.Context(), id); err != nil {
		h.logger.Error("DeleteDelivery failed", zap.Error(err), zap.String("id", id))
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Success: true, Message: "delivery deleted"})
}

func deliveryToJSON(d *domain.Delivery) map[string]any {
	return map[string]any{
		"id":              d.ID,
		"route":           d.Route,
		"vehicle_number":  d.VehicleNumber,
		"driver_name":     d.DriverName,
		"departure_time":  fmtDateTime(d.DepartureTime),
		"arrival_time":    nullDate(d.ArrivalTime, validation.DateTime),
		"quantity_liters": d.QuantityLiters,
		"destination":     d.Destination,
		"notes":           nullStr(d.Notes),
		"status":          d.Status,
	}
}

func deliveryFromPayload(id string, p map[string]any) *domain.Delivery {
	return &domain.Delivery{
		ID:             id,
		Route:          strField(p, "route"),
		VehicleNumber:  strField(p, "vehicle_number"),
		DriverName:     strField(p, "driver_name"),
		DepartureTime:  dateTimeField(p, "departure_time"),
		ArrivalTime:    nullDateField(p, "arrival_time", validation.DateTime),
		QuantityLiters: numField(p, "quantity_liters"),
		Destination:    strField(p, "destination"),
		Notes:          nullStrField(p, "notes"),
		Status:         strFieldDefault(p, "status", domain.DeliveryStatusScheduled),
	}
}
