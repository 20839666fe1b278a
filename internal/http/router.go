package httpapi

import (
	"net/http"

	"go.uber.org/zap"
)

// Router uses the standard library http.ServeMux. Every resource handler is
// registered under both /api/<resource> and /api/<resource>/ so id paths
// route to the same handler.
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) RegisterDirectoryRoutes(h *DirectoryHandler) {
	r.Handle("/api/farmers", h)
	r.Handle("/api/farmers/", h)
	r.Handle("/api/suppliers", h)
	r.Handle("/api/suppliers/", h)
}

func (r *Router) RegisterCollectionRoutes(h *CollectionHandler) {
	r.Handle("/api/milk-entries", h)
	r.Handle("/api/milk-entries/", h)
	r.Handle("/api/quality-tests", h)
	r.Handle("/api/quality-tests/", h)
}

func (r *Router) RegisterLogisticsRoutes(h *LogisticsHandler) {
	r.Handle("/api/deliveries", h)
	r.Handle("/api/deliveries/", h)
}

func (r *Router) RegisterFinanceRoutes(h *FinanceHandler) {
	r.Handle("/api/payments", h)
	r.Handle("/api/payments/", h)
	r.Handle("/api/bills", h)
	r.Handle("/api/bills/", h)
}

func (r *Router) RegisterComplianceRoutes(h *ComplianceHandler) {
	r.Handle("/api/compliance-records", h)
	r.Handle("/api/compliance-records/", h)
	r.Handle("/api/certifications", h)
	r.Handle("/api/certifications/", h)
	r.Handle("/api/audits", h)
	r.Handle("/api/audits/", h)
	r.Handle("/api/documents", h)
	r.Handle("/api/documents/", h)
}

func (r *Router) RegisterCommsRoutes(h *CommsHandler) {
	r.Handle("/api/messages", h)
	r.Handle("/api/messages/", h)
	r.Handle("/api/group-messages", h)
	r.Handle("/api/group-messages/", h)
	r.Handle("/api/announcements", h)
	r.Handle("/api/announcements/", h)
}

func (r *Router) RegisterReportRoutes(h *ReportHandler) {
	r.Handle("/api/reports/", h)
}

// Handler wraps the mux with the shared middleware chain.
func (r *Router) Handler(corsOrigins []string) http.Handler {
	return corsMiddleware(corsOrigins, loggingMiddleware(r.logger, r.mux))
}
