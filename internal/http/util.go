package httpapi

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"dairycoop-data/internal/repository"
	"dairycoop-data/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRepoError maps repository failures onto the standardized statuses:
// not-found 404, constraint violation 400, anything else 500.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case repository.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, Fail(err.Error()))
	case repository.IsConstraint(err):
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

// hasIDPath reports whether path is prefix followed by a single id segment.
func hasIDPath(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	id := strings.TrimPrefix(path, prefix)
	return id != "" && !strings.Contains(id, "/")
}

// hasIDActionPath matches prefix + id + suffix, e.g.
// /api/messages/MSG001/status.
func hasIDActionPath(path, prefix, suffix string) bool {
	if !strings.HasPrefix(path, prefix) || !strings.HasSuffix(path, suffix) {
		return false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(path, prefix), suffix)
	return id != "" && !strings.Contains(id, "/")
}

// idFromPath extracts the trailing id from prefix-routed paths. An optional
// suffix (e.g. "/status") is stripped first.
func idFromPath(path, prefix, suffix string) (string, bool) {
	id := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		id = strings.TrimSuffix(id, suffix)
	}
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

// ---- payload field accessors ----
// Payloads are decoded into map[string]any and validated before these run,
// so the accessors only normalize types, they do not re-check.

func strField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func strFieldDefault(m map[string]any, key, def string) string {
	if s := strField(m, key); s != "" {
		return s
	}
	return def
}

func numField(m map[string]any, key string) float64 {
	switch n := m[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func intField(m map[string]any, key string) int {
	return int(numField(m, key))
}

func nullStrField(m map[string]any, key string) sql.NullString {
	if s := strField(m, key); s != "" {
		return sql.NullString{String: s, Valid: true}
	}
	return sql.NullString{}
}

func nullIntField(m map[string]any, key string) sql.NullInt64 {
	if _, ok := m[key]; !ok {
		return sql.NullInt64{}
	}
	if m[key] == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(numField(m, key)), Valid: true}
}

func dateField(m map[string]any, key string) time.Time {
	t, _ := time.Parse(validation.DateOnly, strField(m, key))
	return t
}

func dateTimeField(m map[string]any, key string) time.Time {
	t, _ := time.Parse(validation.DateTime, strField(m, key))
	return t
}

func nullDateField(m map[string]any, key, layout string) sql.NullTime {
	s := strField(m, key)
	if s == "" {
		return sql.NullTime{}
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// ---- wire formatting ----

func fmtDate(t time.Time) string {
	return t.Format(validation.DateOnly)
}

func fmtDateTime(t time.Time) string {
	return t.Format(validation.DateTime)
}

func nullStr(ns sql.NullString) any {
	if ns.Valid {
		return ns.String
	}
	return nil
}

func nullInt(ni sql.NullInt64) any {
	if ni.Valid {
		return ni.Int64
	}
	return nil
}

func nullDate(nt sql.NullTime, layout string) any {
	if nt.Valid {
		return nt.Time.Format(layout)
	}
	return nil
}
