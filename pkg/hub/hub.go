// Package hub is the per-resource in-memory store consumed by UI code. The
// server remains the source of truth; the hub holds a disposable cache
// rebuilt by Load and kept in step after mutations by each resource's
// reconciliation policy.
package hub

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"dairycoop-data/internal/validation"
	"dairycoop-data/pkg/client"
)

// Policy is the reconciliation strategy applied after a successful mutation.
type Policy int

const (
	// PolicyReload refetches the full collection after every mutation.
	PolicyReload Policy = iota
	// PolicyOptimistic applies the mutation locally first and rolls it back
	// if the server rejects it.
	PolicyOptimistic
)

// Status is the lifecycle of one resource's collection.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

// Spec fixes one resource's behavior: its path segment, its reconciliation
// policy and its field-mapping table.
type Spec struct {
	Resource string
	Policy   Policy
	Fields   []FieldMap
}

// ValidationError reports client-side rule failures before any request is
// sent. It mirrors the server's 400 envelope.
type ValidationError struct {
	Resource string
	Fields   []validation.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %v", e.Resource, e.Fields)
}

type resourceState struct {
	records []client.Record // UI-shaped
	status  Status
	err     error
}

// Store holds one state slice per resource. Mutations address records by
// stable id only, never by position.
type Store struct {
	api    *client.Client
	specs  map[string]Spec
	logger *zap.Logger

	mu    sync.RWMutex
	state map[string]*resourceState
}

func NewStore(api *client.Client, specs []Spec, logger *zap.Logger) *Store {
	s := &Store{
		api:    api,
		specs:  make(map[string]Spec, len(specs)),
		logger: logger,
		state:  make(map[string]*resourceState, len(specs)),
	}
	for _, spec := range specs {
		s.specs[spec.Resource] = spec
		s.state[spec.Resource] = &resourceState{status: StatusIdle}
	}
	return s
}

func (s *Store) spec(resource string) (Spec, error) {
	spec, ok := s.specs[resource]
	if !ok {
		return Spec{}, fmt.Errorf("unknown resource %q", resource)
	}
	return spec, nil
}

// Snapshot returns a copy of the current collection plus its status. A
// failed Load leaves the previous records in place, so callers can keep
// rendering stale data alongside the error.
func (s *Store) Snapshot(resource string) ([]client.Record, Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.state[resource]
	if !ok {
		return nil, StatusIdle, fmt.Errorf("unknown resource %q", resource)
	}
	records := make([]client.Record, len(st.records))
	copy(records, st.records)
	return records, st.status, st.err
}

// Load replaces the collection with the server's. On failure the last
// snapshot is kept and the error recorded.
func (s *Store) Load(ctx context.Context, resource string) error {
	spec, err := s.spec(resource)
	if err != nil {
		return err
	}

	s.setStatus(resource, StatusLoading)

	wireRecords, err := s.api.List(ctx, resource)
	if err != nil {
		s.logger.Warn("load failed, keeping last snapshot",
			zap.String("resource", resource), zap.Error(err))
		s.setError(resource, err)
		return err
	}

	records := make([]client.Record, 0, len(wireRecords))
	for _, rec := range wireRecords {
		records = append(records, toUI(spec.Fields, rec))
	}

	s.mu.Lock()
	st := s.state[resource]
	st.records = records
	st.status = StatusReady
	st.err = nil
	s.mu.Unlock()
	return nil
}

// Add creates a record. The input is UI-shaped; it is validated with the
// same rules the server enforces before any request goes out.
func (s *Store) Add(ctx context.Context, resource string, uiRecord client.Record) (client.Record, error) {
	spec, err := s.spec(resource)
	if err != nil {
		return nil, err
	}

	payload := toAPI(spec.Fields, uiRecord)
	if err := s.validate(resource, payload); err != nil {
		return nil, err
	}

	if spec.Policy == PolicyOptimistic {
		return s.addOptimistic(ctx, spec, payload)
	}

	created, err := s.api.Create(ctx, resource, payload)
	if err != nil {
		return nil, err
	}
	if err := s.Load(ctx, resource); err != nil {
		return nil, err
	}
	return toUI(spec.Fields, created), nil
}

// addOptimistic prepends locally, then confirms with the server. On
// rejection the prepended record is removed; on success it is replaced by
// the server echo so server-assigned ids land in the cache.
func (s *Store) addOptimistic(ctx context.Context, spec Spec, payload client.Record) (client.Record, error) {
	provisional := toUI(spec.Fields, payload)

	s.mu.Lock()
	st := s.state[spec.Resource]
	st.records = append([]client.Record{provisional}, st.records...)
	s.mu.Unlock()

	created, err := s.api.Create(ctx, spec.Resource, payload)
	if err != nil {
		s.mu.Lock()
		st := s.state[spec.Resource]
		for i := range st.records {
			if sameRecord(st.records[i], provisional) {
				st.records = append(st.records[:i], st.records[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		return nil, err
	}

	confirmed := toUI(spec.Fields, created)
	s.mu.Lock()
	st = s.state[spec.Resource]
	for i := range st.records {
		if sameRecord(st.records[i], provisional) {
			st.records[i] = confirmed
			break
		}
	}
	s.mu.Unlock()
	return confirmed, nil
}

// Update rewrites a record by id.
func (s *Store) Update(ctx context.Context, resource, id string, uiRecord client.Record) (client.Record, error) {
	spec, err := s.spec(resource)
	if err != nil {
		return nil, err
	}

	payload := toAPI(spec.Fields, uiRecord)
	payload["id"] = id
	if err := s.validate(resource, payload); err != nil {
		return nil, err
	}

	updated, err := s.api.Update(ctx, resource, id, payload)
	if err != nil {
		return nil, err
	}

	confirmed := toUI(spec.Fields, updated)
	if spec.Policy == PolicyOptimistic {
		s.mu.Lock()
		st := s.state[resource]
		for i, rec := range st.records {
			if idString(rec["id"]) == id {
				st.records[i] = confirmed
				break
			}
		}
		s.mu.Unlock()
		return confirmed, nil
	}

	if err := s.Load(ctx, resource); err != nil {
		return nil, err
	}
	return confirmed, nil
}

// Delete removes a record by id. The local mutation is applied only after
// the server confirms; a failed call leaves the collection untouched.
func (s *Store) Delete(ctx context.Context, resource, id string) error {
	spec, err := s.spec(resource)
	if err != nil {
		return err
	}

	if err := s.api.Delete(ctx, resource, id); err != nil {
		return err
	}

	if spec.Policy == PolicyOptimistic {
		s.mu.Lock()
		st := s.state[resource]
		for i, rec := range st.records {
			if idString(rec["id"]) == id {
				st.records = append(st.records[:i], st.records[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
		return nil
	}
	return s.Load(ctx, resource)
}

func (s *Store) validate(resource string, payload client.Record) error {
	rules, ok := validation.ByResource[resource]
	if !ok {
		return nil
	}
	if errs := rules.Validate(payload, false); len(errs) > 0 {
		return &ValidationError{Resource: resource, Fields: errs}
	}
	return nil
}

func (s *Store) setStatus(resource string, status Status) {
	s.mu.Lock()
	s.state[resource].status = status
	s.mu.Unlock()
}

func (s *Store) setError(resource string, err error) {
	s.mu.Lock()
	st := s.state[resource]
	st.status = StatusError
	st.err = err
	s.mu.Unlock()
}

// idString normalizes record ids for comparison: string ids come through
// as-is, numeric ids arrive as float64 from JSON decoding.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return fmt.Sprintf("%.0f", id)
	case int64:
		return fmt.Sprintf("%d", id)
	case int:
		return fmt.Sprintf("%d", id)
	default:
		return ""
	}
}

// sameRecord compares by id when both sides carry one, otherwise by subject
// equality of the shared keys. Used only to find the provisional record
// during optimistic reconciliation.
func sameRecord(a, b client.Record) bool {
	aID, bID := idString(a["id"]), idString(b["id"])
	if aID != "" && bID != "" {
		return aID == bID
	}
	for k, v := range b {
		if av, ok := a[k]; ok && fmt.Sprint(av) != fmt.Sprint(v) {
			return false
		}
	}
	return true
}
