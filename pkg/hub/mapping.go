package hub

import "dairycoop-data/pkg/client"

// FieldMap pairs one wire field with its UI name. One declarative table per
// resource replaces the hand-written per-entity reshaping that used to drift.
type FieldMap struct {
	API string // snake_case, as served
	UI  string // camelCase, as rendered
}

// toUI reshapes a wire record into UI form. Fields without a mapping pass
// through unchanged.
func toUI(fields []FieldMap, rec client.Record) client.Record {
	byAPI := make(map[string]string, len(fields))
	for _, f := range fields {
		byAPI[f.API] = f.UI
	}

	out := make(client.Record, len(rec))
	for k, v := range rec {
		if ui, ok := byAPI[k]; ok {
			out[ui] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// toAPI is the inverse of toUI.
func toAPI(fields []FieldMap, rec client.Record) client.Record {
	byUI := make(map[string]string, len(fields))
	for _, f := range fields {
		byUI[f.UI] = f.API
	}

	out := make(client.Record, len(rec))
	for k, v := range rec {
		if api, ok := byUI[k]; ok {
			out[api] = v
		} else {
			out[k] = v
		}
	}
	return out
}
