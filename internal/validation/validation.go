package validation

import (
	"fmt"
	"regexp"
	"time"
)

// FieldError is one violation, keyed by the wire (snake_case) field name.
// The same shape is returned in the HTTP envelope's errors array.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Rule is one declarative check on a single field of a JSON payload.
// Zero-valued constraints are skipped, so a Rule lists only what it enforces.
type Rule struct {
	Field      string
	Required   bool
	Pattern    *regexp.Regexp
	PatternMsg string // shown instead of the raw regexp
	Enum       []string
	Min        *float64
	Max        *float64
	MaxLen     int
	DateLayout string // time.Parse layout, e.g. DateOnly or DateTime
}

// RuleSet is the full rule table for one resource. The HTTP handlers run it
// before touching the repository; pkg/hub runs the identical set before
// sending a mutation, so client and server cannot drift apart.
type RuleSet struct {
	Resource string
	Rules    []Rule
}

// Layouts shared by every date/timestamp field.
const (
	DateOnly = "2006-01-02"
	DateTime = "2006-01-02 15:04:05"
)

// Validate checks a decoded JSON object against the rule set. When partial
// is true, Required is skipped for absent fields (update forms send only the
// fields being changed on some screens).
func (rs RuleSet) Validate(payload map[string]any, partial bool) []FieldError {
	var errs []FieldError
	for _, rule := range rs.Rules {
		raw, present := payload[rule.Field]
		str, isStr := raw.(string)
		absent := !present || raw == nil || (isStr && str == "")

		if absent {
			if rule.Required && !partial {
				errs = append(errs, FieldError{rule.Field, rule.Field + " is required"})
			}
			continue
		}

		if rule.Pattern != nil {
			if !isStr || !rule.Pattern.MatchString(str) {
				msg := rule.PatternMsg
				if msg == "" {
					msg = fmt.Sprintf("%s must match %s", rule.Field, rule.Pattern.String())
				}
				errs = append(errs, FieldError{rule.Field, msg})
				continue
			}
		}

		if len(rule.Enum) > 0 {
			if !isStr || !contains(rule.Enum, str) {
				errs = append(errs, FieldError{rule.Field, fmt.Sprintf("%s must be one of %v", rule.Field, rule.Enum)})
				continue
			}
		}

		if rule.DateLayout != "" {
			if !isStr {
				errs = append(errs, FieldError{rule.Field, rule.Field + " must be a string date"})
				continue
			}
			if _, err := time.Parse(rule.DateLayout, str); err != nil {
				errs = append(errs, FieldError{rule.Field, fmt.Sprintf("%s must match format %s", rule.Field, rule.DateLayout)})
				continue
			}
		}

		if rule.MaxLen > 0 && isStr && len(str) > rule.MaxLen {
			errs = append(errs, FieldError{rule.Field, fmt.Sprintf("%s must be at most %d characters", rule.Field, rule.MaxLen)})
			continue
		}

		if rule.Min != nil || rule.Max != nil {
			n, ok := number(raw)
			if !ok {
				errs = append(errs, FieldError{rule.Field, rule.Field + " must be a number"})
				continue
			}
			if rule.Min != nil && n < *rule.Min {
				errs = append(errs, FieldError{rule.Field, fmt.Sprintf("%s must be >= %v", rule.Field, *rule.Min)})
			}
			if rule.Max != nil && n > *rule.Max {
				errs = append(errs, FieldError{rule.Field, fmt.Sprintf("%s must be <= %v", rule.Field, *rule.Max)})
			}
		}
	}
	return errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// number accepts the types encoding/json can produce for a numeric field.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
