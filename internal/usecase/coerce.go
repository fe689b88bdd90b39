package usecase

import (
	"strconv"
	"strings"
)

// Helpers for the loosely-typed JSON the frontend sends. JSON numbers decode
// into float64, so that is the only "native number" shape seen here.

// toStringList normalizes a scalar-or-array filter value. Returns nil for an
// absent filter, otherwise a non-empty ordered list of strings.
func toStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		if s := scalarString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// toNumber passes native JSON numbers through and silently drops everything
// else. A string like "21" does NOT count as a number here.
func toNumber(v any) *float64 {
	if f, ok := v.(float64); ok {
		return &f
	}
	return nil
}

// toOptionalString keeps strings as-is and treats everything else as null.
func toOptionalString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// toOptionalInt accepts a native number or an integer-parseable string.
// Anything else becomes null rather than an error.
func toOptionalInt(v any) *int {
	switch val := v.(type) {
	case float64:
		n := int(val)
		return &n
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return nil
		}
		if n, err := strconv.Atoi(trimmed); err == nil {
			return &n
		}
		return nil
	default:
		return nil
	}
}

// toLanguages normalizes the languages field to an array, wrapping a lone
// scalar. Absent becomes an empty array, not null.
func toLanguages(v any) []string {
	if list := toStringList(v); list != nil {
		return list
	}
	return []string{}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return ""
	default:
		return ""
	}
}
