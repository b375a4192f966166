package codec

import (
	"fmt"
	"time"

	"github.com/reoring/valueschema/appliers"
)

// TimeRFC3339 converts an RFC3339 string into time.Time.
func TimeRFC3339() appliers.ConvertFunc {
	return func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected RFC3339 string, got %T", v)
		}
		return parseRFC3339(s)
	}
}

// CanonicalRFC3339 rewrites an RFC3339 string in UTC with trailing zeros trimmed. The
// output is again a valid input, so adjusting twice yields the same value.
func CanonicalRFC3339() appliers.ConvertFunc {
	return func(v any) (any, error) {
		switch t := v.(type) {
		case time.Time:
			return formatRFC3339Canonical(t), nil
		case string:
			tm, err := parseRFC3339(t)
			if err != nil {
				return nil, err
			}
			return formatRFC3339Canonical(tm), nil
		default:
			return nil, fmt.Errorf("expected RFC3339 string or time.Time, got %T", v)
		}
	}
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
