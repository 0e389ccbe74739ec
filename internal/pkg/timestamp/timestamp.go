// Package timestamp converts the backend's heterogeneous timestamp
// encodings into time.Time. The backend has been observed to emit proper
// ISO-8601 strings, ISO strings with no timezone marker, MySQL-style
// space-separated datetimes with fractional seconds, and numeric
// component arrays. Everything downstream orders messages by the value
// produced here, so format detection lives in exactly one place.
package timestamp

import (
	"encoding/json"
	"strings"
	"time"
)

const databaseLayout = "2006-01-02 15:04:05"

// Normalize converts a raw timestamp value into a time.Time. It never
// fails: unparseable input yields the current instant with degraded set,
// which callers log but must not use for correctness decisions.
func Normalize(raw any) (t time.Time, degraded bool) {
	switch v := raw.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Now(), true
		}
		return v, false
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Now(), true
		}
		return *v, false
	case string:
		return normalizeString(v)
	case []int:
		return normalizeComponents(v)
	case []float64:
		parts := make([]int, len(v))
		for i, f := range v {
			parts[i] = int(f)
		}
		return normalizeComponents(parts)
	default:
		return time.Now(), true
	}
}

// NormalizeRaw handles a timestamp field taken directly off the wire,
// where it may arrive as a JSON string or as a numeric component array.
func NormalizeRaw(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Now(), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return normalizeString(s)
	}

	var parts []float64
	if err := json.Unmarshal(raw, &parts); err == nil {
		return Normalize(parts)
	}

	return time.Now(), true
}

func normalizeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now(), true
	}

	// Database wall-clock datetime: "2025-05-05 23:19:02[.000000]".
	// The server writes these in its own local time, so they are taken
	// as already resolved rather than reinterpreted as UTC.
	if len(s) >= len(databaseLayout) && s[10] == ' ' {
		base := s[:len(databaseLayout)]
		if t, err := time.ParseInLocation(databaseLayout, base, time.Local); err == nil {
			if frac, ok := parseFraction(s[len(databaseLayout):]); ok {
				t = t.Add(frac)
			}
			return t, false
		}
	}

	// ISO strings without any timezone indicator are assumed UTC. This is
	// a deliberate compatibility quirk: callers that need local-server
	// semantics must send the space-separated form above.
	if !hasTimezone(s) {
		s += "Z"
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, false
	}
	if t, err := time.Parse("2006-01-02Z", s); err == nil {
		return t, false
	}

	return time.Now(), true
}

func normalizeComponents(parts []int) (time.Time, bool) {
	if len(parts) < 3 {
		return time.Now(), true
	}
	full := make([]int, 7)
	copy(full, parts)
	t := time.Date(full[0], time.Month(full[1]), full[2], full[3], full[4], full[5], full[6], time.Local)
	if t.IsZero() {
		return time.Now(), true
	}
	return t, false
}

// parseFraction parses an optional ".ffffff" suffix into a duration.
func parseFraction(s string) (time.Duration, bool) {
	if len(s) < 2 || s[0] != '.' {
		return 0, false
	}
	digits := s[1:]
	var n int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int64(r-'0')
	}
	// Scale to nanoseconds regardless of how many digits were sent.
	for i := len(digits); i < 9; i++ {
		n *= 10
	}
	return time.Duration(n), true
}

func hasTimezone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	// A timezone offset can only follow the time part, e.g.
	// "2025-05-05T23:19:02+03:00". Offsets in the date part do not exist,
	// so only look after the 'T'.
	idx := strings.IndexByte(s, 'T')
	if idx < 0 {
		return false
	}
	rest := s[idx+1:]
	return strings.ContainsAny(rest, "+-")
}
