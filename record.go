package main

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is a free-form JSON object as received from a client or read from
// the backing file. Numbers are kept as json.Number so they round-trip.
type Record map[string]any

// ScenarioID returns the integer id of a scenario record.
func (r Record) ScenarioID() (int, bool) {
	v, ok := r["id"]
	if !ok {
		return 0, false
	}
	return exactInt(v)
}

// Vehicles returns the vehicle sequence of a scenario record, or nil when the
// field is absent or not an array.
func (r Record) Vehicles() []any {
	list, _ := r["vehicles"].([]any)
	return list
}

// vehicleIDOf returns the string id of a vehicle element. Elements that are not
// objects, or whose id is not a string, have no id.
func vehicleIDOf(v any) (string, bool) {
	var obj map[string]any
	switch t := v.(type) {
	case Record:
		obj = t
	case map[string]any:
		obj = t
	default:
		return "", false
	}
	id, ok := obj["id"].(string)
	return id, ok
}

// exactInt reports the integer value of a stored id. Stored ids compare by
// numeric equality, so 2 and 2.0 are the same id while 2.5 matches nothing.
func exactInt(v any) (int, bool) {
	var f float64
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		f = t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// parseLooseInt reads an integer the way a lenient client-side parser does:
// leading whitespace is skipped, then an optional sign and the longest run of
// decimal digits, or hex digits after a 0x prefix. Numbers are truncated
// toward zero. Anything else fails.
func parseLooseInt(v any) (int, bool) {
	switch t := v.(type) {
	case string:
		return parseLeadingDigits(t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), true
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return truncate(f)
	case float64:
		return truncate(t)
	case int:
		return t, true
	case int64:
		return int(t), true
	}
	return 0, false
}

// truncate reads an integer from a number through its shortest string form,
// so very large or very small values parse by their leading mantissa digits
// (1e21 reads as 1, 5e-7 as 5). Fixed-notation values outside the int range
// fail.
func truncate(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	abs := math.Abs(f)
	if abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return parseLeadingDigits(strconv.FormatFloat(f, 'e', -1, 64))
	}
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int(t), true
}

// parseLeadingDigits parses an optional sign followed by either a 0x/0X
// prefixed run of hex digits or a run of decimal digits. Trailing text is
// ignored; runs too long for an int fail.
func parseLeadingDigits(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecimalDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// deepCopy clones the JSON value tree so callers can encode it outside the
// store lock.
func deepCopy(v any) any {
	switch t := v.(type) {
	case Record:
		return Record(copyObject(t))
	case map[string]any:
		return copyObject(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}

func copyObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, item := range m {
		out[k] = deepCopy(item)
	}
	return out
}
