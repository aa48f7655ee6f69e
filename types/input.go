package types

import "encoding/json"

// RawChargeInput is the untyped charge description handed over by the host
// application layer. Fields may be missing, null, or of the wrong kind; the
// accessors below implement the presence and shape checks the builder needs,
// treating a wrong-kind value the same as an absent one.
type RawChargeInput map[string]any

// String returns the string at key, or "" if the key is absent, null, or not
// a string.
func (in RawChargeInput) String(key string) string {
	s, _ := in[key].(string)
	return s
}

// HasString reports whether key holds a non-empty string.
func (in RawChargeInput) HasString(key string) bool {
	return in.String(key) != ""
}

// Int returns the integer at key, accepting the numeric kinds a decoded
// dynamic document may carry. Absent, null, or non-numeric values yield 0.
func (in RawChargeInput) Int(key string) int {
	switch v := in[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

// HasInt reports whether key holds a numeric value.
func (in RawChargeInput) HasInt(key string) bool {
	switch in[key].(type) {
	case int, int32, int64, float64, float32, json.Number:
		return true
	default:
		return false
	}
}

// Map returns the nested document at key, or nil if the key is absent or not
// a map.
func (in RawChargeInput) Map(key string) map[string]any {
	m, _ := in[key].(map[string]any)
	return m
}
