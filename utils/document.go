package utils

import "encoding/json"

// ToPortableDocument converts an arbitrary dynamic tree (as produced by a
// bridge layer or a JSON decoder) into the nested document format the
// gateway's metadata field expects. Numbers of every width are carried as
// float64; maps and sequences are converted recursively. Unsupported kinds
// are omitted rather than rejected: a dropped map key or sequence element,
// or ok == false at the top level. The function is pure and inputs are
// tree-shaped, so no cycle handling is needed.
func ToPortableDocument(v any) (any, bool) {
	switch val := v.(type) {
	case nil:
		return nil, true
	case bool:
		return val, true
	case string:
		return val, true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if converted, ok := ToPortableDocument(item); ok {
				out[k] = converted
			}
		}
		return out, true
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if converted, ok := ToPortableDocument(item); ok {
				out = append(out, converted)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
