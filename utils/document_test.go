package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPortableDocument(t *testing.T) {
	t.Run("scalars map one to one", func(t *testing.T) {
		cases := []struct {
			name string
			in   any
			want any
		}{
			{"nil", nil, nil},
			{"bool", true, true},
			{"string", "hello", "hello"},
			{"float64", 1.5, 1.5},
			{"int", 42, float64(42)},
			{"int64", int64(7), float64(7)},
			{"json number", json.Number("12.25"), 12.25},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, ok := ToPortableDocument(tc.in)
				require.True(t, ok)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("nested maps and sequences recurse", func(t *testing.T) {
		in := map[string]any{
			"custom_fields": []any{
				map[string]any{
					"display_name":  "Order",
					"variable_name": "order_id",
					"value":         "ORD-1042",
				},
			},
			"attempt": 2,
		}

		got, ok := ToPortableDocument(in)
		require.True(t, ok)

		doc, isMap := got.(map[string]any)
		require.True(t, isMap)
		assert.Equal(t, float64(2), doc["attempt"])

		fields, isSeq := doc["custom_fields"].([]any)
		require.True(t, isSeq)
		require.Len(t, fields, 1)
		assert.Equal(t, "ORD-1042", fields[0].(map[string]any)["value"])
	})

	t.Run("unsupported kinds are omitted not rejected", func(t *testing.T) {
		in := map[string]any{
			"keep":   "value",
			"dropMe": make(chan int),
			"seq":    []any{"a", struct{}{}, "b"},
		}

		got, ok := ToPortableDocument(in)
		require.True(t, ok)

		doc := got.(map[string]any)
		assert.Equal(t, "value", doc["keep"])
		assert.NotContains(t, doc, "dropMe")
		assert.Equal(t, []any{"a", "b"}, doc["seq"])
	})

	t.Run("unsupported top level reports not ok", func(t *testing.T) {
		_, ok := ToPortableDocument(struct{}{})
		assert.False(t, ok)
	})
}
