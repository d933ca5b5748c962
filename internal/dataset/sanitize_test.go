package dataset

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeValue(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)

	tests := []struct {
		name     string
		value    interface{}
		expected interface{}
	}{
		{name: "nil_becomes_empty", value: nil, expected: ""},
		{name: "nan_becomes_empty", value: math.NaN(), expected: ""},
		{name: "pos_inf_becomes_empty", value: math.Inf(1), expected: ""},
		{name: "neg_inf_becomes_empty", value: math.Inf(-1), expected: ""},
		{name: "finite_float_kept", value: 3.5, expected: 3.5},
		{name: "int_kept", value: int64(9), expected: int64(9)},
		{name: "string_kept", value: "hola", expected: "hola"},
		{
			name:     "invalid_timestamp_becomes_empty",
			value:    Timestamp{},
			expected: "",
		},
		{
			name:     "timestamp_renders_naive",
			value:    Timestamp{Time: time.Date(2024, 7, 1, 14, 30, 0, 0, time.UTC), Valid: true},
			expected: "2024-07-01 14:30:00",
		},
		{
			name:     "timezone_offset_dropped",
			value:    Timestamp{Time: time.Date(2024, 7, 1, 14, 30, 0, 0, bogota), Valid: true},
			expected: "2024-07-01 14:30:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeValue(tt.value))
		})
	}
}

func TestSanitizeFieldsProducesSerializableJSON(t *testing.T) {
	fields := map[string]interface{}{
		"Name":      "cuenta",
		"Views":     math.Inf(1),
		"Timestamp": Timestamp{Time: time.Date(2023, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600)), Valid: true},
		"Missing":   nil,
	}

	sanitized := SanitizeFields(fields)
	payload, err := json.Marshal(sanitized)
	require.NoError(t, err)

	text := string(payload)
	assert.NotContains(t, text, "Inf")
	assert.NotContains(t, text, "NaN")
	assert.NotContains(t, text, "+01:00")
	assert.Contains(t, text, "2023-01-02 03:04:05")
	assert.Equal(t, "", sanitized["Views"])
	assert.Equal(t, "", sanitized["Missing"])
}

func TestRenderValueAbsentColumn(t *testing.T) {
	raw := &RawTable{Header: []string{"Post Body"}, Rows: [][]string{{"texto"}}}
	table, err := Normalize(raw, DefaultSchema())
	require.NoError(t, err)

	_, ok := table.RenderValue("Likes", 0)
	assert.False(t, ok)

	v, ok := table.RenderValue("Post Body", 0)
	require.True(t, ok)
	assert.Equal(t, "texto", v)
}
