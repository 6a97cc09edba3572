package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeIdentifier(t *testing.T, raw string) Identifier {
	t.Helper()
	var id Identifier
	require.NoError(t, json.Unmarshal([]byte(raw), &id))
	return id
}

func TestIdentifier_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		kind    IdentifierKind
		numeric int64
		text    string
	}{
		{name: "integer", raw: `4521`, kind: IdentifierNumeric, numeric: 4521},
		{name: "negative integer", raw: `-7`, kind: IdentifierNumeric, numeric: -7},
		{name: "integral float", raw: `12.0`, kind: IdentifierNumeric, numeric: 12},
		{name: "exponent", raw: `1e3`, kind: IdentifierNumeric, numeric: 1000},
		{name: "fractional number", raw: `12.5`, kind: IdentifierInvalid},
		{name: "overflowing integer", raw: `99999999999999999999`, kind: IdentifierInvalid},
		{name: "numeric text", raw: `"4521"`, kind: IdentifierText, text: "4521"},
		{name: "slug", raw: `"odontomaria"`, kind: IdentifierText, text: "odontomaria"},
		{name: "empty text", raw: `""`, kind: IdentifierText, text: ""},
		{name: "boolean", raw: `true`, kind: IdentifierInvalid},
		{name: "object", raw: `{"id":1}`, kind: IdentifierInvalid},
		{name: "array", raw: `[1]`, kind: IdentifierInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := decodeIdentifier(t, tt.raw)
			assert.Equal(t, tt.kind, id.Kind())
			assert.Equal(t, tt.numeric, id.Int64())
			assert.Equal(t, tt.text, id.Text())
		})
	}
}

func TestIdentifier_MarshalJSON(t *testing.T) {
	payload := struct {
		Number Identifier `json:"number"`
		Slug   Identifier `json:"slug"`
	}{
		Number: NumericIdentifier(4521),
		Slug:   TextIdentifier("odontomaria"),
	}

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":4521,"slug":"odontomaria"}`, string(out))
}

func TestCoerceAppointmentID(t *testing.T) {
	t.Run("integer-like values yield the same integer", func(t *testing.T) {
		inputs := []Identifier{
			NumericIdentifier(987),
			TextIdentifier("987"),
			TextIdentifier("+987"),
			TextIdentifier(" 987 "),
			decodeIdentifier(t, `987`),
			decodeIdentifier(t, `"987"`),
		}
		for _, input := range inputs {
			value, err := CoerceAppointmentID(input)
			require.NoError(t, err, "input %q", input.String())
			assert.Equal(t, int64(987), value)
		}
	})

	t.Run("signed text", func(t *testing.T) {
		value, err := CoerceAppointmentID(TextIdentifier("-42"))
		require.NoError(t, err)
		assert.Equal(t, int64(-42), value)
	})

	t.Run("non integer text is rejected", func(t *testing.T) {
		for _, raw := range []string{"abc", "12.5", "", " ", "12a", "1_000", "99999999999999999999"} {
			_, err := CoerceAppointmentID(TextIdentifier(raw))
			assert.ErrorIs(t, err, ErrIdentifierNotInteger, "input %q", raw)
		}
	})

	t.Run("invalid identifier is rejected", func(t *testing.T) {
		_, err := CoerceAppointmentID(decodeIdentifier(t, `12.5`))
		assert.ErrorIs(t, err, ErrIdentifierNotInteger)
	})
}

func TestCoerceSubscriberID(t *testing.T) {
	tests := []struct {
		name     string
		input    Identifier
		expected Identifier
	}{
		{name: "numeric stays numeric", input: NumericIdentifier(4521), expected: NumericIdentifier(4521)},
		{name: "digit text becomes numeric", input: TextIdentifier("4521"), expected: NumericIdentifier(4521)},
		{name: "leading zeros become numeric", input: TextIdentifier("007"), expected: NumericIdentifier(7)},
		{name: "slug stays text", input: TextIdentifier("odontomaria"), expected: TextIdentifier("odontomaria")},
		{name: "mixed text stays text", input: TextIdentifier("clinic-12"), expected: TextIdentifier("clinic-12")},
		{name: "signed text stays text", input: TextIdentifier("-12"), expected: TextIdentifier("-12")},
		{name: "empty text stays text", input: TextIdentifier(""), expected: TextIdentifier("")},
		{name: "overflowing digits stay text", input: TextIdentifier("99999999999999999999"), expected: TextIdentifier("99999999999999999999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceSubscriberID(tt.input)
			assert.Equal(t, tt.expected.Kind(), got.Kind())
			assert.Equal(t, tt.expected.Int64(), got.Int64())
			assert.Equal(t, tt.expected.Text(), got.Text())
		})
	}
}
