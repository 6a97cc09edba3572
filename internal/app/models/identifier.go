package models

import (
	"bytes"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type IdentifierKind int

const (
	IdentifierInvalid IdentifierKind = iota
	IdentifierNumeric
	IdentifierText
)

var ErrIdentifierNotInteger = errors.New("identifier is not an integer")

// Identifier holds a loosely typed id as sent by callers: either a number or
// a piece of text such as a clinic slug. Values that are neither decode to an
// invalid identifier instead of failing, so validation can report the field.
type Identifier struct {
	kind    IdentifierKind
	numeric int64
	text    string
	raw     string
}

func NumericIdentifier(value int64) Identifier {
	return Identifier{kind: IdentifierNumeric, numeric: value, raw: strconv.FormatInt(value, 10)}
}

func TextIdentifier(value string) Identifier {
	return Identifier{kind: IdentifierText, text: value, raw: value}
}

func (i Identifier) Kind() IdentifierKind { return i.kind }

func (i Identifier) IsNumeric() bool { return i.kind == IdentifierNumeric }

func (i Identifier) Valid() bool { return i.kind != IdentifierInvalid }

func (i Identifier) Int64() int64 { return i.numeric }

func (i Identifier) Text() string { return i.text }

// String returns the value as the caller sent it, used when echoing bad input.
func (i Identifier) String() string { return i.raw }

func (i *Identifier) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*i = Identifier{raw: string(trimmed)}

	if len(trimmed) == 0 {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*i = TextIdentifier(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if value, err := strconv.ParseInt(string(trimmed), 10, 64); err == nil {
			*i = NumericIdentifier(value)
			return nil
		}
		// 12.0 and 1e3 are integers written as floats
		value, err := strconv.ParseFloat(string(trimmed), 64)
		if err == nil && value == math.Trunc(value) && value >= math.MinInt64 && value < math.MaxInt64 {
			*i = NumericIdentifier(int64(value))
		}
	}
	return nil
}

func (i Identifier) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case IdentifierNumeric:
		return []byte(strconv.FormatInt(i.numeric, 10)), nil
	case IdentifierText:
		return json.Marshal(i.text)
	default:
		return []byte("null"), nil
	}
}

// CoerceAppointmentID resolves the id Clinicorp must receive as an integer.
// Text is accepted when, once surrounding whitespace is removed, it is an
// optionally signed base 10 integer.
func CoerceAppointmentID(id Identifier) (int64, error) {
	switch id.kind {
	case IdentifierNumeric:
		return id.numeric, nil
	case IdentifierText:
		value, err := strconv.ParseInt(strings.TrimSpace(id.text), 10, 64)
		if err != nil {
			return 0, ErrIdentifierNotInteger
		}
		return value, nil
	default:
		return 0, ErrIdentifierNotInteger
	}
}

// CoerceSubscriberID keeps numeric ids numeric, turns all-digit text into a
// number and leaves anything else, like a clinic slug, untouched.
func CoerceSubscriberID(id Identifier) Identifier {
	if id.kind != IdentifierText || !isDigits(id.text) {
		return id
	}
	value, err := strconv.ParseInt(id.text, 10, 64)
	if err != nil {
		return id
	}
	return NumericIdentifier(value)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
