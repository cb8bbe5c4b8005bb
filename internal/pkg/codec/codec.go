// internal/pkg/codec/codec.go
package codec

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// The browser UI stores several multi-valued attributes (phone numbers,
// emails, selected colors, design details, file references) in single text
// columns. This package owns both encodings so the repositories never touch
// raw column text.

// EncodeList encodes an ordered list of strings as a JSON array. A nil or
// empty list encodes as "[]" so the column is never NULL.
func EncodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(raw), nil
}

// DecodeList is the inverse of EncodeList. Empty input and the JSON null
// literal decode to an empty, non-nil slice rather than an error so that
// legacy rows with blank columns keep working.
func DecodeList(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

// joinToken is the on-disk separator for the interested-products set.
const joinToken = ", "

// EncodeJoined joins a set of values with ", ". This encoding predates the
// JSON columns and is kept for on-disk compatibility with existing rows.
// It is lossy when an element itself contains ", ", a known limitation.
func EncodeJoined(values []string) string {
	return strings.Join(values, joinToken)
}

// DecodeJoined splits a ", "-joined scalar. Empty input yields an empty,
// non-nil slice.
func DecodeJoined(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return strings.Split(raw, joinToken)
}

// CoerceInt converts free-form input to an integer. The front end submits
// numeric fields as strings; anything non-numeric or empty coerces to zero.
// Decimal input is truncated the way an integer cast would.
func CoerceInt(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return int(f)
	}
	return 0
}

// CoerceFloat converts free-form input to a float. Non-numeric or empty
// input coerces to zero.
func CoerceFloat(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return f
}
