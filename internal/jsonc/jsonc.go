// Package jsonc provides utilities for handling JSON with comments (JSONC).
package jsonc

import (
	"encoding/json"
	"fmt"

	"github.com/seanhalberthal/decomment/internal/filter"
)

// StripComments removes JavaScript-style comments from JSONC content.
// Handles both single-line (//) and multi-line (/* */) comments.
// Preserves strings that contain comment-like sequences.
func StripComments(data []byte) []byte {
	return []byte(filter.RemoveComments(string(data)))
}

// StripTrailingCommas removes commas that directly precede a closing
// brace or bracket, ignoring whitespace in between.
func StripTrailingCommas(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false

	for i := 0; i < len(data); i++ {
		c := data[i]

		if c == '"' && !isEscaped(data, i) {
			inString = !inString
		}

		if c == ',' && !inString && closesAfter(data, i+1) {
			continue
		}

		out = append(out, c)
	}

	return out
}

// Standardize converts JSONC into plain JSON.
func Standardize(data []byte) []byte {
	return StripTrailingCommas(StripComments(data))
}

// Unmarshal converts data to plain JSON and decodes it into v.
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(Standardize(data), v); err != nil {
		return fmt.Errorf("failed to decode jsonc: %w", err)
	}
	return nil
}

// closesAfter reports whether the next non-whitespace byte from pos
// closes an object or array.
func closesAfter(data []byte, pos int) bool {
	for ; pos < len(data); pos++ {
		switch data[pos] {
		case ' ', '\t', '\n', '\r':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

// isEscaped reports whether the byte at pos is preceded by an odd number
// of backslashes.
func isEscaped(data []byte, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && data[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
