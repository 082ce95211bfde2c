package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object found in response")

const maxCandidates = 32

// ExtractJSON decodes the first well-formed top-level JSON object embedded in text.
// Candidates are found by balanced-brace scanning; if none is valid, the slice from
// the first '{' to the last '}' is tried as a last resort.
func ExtractJSON(text string, v interface{}) error {
	first := strings.IndexByte(text, '{')
	if first < 0 {
		return ErrNoJSONObject
	}

	start := first
	for i := 0; i < maxCandidates && start >= 0; i++ {
		if end := balancedEnd(text, start); end > start {
			candidate := []byte(text[start : end+1])
			if json.Valid(candidate) {
				return json.Unmarshal(candidate, v)
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}

	last := strings.LastIndexByte(text, '}')
	if last <= first {
		return ErrNoJSONObject
	}
	if err := json.Unmarshal([]byte(text[first:last+1]), v); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}

// balancedEnd returns the index of the '}' closing the object opened at start, or -1.
func balancedEnd(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
