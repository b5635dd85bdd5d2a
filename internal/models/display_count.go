package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DisplayCount is the number of costumes shown on a subcategory card.
// Older admin forms send it preformatted ("12 костюмов"), newer ones send 12.
// Both are accepted; it is always stored and emitted as a number.
type DisplayCount int

func (c *DisplayCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}

	if b[0] != '"' {
		var n int
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("invalid count %s: %w", string(b), err)
		}
		*c = DisplayCount(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	n, err := ParseDisplayCount(s)
	if err != nil {
		return err
	}
	*c = n
	return nil
}

// ParseDisplayCount reads the leading number of s, "" and "костюмов" count as 0.
func ParseDisplayCount(s string) (DisplayCount, error) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	if end == 0 {
		return 0, nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return DisplayCount(n), nil
}
