package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleID accepts 3 and "3". Anything that is not a positive integer
// decodes to 0 so the validator can report it as an invalid id.
type FlexibleID int

func (id *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = 0
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*id = 0
		return nil
	}
	*id = FlexibleID(n)
	return nil
}

func (id *FlexibleID) IntPtr() *int {
	if id == nil {
		return nil
	}
	v := int(*id)
	return &v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNonNilID(values ...*FlexibleID) *int {
	return firstNonNil(values...).IntPtr()
}

func toAgeCategoryPtr(s *string) *AgeCategory {
	if s == nil {
		return nil
	}
	a := AgeCategory(*s)
	return &a
}
