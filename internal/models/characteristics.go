package models

import (
	"strings"

	"golang.org/x/exp/slices"
)

// Characteristics is the free form name -> value map of a costume ("material" -> "cotton").
type Characteristics map[string]string

// Clean drops entries with a blank name or value, those are never stored.
func (c Characteristics) Clean() Characteristics {
	if c == nil {
		return nil
	}

	out := make(Characteristics, len(c))
	for name, value := range c {
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		out[name] = value
	}
	return out
}

// Names returns the characteristic names in a stable order.
func (c Characteristics) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
