// Package idgenerator builds request ids: an optional prefix, the unix
// milliseconds and a raw url base64 uuid, sortable by creation time.
package idgenerator

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

func (g *IDGenerator) Generate(prefixes ...string) string {
	id := uuid.New()

	var b strings.Builder
	if prefix := strings.Join(prefixes, "-"); prefix != "" {
		b.WriteString(prefix)
		b.WriteByte('-')
	}
	b.WriteString(strconv.FormatInt(g.now().UnixMilli(), 10))
	b.WriteString(base64.RawURLEncoding.EncodeToString(id[:]))

	return b.String()
}
