package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(subFS(), ".")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for _, e := range entries {
		b, err := fs.ReadFile(subFS(), e.Name())
		require.NoError(t, err)

		body := string(b)
		assert.True(t, strings.Contains(body, "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(body, "-- +goose Down"), e.Name())
	}
}

func TestForeignKeysHaveNoCascade(t *testing.T) {
	err := fs.WalkDir(subFS(), ".", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() {
			return nil
		}
		b, err := fs.ReadFile(subFS(), path)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToUpper(string(b)), "ON DELETE CASCADE", path)
		return nil
	})
	require.NoError(t, err)
}
