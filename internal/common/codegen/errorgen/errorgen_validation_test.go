package errorgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `key,code,message
category_not_found,CATEGORY_NOT_FOUND,Category not found
title_required,TITLE_REQUIRED,Title is required
name_required,NAME_REQUIRED,Name is required
title_min,TITLE_REQUIRED,Title is required
`

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(testCSV))
	require.NoError(t, err)

	assert.Len(t, got.ErrorKeys, 4)
	assert.Equal(t, ErrorKey{Key: "ErrKeyCategoryNotFound", Description: "category_not_found"}, got.ErrorKeys[0])

	// TITLE_REQUIRED is shared by two keys but declared once
	assert.Len(t, got.ErrorCodes, 3)
	assert.Len(t, got.ErrorMessages, 3)
	assert.Equal(t, ErrorMap{Key: "ErrKeyTitleMin", Code: "errCodeTitleRequired", Message: "errMessageTitleRequired"}, got.ErrorMaps[3])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{
			name:    "short line",
			csv:     "key,code,message\nonly_key\n",
			wantErr: "unable to read csv",
		},
		{
			name:    "code reused with another message",
			csv:     "key,code,message\na,SAME,first\nb,SAME,second\n",
			wantErr: `code SAME already used with message "first"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender(t *testing.T) {
	data, err := Parse(strings.NewReader(testCSV))
	require.NoError(t, err)

	tmpl, err := os.ReadFile("error_map.tmpl")
	require.NoError(t, err)

	out, err := Render(string(tmpl), data)
	require.NoError(t, err)

	src := string(out)
	assert.True(t, strings.HasPrefix(src, "// Code generated by cmd/errorgen"))
	assert.Contains(t, src, `ErrKeyCategoryNotFound`)
	assert.Regexp(t, `errMessageTitleRequired\s+= errors.New\("Title is required"\)`, src)
	assert.Contains(t, src, `ErrKeyTitleMin:`)

	_, err = Render("{{ .Missing", data)
	assert.ErrorContains(t, err, "unable to parse template")
}

func TestGenerateErrorMapFromCSV(t *testing.T) {
	dir := t.TempDir()
	csvFile := filepath.Join(dir, "errors-map.csv")
	require.NoError(t, os.WriteFile(csvFile, []byte(testCSV), 0o644))

	outFile := filepath.Join(dir, "models", "error_map.go")
	require.NoError(t, GenerateErrorMapFromCSV("error_map.tmpl", csvFile, outFile))

	out, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(out), "package models")

	assert.Error(t, GenerateErrorMapFromCSV("error_map.tmpl", filepath.Join(dir, "missing.csv"), outFile))
}
