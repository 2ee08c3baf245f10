package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON_IsValidJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))
	assert.Equal(t, "PipSeed Configuration", schema["title"])
}

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	content := []byte(`
prompt: "seed> "
banner: "Hello {{ .Name }}"
generate:
  count: 25
  format: sql
  table: public.people
  pretty: false
  seed: 7
  output: "{{ .Type }}.sql"
log:
  level: debug
  max_size_mb: 5
`)

	result, err := ValidateWithSchema("test.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Errors)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_DefaultsAreValid(t *testing.T) {
	result, err := ValidateWithSchema("defaults.yml", defaultsYAML)
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Errors)
}

func TestValidateWithSchema_EmptyYAML(t *testing.T) {
	result, err := ValidateWithSchema("test.yaml", []byte(""))
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestValidateWithSchema_InvalidFormat(t *testing.T) {
	content := []byte(`
generate:
  format: xml
`)

	result, err := ValidateWithSchema("test.yml", content)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Field, "format")
}

func TestValidateWithSchema_NegativeCount(t *testing.T) {
	result, err := ValidateWithSchema("test.json", []byte(`{"generate": {"count": -1}}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_UnknownKey(t *testing.T) {
	result, err := ValidateWithSchema("test.yml", []byte("colour: blue\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors[0].Message, "colour")
}

func TestValidateWithSchema_InvalidTable(t *testing.T) {
	result, err := ValidateWithSchema("test.yml", []byte("generate:\n  table: \"1bad; drop\"\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_ValidTOML(t *testing.T) {
	content := []byte(`
farewell = "bye"

[generate]
count = 3
format = "yaml"
`)

	result, err := ValidateWithSchema("test.toml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Errors)
}

func TestValidateWithSchema_InvalidTOMLType(t *testing.T) {
	result, err := ValidateWithSchema("test.toml", []byte("[generate]\ncount = \"many\"\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_SyntaxErrors(t *testing.T) {
	tests := []struct {
		path    string
		content string
		want    string
	}{
		{"test.yml", "generate: [unclosed", "Invalid YAML syntax"},
		{"test.json", `{"generate":`, "Invalid JSON syntax"},
		{"test.toml", "[generate\ncount = 1", "Invalid TOML syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, "syntax", result.Errors[0].Field)
			assert.Contains(t, result.Errors[0].Message, tt.want)
		})
	}
}

func TestValidateWithSchema_UnsupportedExtension(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("a=b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
