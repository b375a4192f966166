package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const defYAML = `
fields:
  name:
    kind: string
    with: [trim, {minLength: 1}]
  age:
    kind: number
    with: [{integer: round}, {default: 0}]
  email:
    kind: email
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun_Usage(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, nil, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "Usage")
	assert.Equal(t, 2, run([]string{"nope"}, nil, &bytes.Buffer{}, &stderr))
	assert.Equal(t, 2, run([]string{"adjust"}, nil, &bytes.Buffer{}, &stderr))
}

func TestRun_AdjustStdin(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"adjust", "-schema", schema}, strings.NewReader(`{"name":" ann ","email":"ann@example.com","age":"2.5"}`), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var out map[string]any
	require.NoError(t, j.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, map[string]any{"name": "ann", "email": "ann@example.com", "age": 3.0}, out)
}

func TestRun_AdjustYAMLFile(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	in := writeFile(t, "in.yaml", "name: bob\nemail: bob@example.com\n")
	var stdout, stderr bytes.Buffer
	code := run([]string{"adjust", "-schema", schema, "-in", in}, nil, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"age": 0`)
}

func TestRun_AdjustCollectErrors(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"adjust", "-schema", schema, "-collect", "-lang", "ja"}, strings.NewReader(`{"name":"","email":"x"}`), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "/email")
	assert.Contains(t, stderr.String(), "/name")
	assert.Contains(t, stderr.String(), "形式が不正です")
}

func TestRun_AdjustFailFast(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	var stdout, stderr bytes.Buffer
	code := run([]string{"adjust", "-schema", schema}, strings.NewReader(`{"name":"","email":"x"}`), &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "/email")
	assert.NotContains(t, stderr.String(), "/name")
}

func TestRun_AdjustBadInput(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"adjust", "-schema", schema}, strings.NewReader(""), &bytes.Buffer{}, &stderr))
	assert.Equal(t, 1, run([]string{"adjust", "-schema", schema}, strings.NewReader("{"), &bytes.Buffer{}, &stderr))
	assert.Equal(t, 1, run([]string{"adjust", "-schema", "missing.yaml"}, strings.NewReader("{}"), &bytes.Buffer{}, &stderr))
}

func TestRun_JSONSchema(t *testing.T) {
	schema := writeFile(t, "def.yaml", defYAML)
	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"jsonschema", "-schema", schema}, nil, &stdout, &stderr), stderr.String())

	var out struct {
		Type       string                    `json:"type"`
		Required   []string                  `json:"required"`
		Properties map[string]map[string]any `json:"properties"`
	}
	require.NoError(t, j.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "object", out.Type)
	assert.Equal(t, []string{"email", "name"}, out.Required)
	assert.Equal(t, "integer", out.Properties["age"]["type"])
	assert.Equal(t, float64(1), out.Properties["name"]["minLength"])
	assert.NotEmpty(t, out.Properties["email"]["pattern"])
}

func TestRun_Kinds(t *testing.T) {
	var stdout bytes.Buffer
	require.Equal(t, 0, run([]string{"kinds"}, nil, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "numericString\t")
	assert.Contains(t, stdout.String(), "checksum")
}
