package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLint_CleanFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "clean.html", `<html><body><p>fine</p></body></html>`)

	out, err := execute(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")
}

func TestLint_ErrorsReturnSentinel(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "bad.html", `<html><body><a>broken</a></body></html>`)

	out, err := execute(t, "lint")
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out, "link-missing-href")
}

func TestLint_StrictWarnings(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "warn.html", `<html><body><li></li></body></html>`)

	// empty-element is a warning; without strict the run passes.
	_, err := execute(t, "lint")
	require.NoError(t, err)

	_, err = execute(t, "lint", "--strict")
	assert.ErrorIs(t, err, ErrStrictWarnings)
}

func TestLint_JSONFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "bad.html", `<html><body><img src="x.png"></body></html>`)

	out, err := execute(t, "lint", "--format", "json")
	require.ErrorIs(t, err, ErrIssuesFound)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, out, "img-missing-alt")
}

func TestLint_FormatFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DIAGNOSTICSS_FORMAT", "json")
	writeFile(t, dir, "bad.html", `<html><body><a>broken</a></body></html>`)

	// No --format flag: the environment decides.
	out, err := execute(t, "lint")
	require.ErrorIs(t, err, ErrIssuesFound)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, out, "link-missing-href")

	// An explicit flag still beats the environment.
	out, err = execute(t, "lint", "--format", "text")
	require.ErrorIs(t, err, ErrIssuesFound)
	assert.Error(t, json.Unmarshal([]byte(out), &payload))
	assert.Contains(t, out, "link-missing-href")
}

func TestLint_DisableRule(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "bad.html", `<html><body><a>broken</a></body></html>`)

	_, err := execute(t, "lint", "--disable", "link-missing-href")
	assert.NoError(t, err)
}

func TestLint_IgnorePattern(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "dist/bad.html", `<html><body><a>broken</a></body></html>`)

	_, err := execute(t, "lint", "--ignore", "dist/**")
	assert.NoError(t, err)
}

func TestLint_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "bad.html", `<html><body><a>broken</a></body></html>`)
	writeFile(t, dir, ".diagnosticss.yml", `
rules:
  link-missing-href:
    enabled: false
`)

	_, err := execute(t, "lint")
	assert.NoError(t, err)
}

func TestLint_SeverityOverrideViaConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "bad.html", `<html><body><a>broken</a></body></html>`)
	writeFile(t, dir, ".diagnosticss.yml", `
rules:
  link-missing-href:
    severity: warning
`)

	// Demoted to warning, so only strict mode fails.
	_, err := execute(t, "lint")
	require.NoError(t, err)

	_, err = execute(t, "lint", "--strict")
	assert.ErrorIs(t, err, ErrStrictWarnings)
}

func TestLint_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "lint", "--format", "xml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrIssuesFound)
}

func TestLint_MaxDepthFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, "deep.html", `<div><div><div><div><p>x</p></div></div></div></div>`)

	_, err := execute(t, "lint", "--max-depth", "2")
	assert.ErrorIs(t, err, ErrIssuesFound)
}
