package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpawar/folio/internal/views"
)

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")

	written, err := export(dir, views.Sections{}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "static/motion.js"}, written)

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	html := string(page)
	assert.True(t, strings.HasPrefix(strings.ToLower(strings.TrimSpace(html)), "<!doctype html>"))
	assert.Contains(t, html, `src="static/motion.js"`)
	assert.Contains(t, html, "Journey So Far")
	assert.Contains(t, html, "\n", "pretty output is indented across lines")

	js, err := os.ReadFile(filepath.Join(dir, "static", "motion.js"))
	require.NoError(t, err)
	assert.Contains(t, string(js), "data-motion")
}

func TestExportCompactUsesOverrides(t *testing.T) {
	dir := t.TempDir()

	_, err := export(dir, views.Sections{Hero: views.HeroProps{Name: "Grace"}}, false)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Grace ")
	assert.NotContains(t, string(page), "\n")
}
