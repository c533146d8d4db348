package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContent_Markdown(t *testing.T) {
	html, err := RenderContent("# Titre\n\nUn paragraphe avec du **gras**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<strong>gras</strong>")
}

func TestRenderContent_StripsScripts(t *testing.T) {
	html, err := RenderContent("Bonjour <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script")
	assert.NotContains(t, html, "alert(1)")
	assert.Contains(t, html, "Bonjour")
}

func TestRenderContent_KeepsLinks(t *testing.T) {
	html, err := RenderContent("[docs](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://example.com"`)
}
