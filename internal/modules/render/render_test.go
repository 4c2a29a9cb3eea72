package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTML(t *testing.T) {
	html := ToHTML("**bold** and a [link](https://example.com)")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, `<a href="https://example.com">link</a>`)
}

func TestToHTMLHardWraps(t *testing.T) {
	html := ToHTML("line one\nline two")
	assert.Contains(t, html, "<br")
}
