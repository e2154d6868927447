package site

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/muurk/findar/internal/logging"
)

// The default renderer omits raw HTML found in content bodies.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown renders a Markdown body. On a conversion error the source is
// shown as plain text.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		logging.Warn("Markdown conversion failed, rendering as text", zap.Error(err))
		return g.Text(src)
	}
	return g.Raw(buf.String())
}
