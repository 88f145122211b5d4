package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
)

// Speakable flattens a markdown answer into plain text suitable for voice
// synthesis, so the synthesizer does not read out asterisks and backticks.
func Speakable(md string) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	rendered := markdown.Render(p.Parse([]byte(md)), renderer)

	plain, err := html2text.FromString(string(rendered), html2text.Options{TextOnly: true})
	if err != nil {
		return strings.TrimSpace(md)
	}
	return strings.TrimSpace(plain)
}
