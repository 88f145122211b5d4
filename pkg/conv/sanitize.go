package conv

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// The upstream model occasionally leaks its internal tool-call markup
	// into the text channel instead of the tool_calls field.
	functionTagRe = regexp.MustCompile(`(?s)<function=.*?>.*?</function>`)
	strictPolicy  = bluemonday.StrictPolicy()
)

// Sanitize strips leaked control markup (tool-call tags and HTML-like tags)
// from model output. Applying it to already-clean text is a no-op.
func Sanitize(text string) string {
	out := functionTagRe.ReplaceAllString(text, "")
	out = strictPolicy.Sanitize(out)
	// StrictPolicy entity-escapes what it keeps; undo so plain punctuation
	// survives a second pass unchanged.
	out = html.UnescapeString(out)
	return strings.TrimSpace(out)
}
