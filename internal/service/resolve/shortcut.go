package resolve

import (
	"regexp"
	"strings"

	"github.com/sandevgo/mordomo/internal/core"
)

// ShortcutRule maps a keyword to a UI action. A rule fires only when an
// intent verb AND the keyword both appear on word boundaries, so
// "githubber" never triggers the github rule and "I love github" carries
// no intent at all.
type ShortcutRule struct {
	Keyword string
	App     string
	URL     string
}

var intentVerbRe = regexp.MustCompile(`\b(abrir|abra|abre|acessar|acesse|entrar|entre|entra|tocar|toque|toca|ir para|vai para|open|go to|play)\b`)

type compiledShortcut struct {
	rule ShortcutRule
	re   *regexp.Regexp
}

type ShortcutMatcher struct {
	rules []compiledShortcut
}

func NewShortcutMatcher(rules []ShortcutRule) *ShortcutMatcher {
	compiled := make([]compiledShortcut, 0, len(rules))
	for _, r := range rules {
		compiled = append(compiled, compiledShortcut{
			rule: r,
			re:   regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(r.Keyword)) + `\b`),
		})
	}
	return &ShortcutMatcher{rules: compiled}
}

// Match is pure and deterministic; the first rule in declaration order
// satisfying both patterns wins. Absence of a match is not an error.
func (m *ShortcutMatcher) Match(utterance string) (core.Action, bool) {
	lower := strings.ToLower(utterance)
	if !intentVerbRe.MatchString(lower) {
		return core.Action{}, false
	}

	for _, c := range m.rules {
		if c.re.MatchString(lower) {
			return core.Action{
				Action: "openLink",
				App:    c.rule.App,
				URL:    c.rule.URL,
			}, true
		}
	}
	return core.Action{}, false
}

// DefaultShortcuts is the stock rule table; declaration order is match
// priority.
var DefaultShortcuts = []ShortcutRule{
	{Keyword: "github", App: "GitHub", URL: "https://github.com"},
	{Keyword: "youtube", App: "YouTube", URL: "https://www.youtube.com"},
	{Keyword: "spotify", App: "Spotify", URL: "https://open.spotify.com"},
	{Keyword: "netflix", App: "Netflix", URL: "https://www.netflix.com"},
	{Keyword: "gmail", App: "Gmail", URL: "https://mail.google.com"},
	{Keyword: "whatsapp", App: "WhatsApp", URL: "https://web.whatsapp.com"},
}
