package resolve

import "strings"

// CannedRule answers frequently asked, non-contextual questions without
// spending a model call. Matching is conjunctive: every keyword must be a
// substring of the lowercased utterance. Precision over recall.
type CannedRule struct {
	Keywords []string
	Response string
}

type CannedMatcher struct {
	rules []CannedRule
}

func NewCannedMatcher(rules []CannedRule) *CannedMatcher {
	return &CannedMatcher{rules: rules}
}

// Match returns the first rule, in table order, whose full keyword set
// matches. Order is significant.
func (m *CannedMatcher) Match(utterance string) (string, bool) {
	lower := strings.ToLower(utterance)

	for _, r := range m.rules {
		matched := len(r.Keywords) > 0
		for _, kw := range r.Keywords {
			if !strings.Contains(lower, kw) {
				matched = false
				break
			}
		}
		if matched {
			return r.Response, true
		}
	}
	return "", false
}

var DefaultCanned = []CannedRule{
	{
		Keywords: []string{"quem", "você"},
		Response: "Sou o Mordomo, Senhor. Seu administrador de sistemas pessoal, sempre a postos.",
	},
	{
		Keywords: []string{"bom", "dia"},
		Response: "Bom dia, Senhor. Todos os sistemas operando em plena capacidade.",
	},
	{
		Keywords: []string{"boa", "noite"},
		Response: "Boa noite, Senhor. Manterei os sistemas em vigília enquanto descansa.",
	},
	{
		Keywords: []string{"status", "sistema"},
		Response: "Sistemas online, Senhor. Reator estável. Nenhuma anomalia detectada.",
	},
	{
		Keywords: []string{"obrigado"},
		Response: "Sempre às ordens, Senhor.",
	},
}
