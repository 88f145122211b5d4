package resolve

import "testing"

func TestCannedMatcher_Match(t *testing.T) {
	matcher := NewCannedMatcher([]CannedRule{
		{Keywords: []string{"clima", "hoje"}, Response: "resposta clima"},
		{Keywords: []string{"clima"}, Response: "resposta genérica"},
	})

	tests := []struct {
		name      string
		utterance string
		want      string
		wantOk    bool
	}{
		{
			name:      "all_keywords_required",
			utterance: "qual o clima hoje",
			want:      "resposta clima",
			wantOk:    true,
		},
		{
			name:      "missing_keyword_falls_to_next_rule",
			utterance: "qual o clima",
			want:      "resposta genérica",
			wantOk:    true,
		},
		{
			name:      "case_insensitive",
			utterance: "QUAL O CLIMA HOJE?",
			want:      "resposta clima",
			wantOk:    true,
		},
		{
			name:      "no_match",
			utterance: "bom dia",
			wantOk:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := matcher.Match(tt.utterance)

			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("response = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCannedMatcher_IsConjunctive(t *testing.T) {
	matcher := NewCannedMatcher([]CannedRule{
		{Keywords: []string{"clima", "hoje"}, Response: "resposta"},
	})

	if _, ok := matcher.Match("qual o clima"); ok {
		t.Error("rule fired with only one of two keywords present")
	}
	if _, ok := matcher.Match("qual o clima hoje"); !ok {
		t.Error("rule did not fire with the full keyword set present")
	}
}

func TestCannedMatcher_OrderIsSignificant(t *testing.T) {
	matcher := NewCannedMatcher([]CannedRule{
		{Keywords: []string{"status"}, Response: "primeira"},
		{Keywords: []string{"status", "sistema"}, Response: "segunda"},
	})

	got, ok := matcher.Match("status do sistema")
	if !ok || got != "primeira" {
		t.Errorf("got %q (ok=%v), want first rule in table order", got, ok)
	}
}
