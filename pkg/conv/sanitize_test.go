package conv

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "clean_text_untouched",
			in:   "Às ordens, Senhor.",
			want: "Às ordens, Senhor.",
		},
		{
			name: "leaked_function_tag",
			in:   `Claro. <function=create_appointment>{"title":"x"}</function>`,
			want: "Claro.",
		},
		{
			name: "function_tag_spanning_lines",
			in:   "Feito.\n<function=list_appointments>\n{}\n</function>",
			want: "Feito.",
		},
		{
			name: "html_tags_stripped",
			in:   "<b>Sistemas</b> online, <i>Senhor</i>.",
			want: "Sistemas online, Senhor.",
		},
		{
			name: "surrounding_whitespace_trimmed",
			in:   "  olá  \n",
			want: "olá",
		},
		{
			name: "punctuation_survives",
			in:   "Temperatura: 27°C & umidade 40%. \"Céu limpo\".",
			want: "Temperatura: 27°C & umidade 40%. \"Céu limpo\".",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"Às ordens, Senhor.",
		`Claro. <function=create_appointment>{}</function>`,
		"Temperatura: 27°C & umidade 40%.",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestSpeakable(t *testing.T) {
	got := Speakable("**Senhor**, sua agenda:\n\n- *Dentista* às `09:00`")

	if want := "Senhor"; !strings.Contains(got, want) {
		t.Errorf("Speakable() = %q, expected it to contain %q", got, want)
	}
	for _, marker := range []string{"*", "`", "<", ">"} {
		if strings.Contains(got, marker) {
			t.Errorf("Speakable() = %q, still contains markup %q", got, marker)
		}
	}
}
