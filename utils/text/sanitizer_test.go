package text

import (
	"strings"
	"testing"
)

func TestSanitizeForSpeech(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mixed noise",
			in:   "Hello!!! *bold* (aside) — 😀 done...",
			want: "Hello! bold — done.",
		},
		{
			name: "plain ascii",
			in:   "Hello world. How are you?",
			want: "Hello world. How are you?",
		},
		{
			name: "plain ascii with extra whitespace",
			in:   "  Hello \t world.\n\nHow are   you?  ",
			want: "Hello world. How are you?",
		},
		{
			name: "markdown",
			in:   "## Заголовок\n- первый пункт\n• второй __пункт__\n**жирный** и _курсив_",
			want: "Заголовок первый пункт второй пункт жирный и курсив",
		},
		{
			name: "heading marker mid line is kept",
			in:   "язык C# хорош",
			want: "язык C# хорош",
		},
		{
			name: "stacked bullets",
			in:   strings.Repeat("- ", 10) + "x",
			want: "x",
		},
		{
			name: "stacked headings",
			in:   strings.Repeat("# ", 10) + "x",
			want: "x",
		},
		{
			name: "mixed stacked markers",
			in:   "# - • ## заголовок\n- - пункт",
			want: "заголовок пункт",
		},
		{
			name: "punctuation runs",
			in:   "Что?? Да!!! Ну.....",
			want: "Что? Да! Ну.",
		},
		{
			name: "quotes",
			in:   `Он сказал "привет" и «пока», а потом „ладно“ и “okay”`,
			want: "Он сказал привет и пока, а потом ладно и okay",
		},
		{
			name: "asides",
			in:   "Итак (шутка) продолжаем (ещё одна)",
			want: "Итак продолжаем",
		},
		{
			name: "emoji only",
			in:   "😀🚀🇷🇺",
			want: "",
		},
		{
			name: "decoration only",
			in:   "** __ ## (x)",
			want: "",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
		{
			name: "aside between punctuation",
			in:   "Ура!(тихо)!",
			want: "Ура!",
		},
		{
			name: "cyrillic untouched",
			in:   "Привет, как дела?",
			want: "Привет, как дела?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeForSpeech(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeForSpeech(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeForSpeech_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello!!! *bold* (aside) — 😀 done...",
		"(x)# hi",
		"Ура!(тихо)!",
		"- a\n- b\n\n# c",
		"«(»)» ..(.).. !! ??",
		"a ( b ) c ( d",
		"  text more",
		"___***___",
		strings.Repeat("- ", 10) + "x",
		strings.Repeat("# ", 10) + "x",
		strings.Repeat("• ", 20) + "x",
		strings.Repeat("(a)# ", 12) + "x",
		strings.Repeat("# (a)", 12) + "x",
	}

	for _, in := range inputs {
		once := SanitizeForSpeech(in)
		twice := SanitizeForSpeech(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
