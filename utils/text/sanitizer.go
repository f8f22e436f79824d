// Package text prepares model replies for speech synthesis.
package text

import (
	"regexp"
	"strings"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

// rules run in this order; later rules rely on the earlier ones.
var rules = []rule{
	// emoji and pictographs
	{regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}-\x{1F251}]+`), ""},
	// emphasis markers
	{regexp.MustCompile(`\*+`), ""},
	{regexp.MustCompile(`_+`), ""},
	// headings and bullets at line start
	{regexp.MustCompile(`(?m)^[ \t]*(?:#+[ \t]*)+`), ""},
	{regexp.MustCompile(`(?m)^\s*(?:[-•]\s*)+`), ""},
	{whitespaceRegex, " "},
	{regexp.MustCompile(`\.{2,}`), "."},
	{regexp.MustCompile(`!{2,}`), "!"},
	{regexp.MustCompile(`\?{2,}`), "?"},
	// parenthesized asides
	{regexp.MustCompile(`\([^)]*\)`), ""},
	{regexp.MustCompile(`["“”„«»]`), ""},
	// removing an aside leaves two spaces behind
	{whitespaceRegex, " "},
}

var whitespaceRegex = regexp.MustCompile(`[\s\p{Z}]+`)

// SanitizeForSpeech strips emoji, markdown and punctuation noise so the text
// reads well through a TTS engine. The result may be empty.
//
// Passes repeat until the text stops changing. A pass either shortens the
// text or only rewrites whitespace to single spaces, so the loop ends.
func SanitizeForSpeech(text string) string {
	for {
		next := sanitizePass(text)
		if next == text {
			return text
		}
		text = next
	}
}

func sanitizePass(text string) string {
	for _, r := range rules {
		text = r.re.ReplaceAllLiteralString(text, r.repl)
	}
	return strings.TrimSpace(text)
}
