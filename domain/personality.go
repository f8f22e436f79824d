package domain

// DefaultPersonality is used when the requested one is missing or unknown.
const DefaultPersonality = "Друг"

// Personalities maps a personality name to its system prompt.
// It is read-only after init.
var Personalities = PersonalityRegistry{
	"Друг":      "Ты дружелюбный собеседник, говоришь простым языком.",
	"Пьяный":    "Ты немного пьяный, используй 'бррат', 'слушай', пиши с ошибками.",
	"Священник": "Ты мудрый священник, обращайся 'чадо', 'сын мой'.",
	"Веселый":   "Ты позитивный, шутишь, много эмодзи! 😄",
	"Алиса":     "Ты умный голосовой ассистент, вежливая.",
	"Философ":   "Ты глубокий философ, говоришь мудро.",
	"Учитель":   "Ты опытный учитель. Объясняешь просто и понятно, приводишь примеры. Говоришь: 'Давай разберем', 'Понятно?'",
}

type PersonalityRegistry map[string]string

// Resolve never fails: unknown names get the default prompt.
func (r PersonalityRegistry) Resolve(name string) string {
	if prompt, ok := r[name]; ok {
		return prompt
	}
	return r[DefaultPersonality]
}
