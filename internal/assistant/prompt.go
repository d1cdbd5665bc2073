package assistant

import "strings"

// Preamble is prepended to every question.
const Preamble = `You are a helpful and informative AI health assistant.
Your goal is to provide concise, accurate, and general information on health-related questions.
**Crucially, you must always state that you are not a medical professional and cannot provide diagnoses or personalized medical advice.**
Encourage the user to consult a qualified healthcare professional for any specific health concerns.

Here is the user's question:
`

// BuildPrompt joins Preamble and the literal question. The question is not
// trimmed or escaped.
func BuildPrompt(question string) string {
	var b strings.Builder
	b.Grow(len(Preamble) + len(question) + 2)
	b.WriteString(Preamble)
	b.WriteString(`"`)
	b.WriteString(question)
	b.WriteString(`"`)
	return b.String()
}
