// Package web renders the question-and-answer page.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Messages shown on the page.
const (
	EmptyInputWarning = "Please enter a question in the text area above to get an answer."
	RetryHint         = "Please try rephrasing your question or try again later."
	BusyIndicator     = "Thinking... Please wait for the AI to generate a response."
)

// PageData is one display cycle of the page. At most one of Answer, Warning
// and Error is set.
type PageData struct {
	Question string
	Answer   string
	Warning  string
	Error    string
	Provider string
}

// Render writes the page with status. The template is executed into a buffer
// first so a failure never leaves a half-written page.
func Render(w http.ResponseWriter, status int, data PageData) error {
	if data.Provider == "" {
		data.Provider = "Google Gemini"
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// ProviderName is the footer label for an LLM_PROVIDER value.
func ProviderName(provider string) string {
	switch provider {
	case "openai":
		return "OpenAI"
	default:
		return "Google Gemini"
	}
}
