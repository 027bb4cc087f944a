package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/suggestion"
	"github.com/brightfieldschool/site/internal/web/routepath"
)

// SuggestionView is the render input for the suggestion box section.
type SuggestionView struct {
	State suggestion.State
}

// SuggestionSection renders the suggestion form. Field values survive a
// failed submission, the email field is flagged when its last validation
// failed, and the form is disabled while a submission is in flight.
func SuggestionSection(loc Localizer, view SuggestionView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		state := view.State
		sending := state.Status == suggestion.StatusSending
		disabled := ""
		if sending {
			disabled = ` disabled`
		}

		var b strings.Builder
		sectionOpen(&b, content.SectionSuggestions, loc, "section.suggestions.title")
		b.WriteString(`<p>` + esc(T(loc, "suggestion.intro")) + `</p>`)
		b.WriteString(`<form class="suggestion suggestion-` + esc(state.Status.String()) + `" method="post" action="` + routepath.Suggestions + `" data-suggestion-form>`)

		b.WriteString(`<label for="suggestion-email">` + esc(T(loc, "suggestion.email_label")) + `</label>`)
		emailClass := "field"
		if !state.EmailValid {
			emailClass = "field field-invalid"
		}
		b.WriteString(`<input id="suggestion-email" class="` + emailClass + `" type="text" name="email" value="` + esc(state.Email) + `" autocomplete="email"` + disabled + `>`)
		if !state.EmailValid {
			b.WriteString(`<p class="field-error">` + esc(T(loc, "suggestion.email_invalid")) + `</p>`)
		}

		b.WriteString(`<label for="suggestion-message">` + esc(T(loc, "suggestion.message_label")) + `</label>`)
		b.WriteString(`<textarea id="suggestion-message" class="field" name="message" rows="5"` + disabled + `>` + esc(state.Message) + `</textarea>`)
		b.WriteString(`<p class="field-hint">` + esc(T(loc, "suggestion.message_hint")) + `</p>`)

		if sending {
			b.WriteString(`<button type="submit" disabled>` + esc(T(loc, "suggestion.sending")) + `</button>`)
		} else {
			b.WriteString(`<button type="submit">` + esc(T(loc, "suggestion.submit")) + `</button>`)
		}

		switch state.Status {
		case suggestion.StatusSuccess:
			b.WriteString(`<p class="status status-success" role="status">` + esc(T(loc, "suggestion.status.success")) + `</p>`)
		case suggestion.StatusError:
			b.WriteString(`<p class="status status-error" role="status">` + esc(T(loc, "suggestion.status.error")) + `</p>`)
		}

		b.WriteString(`</form></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
