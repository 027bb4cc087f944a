package templates

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/web/routepath"
)

// ErrorContent renders the body of an error page for the given HTTP status.
func ErrorContent(loc Localizer, statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		titleKey, messageKey := "error.title_server", "error.message_server"
		if statusCode == http.StatusNotFound {
			titleKey, messageKey = "error.title_not_found", "error.message_not_found"
		}

		var b strings.Builder
		b.WriteString(`<section class="section error-page">`)
		b.WriteString(`<h2 class="section-title">` + esc(T(loc, titleKey)) + `</h2>`)
		b.WriteString(`<p>` + esc(T(loc, messageKey)) + `</p>`)
		b.WriteString(`<a href="` + routepath.Root + `">` + esc(T(loc, "error.back_home")) + `</a>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
