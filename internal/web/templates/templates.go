// Package templates renders the site's HTML as templ components. Components
// are hand-built with ComponentFunc so they stay unit-testable without a
// browser; dynamic values always go through templ.EscapeString.
package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/web/routepath"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// Toast is a one-time notice rendered at the top of the page.
type Toast struct {
	Kind    string
	Message string
}

// LayoutOptions carries the shared page chrome inputs.
type LayoutOptions struct {
	Title           string
	MetaDescription string
	Lang            string
	Loc             Localizer
	Toast           *Toast
}

// FormatDate renders a date in the conventions of the page language.
func FormatDate(lang string, value time.Time) string {
	if value.IsZero() {
		return ""
	}
	if strings.HasPrefix(lang, "pt") {
		return value.Format("02/01/2006")
	}
	return value.Format("Jan 2, 2006")
}

// FormatDateRange renders a single day or an interval.
func FormatDateRange(lang string, start, end time.Time) string {
	if end.IsZero() || !end.After(start) {
		return FormatDate(lang, start)
	}
	return FormatDate(lang, start) + " – " + FormatDate(lang, end)
}

// Layout renders the full page shell: head, fixed nav, toast, children
// inside main, footer.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder

		b.WriteString("<!doctype html>\n")
		b.WriteString(`<html lang="` + esc(opts.Lang) + `">`)
		b.WriteString(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + esc(opts.Title) + `</title>`)
		b.WriteString(`<meta name="description" content="` + esc(opts.MetaDescription) + `">`)
		b.WriteString(`<link rel="stylesheet" href="/static/site.css">`)
		b.WriteString(`<script src="/static/site.js" defer></script>`)
		b.WriteString(`</head><body>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if err := Nav(opts.Loc).Render(ctx, w); err != nil {
			return err
		}
		if opts.Toast != nil {
			if err := ToastNotice(*opts.Toast).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<main id="content">`); err != nil {
			return err
		}
		if children := templ.GetChildren(ctx); children != nil {
			if err := children.Render(ctx, w); err != nil {
				return err
			}
		}

		b.Reset()
		b.WriteString(`</main>`)
		b.WriteString(`<footer class="footer"><p>` + esc(T(opts.Loc, "site.name")) + ` — ` + esc(T(opts.Loc, "footer.rights")) + `</p></footer>`)
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Nav renders the fixed navigation bar with section anchors, the language
// switcher, and the mobile menu toggle.
func Nav(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder

		b.WriteString(`<header class="navbar" data-navbar>`)
		b.WriteString(`<a class="navbar-brand" href="` + routepath.Root + `">` + esc(T(loc, "site.name")) + `</a>`)
		b.WriteString(`<button class="navbar-toggle" type="button" data-menu-toggle aria-expanded="false" aria-controls="site-menu">` + esc(T(loc, "nav.menu")) + `</button>`)
		b.WriteString(`<nav id="site-menu" class="navbar-menu" data-menu>`)
		for _, section := range content.Sections() {
			b.WriteString(`<a class="navbar-link" href="#` + esc(string(section.ID)) + `" data-section-link="` + esc(string(section.ID)) + `">`)
			b.WriteString(esc(T(loc, section.NavKey)))
			b.WriteString(`</a>`)
		}
		b.WriteString(`<span class="navbar-langs">`)
		b.WriteString(`<a class="navbar-lang" href="/?lang=pt-BR">` + esc(T(loc, "nav.lang_pt_br")) + `</a>`)
		b.WriteString(`<a class="navbar-lang" href="/?lang=en-US">` + esc(T(loc, "nav.lang_en")) + `</a>`)
		b.WriteString(`</span>`)
		b.WriteString(`</nav></header>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ToastNotice renders a one-time flash notice.
func ToastNotice(toast Toast) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		kind := toast.Kind
		if kind == "" {
			kind = "info"
		}
		_, err := io.WriteString(w,
			`<div class="toast toast-`+esc(kind)+`" role="status" data-toast>`+esc(toast.Message)+`</div>`)
		return err
	})
}
