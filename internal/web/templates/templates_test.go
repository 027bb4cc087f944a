package templates

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/suggestion"
	webi18n "github.com/brightfieldschool/site/internal/web/i18n"
	"golang.org/x/text/language"
)

func render(t *testing.T, component templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := component.Render(context.Background(), &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	return b.String()
}

func printer(t *testing.T, lang string) Localizer {
	t.Helper()
	tag, err := language.Parse(lang)
	if err != nil {
		t.Fatalf("parse %q: %v", lang, err)
	}
	return webi18n.Printer(tag)
}

func TestLayout(t *testing.T) {
	t.Parallel()

	loc := printer(t, "pt-BR")
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hello</p>`)
		return err
	})
	page := Layout(LayoutOptions{
		Title:           "Escola Brightfield",
		MetaDescription: "desc",
		Lang:            "pt-BR",
		Loc:             loc,
		Toast:           &Toast{Kind: "success", Message: "feito"},
	})

	var b strings.Builder
	ctx := templ.WithChildren(context.Background(), child)
	if err := page.Render(ctx, &b); err != nil {
		t.Fatalf("render: %v", err)
	}
	html := b.String()

	for _, want := range []string{
		`<html lang="pt-BR">`,
		`<title>Escola Brightfield</title>`,
		`<p id="child">hello</p>`,
		`toast-success`,
		`href="/static/site.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("layout missing %q", want)
		}
	}
	if strings.Index(html, `data-navbar`) > strings.Index(html, `<main`) {
		t.Error("nav should render before main content")
	}
}

func TestNavListsAllSections(t *testing.T) {
	t.Parallel()

	html := render(t, Nav(printer(t, "en-US")))
	for _, section := range content.Sections() {
		want := `data-section-link="` + string(section.ID) + `"`
		if !strings.Contains(html, want) {
			t.Errorf("nav missing %q", want)
		}
	}
	if !strings.Contains(html, `href="/?lang=en-US"`) {
		t.Error("nav missing language switcher")
	}
}

func TestSuggestionSectionIdle(t *testing.T) {
	t.Parallel()

	html := render(t, SuggestionSection(printer(t, "en-US"), SuggestionView{
		State: suggestion.State{EmailValid: true, Status: suggestion.StatusIdle},
	}))
	for _, want := range []string{
		`action="/suggestions"`,
		`name="email"`,
		`name="message"`,
		`suggestion-idle`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("idle form missing %q", want)
		}
	}
	if strings.Contains(html, "field-invalid") {
		t.Error("idle form should not flag the email field")
	}
	if strings.Contains(html, "disabled") {
		t.Error("idle form should not be disabled")
	}
}

func TestSuggestionSectionPreservesInputAndEscapes(t *testing.T) {
	t.Parallel()

	html := render(t, SuggestionSection(printer(t, "en-US"), SuggestionView{
		State: suggestion.State{
			Email:      `"><script>`,
			Message:    "ideas & more",
			EmailValid: false,
			Status:     suggestion.StatusError,
		},
	}))
	if strings.Contains(html, "<script>") {
		t.Fatal("email value rendered unescaped")
	}
	if !strings.Contains(html, "ideas &amp; more") {
		t.Error("message value not preserved")
	}
	if !strings.Contains(html, "field-invalid") {
		t.Error("invalid email not flagged")
	}
	if !strings.Contains(html, "status-error") {
		t.Error("error status not rendered")
	}
}

func TestSuggestionSectionSendingDisablesForm(t *testing.T) {
	t.Parallel()

	html := render(t, SuggestionSection(printer(t, "pt-BR"), SuggestionView{
		State: suggestion.State{EmailValid: true, Status: suggestion.StatusSending},
	}))
	if !strings.Contains(html, "suggestion-sending") {
		t.Error("sending class missing")
	}
	if strings.Count(html, "disabled") < 3 {
		t.Errorf("inputs and button should all be disabled, html: %s", html)
	}
}

func TestNoticesPinnedBadgeAndEmptyState(t *testing.T) {
	t.Parallel()

	loc := printer(t, "pt-BR")
	empty := render(t, Notices(loc, "pt-BR", nil))
	if !strings.Contains(empty, "Nenhum aviso") {
		t.Error("empty state missing")
	}

	published := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	html := render(t, Notices(loc, "pt-BR", []content.Notice{
		{Title: "Reunião de pais", Body: "Dia 20.", Pinned: true, PublishedAt: published},
	}))
	if !strings.Contains(html, "Fixado") {
		t.Error("pinned badge missing")
	}
	if !strings.Contains(html, "09/03/2026") {
		t.Errorf("date not localized, html: %s", html)
	}
}

func TestDownloadsGroupsByCategory(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC)
	html := render(t, Downloads(printer(t, "en-US"), "en-US", []content.Document{
		{Title: "Enrollment form", Category: "enrollment", FileURL: "/files/form.pdf", PublishedAt: when},
		{Title: "Lunch menu", Category: "cafeteria", FileURL: "/files/menu.pdf", PublishedAt: when},
	}))
	if strings.Count(html, "<h3>") != 2 {
		t.Errorf("want 2 category headings, html: %s", html)
	}
	if !strings.Contains(html, `href="/files/form.pdf"`) {
		t.Error("document link missing")
	}
	if !strings.Contains(html, "Enrollment") {
		t.Error("category label not translated")
	}
}

func TestCalendarDateRanges(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)
	html := render(t, Calendar(printer(t, "en-US"), "en-US", []content.Event{
		{Title: "Book fair", StartsOn: start, EndsOn: end},
		{Title: "Holiday", StartsOn: start, EndsOn: start},
	}))
	if !strings.Contains(html, "Jun 10, 2026 – Jun 12, 2026") {
		t.Errorf("range not rendered, html: %s", html)
	}
	if strings.Count(html, "Jun 10, 2026") != 2 {
		t.Errorf("single-day event should render one date, html: %s", html)
	}
}

func TestErrorContentNotFound(t *testing.T) {
	t.Parallel()

	html := render(t, ErrorContent(printer(t, "en-US"), 404))
	if !strings.Contains(html, "Page not found") {
		t.Error("not-found title missing")
	}
	if !strings.Contains(html, `href="/"`) {
		t.Error("back link missing")
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC)
	if got := FormatDate("pt-BR", when); got != "05/08/2026" {
		t.Errorf("FormatDate(pt-BR) = %q, want %q", got, "05/08/2026")
	}
	if got := FormatDate("en-US", when); got != "Aug 5, 2026" {
		t.Errorf("FormatDate(en-US) = %q, want %q", got, "Aug 5, 2026")
	}
	if got := FormatDate("en-US", time.Time{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}
