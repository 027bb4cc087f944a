package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/content"
)

// HomeData carries everything the home page renders.
type HomeData struct {
	Loc        Localizer
	Lang       string
	Notices    []content.Notice
	Documents  []content.Document
	Events     []content.Event
	Suggestion SuggestionView
}

// HomeContent renders all sections of the single-page site in order.
func HomeContent(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []templ.Component{
			Hero(data.Loc),
			History(data.Loc),
			Academics(data.Loc),
			Facilities(data.Loc),
			Staff(data.Loc),
			Council(data.Loc),
			Notices(data.Loc, data.Lang, data.Notices),
			Downloads(data.Loc, data.Lang, data.Documents),
			Calendar(data.Loc, data.Lang, data.Events),
			Contact(data.Loc),
			SuggestionSection(data.Loc, data.Suggestion),
		}
		for _, part := range parts {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func sectionOpen(b *strings.Builder, id content.SectionID, loc Localizer, titleKey string) {
	esc := templ.EscapeString[string]
	b.WriteString(`<section id="` + esc(string(id)) + `" class="section" data-section="` + esc(string(id)) + `" data-reveal>`)
	b.WriteString(`<h2 class="section-title">` + esc(T(loc, titleKey)) + `</h2>`)
}

// Hero renders the opening banner above the sections.
func Hero(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		b.WriteString(`<section id="top" class="hero" data-reveal>`)
		b.WriteString(`<h1 class="hero-title">` + esc(T(loc, "hero.title")) + `</h1>`)
		b.WriteString(`<p class="hero-subtitle">` + esc(T(loc, "hero.subtitle")) + `</p>`)
		b.WriteString(`<a class="hero-cta" href="#history">` + esc(T(loc, "hero.cta")) + `</a>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// History renders the school history section.
func History(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionHistory, loc, "section.history.title")
		b.WriteString(`<p>` + esc(T(loc, "history.body1")) + `</p>`)
		b.WriteString(`<p>` + esc(T(loc, "history.body2")) + `</p>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Academics renders the academic model section.
func Academics(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionAcademics, loc, "section.academics.title")
		b.WriteString(`<p>` + esc(T(loc, "academics.intro")) + `</p>`)
		b.WriteString(`<div class="card-grid">`)
		for _, program := range []string{"academics.early_years", "academics.elementary", "academics.full_time"} {
			b.WriteString(`<article class="card">`)
			b.WriteString(`<h3>` + esc(T(loc, program+".title")) + `</h3>`)
			b.WriteString(`<p>` + esc(T(loc, program+".description")) + `</p>`)
			b.WriteString(`</article>`)
		}
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Facilities renders the campus facilities grid.
func Facilities(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionFacilities, loc, "section.facilities.title")
		b.WriteString(`<div class="card-grid">`)
		for _, facility := range content.Facilities() {
			b.WriteString(`<article class="card facility">`)
			b.WriteString(`<span class="icon icon-` + esc(facility.Icon) + `" aria-hidden="true"></span>`)
			b.WriteString(`<h3>` + esc(T(loc, facility.NameKey)) + `</h3>`)
			b.WriteString(`<p>` + esc(T(loc, facility.DescriptionKey)) + `</p>`)
			b.WriteString(`</article>`)
		}
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Staff renders the staff list.
func Staff(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionStaff, loc, "section.staff.title")
		b.WriteString(`<ul class="people">`)
		for _, member := range content.Staff() {
			b.WriteString(`<li class="person">`)
			b.WriteString(`<span class="person-name">` + esc(member.Name) + `</span>`)
			b.WriteString(`<span class="person-role">` + esc(T(loc, member.RoleKey)) + `</span>`)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Council renders the parent council section.
func Council(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionCouncil, loc, "section.council.title")
		b.WriteString(`<p>` + esc(T(loc, "council.intro")) + `</p>`)
		b.WriteString(`<ul class="people">`)
		for _, member := range content.Council() {
			b.WriteString(`<li class="person">`)
			b.WriteString(`<span class="person-name">` + esc(member.Name) + `</span>`)
			b.WriteString(`<span class="person-role">` + esc(T(loc, member.RoleKey)) + `</span>`)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Notices renders published announcements, pinned first.
func Notices(loc Localizer, lang string, notices []content.Notice) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionNotices, loc, "section.notices.title")
		if len(notices) == 0 {
			b.WriteString(`<p class="empty">` + esc(T(loc, "notices.empty")) + `</p>`)
		} else {
			b.WriteString(`<ul class="notices">`)
			for _, notice := range notices {
				b.WriteString(`<li class="notice">`)
				b.WriteString(`<h3>` + esc(notice.Title))
				if notice.Pinned {
					b.WriteString(` <span class="badge">` + esc(T(loc, "notices.pinned")) + `</span>`)
				}
				b.WriteString(`</h3>`)
				b.WriteString(`<time>` + esc(FormatDate(lang, notice.PublishedAt)) + `</time>`)
				b.WriteString(`<p>` + esc(notice.Body) + `</p>`)
				b.WriteString(`</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Downloads renders documents grouped by category. Documents arrive sorted
// by category, so a simple change check opens each group.
func Downloads(loc Localizer, lang string, documents []content.Document) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionDownloads, loc, "section.downloads.title")
		if len(documents) == 0 {
			b.WriteString(`<p class="empty">` + esc(T(loc, "downloads.empty")) + `</p>`)
		} else {
			currentCategory := ""
			open := false
			for _, document := range documents {
				if document.Category != currentCategory {
					if open {
						b.WriteString(`</ul>`)
					}
					currentCategory = document.Category
					b.WriteString(`<h3>` + esc(categoryLabel(loc, currentCategory)) + `</h3>`)
					b.WriteString(`<ul class="downloads">`)
					open = true
				}
				b.WriteString(`<li class="download">`)
				b.WriteString(`<a href="` + esc(document.FileURL) + `">` + esc(document.Title) + `</a>`)
				b.WriteString(` <time>` + esc(FormatDate(lang, document.PublishedAt)) + `</time>`)
				b.WriteString(`</li>`)
			}
			if open {
				b.WriteString(`</ul>`)
			}
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func categoryLabel(loc Localizer, category string) string {
	key := "downloads.category." + category
	label := T(loc, key)
	if label == key {
		return category
	}
	return label
}

// Calendar renders upcoming school events.
func Calendar(loc Localizer, lang string, events []content.Event) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		var b strings.Builder
		sectionOpen(&b, content.SectionCalendar, loc, "section.calendar.title")
		if len(events) == 0 {
			b.WriteString(`<p class="empty">` + esc(T(loc, "calendar.empty")) + `</p>`)
		} else {
			b.WriteString(`<ul class="events">`)
			for _, event := range events {
				b.WriteString(`<li class="event">`)
				b.WriteString(`<time>` + esc(FormatDateRange(lang, event.StartsOn, event.EndsOn)) + `</time>`)
				b.WriteString(`<span>` + esc(event.Title) + `</span>`)
				b.WriteString(`</li>`)
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// Contact renders the school's contact details.
func Contact(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		details := content.ContactDetails()
		var b strings.Builder
		sectionOpen(&b, content.SectionContact, loc, "section.contact.title")
		b.WriteString(`<dl class="contact">`)
		b.WriteString(`<dt>` + esc(T(loc, "contact.address_label")) + `</dt><dd>` + esc(T(loc, details.AddressKey)) + `</dd>`)
		b.WriteString(`<dt>` + esc(T(loc, "contact.phone_label")) + `</dt><dd>` + esc(details.Phone) + `</dd>`)
		b.WriteString(`<dt>` + esc(T(loc, "contact.email_label")) + `</dt><dd><a href="mailto:` + esc(details.Email) + `">` + esc(details.Email) + `</a></dd>`)
		b.WriteString(`<dt>` + esc(T(loc, "contact.hours_label")) + `</dt><dd>` + esc(T(loc, details.HoursKey)) + `</dd>`)
		b.WriteString(`</dl></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
