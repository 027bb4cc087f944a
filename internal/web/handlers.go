package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/suggestion"
	webi18n "github.com/brightfieldschool/site/internal/web/i18n"
	weberrors "github.com/brightfieldschool/site/internal/web/platform/errors"
	"github.com/brightfieldschool/site/internal/web/platform/flash"
	"github.com/brightfieldschool/site/internal/web/platform/httpx"
	"github.com/brightfieldschool/site/internal/web/routepath"
	"github.com/brightfieldschool/site/internal/web/static"
	"github.com/brightfieldschool/site/internal/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// noticeLimit caps how many announcements the home page lists.
const noticeLimit = 20

// Handler serves the site's routes.
type Handler struct {
	store    content.Store
	sessions *Sessions
	tracer   trace.Tracer
}

// NewHandler builds the site's HTTP handler.
func NewHandler(store content.Store, sessions *Sessions) http.Handler {
	h := &Handler{
		store:    store,
		sessions: sessions,
		tracer:   otel.Tracer("web"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(routepath.Root, h.notFound)
	mux.HandleFunc("GET /{$}", h.home)
	mux.Handle(routepath.Suggestions, httpx.Chain(http.HandlerFunc(h.suggest), httpx.RequireMethod(http.MethodPost)))
	mux.HandleFunc("GET "+routepath.Health, h.health)
	mux.Handle("GET "+routepath.StaticPrefix, static.Handler(routepath.StaticPrefix))

	return httpx.Chain(mux, httpx.RequestID(), httpx.Recover())
}

// home renders the full single-page site.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "web.home")
	defer span.End()

	loc, lang := webi18n.ResolveLocalizer(w, r)

	var toast *templates.Toast
	if notice, ok := flash.ReadAndClear(w, r); ok {
		toast = &templates.Toast{Kind: string(notice.Kind), Message: loc.Sprintf(notice.Key)}
	}

	form, err := h.sessions.Form(w, r)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	data := templates.HomeData{
		Loc:        loc,
		Lang:       lang,
		Suggestion: templates.SuggestionView{State: form.Snapshot()},
	}

	// Store reads are best effort: a listing failure logs and leaves its
	// section empty rather than taking the whole page down.
	if notices, err := h.store.ListNotices(ctx, noticeLimit); err != nil {
		log.Printf("web: list notices: %v", err)
	} else {
		data.Notices = notices
	}
	if documents, err := h.store.ListDocuments(ctx); err != nil {
		log.Printf("web: list documents: %v", err)
	} else {
		data.Documents = documents
	}
	from := time.Now().Truncate(24 * time.Hour)
	if events, err := h.store.ListEvents(ctx, from); err != nil {
		log.Printf("web: list events: %v", err)
	} else {
		data.Events = events
	}

	page := templates.Layout(templates.LayoutOptions{
		Title:           loc.Sprintf("site.name"),
		MetaDescription: loc.Sprintf("meta.description"),
		Lang:            lang,
		Loc:             loc,
		Toast:           toast,
	})
	h.renderPage(ctx, w, http.StatusOK, page, templates.HomeContent(data))
}

// suggest drives one submission attempt and redirects back to the form with
// the outcome as a flash notice.
func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(httpx.RequestContext(r), "web.suggest")
	defer span.End()

	form, err := h.sessions.Form(w, r)
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		flash.Write(w, r, flash.NoticeError("suggestion.flash.invalid"))
		httpx.WriteRedirect(w, r, routepath.SectionAnchor(string(content.SectionSuggestions)))
		return
	}

	// Field values are handed over verbatim; the form owns validation and
	// stores what the visitor typed.
	form.UpdateEmail(r.PostFormValue("email"))
	form.UpdateMessage(r.PostFormValue("message"))

	var notice flash.Notice
	if err := classifySubmit(form.Submit(ctx)); err != nil {
		if weberrors.HTTPStatus(err) >= http.StatusInternalServerError {
			log.Printf("web: suggestion submit: %v", err)
		}
		notice = flash.NoticeError(weberrors.LocalizationKey(err))
	} else {
		notice = flash.NoticeSuccess("suggestion.flash.sent")
	}

	flash.Write(w, r, notice)
	httpx.WriteRedirect(w, r, routepath.SectionAnchor(string(content.SectionSuggestions)))
}

// classifySubmit converts a form submission error into a typed web error
// carrying the flash localization key.
func classifySubmit(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, suggestion.ErrBusy):
		return weberrors.EK(weberrors.KindUnavailable, "suggestion.flash.busy", "submission already in flight")
	case errors.Is(err, suggestion.ErrInvalidInput):
		return weberrors.EK(weberrors.KindInvalidInput, "suggestion.flash.invalid", "email or message failed validation")
	default:
		return weberrors.EK(weberrors.KindUnknown, "suggestion.flash.failed", err.Error())
	}
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok")); err != nil {
		log.Printf("web: write health response: %v", err)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, http.StatusNotFound)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int) {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := templates.Layout(templates.LayoutOptions{
		Title: loc.Sprintf("site.name"),
		Lang:  lang,
		Loc:   loc,
	})
	h.renderPage(httpx.RequestContext(r), w, status, page, templates.ErrorContent(loc, status))
}

// renderPage renders a layout with the given child component into the
// response.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, layout, child templ.Component) {
	var b strings.Builder
	renderCtx := templ.WithChildren(ctx, child)
	if err := layout.Render(renderCtx, &b); err != nil {
		log.Printf("web: render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if err := httpx.WriteHTML(w, status, b.String()); err != nil {
		log.Printf("web: write page: %v", err)
	}
}
