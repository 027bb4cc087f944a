package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func mustTag(t *testing.T, value string) language.Tag {
	t.Helper()
	tag, err := language.Parse(value)
	if err != nil {
		t.Fatalf("parse tag %q: %v", value, err)
	}
	return tag
}

func TestResolveTagPrefersQueryParam(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=en-US", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	tag, persist := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %q, want %q", tag.String(), "en-US")
	}
	if !persist {
		t.Fatal("persist = false, want true for explicit selection")
	}
}

func TestResolveTagReadsCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en-US"})
	tag, persist := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %q, want %q", tag.String(), "en-US")
	}
	if persist {
		t.Fatal("persist = true for cookie value, want false")
	}
}

func TestResolveTagFallsBackToAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-GB;q=0.9, fr;q=0.5")
	tag, _ := ResolveTag(req)
	if tag.String() != "en-US" {
		t.Fatalf("tag = %q, want matched %q", tag.String(), "en-US")
	}
}

func TestResolveTagDefault(t *testing.T) {
	t.Parallel()

	tag, persist := ResolveTag(httptest.NewRequest(http.MethodGet, "/", nil))
	if tag.String() != "pt-BR" {
		t.Fatalf("tag = %q, want default %q", tag.String(), "pt-BR")
	}
	if persist {
		t.Fatal("persist = true for default, want false")
	}

	tag, _ = ResolveTag(nil)
	if tag.String() != "pt-BR" {
		t.Fatalf("tag for nil request = %q, want default", tag.String())
	}
}

func TestResolveLocalizerPersistsExplicitSelection(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	_, lang := ResolveLocalizer(rec, req)
	if lang != "en-US" {
		t.Fatalf("lang = %q, want %q", lang, "en-US")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName {
		t.Fatalf("cookies = %v, want one %s cookie", cookies, LangCookieName)
	}
	if cookies[0].Value != "en-US" {
		t.Fatalf("cookie value = %q, want %q", cookies[0].Value, "en-US")
	}
}

func TestCatalogsCoverBothLanguages(t *testing.T) {
	t.Parallel()

	keys := []string{
		"site.name",
		"nav.suggestions",
		"hero.title",
		"section.history.title",
		"suggestion.flash.sent",
		"suggestion.flash.failed",
		"error.title_not_found",
	}
	for _, langValue := range []string{"pt-BR", "en-US"} {
		for _, key := range keys {
			printer := Printer(mustTag(t, langValue))
			if got := printer.Sprintf(key); got == key || got == "" {
				t.Errorf("%s: key %q has no translation (got %q)", langValue, key, got)
			}
		}
	}
}
