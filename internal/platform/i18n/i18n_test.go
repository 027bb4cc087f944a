package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsPortuguese(t *testing.T) {
	t.Parallel()

	if got := DefaultTag().String(); got != "pt-BR" {
		t.Fatalf("DefaultTag() = %q, want %q", got, "pt-BR")
	}
}

func TestSupportedTagsCopyIsIndependent(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("len(SupportedTags()) = %d, want 2", len(tags))
	}
	tags[0] = language.Und
	if DefaultTag() == language.Und {
		t.Fatal("mutating the returned slice changed the supported set")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
		ok    bool
	}{
		{"exact pt-BR", "pt-BR", "pt-BR", true},
		{"bare pt", "pt", "pt-BR", true},
		{"exact en-US", "en-US", "en-US", true},
		{"bare en", "en", "en-US", true},
		{"british english", "en-GB", "en-US", true},
		{"empty", "", "pt-BR", false},
		{"garbage", "!!!", "pt-BR", false},
		{"unsupported", "zh-Hans", "pt-BR", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tag, ok := ParseTag(tt.value)
			if ok != tt.ok {
				t.Fatalf("ParseTag(%q) ok = %t, want %t", tt.value, ok, tt.ok)
			}
			if tag.String() != tt.want {
				t.Fatalf("ParseTag(%q) = %q, want %q", tt.value, tag.String(), tt.want)
			}
		})
	}
}

func TestMatchTagsPrefersRequestedLanguage(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.MustParse("en-GB"), language.MustParse("pt-BR")})
	if got.String() != "en-US" {
		t.Fatalf("MatchTags() = %q, want %q", got.String(), "en-US")
	}
	if got := MatchTags(nil); got.String() != "pt-BR" {
		t.Fatalf("MatchTags(nil) = %q, want default %q", got.String(), "pt-BR")
	}
}
