// Package i18n defines the languages the site speaks and how free-form
// language identifiers map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.MustParse("pt-BR"),
	language.MustParse("en-US"),
}

var matcher = language.NewMatcher(supported)

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// DefaultTag returns the site's default language.
func DefaultTag() language.Tag {
	return supported[0]
}

// ParseTag maps a raw language identifier to a supported tag. The bool is
// false when the value is empty, malformed, or too far from any supported
// language to trust.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence < language.High {
		return DefaultTag(), false
	}
	return supported[index], true
}

// MatchTags picks the best supported tag for an Accept-Language preference
// list, falling back to the default.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}
