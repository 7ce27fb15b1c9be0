// Package i18n provides locale resolution and message printing for the site.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "comandos_lang"
)

var portugueseBR = language.MustParse("pt-BR")

var supported = []language.Tag{portugueseBR, language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return supported
}

// Default returns the default language tag.
func Default() language.Tag {
	return portugueseBR
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag parses a raw language value into a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supported {
		if tag == parsed {
			return tag, true
		}
	}
	if _, index, confidence := matcher.Match(parsed); confidence >= language.High {
		return supported[index], true
	}
	return language.Tag{}, false
}

// MatchTags returns the best supported tag for the given preferences.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// ResolveTag determines the best language tag for the request. The bool
// indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}

	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
