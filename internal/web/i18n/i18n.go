// Package i18n resolves site languages from URL path codes and the
// Accept-Language header.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale pairs a URL path code with its BCP 47 tag and native name.
// Path codes are short and stable ("cn", "jp", "kr") and do not always
// match the tag they select.
type Locale struct {
	// Code is the path segment that selects this locale ("/en/...").
	Code string
	Tag  language.Tag
	// Name is the language's name in itself, shown in the footer switcher.
	Name string
}

// Locales lists every language the site serves, in footer display order.
var Locales = []Locale{
	{Code: "en", Tag: language.English, Name: "English"},
	{Code: "de", Tag: language.German, Name: "Deutsch"},
	{Code: "es", Tag: language.Spanish, Name: "Español"},
	{Code: "fr", Tag: language.French, Name: "Français"},
	{Code: "it", Tag: language.Italian, Name: "Italiano"},
	{Code: "pt", Tag: language.Portuguese, Name: "Português"},
	{Code: "pl", Tag: language.Polish, Name: "Polski"},
	{Code: "ru", Tag: language.Russian, Name: "Русский"},
	{Code: "tr", Tag: language.Turkish, Name: "Türkçe"},
	{Code: "cn", Tag: language.SimplifiedChinese, Name: "简体中文"},
	{Code: "th", Tag: language.Thai, Name: "ภาษาไทย"},
	{Code: "hu", Tag: language.Hungarian, Name: "Magyar"},
	{Code: "ro", Tag: language.Romanian, Name: "Română"},
	{Code: "jp", Tag: language.Japanese, Name: "日本語"},
	{Code: "kr", Tag: language.Korean, Name: "한국어"},
	{Code: "hi", Tag: language.Hindi, Name: "हिन्दी"},
}

var (
	byCode     = make(map[string]Locale, len(Locales))
	tagMatcher language.Matcher
)

func init() {
	tags := make([]language.Tag, 0, len(Locales))
	for _, locale := range Locales {
		byCode[locale.Code] = locale
		tags = append(tags, locale.Tag)
	}
	tagMatcher = language.NewMatcher(tags)
}

// Default returns the site's fallback locale.
func Default() Locale {
	return Locales[0]
}

// ByCode looks up a locale by its URL path code.
func ByCode(code string) (Locale, bool) {
	locale, ok := byCode[strings.ToLower(strings.TrimSpace(code))]
	return locale, ok
}

// Printer returns a message printer for the locale's tag.
func Printer(locale Locale) *message.Printer {
	return message.NewPrinter(locale.Tag)
}

const (
	// QueryKey forces a locale on the root redirect ("/?lang=jp").
	QueryKey = "lang"
	// CookieName remembers the visitor's last locale.
	CookieName = "symbl_lang"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// Resolve picks the best locale for a request that carries no path code.
// Precedence: lang query parameter, then the locale cookie, then the
// Accept-Language header, then the default. Used by the root redirect.
func Resolve(r *http.Request) Locale {
	if r == nil {
		return Default()
	}
	if locale, ok := ByCode(r.URL.Query().Get(QueryKey)); ok {
		return locale
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		if locale, ok := ByCode(cookie.Value); ok {
			return locale
		}
	}
	return resolveAccept(r.Header.Get("Accept-Language"))
}

// SetCookie remembers the locale for future root visits.
func SetCookie(w http.ResponseWriter, locale Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    locale.Code,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

func resolveAccept(accept string) Locale {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return Default()
	}
	wanted, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(wanted...)
	if confidence == language.No {
		return Default()
	}
	return Locales[index]
}
