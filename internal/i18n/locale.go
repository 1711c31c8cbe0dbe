// Package i18n holds the locale codes and localized text containers shared
// by the catalog and the presentation layer. The backend serves every
// user-facing string in all three locales at once; this package owns picking
// one of them and nothing else (translation tables stay with presentation).
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

type Locale string

const (
	EN Locale = "en"
	UZ Locale = "uz"
	RU Locale = "ru"
)

// Default is the locale used before the user ever picks one.
const Default = EN

func Locales() []Locale { return []Locale{EN, UZ, RU} }

// Parse accepts only the exact supported codes.
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case EN, UZ, RU:
		return Locale(s), nil
	}
	return "", fmt.Errorf("i18n: unsupported locale %q", s)
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // index order must mirror the Locale list below
	language.Uzbek,
	language.Russian,
})

var byIndex = []Locale{EN, UZ, RU}

// Match resolves an Accept-Language style value ("uz-Cyrl, ru;q=0.8") to the
// closest supported locale, falling back to def when nothing matches.
func Match(header string, def Locale) Locale {
	if header == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return byIndex[idx]
}
