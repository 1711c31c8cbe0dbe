package i18n

import "strings"

// Text is a user-facing string in every supported locale. Entities reaching
// the UI must carry all three variants; partial localization is rejected at
// fetch time rather than rendered ambiguously.
type Text struct {
	EN string `json:"en"`
	UZ string `json:"uz"`
	RU string `json:"ru"`
}

func (t Text) In(l Locale) string {
	switch l {
	case UZ:
		return t.UZ
	case RU:
		return t.RU
	}
	return t.EN
}

func (t Text) Complete() bool {
	return strings.TrimSpace(t.EN) != "" &&
		strings.TrimSpace(t.UZ) != "" &&
		strings.TrimSpace(t.RU) != ""
}

// MissingLocales lists the locales without a value, for audit reports.
func (t Text) MissingLocales() []Locale {
	var out []Locale
	for _, l := range Locales() {
		if strings.TrimSpace(t.In(l)) == "" {
			out = append(out, l)
		}
	}
	return out
}

// List is an ordered sequence of strings per locale (amenities and the like).
// Order within each locale is meaningful and preserved.
type List struct {
	EN []string `json:"en"`
	UZ []string `json:"uz"`
	RU []string `json:"ru"`
}

func (l List) In(loc Locale) []string {
	switch loc {
	case UZ:
		return l.UZ
	case RU:
		return l.RU
	}
	return l.EN
}

func (l List) Complete() bool {
	return len(l.EN) > 0 && len(l.UZ) > 0 && len(l.RU) > 0
}
