// Package i18n holds the UI string tables for the supported languages.
package i18n

import (
	"fmt"
	"strings"

	"parkbike/internal/domain"
)

type Lang string

const (
	English Lang = "en"
	Dutch   Lang = "nl"
	German  Lang = "de"
)

// Supported lists the selectable languages in menu order.
var Supported = []Lang{English, Dutch, German}

func ParseLang(code string) (Lang, error) {
	l := Lang(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := tables[l]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
}

// Name is the language's own name as shown in the language menu.
func (l Lang) Name() string {
	switch l {
	case English:
		return "English"
	case Dutch:
		return "Nederlands"
	case German:
		return "Deutsch"
	}
	return string(l)
}

// Translate looks key up in lang's table. Unknown keys and unsupported
// languages return key unchanged.
func Translate(lang Lang, key string) string {
	k, ok := ParseKey(key)
	if !ok {
		return key
	}
	return T(lang, k, key)
}

// T is the typed lookup; fallback is returned when lang has no table.
func T(lang Lang, k Key, fallback string) string {
	tbl, ok := tables[lang]
	if !ok || k < 0 || k >= numKeys {
		return fallback
	}
	if s := tbl[k]; s != "" {
		return s
	}
	return fallback
}
