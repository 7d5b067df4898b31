package locale

import (
	"errors"
	"strings"
)

type Locale string

const (
	English Locale = "en"
	Arabic  Locale = "ar"

	Default = English
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

func All() []Locale {
	return []Locale{English, Arabic}
}

func Parse(s string) (Locale, error) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, nil
	case Arabic:
		return Arabic, nil
	default:
		return "", ErrUnsupportedLocale
	}
}

// Direction is the text direction used when rendering the locale.
func (l Locale) Direction() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Locale) Name() string {
	switch l {
	case Arabic:
		return "العربية"
	default:
		return "English"
	}
}

func (l Locale) Alternate() Locale {
	if l == English {
		return Arabic
	}
	return English
}

// Pick returns the Arabic text for Arabic and the English text otherwise.
func (l Locale) Pick(en, ar string) string {
	if l == Arabic {
		return ar
	}
	return en
}
