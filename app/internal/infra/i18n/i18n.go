package i18n

import (
	"embed"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
)

//go:embed locales/*.json
var localesFS embed.FS

var placeholder = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)

type FAQEntry struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Translator serves the UI dictionaries and FAQ for every supported locale.
type Translator struct {
	raw  map[locale.Locale]map[string]any
	flat map[locale.Locale]map[string]string
	faq  map[locale.Locale][]FAQEntry
}

func New() (*Translator, error) {
	t := &Translator{
		raw:  make(map[locale.Locale]map[string]any),
		flat: make(map[locale.Locale]map[string]string),
	}
	for _, l := range locale.All() {
		data, err := localesFS.ReadFile("locales/" + string(l) + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "read %s dictionary", l)
		}
		var dict map[string]any
		if err := json.Unmarshal(data, &dict); err != nil {
			return nil, errors.Wrapf(err, "decode %s dictionary", l)
		}
		flat := make(map[string]string)
		flatten("", dict, flat)
		t.raw[l] = dict
		t.flat[l] = flat
	}

	data, err := localesFS.ReadFile("locales/faq.json")
	if err != nil {
		return nil, errors.Wrap(err, "read faq")
	}
	if err := json.Unmarshal(data, &t.faq); err != nil {
		return nil, errors.Wrap(err, "decode faq")
	}
	return t, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}

// Lookup resolves a dotted key such as "cart.title". Keys missing from l
// fall back to the default locale, then to the key itself.
func (t *Translator) Lookup(l locale.Locale, key string) string {
	if v, ok := t.flat[l][key]; ok {
		return v
	}
	if v, ok := t.flat[locale.Default][key]; ok {
		return v
	}
	return key
}

// Translate is Lookup followed by Format.
func (t *Translator) Translate(l locale.Locale, key string, args map[string]string) string {
	return Format(t.Lookup(l, key), args)
}

// Messages returns the whole dictionary of l as nested objects.
func (t *Translator) Messages(l locale.Locale) map[string]any {
	if dict, ok := t.raw[l]; ok {
		return dict
	}
	return t.raw[locale.Default]
}

func (t *Translator) FAQ(l locale.Locale) []FAQEntry {
	entries, ok := t.faq[l]
	if !ok {
		entries = t.faq[locale.Default]
	}
	out := make([]FAQEntry, len(entries))
	copy(out, entries)
	return out
}

// Format replaces {{name}} placeholders with args[name]. Unknown
// placeholders are left as they are.
func Format(template string, args map[string]string) string {
	if len(args) == 0 || !strings.Contains(template, "{{") {
		return template
	}
	return placeholder.ReplaceAllStringFunc(template, func(m string) string {
		name := placeholder.FindStringSubmatch(m)[1]
		if v, ok := args[name]; ok {
			return v
		}
		return m
	})
}
