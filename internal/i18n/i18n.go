// Package i18n provides the bilingual (en/hi) transient messages returned to
// the presentation layer. Translations are embedded JSON files named by
// language code.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed locales/*.json
var localeFS embed.FS

// Localizer holds a map of languages, each with its own map of translation
// keys and values. Immutable after New.
type Localizer struct {
	translations map[string]map[string]string
}

func New() (*Localizer, error) {
	l := &Localizer{translations: make(map[string]map[string]string)}

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".json")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", entry.Name(), err)
		}
		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", entry.Name(), err)
		}
		l.translations[lang] = translations
	}
	return l, nil
}

// T returns the localized string for key in lang, falling back to English and
// finally to the key itself.
func (l *Localizer) T(lang, key string) string {
	if values, ok := l.translations[lang]; ok {
		if v, ok := values[key]; ok {
			return v
		}
	}
	if lang != "en" {
		if values, ok := l.translations["en"]; ok {
			if v, ok := values[key]; ok {
				return v
			}
		}
	}
	return key
}

// Tf formats the localized string for key with args.
func (l *Localizer) Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(l.T(lang, key), args...)
}
