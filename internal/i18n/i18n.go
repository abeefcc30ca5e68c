// Package i18n holds the static message catalog. Messages are plain
// strings or fmt.Sprintf templates; lookup falls back across languages
// so a missing translation never breaks a reply.
package i18n

// Languages lists supported language codes in menu order.
var Languages = []string{"ru", "en", "lv"}

// DefaultLang is used for users without a stored preference.
const DefaultLang = "ru"

// Known reports whether code is a supported language.
func Known(code string) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}

// T resolves key in lang, falling back to English, then Russian,
// then the key itself.
func T(lang, key string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := catalog["en"][key]; ok {
		return s
	}
	if s, ok := catalog["ru"][key]; ok {
		return s
	}
	return key
}
