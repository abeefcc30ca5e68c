package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackChain(t *testing.T) {
	assert.Equal(t, "Main menu:", T("en", "main_menu"))
	assert.Equal(t, "Главное меню:", T("ru", "main_menu"))
	// Unknown language falls back to English.
	assert.Equal(t, "Main menu:", T("de", "main_menu"))
	// Unknown key resolves to itself.
	assert.Equal(t, "no_such_key", T("ru", "no_such_key"))
}

func TestCatalogsCoverRussianKeys(t *testing.T) {
	base := catalog["ru"]
	require.NotEmpty(t, base)
	for _, lang := range Languages {
		m, ok := catalog[lang]
		require.True(t, ok, "missing catalog for %s", lang)
		for key := range base {
			assert.Contains(t, m, key, "lang %s", lang)
		}
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("lv"))
	assert.False(t, Known("xx"))
}
