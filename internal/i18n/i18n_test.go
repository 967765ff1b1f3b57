package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLangNormalizes(t *testing.T) {
	defer SetLang("en")

	SetLang("ru_RU")
	assert.Equal(t, "ru", Lang())
	SetLang("pt-BR")
	assert.Equal(t, "pt", Lang())
	SetLang("de")
	assert.Equal(t, "en", Lang())
}

func TestTranslateFallsBackToKey(t *testing.T) {
	defer SetLang("en")

	SetLang("en")
	assert.Equal(t, "Time left: %d", T("Time left: %d"))
	SetLang("es")
	assert.Equal(t, "Tiempo restante: %d", T("Time left: %d"))
	assert.Equal(t, "OK", T("OK"))
	assert.Equal(t, "unknown key", T("unknown key"))
}

func TestFormatKeysKeepVerbs(t *testing.T) {
	for key, byLang := range translations {
		for code, translated := range byLang {
			assert.Equal(t, strings.Count(key, "%"), strings.Count(translated, "%"), "%s/%s", key, code)
		}
	}
}
