package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogsHaveSameKeys(t *testing.T) {
	ko := catalogs[LocaleKorean]
	en := catalogs[LocaleEnglish]
	assert.Equal(t, len(ko), len(en))
	for key := range ko {
		_, ok := en[key]
		assert.True(t, ok, "missing english text for %s", key)
	}
}

func TestT(t *testing.T) {
	ko := Translator(LocaleKorean)
	assert.Equal(t, "📊 그래프 시각화", T(ko, KeyPageTitle))
	assert.Equal(t, "데이터3", T(ko, "bar.category", "3"))
	assert.Equal(t, "no.such.key", T(ko, "no.such.key"))

	en := Translator(LocaleEnglish)
	assert.Equal(t, "Group 2", T(en, "box.group", "2"))
}

func TestTranslatorFallsBackToKorean(t *testing.T) {
	assert.Equal(t, LocaleKorean, Translator("fr").Locale())
}

func TestNegotiate(t *testing.T) {
	enabled := []string{LocaleKorean, LocaleEnglish}

	assert.Equal(t, "en", Negotiate("en", "ko-KR", "ko", enabled))
	assert.Equal(t, "en", Negotiate("EN-us", "", "ko", enabled))
	assert.Equal(t, "en", Negotiate("", "fr-FR,en-US;q=0.8", "ko", enabled))
	assert.Equal(t, "ko", Negotiate("fr", "de", "ko", enabled))
	assert.Equal(t, "ko", Negotiate("en", "en", "ko", []string{LocaleKorean}))
	assert.Equal(t, "ko", Negotiate("", "!!", "ko", enabled))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "한국어", DisplayName("ko"))
	assert.Equal(t, "English", DisplayName("en"))
	assert.Equal(t, "??", DisplayName("??"))
}
