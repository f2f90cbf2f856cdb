package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	b, err := NewLegacyBundle(language.English)
	require.NoError(t, err)

	msg, ok := b.Lookup(language.English, "label.settings")
	assert.True(t, ok)
	assert.Equal(t, "Settings", msg)

	msg, ok = b.Lookup(language.German, "label.settings")
	assert.True(t, ok)
	assert.Equal(t, "Einstellungen", msg)
}

func TestLookup_FallsBackToDefaultLanguage(t *testing.T) {
	b, err := NewLegacyBundle(language.English)
	require.NoError(t, err)

	msg, ok := b.Lookup(language.Spanish, "legal.disclaimer")
	assert.True(t, ok)
	assert.Contains(t, msg, "not a contraceptive")
}

func TestLookup_Miss(t *testing.T) {
	b, err := NewLegacyBundle(language.English)
	require.NoError(t, err)

	_, ok := b.Lookup(language.English, "does.not.exist")
	assert.False(t, ok)

	_, ok = b.Lookup(language.English, "")
	assert.False(t, ok)
}
