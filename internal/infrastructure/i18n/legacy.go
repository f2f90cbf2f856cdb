package i18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"cycletext/internal/ports/output"
)

//go:embed legacy.*.toml
var localeFS embed.FS

// Ensure LegacyBundle implements the output.LegacyCatalog port.
var _ output.LegacyCatalog = (*LegacyBundle)(nil)

// LegacyBundle is a thin wrapper around go-i18n's Bundle/Localizer.
// It serves the flat strings that predate the content engine (legal
// text, simple labels) from the embedded legacy.*.toml files; the
// resolver consults it only when the registry has no entry.
type LegacyBundle struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewLegacyBundle loads the embedded legacy locale files. A file that
// fails to load is a packaging error and fails startup.
func NewLegacyBundle(defaultLanguage language.Tag) (*LegacyBundle, error) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"legacy.en.toml", "legacy.de.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}

	return &LegacyBundle{
		bundle:          bundle,
		defaultLanguage: defaultLanguage,
	}, nil
}

// Lookup renders the message identified by key for lang, falling back
// to the default language. A miss returns ok=false and is not logged
// here: the resolver owns the single missing-key diagnostic.
func (b *LegacyBundle) Lookup(lang language.Tag, key string) (string, bool) {
	if key == "" {
		return "", false
	}

	localizer := i18n.NewLocalizer(b.bundle, lang.String(), b.defaultLanguage.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return "", false
	}
	return msg, true
}
