package output

import "golang.org/x/text/language"

// LegacyCatalog serves flat strings that have not been migrated into
// the engine's tables yet. The resolver consults it only after a
// registry miss.
type LegacyCatalog interface {
	// Lookup returns the string for key in lang, falling back to the
	// bundle's default language. No logging, no key echo: a miss is
	// the resolver's to report, exactly once.
	Lookup(lang language.Tag, key string) (string, bool)
}
