package input

import (
	"golang.org/x/text/language"

	"cycletext/internal/content"
)

// TextResolver is the use case delivery adapters call to obtain
// localized text.
type TextResolver interface {
	// Resolve evaluates the entry bound to (key, lang) with args. A
	// missing key degrades to content.Placeholder; evaluation failures
	// (formatter misconfiguration, strict-mode arity errors) are
	// returned.
	Resolve(lang language.Tag, key content.Key, args ...content.Value) (content.Value, error)

	// Text is Resolve for plain-string keys: failures and non-string
	// shapes degrade to content.Placeholder after logging.
	Text(lang language.Tag, key content.Key, args ...content.Value) string
}
