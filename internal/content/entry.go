package content

import (
	"golang.org/x/text/language"

	"cycletext/internal/domain/entities"
	"cycletext/internal/ports/output"
)

// Env is everything a template may consult besides its arguments: one
// immutable state snapshot and the formatter collaborator. Templates
// must take "now" from Env.State.Now so a single resolution never
// observes two different clocks.
type Env struct {
	State  entities.StateSnapshot
	Format output.Formatter
}

// TemplateFunc computes an entry's value from explicit arguments and
// the snapshot. It must be pure given those inputs.
type TemplateFunc func(args []Value, env Env) (Value, error)

type kind uint8

const (
	kindStatic kind = iota + 1
	kindTemplate
)

// Entry is one localized content unit: the per-language definition
// bound to a key, either a fixed value or a template. The variant is
// decided at authoring time, never probed at runtime.
type Entry struct {
	Key  Key
	Lang language.Tag

	// Description records intent for translators and reviewers. It is
	// never read on the resolution path.
	Description string

	// Params documents a template's exact expected arguments, in call
	// order. Empty for static entries.
	Params []string

	kind  kind
	value Value
	fn    TemplateFunc
}

// Static authors a fixed-value entry.
func Static(key Key, lang language.Tag, description string, value Value) Entry {
	return Entry{Key: key, Lang: lang, Description: description, kind: kindStatic, value: value}
}

// Template authors a computed entry with the given parameter list.
func Template(key Key, lang language.Tag, description string, params []string, fn TemplateFunc) Entry {
	return Entry{Key: key, Lang: lang, Description: description, Params: params, kind: kindTemplate, fn: fn}
}

// IsTemplate reports the variant; the zero Entry is neither and is
// rejected by Build.
func (e Entry) IsTemplate() bool { return e.kind == kindTemplate }

// Arity is the number of arguments a template expects (0 for static).
func (e Entry) Arity() int { return len(e.Params) }

// StaticValue returns the authored value of a static entry.
func (e Entry) StaticValue() Value { return e.value }

// Invoke evaluates a template entry.
func (e Entry) Invoke(args []Value, env Env) (Value, error) {
	return e.fn(args, env)
}

func (e Entry) valid() bool {
	switch e.kind {
	case kindStatic:
		return e.Key != "" && e.value != nil
	case kindTemplate:
		return e.Key != "" && e.fn != nil
	}
	return false
}
