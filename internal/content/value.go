package content

// Value is the resolved form of an entry: a plain string or one of the
// structured records below. The shape is fixed per key and documented
// on the entry; callers assert the type they expect.
type Value any

// Placeholder is what resolution degrades to when a key has no entry
// for the requested language. Empty on purpose: the UI renders nothing
// rather than a raw key or an error code.
const Placeholder = ""

// Dialog is the shape of confirmation-dialog entries.
type Dialog struct {
	Title       string
	Message     string
	ConfirmText string
}

// Prompt is the shape of input-prompt entries.
type Prompt struct {
	Title       string
	Placeholder string
}
