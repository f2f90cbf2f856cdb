package content

import (
	"fmt"

	"golang.org/x/text/language"
)

// MissingTranslationError reports a key with no entry for the
// requested language. The resolver recovers from it by returning the
// placeholder; strict builds surface it to the caller.
type MissingTranslationError struct {
	Key  Key
	Lang language.Tag
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("missing translation: key=%s language=%s", e.Key, e.Lang)
}

// CollisionError reports two tables defining the same (key, language).
// Raised at build time so duplicate keys are caught before shipping.
type CollisionError struct {
	Key    Key
	Lang   language.Tag
	Tables [2]string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("registry collision: key=%s language=%s defined by tables %q and %q",
		e.Key, e.Lang, e.Tables[0], e.Tables[1])
}

// ArityError reports a call with the wrong argument count: arguments
// against a static entry, or a template invoked with a count other
// than its declared parameter list.
type ArityError struct {
	Key  Key
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: key=%s want=%d got=%d", e.Key, e.Want, e.Got)
}
