package output

import "time"

// Formatter is the display-time formatting collaborator consumed by
// template entries. It is synchronous and side-effect free.
type Formatter interface {
	// Format renders t using a moment-style display pattern such as
	// "h:mma" or "MMM D". An empty or malformed pattern is a
	// configuration error and is returned as such.
	Format(t time.Time, pattern string) (string, error)

	// Relative renders t as a phrase relative to now ("5 minutes
	// ago"). now is passed explicitly so one resolution keeps a single
	// consistent clock reading.
	Relative(t, now time.Time) string
}
