// Package format renders timestamps for display. Screen configs ship
// moment-style patterns ("h:mma", "MMM D"), so Format translates those
// into Go reference layouts instead of asking callers to know both
// dialects.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Formatter renders timestamps in a fixed display location.
type Formatter struct {
	loc *time.Location
}

// New creates a Formatter rendering in loc. A nil loc means local time.
func New(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{loc: loc}
}

// Format renders t using a moment-style display pattern. A zero time
// renders as the empty string; an empty or malformed pattern is a
// configuration error.
func (f *Formatter) Format(t time.Time, pattern string) (string, error) {
	layout, err := Layout(pattern)
	if err != nil {
		return "", err
	}
	if t.IsZero() {
		return "", nil
	}
	return t.In(f.loc).Format(layout), nil
}

// Relative renders t as a phrase relative to now ("5 minutes ago",
// "in 3 days"). now comes from the caller so one resolution keeps a
// single clock reading.
func (f *Formatter) Relative(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}

	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var phrase string
	switch {
	case d < time.Minute:
		if future {
			return "in under a minute"
		}
		return "just now"
	case d < 2*time.Minute:
		phrase = "a minute"
	case d < time.Hour:
		phrase = fmt.Sprintf("%d minutes", d/time.Minute)
	case d < 2*time.Hour:
		phrase = "an hour"
	case d < 24*time.Hour:
		phrase = fmt.Sprintf("%d hours", d/time.Hour)
	case d < 48*time.Hour:
		phrase = "a day"
	default:
		phrase = fmt.Sprintf("%d days", d/(24*time.Hour))
	}

	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

// tokens maps moment-style pattern tokens to Go reference layouts.
// Longer tokens of a family come first so matching is greedy.
var tokens = []struct {
	pat    string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"DD", "02"},
	{"D", "2"},
	{"HH", "15"},
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"ZZ", "-0700"},
	{"Z", "Z07:00"},
	{"A", "PM"},
	{"a", "pm"},
}

// Layout translates a moment-style pattern into a Go reference layout.
// Text inside [brackets] is literal; non-letter characters pass
// through; an unsupported letter token fails.
func Layout(pattern string) (string, error) {
	if pattern == "" {
		return "", errors.New("format: empty pattern")
	}

	var b strings.Builder
	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c == '[' {
			end := strings.IndexByte(pattern[i:], ']')
			if end < 0 {
				return "", fmt.Errorf("format: unclosed literal in pattern %q", pattern)
			}
			b.WriteString(pattern[i+1 : i+end])
			i += end + 1
			continue
		}
		if !isPatternLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}
		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(pattern[i:], t.pat) {
				b.WriteString(t.layout)
				i += len(t.pat)
				matched = true
				break
			}
		}
		if !matched {
			return "", fmt.Errorf("format: unsupported token %q in pattern %q", string(c), pattern)
		}
	}
	return b.String(), nil
}

func isPatternLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
