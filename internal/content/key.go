package content

// Key names one piece of user-facing text. Keys are stable,
// process-wide unique identifiers; the catalog declares them next to
// the entries that define them.
type Key string

func (k Key) String() string { return string(k) }
