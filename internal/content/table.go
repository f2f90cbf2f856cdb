package content

// Table is a topic-scoped resource table: the entries one authoring
// group owns (greetings, sync, pairing, …). Tables are merged into a
// Registry by Build; the table name only serves collision reports.
type Table struct {
	Name    string
	Entries []Entry
}
