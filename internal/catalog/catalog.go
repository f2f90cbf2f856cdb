// Package catalog holds the authored resource tables of the companion
// app, one file per topic, in English and German. Tables() is the
// canonical fold order for content.Build; flat strings that predate
// the engine live in the legacy TOML bundle instead.
package catalog

import "cycletext/internal/content"

// Tables returns every authored table in canonical fold order.
func Tables() []content.Table {
	return []content.Table{
		greetingsTable(),
		syncTable(),
		pairingTable(),
		cycleTable(),
		confirmationsTable(),
		promptsTable(),
		unitsTable(),
		alertsTable(),
	}
}
