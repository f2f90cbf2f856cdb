package catalog

import (
	"golang.org/x/text/language"

	"cycletext/internal/content"
)

func confirmationsTable() content.Table {
	return content.Table{
		Name: "confirmations",
		Entries: []content.Entry{
			content.Static(KeyConfirmUnpair, language.English,
				"Dialog shown before unpairing the bracelet. Unpairing keeps recorded data.",
				content.Dialog{
					Title:       "Unpair bracelet?",
					Message:     "Your bracelet will stop syncing. Recorded data stays on your phone.",
					ConfirmText: "Unpair",
				}),
			content.Static(KeyConfirmUnpair, language.German,
				"Dialog shown before unpairing the bracelet. Unpairing keeps recorded data.",
				content.Dialog{
					Title:       "Armband entkoppeln?",
					Message:     "Dein Armband wird nicht mehr synchronisiert. Aufgezeichnete Daten bleiben auf deinem Handy.",
					ConfirmText: "Entkoppeln",
				}),

			content.Static(KeyConfirmDeleteData, language.English,
				"Dialog shown before deleting all recorded cycle data. Irreversible.",
				content.Dialog{
					Title:       "Delete all data?",
					Message:     "All recorded temperatures and cycle history will be deleted. This cannot be undone.",
					ConfirmText: "Delete",
				}),
			content.Static(KeyConfirmDeleteData, language.German,
				"Dialog shown before deleting all recorded cycle data. Irreversible.",
				content.Dialog{
					Title:       "Alle Daten löschen?",
					Message:     "Alle aufgezeichneten Temperaturen und dein Zyklusverlauf werden gelöscht. Das kann nicht rückgängig gemacht werden.",
					ConfirmText: "Löschen",
				}),
		},
	}
}
