package catalog

import (
	"golang.org/x/text/language"

	"cycletext/internal/content"
)

func alertsTable() content.Table {
	return content.Table{
		Name: "alerts",
		Entries: []content.Entry{
			content.Static(KeyAlertStaleSync, language.English,
				"Alert raised when the bracelet has not synced within the staleness threshold.",
				content.Dialog{
					Title:       "Sync overdue",
					Message:     "Your bracelet has not synced for a while. Open the app with your bracelet nearby.",
					ConfirmText: "OK",
				}),
			content.Static(KeyAlertStaleSync, language.German,
				"Alert raised when the bracelet has not synced within the staleness threshold.",
				content.Dialog{
					Title:       "Synchronisierung überfällig",
					Message:     "Dein Armband hat sich länger nicht synchronisiert. Öffne die App, während dein Armband in der Nähe ist.",
					ConfirmText: "OK",
				}),
		},
	}
}
