package catalog

import (
	"golang.org/x/text/language"

	"cycletext/internal/content"
	"cycletext/internal/domain/entities"
)

func syncTable() content.Table {
	return content.Table{
		Name: "sync",
		Entries: []content.Entry{
			lastSynced(language.English, "Not synced. Last seen ", "Synced at "),
			lastSynced(language.German, "Nicht synchronisiert. Zuletzt gesehen ", "Synchronisiert um "),

			syncStatus(language.English, map[entities.SyncStatus]string{
				entities.SyncStatusIdle:    "Waiting to sync",
				entities.SyncStatusSyncing: "Syncing your bracelet…",
				entities.SyncStatusSynced:  "Up to date",
			}),
			syncStatus(language.German, map[entities.SyncStatus]string{
				entities.SyncStatusIdle:    "Wartet auf Synchronisierung",
				entities.SyncStatusSyncing: "Armband wird synchronisiert…",
				entities.SyncStatusSynced:  "Auf dem neuesten Stand",
			}),
		},
	}
}

// lastSynced renders the line under the sync icon. While the last sync
// is recent it shows the absolute time in the screen's clock pattern;
// once it crosses the staleness threshold it switches to a relative
// phrase so the user sees how far behind the bracelet is.
func lastSynced(lang language.Tag, stalePrefix, okPrefix string) content.Entry {
	return content.Template(KeySyncLastSynced, lang,
		"Line under the sync icon. pattern is the clock pattern of the host screen, e.g. \"h:mma\".",
		[]string{"pattern"},
		func(args []content.Value, env content.Env) (content.Value, error) {
			st := env.State
			if st.TooLongSinceSync {
				return stalePrefix + env.Format.Relative(st.LastSynced, st.Now), nil
			}
			pattern, _ := args[0].(string)
			at, err := env.Format.Format(st.LastSynced, pattern)
			if err != nil {
				return nil, err
			}
			return okPrefix + at, nil
		})
}

func syncStatus(lang language.Tag, phrases map[entities.SyncStatus]string) content.Entry {
	return content.Template(KeySyncStatus, lang,
		"Sync indicator caption for the current sync state.",
		nil,
		func(args []content.Value, env content.Env) (content.Value, error) {
			if phrase, ok := phrases[env.State.SyncStatus]; ok {
				return phrase, nil
			}
			// Unknown states render as idle rather than erroring: the
			// indicator is decoration, not a failure surface.
			return phrases[entities.SyncStatusIdle], nil
		})
}
