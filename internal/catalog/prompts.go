package catalog

import (
	"golang.org/x/text/language"

	"cycletext/internal/content"
)

func promptsTable() content.Table {
	return content.Table{
		Name: "prompts",
		Entries: []content.Entry{
			content.Static(KeyPromptDeviceName, language.English,
				"Input prompt when the user renames their bracelet during pairing.",
				content.Prompt{
					Title:       "Name your bracelet",
					Placeholder: "My bracelet",
				}),
			content.Static(KeyPromptDeviceName, language.German,
				"Input prompt when the user renames their bracelet during pairing.",
				content.Prompt{
					Title:       "Gib deinem Armband einen Namen",
					Placeholder: "Mein Armband",
				}),
		},
	}
}
