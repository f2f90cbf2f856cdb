package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	"cycletext/internal/content"
)

func greetingsTable() content.Table {
	return content.Table{
		Name: "greetings",
		Entries: []content.Entry{
			greetingMorning(language.English, "Good morning", "Good morning, %s"),
			greetingMorning(language.German, "Guten Morgen", "Guten Morgen, %s"),

			content.Static(KeyGreetingWelcome, language.English,
				"Shown once on the home screen after onboarding completes.",
				"Welcome! Your bracelet is ready to learn your cycle."),
			content.Static(KeyGreetingWelcome, language.German,
				"Shown once on the home screen after onboarding completes.",
				"Willkommen! Dein Armband ist bereit, deinen Zyklus kennenzulernen."),
		},
	}
}

func greetingMorning(lang language.Tag, plain, withName string) content.Entry {
	return content.Template(KeyGreetingMorning, lang,
		"Home-screen morning greeting. name is the user's display name and may be empty.",
		[]string{"name"},
		func(args []content.Value, env content.Env) (content.Value, error) {
			name, _ := args[0].(string)
			if name == "" {
				return plain + "!", nil
			}
			return fmt.Sprintf(withName, name) + "!", nil
		})
}
