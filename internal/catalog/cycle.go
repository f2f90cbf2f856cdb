package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	"cycletext/internal/content"
	"cycletext/internal/domain/entities"
)

func cycleTable() content.Table {
	return content.Table{
		Name: "cycle",
		Entries: []content.Entry{
			dateRange(KeyPeriodRange, language.English,
				"Calendar header: start and end of the current/next period.",
				periodInterval),
			dateRange(KeyPeriodRange, language.German,
				"Calendar header: start and end of the current/next period.",
				periodInterval),
			dateRange(KeyFertileWindowRange, language.English,
				"Calendar header: start and end of the predicted fertile window.",
				fertileInterval),
			dateRange(KeyFertileWindowRange, language.German,
				"Calendar header: start and end of the predicted fertile window.",
				fertileInterval),

			periodCountdown(language.English,
				"Your period is expected in %d days",
				"Your period is expected tomorrow",
				"Your period is on",
				"Your last period ended "),
			periodCountdown(language.German,
				"Deine Periode wird in %d Tagen erwartet",
				"Deine Periode wird morgen erwartet",
				"Du hast gerade deine Periode",
				"Deine letzte Periode endete "),
		},
	}
}

func periodInterval(st entities.StateSnapshot) entities.Interval {
	return entities.Interval{Start: st.PeriodStart, End: st.PeriodEnd}
}

func fertileInterval(st entities.StateSnapshot) entities.Interval {
	return st.FertileWindow
}

// dateRange formats an interval as "start – end" using the caller's
// date pattern. The range separator is locale-neutral.
func dateRange(key content.Key, lang language.Tag, description string, pick func(entities.StateSnapshot) entities.Interval) content.Entry {
	return content.Template(key, lang, description,
		[]string{"pattern"},
		func(args []content.Value, env content.Env) (content.Value, error) {
			pattern, _ := args[0].(string)
			iv := pick(env.State)
			start, err := env.Format.Format(iv.Start, pattern)
			if err != nil {
				return nil, err
			}
			end, err := env.Format.Format(iv.End, pattern)
			if err != nil {
				return nil, err
			}
			return start + " – " + end, nil
		})
}

// periodCountdown branches on where the snapshot's now falls against
// the period interval: before it, inside it, or after it.
func periodCountdown(lang language.Tag, inDays, tomorrow, during, endedPrefix string) content.Entry {
	return content.Template(KeyPeriodCountdown, lang,
		"Home-screen period countdown line.",
		nil,
		func(args []content.Value, env content.Env) (content.Value, error) {
			st := env.State
			switch {
			case st.Now.Before(st.PeriodStart):
				days := int(st.PeriodStart.Sub(st.Now).Hours()/24) + 1
				if days == 1 {
					return tomorrow, nil
				}
				return fmt.Sprintf(inDays, days), nil
			case !st.Now.After(st.PeriodEnd):
				return during, nil
			default:
				return endedPrefix + env.Format.Relative(st.PeriodEnd, st.Now), nil
			}
		})
}
