package catalog

import (
	"fmt"

	"golang.org/x/text/language"

	"cycletext/internal/content"
	"cycletext/internal/domain"
	"cycletext/internal/domain/entities"
)

// pairingPhrases are the four texts the pairing banner can show:
// one per connection stage, and for a paired bracelet one of two
// depending on where the snapshot's now falls against the fertile
// window.
type pairingPhrases struct {
	scanning      string
	pairing       string
	insideWindow  string
	outsideWindow string
}

func pairingTable() content.Table {
	return content.Table{
		Name: "pairing",
		Entries: []content.Entry{
			pairingStatus(language.English, pairingPhrases{
				scanning:      "Looking for your bracelet…",
				pairing:       "Pairing with your bracelet…",
				insideWindow:  "Paired. You are in your fertile window.",
				outsideWindow: "Paired. You are outside your fertile window.",
			}),
			pairingStatus(language.German, pairingPhrases{
				scanning:      "Armband wird gesucht…",
				pairing:       "Armband wird gekoppelt…",
				insideWindow:  "Gekoppelt. Du bist in deinem fruchtbaren Fenster.",
				outsideWindow: "Gekoppelt. Du bist außerhalb deines fruchtbaren Fensters.",
			}),
		},
	}
}

func pairingStatus(lang language.Tag, p pairingPhrases) content.Entry {
	return content.Template(KeyPairingStatus, lang,
		"Pairing banner text. Paired devices additionally report fertile-window position.",
		nil,
		func(args []content.Value, env content.Env) (content.Value, error) {
			st := env.State
			switch st.PairingStage {
			case entities.PairingStageScanning:
				return p.scanning, nil
			case entities.PairingStagePairing:
				return p.pairing, nil
			case entities.PairingStagePaired:
				// One now for all three comparisons; before and after
				// the window read the same to the user.
				switch {
				case st.Now.Before(st.FertileWindow.Start):
					return p.outsideWindow, nil
				case st.Now.After(st.FertileWindow.End):
					return p.outsideWindow, nil
				default:
					return p.insideWindow, nil
				}
			}
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPairingStage, st.PairingStage)
		})
}
