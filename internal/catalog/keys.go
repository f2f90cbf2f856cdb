package catalog

import "cycletext/internal/content"

// Content keys, grouped by owning table. Keys are the stable contract
// between screens and the catalog; renaming one is a breaking change.
const (
	// greetings
	KeyGreetingMorning content.Key = "greeting.morning"
	KeyGreetingWelcome content.Key = "greeting.welcome"

	// sync
	KeySyncLastSynced content.Key = "sync.lastSynced"
	KeySyncStatus     content.Key = "sync.status"

	// pairing
	KeyPairingStatus content.Key = "pairing.status"

	// cycle
	KeyPeriodRange        content.Key = "cycle.period.range"
	KeyPeriodCountdown    content.Key = "cycle.period.countdown"
	KeyFertileWindowRange content.Key = "cycle.fertileWindow.range"

	// confirmations
	KeyConfirmUnpair     content.Key = "confirm.unpair"
	KeyConfirmDeleteData content.Key = "confirm.deleteData"

	// prompts
	KeyPromptDeviceName content.Key = "prompt.deviceName"

	// units
	KeyUnitsTemperature   content.Key = "units.temperature"
	KeyTemperatureReading content.Key = "units.temperatureReading"

	// alerts
	KeyAlertStaleSync content.Key = "alert.staleSync"
)
