package entities

import "time"

// PairingStage is where the bracelet connection currently stands.
type PairingStage string

const (
	PairingStageScanning PairingStage = "scanning"
	PairingStagePairing  PairingStage = "pairing"
	PairingStagePaired   PairingStage = "paired"
)

// SyncStatus is the bracelet data-sync state.
type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
)

// Unit is the user's measurement-unit preference for temperature
// readings.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// Interval is a closed time interval.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the interval, bounds
// included.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.End)
}

// DeviceState is the mutable ambient application state other
// subsystems (sync worker, pairing flow, settings) keep current. It is
// persisted per device and read by content templates only through
// StateSnapshot.
type DeviceState struct {
	DeviceID      string
	PairingStage  PairingStage
	SyncStatus    SyncStatus
	LastSynced    time.Time // zero = never synced
	PeriodStart   time.Time
	PeriodEnd     time.Time
	FertileWindow Interval
	Unit          Unit
	UpdatedAt     time.Time
}

// StateSnapshot is an immutable value copy of DeviceState taken at the
// instant of one resolution, plus the single Now every time comparison
// in that resolution must use and the derived staleness flag. Created
// fresh per call, discarded after use.
type StateSnapshot struct {
	Now time.Time

	PairingStage     PairingStage
	SyncStatus       SyncStatus
	LastSynced       time.Time
	TooLongSinceSync bool
	PeriodStart      time.Time
	PeriodEnd        time.Time
	FertileWindow    Interval
	Unit             Unit
}
