package state

import (
	"sync"
	"time"

	"cycletext/internal/domain/entities"
	"cycletext/internal/ports/output"
)

// Ensure Provider implements the output.StateProvider port.
var _ output.StateProvider = (*Provider)(nil)

// Provider holds the current device state in memory. The sync worker,
// pairing flow and settings mutate it concurrently; readers only ever
// see it through Snapshot, which is one atomic value copy.
type Provider struct {
	mu    sync.RWMutex
	state entities.DeviceState

	staleAfter time.Duration
	clock      func() time.Time
}

type ProviderOption func(*Provider)

// WithClock overrides the wall clock, for tests.
func WithClock(clock func() time.Time) ProviderOption {
	return func(p *Provider) { p.clock = clock }
}

// NewProvider creates a Provider. staleAfter is how long after the
// last sync the state counts as too long since sync.
func NewProvider(staleAfter time.Duration, opts ...ProviderOption) *Provider {
	p := &Provider{
		staleAfter: staleAfter,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Snapshot returns an immutable value copy of the current state,
// stamped with a single Now. TooLongSinceSync is derived here so
// templates never recompute it against a different clock.
func (p *Provider) Snapshot() entities.StateSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	now := p.clock()
	return entities.StateSnapshot{
		Now:              now,
		PairingStage:     p.state.PairingStage,
		SyncStatus:       p.state.SyncStatus,
		LastSynced:       p.state.LastSynced,
		TooLongSinceSync: !p.state.LastSynced.IsZero() && now.Sub(p.state.LastSynced) > p.staleAfter,
		PeriodStart:      p.state.PeriodStart,
		PeriodEnd:        p.state.PeriodEnd,
		FertileWindow:    p.state.FertileWindow,
		Unit:             p.state.Unit,
	}
}

// Set replaces the whole state, typically when hydrating from the
// repository at startup.
func (p *Provider) Set(state entities.DeviceState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
}

// State returns a value copy of the current state, for persistence.
func (p *Provider) State() entities.DeviceState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// RecordSync is called by the sync worker when a sync completes.
func (p *Provider) RecordSync(at time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SyncStatus = entities.SyncStatusSynced
	p.state.LastSynced = at
}

// SetSyncStatus is called by the sync worker around a sync attempt.
func (p *Provider) SetSyncStatus(status entities.SyncStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.SyncStatus = status
}

// SetPairingStage is called by the pairing flow.
func (p *Provider) SetPairingStage(stage entities.PairingStage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.PairingStage = stage
}

// SetUnit is called when the user changes the unit preference.
func (p *Provider) SetUnit(unit entities.Unit) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Unit = unit
}

// SetCycle is called when new predictions land after a sync.
func (p *Provider) SetCycle(periodStart, periodEnd time.Time, fertileWindow entities.Interval) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.PeriodStart = periodStart
	p.state.PeriodEnd = periodEnd
	p.state.FertileWindow = fertileWindow
}
