package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cycletext/internal/domain/entities"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestSnapshot_CopiesStateAndStampsNow(t *testing.T) {
	p := NewProvider(2*time.Hour, WithClock(fixedClock(testNow)))
	p.Set(entities.DeviceState{
		DeviceID:     "b1",
		PairingStage: entities.PairingStagePaired,
		SyncStatus:   entities.SyncStatusSynced,
		LastSynced:   testNow.Add(-time.Hour),
		Unit:         entities.UnitCelsius,
	})

	snap := p.Snapshot()
	assert.Equal(t, testNow, snap.Now)
	assert.Equal(t, entities.PairingStagePaired, snap.PairingStage)
	assert.False(t, snap.TooLongSinceSync)

	// Later mutations must not leak into an already-taken snapshot.
	p.SetPairingStage(entities.PairingStageScanning)
	assert.Equal(t, entities.PairingStagePaired, snap.PairingStage)
}

func TestSnapshot_StaleSyncThreshold(t *testing.T) {
	p := NewProvider(2*time.Hour, WithClock(fixedClock(testNow)))

	p.Set(entities.DeviceState{LastSynced: testNow.Add(-2 * time.Hour)})
	assert.False(t, p.Snapshot().TooLongSinceSync, "exactly at the threshold is not stale")

	p.Set(entities.DeviceState{LastSynced: testNow.Add(-2*time.Hour - time.Second)})
	assert.True(t, p.Snapshot().TooLongSinceSync)

	// Never-synced devices are onboarding, not stale.
	p.Set(entities.DeviceState{})
	assert.False(t, p.Snapshot().TooLongSinceSync)
}

func TestRecordSync(t *testing.T) {
	p := NewProvider(2*time.Hour, WithClock(fixedClock(testNow)))
	p.Set(entities.DeviceState{SyncStatus: entities.SyncStatusSyncing, LastSynced: testNow.Add(-3 * time.Hour)})

	p.RecordSync(testNow)

	snap := p.Snapshot()
	assert.Equal(t, entities.SyncStatusSynced, snap.SyncStatus)
	assert.Equal(t, testNow, snap.LastSynced)
	assert.False(t, snap.TooLongSinceSync)
}

func TestSetCycle(t *testing.T) {
	p := NewProvider(2*time.Hour, WithClock(fixedClock(testNow)))
	window := entities.Interval{Start: testNow.Add(24 * time.Hour), End: testNow.Add(96 * time.Hour)}

	p.SetCycle(testNow.Add(-48*time.Hour), testNow.Add(-24*time.Hour), window)

	snap := p.Snapshot()
	assert.Equal(t, window, snap.FertileWindow)
	assert.Equal(t, testNow.Add(-48*time.Hour), snap.PeriodStart)
}

func TestSnapshot_ConcurrentMutation(t *testing.T) {
	p := NewProvider(2*time.Hour, WithClock(fixedClock(testNow)))
	p.Set(entities.DeviceState{PairingStage: entities.PairingStageScanning})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				p.SetPairingStage(entities.PairingStagePairing)
				p.RecordSync(testNow)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				snap := p.Snapshot()
				assert.Equal(t, testNow, snap.Now)
			}
		}()
	}
	wg.Wait()
}
