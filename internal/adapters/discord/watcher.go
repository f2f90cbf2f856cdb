package discord

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cycletext/internal/catalog"
)

// RunStaleSyncWatcher checks the sync state on every tick and posts
// one stale-sync alert per staleness episode. It returns when ctx is
// cancelled.
func (n *Notifier) RunStaleSyncWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.checkOnce()
		}
	}
}

func (n *Notifier) checkOnce() {
	snap := n.state.Snapshot()
	if !snap.TooLongSinceSync {
		n.notified = false
		return
	}
	if n.notified {
		return
	}
	if err := n.sendAlert(catalog.KeyAlertStaleSync); err != nil {
		n.log.Error("stale-sync alert failed", zap.Error(err))
		return
	}
	n.notified = true
	n.log.Info("stale-sync alert sent",
		zap.Time("last_synced", snap.LastSynced))
}
