package output

import (
	"context"

	"cycletext/internal/domain/entities"
)

// StateProvider exposes the ambient application state to the resolver.
// Snapshot must be one atomic read: other subsystems mutate the state
// concurrently and a template must never observe it mid-change.
type StateProvider interface {
	Snapshot() entities.StateSnapshot
}

// StateRepository persists device state between runs.
type StateRepository interface {
	// Load returns domain.ErrDeviceStateNotFound when the device has
	// no stored state yet.
	Load(ctx context.Context, deviceID string) (*entities.DeviceState, error)
	Save(ctx context.Context, state *entities.DeviceState) error
}
