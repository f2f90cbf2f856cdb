package domain

import "errors"

// Domain errors.
var (
	ErrDeviceStateNotFound = errors.New("device state not found")
	ErrUnknownPairingStage = errors.New("unknown pairing stage")
	ErrUnknownUnit         = errors.New("unknown measurement unit")
)
