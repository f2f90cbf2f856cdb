package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"cycletext/internal/domain"
	"cycletext/internal/domain/entities"
	"cycletext/internal/ports/output"
)

var _ output.StateRepository = (*StateRepository)(nil)

// StateRepository persists device state in PostgreSQL.
type StateRepository struct {
	pool *pgxpool.Pool
}

func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

const loadDeviceState = `
SELECT device_id, pairing_stage, sync_status, last_synced,
       period_start, period_end, fertile_start, fertile_end,
       unit, updated_at
FROM device_states
WHERE device_id = $1`

func (r *StateRepository) Load(ctx context.Context, deviceID string) (*entities.DeviceState, error) {
	var (
		s                        entities.DeviceState
		pairingStage, syncStatus string
		unit                     string
		lastSynced               pgtype.Timestamptz
		periodStart, periodEnd   pgtype.Timestamptz
		fertileStart, fertileEnd pgtype.Timestamptz
		updatedAt                pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, loadDeviceState, deviceID).Scan(
		&s.DeviceID, &pairingStage, &syncStatus, &lastSynced,
		&periodStart, &periodEnd, &fertileStart, &fertileEnd,
		&unit, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDeviceStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load device state: %w", err)
	}

	s.PairingStage = entities.PairingStage(pairingStage)
	s.SyncStatus = entities.SyncStatus(syncStatus)
	s.Unit = entities.Unit(unit)
	s.LastSynced = pgtypeTimestamptzToTime(lastSynced)
	s.PeriodStart = pgtypeTimestamptzToTime(periodStart)
	s.PeriodEnd = pgtypeTimestamptzToTime(periodEnd)
	s.FertileWindow = entities.Interval{
		Start: pgtypeTimestamptzToTime(fertileStart),
		End:   pgtypeTimestamptzToTime(fertileEnd),
	}
	s.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &s, nil
}

const upsertDeviceState = `
INSERT INTO device_states (
	device_id, pairing_stage, sync_status, last_synced,
	period_start, period_end, fertile_start, fertile_end, unit
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (device_id) DO UPDATE SET
	pairing_stage = EXCLUDED.pairing_stage,
	sync_status   = EXCLUDED.sync_status,
	last_synced   = EXCLUDED.last_synced,
	period_start  = EXCLUDED.period_start,
	period_end    = EXCLUDED.period_end,
	fertile_start = EXCLUDED.fertile_start,
	fertile_end   = EXCLUDED.fertile_end,
	unit          = EXCLUDED.unit,
	updated_at    = now()
RETURNING updated_at`

func (r *StateRepository) Save(ctx context.Context, state *entities.DeviceState) error {
	var updatedAt pgtype.Timestamptz
	err := r.pool.QueryRow(ctx, upsertDeviceState,
		state.DeviceID,
		string(state.PairingStage),
		string(state.SyncStatus),
		timeToPgtypeTimestamptz(state.LastSynced),
		timeToPgtypeTimestamptz(state.PeriodStart),
		timeToPgtypeTimestamptz(state.PeriodEnd),
		timeToPgtypeTimestamptz(state.FertileWindow.Start),
		timeToPgtypeTimestamptz(state.FertileWindow.End),
		string(state.Unit),
	).Scan(&updatedAt)
	if err != nil {
		return fmt.Errorf("save device state: %w", err)
	}
	state.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtypeTimestamptz stores zero times as NULL.
func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
