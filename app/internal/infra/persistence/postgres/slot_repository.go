package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const createSlotsTable = `
    CREATE TABLE IF NOT EXISTS kv_slots (
        slot_key   VARCHAR(255) PRIMARY KEY,
        slot_value TEXT         NOT NULL,
        updated_at TIMESTAMPTZ  NOT NULL DEFAULT now()
    )
`

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, createSlotsTable)
	return errors.Wrap(err, "postgres create kv_slots")
}

func (r *SlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx, `SELECT slot_value FROM kv_slots WHERE slot_key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "postgres get %s", key)
	}
	return value, true, nil
}

func (r *SlotRepository) Set(ctx context.Context, key string, value string) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO kv_slots (slot_key, slot_value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (slot_key) DO UPDATE SET slot_value = EXCLUDED.slot_value, updated_at = now()
    `, key, value)
	return errors.Wrapf(err, "postgres set %s", key)
}

func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM kv_slots WHERE slot_key = $1`, key)
	return errors.Wrapf(err, "postgres delete %s", key)
}
