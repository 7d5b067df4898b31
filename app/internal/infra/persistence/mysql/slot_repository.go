package mysql

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

const createSlotsTable = `
    CREATE TABLE IF NOT EXISTS kv_slots (
        slot_key   VARCHAR(255) NOT NULL PRIMARY KEY,
        slot_value MEDIUMTEXT   NOT NULL,
        updated_at TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
    )
`

type SlotRepository struct {
	db *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createSlotsTable)
	return errors.Wrap(err, "mysql create kv_slots")
}

func (r *SlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT slot_value FROM kv_slots WHERE slot_key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "mysql get %s", key)
	}
	return value, true, nil
}

func (r *SlotRepository) Set(ctx context.Context, key string, value string) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO kv_slots (slot_key, slot_value)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE slot_value = VALUES(slot_value)
    `, key, value)
	return errors.Wrapf(err, "mysql set %s", key)
}

func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_slots WHERE slot_key = ?`, key)
	return errors.Wrapf(err, "mysql delete %s", key)
}
