package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"SlotDB/record"
	"SlotDB/types"
)

// Insert stores r and indexes it under its key field. The key is taken from
// the record as it will read back, so an over-width key is indexed truncated.
func (tbl *Table) Insert(r record.Record) (types.Address, error) {
	// ── normalize: look the key up exactly as Get will see it ─────────────
	stored, err := tbl.layout.Normalize(r)
	if err != nil {
		return types.Address{}, errors.Wrap(err, "encode record")
	}
	stored.Deleted = false

	key := tbl.key(stored)
	if len(key) == 0 {
		return types.Address{}, errors.Wrapf(ErrMissingKey, "field %s", tbl.keyField)
	}
	if addr, ok := tbl.tree.Search(key); ok {
		return types.Address{}, errors.Wrapf(ErrDuplicateKey, "%s=%s at %s", tbl.keyField, key, addr)
	}

	// ── heap then index ───────────────────────────────────────────────────
	addr, err := tbl.store.InsertRecord(stored)
	if err != nil {
		return types.Address{}, errors.Wrap(err, "heap insert")
	}
	tbl.tree.Insert(key, addr)

	tbl.log.Debug("insert", zap.ByteString("key", key), zap.Stringer("address", addr))
	return addr, nil
}
