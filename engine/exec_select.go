package engine

import (
	"github.com/pkg/errors"

	"SlotDB/blockstore"
	"SlotDB/record"
	"SlotDB/types"
)

// Get resolves key through the index and reads the record it points at.
func (tbl *Table) Get(key string) (record.Record, types.Address, bool, error) {
	addr, ok := tbl.tree.Search([]byte(key))
	if !ok {
		return record.Record{}, types.Address{}, false, nil
	}
	r, found, err := tbl.store.Read(addr)
	if err != nil {
		return record.Record{}, addr, false, errors.Wrapf(err, "read %s for key %s", addr, key)
	}
	if !found {
		return record.Record{}, addr, false, errors.Wrapf(ErrIndexDesync, "key %s -> %s", key, addr)
	}
	return r, addr, true, nil
}

// Scan finds key with a full linear pass over the store, ignoring the index.
func (tbl *Table) Scan(key string) (record.Record, types.Address, bool, error) {
	addr, ok, err := tbl.store.FindByKey(key, blockstore.FieldKey(tbl.layout, tbl.keyField))
	if err != nil || !ok {
		return record.Record{}, addr, false, err
	}
	r, found, err := tbl.store.Read(addr)
	if err != nil || !found {
		return record.Record{}, addr, false, err
	}
	return r, addr, true, nil
}

// Range returns up to limit records with key >= from, in key order.
// A limit <= 0 means no limit.
func (tbl *Table) Range(from string, limit int) ([]record.Record, error) {
	var out []record.Record
	for it := tbl.tree.SeekGE([]byte(from)); it.Valid(); it.Next() {
		if limit > 0 && len(out) == limit {
			break
		}
		r, found, err := tbl.store.Read(it.Address())
		if err != nil {
			return out, errors.Wrapf(err, "read %s", it.Address())
		}
		if !found {
			return out, errors.Wrapf(ErrIndexDesync, "key %s -> %s", it.Key(), it.Address())
		}
		out = append(out, r)
	}
	return out, nil
}
