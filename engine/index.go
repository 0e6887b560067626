package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"SlotDB/record"
	"SlotDB/types"
)

// RebuildIndex drops the tree and re-registers every stored record. Records
// sharing a key keep the first address in block order.
func (tbl *Table) RebuildIndex() error {
	tree, err := tbl.newTree()
	if err != nil {
		return err
	}
	skipped := 0
	err = tbl.store.Scan(func(addr types.Address, r record.Record) error {
		key := tbl.key(r)
		if len(key) == 0 || tree.Contains(key) {
			skipped++
			return nil
		}
		tree.Insert(key, addr)
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "scan store")
	}
	tbl.tree = tree

	tbl.log.Info("index rebuilt", zap.Int("keys", tree.Len()), zap.Int("skipped", skipped))
	return nil
}

// Verify checks the index structure and that every indexed address holds the
// record carrying that key.
func (tbl *Table) Verify() error {
	if err := tbl.tree.Check(); err != nil {
		return err
	}
	for it := tbl.tree.First(); it.Valid(); it.Next() {
		r, found, err := tbl.store.Read(it.Address())
		if err != nil {
			return errors.Wrapf(err, "read %s", it.Address())
		}
		if !found {
			return errors.Wrapf(ErrIndexDesync, "key %s -> %s", it.Key(), it.Address())
		}
		if got := tbl.layout.Get(r, tbl.keyField); got != string(it.Key()) {
			return errors.Wrapf(ErrIndexDesync, "key %s -> %s holds %s", it.Key(), it.Address(), got)
		}
	}
	if used := tbl.store.Stats().UsedSlots; used != tbl.tree.Len() {
		return errors.Wrapf(ErrIndexDesync, "store holds %d records, index %d keys", used, tbl.tree.Len())
	}
	return nil
}
