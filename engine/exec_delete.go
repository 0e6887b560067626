package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Delete removes the record stored under key. It reports false when the key is
// not indexed.
func (tbl *Table) Delete(key string) (bool, error) {
	addr, ok := tbl.tree.Search([]byte(key))
	if !ok {
		tbl.log.Debug("delete: key not found", zap.String("key", key))
		return false, nil
	}
	if err := tbl.store.Delete(addr); err != nil {
		return false, errors.Wrapf(err, "heap delete %s", addr)
	}
	tbl.tree.Delete([]byte(key))

	tbl.log.Debug("delete", zap.String("key", key), zap.Stringer("address", addr))
	return true, nil
}
