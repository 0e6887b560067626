package blockstore

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/pkg/errors"

	"SlotDB/record"
	"SlotDB/types"
)

// recordCache keeps decoded records keyed by packed address so repeated reads
// skip the decode. Entries may be dropped at any time; a miss is never an error.
type recordCache struct {
	c *ristretto.Cache[uint64, record.Record]
}

func newRecordCache(capacity int) (*recordCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[uint64, record.Record]{
		NumCounters:        int64(capacity) * 10,
		MaxCost:            int64(capacity),
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create record cache")
	}
	return &recordCache{c: c}, nil
}

func (rc *recordCache) get(addr types.Address) (record.Record, bool) {
	r, ok := rc.c.Get(addr.Pack())
	if !ok {
		return record.Record{}, false
	}
	return r.Clone(), true
}

func (rc *recordCache) put(addr types.Address, r record.Record) {
	rc.c.Set(addr.Pack(), r.Clone(), 1)
}

// evict drops addr and drains the set buffer, so a put queued before the
// eviction cannot resurface afterwards.
func (rc *recordCache) evict(addr types.Address) {
	rc.c.Del(addr.Pack())
	rc.c.Wait()
}

// wait blocks until buffered puts are applied.
func (rc *recordCache) wait() {
	rc.c.Wait()
}

func (rc *recordCache) close() {
	rc.c.Close()
}
