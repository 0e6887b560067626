package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"SlotDB/blockstore"
	bplus "SlotDB/bplustree"
	"SlotDB/config"
	"SlotDB/record"
)

/*
A Table is one heap of fixed-width records plus a unique B+ tree index on one
of its fields.

	INSERT r
	  ├── Layout.Normalize(r)            key as it will read back
	  ├── BPlusTree.Search(key)          reject duplicates
	  ├── Store.InsertRecord(r)          first-fit → Address{block, slot}
	  └── BPlusTree.Insert(key, addr)

	GET key
	  ├── BPlusTree.Search(key) → addr
	  └── Store.Read(addr)               empty slot here means the index is stale

	DELETE key
	  ├── BPlusTree.Search(key) → addr
	  ├── Store.Delete(addr)             slot cleared, address reusable
	  └── BPlusTree.Delete(key)
*/

var (
	ErrDuplicateKey = errors.New("engine: key already indexed")
	ErrMissingKey   = errors.New("engine: record has an empty key")
	ErrUnknownField = errors.New("engine: key field not in layout")
	ErrIndexDesync  = errors.New("engine: index points at an empty slot")
)

type Table struct {
	cfg      config.Config
	layout   *record.Layout
	keyField string
	store    *blockstore.Store
	tree     *bplus.BPlusTree
	log      *zap.Logger
}
