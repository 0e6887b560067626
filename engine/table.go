package engine

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"SlotDB/blockstore"
	bplus "SlotDB/bplustree"
	"SlotDB/config"
	"SlotDB/record"
	"SlotDB/trace"
)

// Open creates an empty table. A nil logger disables logging; at debug level
// every store and index event is logged as well.
func Open(cfg config.Config, layout *record.Layout, keyField string, log *zap.Logger) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if layout.Index(keyField) < 0 {
		return nil, errors.Wrapf(ErrUnknownField, "%q", keyField)
	}
	if log == nil {
		log = zap.NewNop()
	}

	tracer := trace.NewZapTracer(log.Named("trace"))
	store, err := blockstore.New(layout, blockstore.Options{
		BlockSize: cfg.Store.BlockSize,
		CacheSize: cfg.Store.CacheSize,
		Tracer:    tracer,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open block store")
	}

	tbl := &Table{
		cfg:      cfg,
		layout:   layout,
		keyField: keyField,
		store:    store,
		log:      log,
	}
	if tbl.tree, err = tbl.newTree(); err != nil {
		_ = store.Close()
		return nil, err
	}

	log.Info("table opened",
		zap.String("key", keyField),
		zap.Int("record_size", layout.Size()),
		zap.Int("slots_per_block", store.SlotsPerBlock()),
		zap.Int("p_internal", cfg.Tree.PInternal),
		zap.Int("p_leaf", cfg.Tree.PLeaf),
	)
	return tbl, nil
}

func (tbl *Table) newTree() (*bplus.BPlusTree, error) {
	tree, err := bplus.NewBPlusTree(tbl.cfg.Tree, bplus.WithTracer(trace.NewZapTracer(tbl.log.Named("trace"))))
	if err != nil {
		return nil, errors.Wrap(err, "open index")
	}
	return tree, nil
}

func (tbl *Table) Layout() *record.Layout     { return tbl.layout }
func (tbl *Table) KeyField() string           { return tbl.keyField }
func (tbl *Table) Store() *blockstore.Store   { return tbl.store }
func (tbl *Table) Tree() *bplus.BPlusTree     { return tbl.tree }
func (tbl *Table) Config() config.Config      { return tbl.cfg }
func (tbl *Table) Len() int                   { return tbl.tree.Len() }
func (tbl *Table) key(r record.Record) []byte { return []byte(tbl.layout.Get(r, tbl.keyField)) }

// Close releases the store's cache.
func (tbl *Table) Close() error {
	_ = tbl.log.Sync()
	return tbl.store.Close()
}
