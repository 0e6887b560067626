package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"SlotDB/cli"
	"SlotDB/engine"
	"SlotDB/record"
)

// Row numbers are 1-based positions in the loaded data.
var (
	initialRows = 10
	extraRows   = []int{26, 13, 21}
	deleteRows  = []int{11, 6, 3}
)

// replay drives the reference run: bulk insert, targeted inserts, deletes,
// with dumps after each phase.
func replay(w io.Writer, tbl *engine.Table, rows []record.Record) error {
	v := &cli.Visualizer{Table: tbl}
	row := func(n int) (record.Record, bool) {
		if n < 1 || n > len(rows) {
			fmt.Fprintf(w, "row %d skipped: only %d rows loaded\n", n, len(rows))
			return record.Record{}, false
		}
		return rows[n-1], true
	}
	insert := func(r record.Record) error {
		_, err := tbl.Insert(r)
		if errors.Is(err, engine.ErrDuplicateKey) {
			fmt.Fprintf(w, "skipped: %v\n", err)
			return nil
		}
		return err
	}

	for n := 1; n <= initialRows && n <= len(rows); n++ {
		if err := insert(rows[n-1]); err != nil {
			return errors.Wrapf(err, "insert row %d", n)
		}
	}
	fmt.Fprintf(w, "\nInitial file blocks (first %d rows):\n%s", initialRows, v.Blocks())
	fmt.Fprintf(w, "\nInitial B+ tree:\n%s", v.Tree())

	for _, n := range extraRows {
		r, ok := row(n)
		if !ok {
			continue
		}
		if err := insert(r); err != nil {
			return errors.Wrapf(err, "insert row %d", n)
		}
	}
	fmt.Fprintf(w, "\nAfter insertions %v:\n%s", extraRows, v.Tree())

	for _, n := range deleteRows {
		r, ok := row(n)
		if !ok {
			continue
		}
		key := tbl.Layout().Get(r, tbl.KeyField())
		found, err := tbl.Delete(key)
		if err != nil {
			return errors.Wrapf(err, "delete row %d", n)
		}
		if !found {
			fmt.Fprintf(w, "row %d (%s) not found\n", n, key)
		}
	}
	fmt.Fprintf(w, "\nAfter deletions %v:\n%s", deleteRows, v.Tree())
	fmt.Fprintf(w, "\nFinal file blocks:\n%s\n%s", v.Blocks(), v.Stats())

	return tbl.Verify()
}
