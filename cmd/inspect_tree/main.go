// Inspect the index shape a data set produces under one or more tree orders.
// Usage: go run ./cmd/inspect_tree [-csv EMPLOYEE.csv | -records n] [-orders 3:2,4:3] [-levels]
// Example: go run ./cmd/inspect_tree -records 200 -orders 3:2,5:4,16:16
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	bplus "SlotDB/bplustree"
	"SlotDB/cli"
	"SlotDB/config"
	"SlotDB/engine"
	"SlotDB/fakedata"
	"SlotDB/ingest"
	"SlotDB/record"
)

var (
	csvPath    = flag.String("csv", "", "CSV file with a NAME,SSN,... header; generated records are used when empty")
	numRecords = flag.Int("records", 100, "number of records to generate when no CSV is given")
	seed       = flag.Int64("seed", 1, "seed for generated records")
	orders     = flag.String("orders", "3:2", "comma separated p_internal:p_leaf pairs")
	levels     = flag.Bool("levels", false, "print every level of each tree")
)

func main() {
	flag.Parse()

	var rows []record.Record
	var err error
	if *csvPath != "" {
		rows, err = ingest.LoadCSV(*csvPath, record.EmployeeLayout, record.FieldSSN)
	} else {
		rows = fakedata.New(*seed).Employees(*numRecords)
	}
	if err == nil {
		var cfgs []bplus.Config
		if cfgs, err = parseOrders(*orders); err == nil {
			err = inspect(os.Stdout, rows, cfgs, *levels)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseOrders reads "3:2,4:3" into tree configs.
func parseOrders(s string) ([]bplus.Config, error) {
	var out []bplus.Config
	for _, part := range strings.Split(s, ",") {
		pi, pl, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, errors.Errorf("order %q: want p_internal:p_leaf", part)
		}
		internal, err := strconv.Atoi(pi)
		if err != nil {
			return nil, errors.Wrapf(err, "order %q", part)
		}
		leaf, err := strconv.Atoi(pl)
		if err != nil {
			return nil, errors.Wrapf(err, "order %q", part)
		}
		cfg := bplus.Config{PInternal: internal, PLeaf: leaf}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

func inspect(w io.Writer, rows []record.Record, cfgs []bplus.Config, showLevels bool) error {
	for _, treeCfg := range cfgs {
		cfg := config.Default()
		cfg.Tree = treeCfg
		tbl, err := engine.Open(cfg, record.EmployeeLayout, record.FieldSSN, nil)
		if err != nil {
			return err
		}
		skipped := 0
		for _, r := range rows {
			if _, err := tbl.Insert(r); err != nil {
				if !errors.Is(err, engine.ErrDuplicateKey) && !errors.Is(err, engine.ErrMissingKey) {
					tbl.Close()
					return err
				}
				skipped++
			}
		}

		tree := tbl.Tree()
		fmt.Fprintf(w, "p_internal=%d p_leaf=%d: %d keys, height %d, %d nodes, %d leaves, %d skipped\n",
			treeCfg.PInternal, treeCfg.PLeaf, tree.Len(), tree.Height(), tree.NumNodes(), len(tree.Leaves()), skipped)
		vis := &cli.Visualizer{Table: tbl}
		if showLevels {
			fmt.Fprint(w, vis.Levels())
		}
		fmt.Fprint(w, vis.Chain())
		err = tbl.Verify()
		tbl.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
