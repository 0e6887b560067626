// Seed loads employees from a CSV file, or generates them, and replays the
// reference insert/delete run against a fresh table, printing block and tree
// dumps after each phase.
//
//	go run ./cmd/seed -csv EMPLOYEE.csv
//	go run ./cmd/seed -records 40 -seed 7
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"SlotDB/config"
	"SlotDB/engine"
	"SlotDB/fakedata"
	"SlotDB/ingest"
	"SlotDB/logger"
	"SlotDB/record"
)

var (
	csvPath    = flag.String("csv", "", "CSV file with a NAME,SSN,... header; generated records are used when empty")
	numRecords = flag.Int("records", 30, "number of records to generate when no CSV is given")
	seed       = flag.Int64("seed", 1, "seed for generated records")
	configPath = flag.String("config", "", "YAML config file; defaults are used when empty")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	var rows []record.Record
	if *csvPath != "" {
		rows, err = ingest.LoadCSV(*csvPath, record.EmployeeLayout, record.FieldSSN)
		if err != nil {
			log.Fatal("load csv", zap.String("path", *csvPath), zap.Error(err))
		}
	} else {
		rows = fakedata.New(*seed).Employees(*numRecords)
	}
	log.Info("records loaded", zap.Int("count", len(rows)))

	tbl, err := engine.Open(cfg, record.EmployeeLayout, record.FieldSSN, log)
	if err != nil {
		log.Fatal("open table", zap.Error(err))
	}
	defer tbl.Close()

	if err := replay(os.Stdout, tbl, rows); err != nil {
		log.Fatal("replay", zap.Error(err))
	}
}
