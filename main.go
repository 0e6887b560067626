package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"SlotDB/cli"
	"SlotDB/config"
	"SlotDB/engine"
	"SlotDB/logger"
	"SlotDB/record"
)

var (
	configPath = flag.String("config", "", "YAML config file; defaults are used when empty")
	fakeSeed   = flag.Int64("seed", time.Now().UnixNano(), "seed for FAKE records")
)

func main() {
	flag.Usage = func() {
		fmt.Println("\nSlotDB CLI\n\nArguments:")
		flag.PrintDefaults()
	}
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

	// one employee table indexed by SSN
	tbl, err := engine.Open(cfg, record.EmployeeLayout, record.FieldSSN, log)
	if err != nil {
		log.Fatal("open table", zap.Error(err))
	}
	defer tbl.Close()

	scanner := bufio.NewScanner(os.Stdin)
	repl := cli.NewCli(scanner, os.Stdout, tbl, *fakeSeed)
	repl.Start()
}
