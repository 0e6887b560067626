package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"SlotDB/engine"
	"SlotDB/fakedata"
	"SlotDB/record"
)

var (
	okColor  = color.New(color.FgGreen).SprintFunc()
	errColor = color.New(color.FgRed).SprintFunc()
)

type Cli struct {
	scanner    *bufio.Scanner
	out        io.Writer
	table      *engine.Table
	visualizer *Visualizer
	faker      *fakedata.Generator
}

func NewCli(s *bufio.Scanner, out io.Writer, t *engine.Table, seed int64) *Cli {
	return &Cli{
		scanner:    s,
		out:        out,
		table:      t,
		visualizer: &Visualizer{Table: t},
		faker:      fakedata.New(seed),
	}
}

// Start runs the REPL until EXIT or end of input.
func (c *Cli) Start() {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return
		}
		c.printPrompt()
	}
}

func (c *Cli) printf(format string, args ...any) { fmt.Fprintf(c.out, format, args...) }

func (c *Cli) printHelp() {
	c.printf(`
SlotDB CLI

Available Commands:
  INSERT <ssn> <name> [dept]  Store an employee and index it by SSN
  FAKE [n]                    Insert n generated employees (default 1)
  GET <ssn>                   Look up through the B+ tree index
  SCAN <ssn>                  Look up with a linear pass over the blocks
  RANGE <from> [n]            List up to n employees with SSN >= from
  DEL <ssn>                   Delete an employee
  TREE                        Print the index, depth first
  LEVELS                      Print the index, one line per level
  CHAIN                       Print the leaf chain
  BLOCKS                      Print every block and slot
  STATS                       Print occupancy figures
  CHECK                       Verify index invariants and index/store agreement
  REBUILD                     Rebuild the index from the blocks
  HELP                        Show this message
  EXIT                        Terminate this session

`)
}

func (c *Cli) printPrompt() {
	c.printf("slotdb> ")
}

// processInput runs one command line; it returns false on EXIT.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	args := fields[1:]
	switch command {
	default:
		c.printf("Unknown command \"%s\"\n", command)
	case "insert":
		c.processInsertCommand(args)
	case "fake":
		c.processFakeCommand(args)
	case "get":
		c.processGetCommand(args)
	case "scan":
		c.processScanCommand(args)
	case "range":
		c.processRangeCommand(args)
	case "del":
		c.processDeleteCommand(args)
	case "tree":
		c.printf("%s", c.visualizer.Tree())
	case "levels":
		c.printf("%s", c.visualizer.Levels())
	case "chain":
		c.printf("%s", c.visualizer.Chain())
	case "blocks":
		c.printf("%s", c.visualizer.Blocks())
	case "stats":
		c.printf("%s", c.visualizer.Stats())
	case "check":
		c.processCheckCommand()
	case "rebuild":
		c.processRebuildCommand()
	case "help":
		c.printHelp()
	case "exit":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) < 2 || len(args) > 3 {
		c.printf("Usage: INSERT <ssn> <name> [dept]\n")
		return
	}
	values := map[string]string{
		record.FieldSSN:  args[0],
		record.FieldName: args[1],
	}
	if len(args) == 3 {
		values[record.FieldDepartmentCode] = args[2]
	}
	addr, err := c.table.Insert(c.table.Layout().New(values))
	if err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	c.faker.Reserve(args[0])
	c.printf("%s %s\n", okColor("inserted at"), addr)
}

func (c *Cli) processFakeCommand(args []string) {
	n := 1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			c.printf("Usage: FAKE [n]\n")
			return
		}
		n = v
	}
	for _, r := range c.faker.Employees(n) {
		addr, err := c.table.Insert(r)
		if err != nil {
			c.printf("%s\n", errColor(err))
			return
		}
		layout := c.table.Layout()
		c.printf("%s %s %s\n", addr, layout.Get(r, record.FieldSSN), layout.Get(r, record.FieldName))
	}
}

func (c *Cli) printRecord(r record.Record) {
	layout := c.table.Layout()
	for i, f := range layout.Fields() {
		c.printf("  %-15s %s\n", f.Name, r.Values[i])
	}
}

func (c *Cli) processGetCommand(args []string) {
	if len(args) != 1 {
		c.printf("Usage: GET <ssn>\n")
		return
	}
	r, addr, ok, err := c.table.Get(args[0])
	if err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	if !ok {
		c.printf("Key not found.\n")
		return
	}
	c.printf("%s\n", addr)
	c.printRecord(r)
}

func (c *Cli) processScanCommand(args []string) {
	if len(args) != 1 {
		c.printf("Usage: SCAN <ssn>\n")
		return
	}
	r, addr, ok, err := c.table.Scan(args[0])
	if err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	if !ok {
		c.printf("Key not found.\n")
		return
	}
	c.printf("%s\n", addr)
	c.printRecord(r)
}

func (c *Cli) processRangeCommand(args []string) {
	if len(args) < 1 || len(args) > 2 {
		c.printf("Usage: RANGE <from> [n]\n")
		return
	}
	limit := 10
	if len(args) == 2 {
		v, err := strconv.Atoi(args[1])
		if err != nil {
			c.printf("Usage: RANGE <from> [n]\n")
			return
		}
		limit = v
	}
	recs, err := c.table.Range(args[0], limit)
	if err != nil {
		c.printf("%s\n", errColor(err))
	}
	layout := c.table.Layout()
	for _, r := range recs {
		c.printf("%s %s\n", layout.Get(r, record.FieldSSN), layout.Get(r, record.FieldName))
	}
}

func (c *Cli) processDeleteCommand(args []string) {
	if len(args) != 1 {
		c.printf("Usage: DEL <ssn>\n")
		return
	}
	ok, err := c.table.Delete(args[0])
	if err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	if !ok {
		c.printf("Key not found.\n")
		return
	}
	c.printf("%s\n", okColor("deleted"))
}

func (c *Cli) processCheckCommand() {
	if err := c.table.Verify(); err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	c.printf("%s\n", okColor("ok"))
}

func (c *Cli) processRebuildCommand() {
	if err := c.table.RebuildIndex(); err != nil {
		c.printf("%s\n", errColor(err))
		return
	}
	c.printf("%s %d keys\n", okColor("rebuilt"), c.table.Len())
}
