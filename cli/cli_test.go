package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SlotDB/config"
	"SlotDB/engine"
	"SlotDB/record"
)

func newCli(t *testing.T, input string) (*Cli, *engine.Table, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	tbl, err := engine.Open(config.Default(), record.EmployeeLayout, record.FieldSSN, nil)
	require.NoError(t, err)
	t.Cleanup(func() { tbl.Close() })

	out := &bytes.Buffer{}
	c := NewCli(bufio.NewScanner(strings.NewReader(input)), out, tbl, 1)
	return c, tbl, out
}

func TestSession(t *testing.T) {
	c, tbl, out := newCli(t, strings.Join([]string{
		"INSERT 5 Ada D1",
		"insert 3 Grace",
		"INSERT 8 Linus",
		"INSERT 1 Ken",
		"GET 8",
		"DEL 8",
		"DEL 5",
		"DEL 42",
		"CHAIN",
		"EXIT",
		"INSERT 9 Never",
	}, "\n"))
	c.Start()

	s := out.String()
	assert.Contains(t, s, "inserted at (0,0)")
	assert.Contains(t, s, "inserted at (0,3)")
	assert.Contains(t, s, "Linus")
	assert.Contains(t, s, "Key not found.")
	assert.Contains(t, s, "Leaf chain: [1] -> [3] -> nil")
	assert.Equal(t, 2, tbl.Len())
	_, _, ok, err := tbl.Get("9")
	require.NoError(t, err)
	assert.False(t, ok, "commands after EXIT must not run")
}

func TestDumps(t *testing.T) {
	c, _, out := newCli(t, "")
	for _, line := range []string{"INSERT 5 Ada", "INSERT 3 Grace", "INSERT 8 Linus", "INSERT 1 Ken", "INSERT 7 Rob"} {
		require.True(t, c.processInput(line))
	}
	out.Reset()

	c.processInput("TREE")
	tree := out.String()
	assert.Contains(t, tree, "Root (Internal): [5, 7]")
	assert.Contains(t, tree, "  Child 0 (Leaf): [1, 3]")
	assert.Contains(t, tree, "-> Key=7, Ptr=(1,0)")

	out.Reset()
	c.processInput("BLOCKS")
	blocks := out.String()
	assert.Contains(t, blocks, "Block ID: 0 (4/4)")
	assert.Contains(t, blocks, "Block ID: 1 (1/4)")
	assert.Contains(t, blocks, "Slot 0: Rob, SSN=7")

	out.Reset()
	c.processInput("LEVELS")
	assert.True(t, strings.HasPrefix(out.String(), "L0: Internal#"))

	out.Reset()
	c.processInput("STATS")
	assert.Contains(t, out.String(), "records: 5")
	assert.Contains(t, out.String(), "slots used: 5/8")
	assert.Contains(t, out.String(), "512 B each")

	out.Reset()
	c.processInput("CHECK")
	assert.Equal(t, "ok\n", out.String())
}

func TestFakeAndRebuild(t *testing.T) {
	c, tbl, out := newCli(t, "")
	c.processInput("FAKE 25")
	assert.Equal(t, 25, tbl.Len())
	assert.NoError(t, tbl.Verify())

	out.Reset()
	c.processInput("REBUILD")
	assert.Equal(t, "rebuilt 25 keys\n", out.String())

	out.Reset()
	c.processInput("RANGE 0 3")
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 3)
}

func TestUsage(t *testing.T) {
	c, _, out := newCli(t, "")
	for _, tc := range []struct{ line, want string }{
		{"INSERT 1", "Usage: INSERT"},
		{"GET", "Usage: GET"},
		{"DEL", "Usage: DEL"},
		{"SCAN", "Usage: SCAN"},
		{"FAKE x", "Usage: FAKE"},
		{"RANGE", "Usage: RANGE"},
		{"BOGUS", "Unknown command \"bogus\""},
	} {
		out.Reset()
		c.processInput(tc.line)
		assert.Contains(t, out.String(), tc.want, tc.line)
	}

	out.Reset()
	c.processInput("INSERT 1 Ada")
	c.processInput("INSERT 1 Bob")
	assert.Contains(t, out.String(), "key already indexed")
}
