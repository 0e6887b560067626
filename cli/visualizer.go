package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	bplus "SlotDB/bplustree"
	"SlotDB/engine"
	"SlotDB/record"
	"SlotDB/types"
)

var (
	internalColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	leafColor     = color.New(color.FgGreen).SprintFunc()
	addrColor     = color.New(color.FgYellow).SprintFunc()
	emptyColor    = color.New(color.FgHiBlack).SprintFunc()
	headerColor   = color.New(color.Bold).SprintFunc()
)

// Visualizer renders read-only views of a table. It never mutates it.
type Visualizer struct {
	Table *engine.Table
}

func keyList(keys [][]byte) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tree prints the index depth first: every node with its keys, leaves with
// their key -> address pairs, then the leaf chain.
func (v *Visualizer) Tree() string {
	tree := v.Table.Tree()
	var b strings.Builder
	b.WriteString(headerColor("===== B+ TREE STRUCTURE =====") + "\n")

	var walk func(id int64, depth int, label string)
	walk = func(id int64, depth int, label string) {
		n, ok := tree.Node(id)
		if !ok {
			return
		}
		indent := strings.Repeat("  ", depth)
		if !n.IsLeaf() {
			fmt.Fprintf(&b, "%s%s (%s): %s\n", indent, label, internalColor(n.Type()), keyList(n.Keys()))
			for i, c := range n.Children() {
				walk(c, depth+1, fmt.Sprintf("Child %d", i))
			}
			return
		}
		fmt.Fprintf(&b, "%s%s (%s): %s\n", indent, label, leafColor(n.Type()), keyList(n.Keys()))
		addrs := n.Addrs()
		for i, k := range n.Keys() {
			fmt.Fprintf(&b, "%s   -> Key=%s, Ptr=%s\n", indent, k, addrColor(addrs[i]))
		}
	}
	walk(tree.Root(), 0, "Root")

	b.WriteString(headerColor("==============================") + "\n")
	b.WriteString(v.Chain())
	return b.String()
}

// Levels prints the index breadth first, one line per level.
func (v *Visualizer) Levels() string {
	var b strings.Builder
	for depth, level := range v.Table.Tree().LevelOrder() {
		fmt.Fprintf(&b, "L%d:", depth)
		for _, n := range level {
			paint := leafColor
			if n.Type == bplus.NodeInternal {
				paint = internalColor
			}
			fmt.Fprintf(&b, " %s#%d%s", paint(n.Type), n.ID, keyList(n.Keys))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Chain prints the leaves in next-pointer order.
func (v *Visualizer) Chain() string {
	leaves := v.Table.Tree().Leaves()
	parts := make([]string, len(leaves))
	for i, l := range leaves {
		parts[i] = leafColor(keyList(l))
	}
	return "Leaf chain: " + strings.Join(parts, " -> ") + " -> nil\n"
}

// Blocks prints every block with its occupied slots.
func (v *Visualizer) Blocks() string {
	store := v.Table.Store()
	layout := v.Table.Layout()
	var b strings.Builder
	b.WriteString(headerColor("===== FILE STORAGE BLOCKS =====") + "\n")

	used := map[uint32][]string{}
	_ = store.Scan(func(addr types.Address, r record.Record) error {
		used[addr.BlockID] = append(used[addr.BlockID], fmt.Sprintf("  Slot %d: %s, SSN=%s, Dept=%s, Salary=%s",
			addr.SlotIndex,
			layout.Get(r, record.FieldName),
			layout.Get(r, record.FieldSSN),
			layout.Get(r, record.FieldDepartmentCode),
			layout.Get(r, record.FieldSalary)))
		return nil
	})

	for _, info := range store.Blocks() {
		fmt.Fprintf(&b, "Block ID: %d (%d/%d)\n", info.ID, info.Used, info.Total)
		if info.Used == 0 {
			b.WriteString(emptyColor("  [Empty]") + "\n")
			continue
		}
		for _, line := range used[info.ID] {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(headerColor("================================") + "\n")
	return b.String()
}

// Stats summarizes store occupancy and index shape.
func (v *Visualizer) Stats() string {
	st := v.Table.Store().Stats()
	tree := v.Table.Tree()
	cfg := tree.Config()
	return fmt.Sprintf(
		"records: %d\nblocks: %d x %d slots (%s each)\nslots used: %d/%d\nbytes in use: %s of %s\nindex: %d keys, height %d, %d nodes (p_internal=%d, p_leaf=%d)\n",
		v.Table.Len(),
		st.Blocks, st.SlotsPerBlock, humanize.IBytes(uint64(v.Table.Store().BlockSize())),
		st.UsedSlots, st.TotalSlots,
		humanize.IBytes(uint64(st.RecordBytes)), humanize.IBytes(uint64(st.BlockBytes)),
		tree.Len(), tree.Height(), tree.NumNodes(), cfg.PInternal, cfg.PLeaf,
	)
}
