package types

const (
	DefaultBlockSize = 512 // bytes per block
	TombstoneSize    = 1   // trailing deletion marker byte of every encoded record

	TombstoneLive    byte = '0'
	TombstoneDeleted byte = '1'
)

type NodeType uint8

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

func (t NodeType) String() string {
	if t == NodeLeaf {
		return "Leaf"
	}
	return "Internal"
}
