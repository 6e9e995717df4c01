package node

import "strconv"

// Node is a read-only view of a ring member. Its identity is the position on the ring.
type Node struct {
	ID uint64 `json:"id"`
}

func (n Node) String() string {
	return strconv.FormatUint(n.ID, 10)
}
