package util

// DefaultMaxID is the keyspace size used when none is configured.
const DefaultMaxID uint64 = 64

// Between reports whether id falls on the arc (start, end], the positions a node at end
// is responsible for when start is its predecessor. start == end is the full ring.
func Between(id, start, end uint64) bool {
	if end > start {
		return start < id && id <= end
	}
	// arc passes through 0
	return start < id || id <= end
}

// Distance is the clockwise distance from one position to another on a ring of the given size.
func Distance(from, to, size uint64) uint64 {
	if size == 0 {
		return 0
	}
	from, to = from%size, to%size
	if to >= from {
		return to - from
	}
	return size - from + to
}
