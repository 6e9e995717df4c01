package chord

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/Quarmire/chord/errs"
	"github.com/Quarmire/chord/node"
	"github.com/Quarmire/chord/util"
	avl "github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/utils"
	"github.com/go-logr/logr"
)

// Core is the set of ring operations offered to the UI and the network surface.
type Core interface {
	MaxID() uint64
	AddNode(ctx context.Context) (uint64, error)
	DeleteNode(ctx context.Context, id uint64) error
	Search(ctx context.Context, key uint64) (node.Node, error)
	Predecessor(ctx context.Context, id uint64) (node.Node, error)
	GetRing(ctx context.Context) ([]uint64, error)
}

// Rand picks ids for new nodes.
type Rand interface {
	Uint64N(n uint64) uint64
}

// NewRand returns a PCG source seeded with seed, or with the current time when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Chord keeps the live members of a ring of MaxID positions, ordered by id.
type Chord struct {
	mu     sync.RWMutex
	maxID  uint64
	rnd    Rand
	nodes  *avl.Tree // id -> node.Node
	logger logr.Logger
}

func NewChord(maxID uint64, rnd Rand, logger logr.Logger) *Chord {
	if maxID == 0 {
		maxID = util.DefaultMaxID
	}
	if rnd == nil {
		rnd = NewRand(0)
	}

	return &Chord{
		maxID:  maxID,
		rnd:    rnd,
		nodes:  avl.NewWith(utils.UInt64Comparator),
		logger: logger,
	}
}

func (c *Chord) MaxID() uint64 {
	return c.maxID
}

func (c *Chord) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nodes.Size()
}

// AddNode places a new node on a free position picked at random.
func (c *Chord) AddNode(ctx context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if uint64(c.nodes.Size()) >= c.maxID {
		return 0, errs.RingIsFullError
	}

	id := c.rnd.Uint64N(c.maxID)
	for {
		if _, taken := c.nodes.Get(id); !taken {
			break
		}
		id = c.rnd.Uint64N(c.maxID)
	}

	c.nodes.Put(id, node.Node{ID: id})
	c.logger.V(1).Info("node added", "node", id, "size", c.nodes.Size())
	return id, nil
}

func (c *Chord) DeleteNode(ctx context.Context, id uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.nodes.Get(id); !ok {
		return errs.NodeDoesNotExistError
	}

	c.nodes.Remove(id)
	c.logger.V(1).Info("node deleted", "node", id, "size", c.nodes.Size())
	return nil
}

// Search returns the node responsible for key: the first member at or after key,
// wrapping around to the lowest member.
func (c *Chord) Search(ctx context.Context, key uint64) (node.Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.nodes.Empty() {
		return node.Node{}, errs.NoNodesExistError
	}
	if key >= c.maxID {
		return node.Node{}, errs.OutOfRangeError
	}

	successor, found := c.nodes.Ceiling(key)
	if !found {
		successor = c.nodes.Left()
	}

	return successor.Value.(node.Node), nil
}

// Predecessor returns the member preceding id on the ring. A single member is its own predecessor.
func (c *Chord) Predecessor(ctx context.Context, id uint64) (node.Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.nodes.Empty() {
		return node.Node{}, errs.NoNodesExistError
	}
	if _, ok := c.nodes.Get(id); !ok {
		return node.Node{}, errs.NodeDoesNotExistError
	}

	if id > 0 {
		if p, found := c.nodes.Floor(id - 1); found {
			return p.Value.(node.Node), nil
		}
	}

	return c.nodes.Right().Value.(node.Node), nil
}

// GetRing returns the member ids in ascending order. The slice is owned by the caller.
func (c *Chord) GetRing(ctx context.Context) ([]uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]uint64, 0, c.nodes.Size())
	it := c.nodes.Iterator()
	for it.Next() {
		ids = append(ids, it.Key().(uint64))
	}

	return ids, nil
}

func (c *Chord) Dump() string {
	ids, _ := c.GetRing(context.Background())

	var b strings.Builder
	fmt.Fprintf(&b, "ring size=%d members=%d\n", c.maxID, len(ids))
	for i, id := range ids {
		pred := ids[(i+len(ids)-1)%len(ids)]
		fmt.Fprintf(&b, "  node %d owns (%d, %d] span=%d\n", id, pred, id, arcSpan(pred, id, c.maxID))
	}

	return b.String()
}

func arcSpan(pred, id, size uint64) uint64 {
	if pred == id {
		return size
	}
	return util.Distance(pred, id, size)
}
