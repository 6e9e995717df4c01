package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/Quarmire/chord/util"
)

const (
	ringDot    = '·'
	arcDot     = '•'
	nodeMarker = '●'
	hitMarker  = '◆'
)

// Canvas draws the ring as text. Position 0 sits at the top and ids grow clockwise.
// Terminal cells are about twice as tall as they are wide, so the x radius is doubled.
// With a highlight, the arc the highlighted node owns is drawn with a heavier dot.
type Canvas struct {
	Width, Height int
	MaxID         uint64
	Nodes         []uint64
	Highlight     uint64
	HasHighlight  bool
}

func (c Canvas) Render() string {
	if c.Width < 12 || c.Height < 7 || c.MaxID == 0 {
		return "terminal too small"
	}

	grid := make([][]rune, c.Height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", c.Width))
	}

	cx, cy := float64(c.Width-1)/2, float64(c.Height-1)/2
	ry := cy - 1.5
	rx := ry * 2
	if limit := cx - 6; rx > limit {
		rx = limit
		ry = rx / 2
	}

	pred, hasArc := c.ownedArc()
	steps := int(4 * (rx + ry))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		dot := ringDot
		if hasArc && util.Between(c.position(a), pred, c.Highlight) {
			dot = arcDot
		}
		put(grid, cx+rx*math.Cos(a), cy-ry*math.Sin(a), dot)
	}

	for _, id := range c.Nodes {
		a := c.angle(id)
		marker := nodeMarker
		label := strconv.FormatUint(id, 10)
		if c.HasHighlight && id == c.Highlight {
			marker = hitMarker
			label = "[" + label + "]"
		}

		put(grid, cx+rx*math.Cos(a), cy-ry*math.Sin(a), marker)
		write(grid, cx+(rx+3)*math.Cos(a), cy-(ry+1)*math.Sin(a), label)
	}

	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

func (c Canvas) angle(id uint64) float64 {
	return math.Pi/2 - 2*math.Pi*float64(id%c.MaxID)/float64(c.MaxID)
}

// position is the inverse of angle, rounded down to a ring position.
func (c Canvas) position(a float64) uint64 {
	f := (math.Pi/2 - a) / (2 * math.Pi)
	f -= math.Floor(f)
	return uint64(f*float64(c.MaxID)) % c.MaxID
}

// ownedArc returns the predecessor of the highlighted node. Nodes are in ascending order.
func (c Canvas) ownedArc() (uint64, bool) {
	if !c.HasHighlight || len(c.Nodes) == 0 {
		return 0, false
	}
	pred := c.Nodes[len(c.Nodes)-1]
	for _, id := range c.Nodes {
		if id >= c.Highlight {
			break
		}
		pred = id
	}
	return pred, true
}

func put(grid [][]rune, x, y float64, r rune) {
	col, row := int(math.Round(x)), int(math.Round(y))
	if row < 0 || row >= len(grid) || col < 0 || col >= len(grid[row]) {
		return
	}
	grid[row][col] = r
}

// write centres label on (x, y), shifted to stay inside the row.
func write(grid [][]rune, x, y float64, label string) {
	row := int(math.Round(y))
	if row < 0 || row >= len(grid) {
		return
	}

	runes := []rune(label)
	start := int(math.Round(x)) - len(runes)/2
	if start+len(runes) > len(grid[row]) {
		start = len(grid[row]) - len(runes)
	}
	if start < 0 {
		start = 0
	}

	for i, r := range runes {
		if start+i < len(grid[row]) {
			grid[row][start+i] = r
		}
	}
}
