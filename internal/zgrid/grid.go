// Package zgrid stores a square Game of Life board in Z-order and provides
// constant-time neighbour navigation on the encoded address.
package zgrid

import (
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// Grid is a size×size board whose buffer is indexed by Addr.
type Grid struct {
	size   int
	exp    int
	cells  []State
	boundX Addr
	boundY Addr
}

// New allocates an all-Dead grid with the given side length.
func New(size int) (*Grid, error) {
	exp, err := exponent(size)
	if err != nil {
		return nil, err
	}
	boundX := Encode(uint16(size), 0)
	return &Grid{
		size:   size,
		exp:    exp,
		cells:  make([]State, size*size),
		boundX: boundX,
		boundY: boundX << 1,
	}, nil
}

func exponent(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	u := uint(size)
	n := bits.TrailingZeros(u)
	if n != bits.Len(u)-1 {
		return 0, fmt.Errorf("%w: %d is not a power of two", ErrInvalidSize, size)
	}
	if n > MaxExponent {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrInvalidSize, size, 1<<MaxExponent)
	}
	return n, nil
}

// ValidSize reports whether New would accept size.
func ValidSize(size int) bool {
	_, err := exponent(size)
	return err == nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Exponent returns n where Size() == 1<<n.
func (g *Grid) Exponent() int { return g.exp }

// Len returns the number of cells, Size()*Size().
func (g *Grid) Len() int { return len(g.cells) }

// Cells exposes the raw Z-order buffer.
func (g *Grid) Cells() []State { return g.cells }

// Contains reports whether a lies on the board. Only the per-axis bit subsets
// are compared; the address is never decoded.
func (g *Grid) Contains(a Addr) bool {
	return a&MaskX < g.boundX && a&MaskY < g.boundY
}

// At returns the state at a, or DeadVisited when a is off the board.
func (g *Grid) At(a Addr) State {
	if !g.Contains(a) {
		return DeadVisited
	}
	return g.cells[a]
}

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool {
	_, s := g.CursorAt(x, y)
	return s&AliveBit != 0
}

// CursorAt positions a cursor on (x, y). Coordinates outside the board give
// an off-board cursor and the DeadVisited sentinel.
func (g *Grid) CursorAt(x, y int) (Cursor, State) {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return Cursor{g: g, addr: MaskX | MaskY}, DeadVisited
	}
	c := Cursor{g: g, addr: Encode(uint16(x), uint16(y))}
	return c, g.cells[c.addr]
}

// CursorAddr positions a cursor on a raw buffer address.
func (g *Grid) CursorAddr(a Addr) Cursor {
	return Cursor{g: g, addr: a}
}

// SetAlive marks every in-range address Alive and returns how many were
// applied. Addresses at or beyond Len() are skipped.
func (g *Grid) SetAlive(addrs []uint32) int {
	limit := uint32(len(g.cells))
	applied := 0
	for _, a := range addrs {
		if a < limit {
			g.cells[a] = Alive
			applied++
		}
	}
	return applied
}

// Clear sets every cell to Dead.
func (g *Grid) Clear() {
	clear(g.cells)
}

// PopulateRandom makes each cell Dead or Alive with equal probability.
func (g *Grid) PopulateRandom(r *rand.Rand) {
	for i := range g.cells {
		g.cells[i] = State(r.IntN(2))
	}
}

// Population counts the Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, s := range g.cells {
		if s == Alive {
			n++
		}
	}
	return n
}
