package zgrid

// Cursor is a position on a Grid. It is a value: moving returns a new Cursor
// and leaves the receiver where it was.
type Cursor struct {
	g    *Grid
	addr Addr
}

// Addr returns the encoded address under the cursor.
func (c Cursor) Addr() Addr { return c.addr }

// OnGrid reports whether the cursor is inside the board.
func (c Cursor) OnGrid() bool { return c.g.Contains(c.addr) }

// State returns the value under the cursor, DeadVisited when off the board.
func (c Cursor) State() State { return c.g.At(c.addr) }

// Set stores s under the cursor. Off-board cursors are ignored.
func (c Cursor) Set(s State) {
	if c.g.Contains(c.addr) {
		c.g.cells[c.addr] = s
	}
}

// Toggle flips Dead to Alive and anything else to Dead.
func (c Cursor) Toggle() {
	if !c.g.Contains(c.addr) {
		return
	}
	if c.g.cells[c.addr] == Dead {
		c.g.cells[c.addr] = Alive
		return
	}
	c.g.cells[c.addr] = Dead
}

// Move steps one cell in direction d and returns the new cursor together with
// the state found there masked by mask. Stepping off the board does not touch
// the buffer and reads DeadVisited&mask.
func (c Cursor) Move(d Direction, mask State) (Cursor, State) {
	next := Cursor{g: c.g, addr: c.addr.Step(d)}
	if !c.g.Contains(next.addr) {
		return next, DeadVisited & mask
	}
	return next, c.g.cells[next.addr] & mask
}

// Up moves one row up and reports whether the cell there counts as alive.
func (c Cursor) Up() (Cursor, State) { return c.Move(Up, AliveBit) }

// Down moves one row down.
func (c Cursor) Down() (Cursor, State) { return c.Move(Down, AliveBit) }

// Left moves one column left.
func (c Cursor) Left() (Cursor, State) { return c.Move(Left, AliveBit) }

// Right moves one column right.
func (c Cursor) Right() (Cursor, State) { return c.Move(Right, AliveBit) }

// CountAliveNeighbors sums bit 0 over the eight Moore neighbours, so Alive
// and Dying cells count while Birthing cells do not.
func (c Cursor) CountAliveNeighbors() int {
	n := 0
	p := c
	for _, d := range MooreRing {
		var s State
		p, s = p.Move(d, AliveBit)
		n += int(s)
	}
	return n
}
