package life

import "zlife/internal/zgrid"

// UpdateCell resolves the fate of the cell under c for the running tick.
// Cells already carrying a marker are left alone, so a second call on the
// same cell within a tick is a no-op.
func UpdateCell(c zgrid.Cursor) {
	switch c.State() {
	case zgrid.Alive:
		if n := c.CountAliveNeighbors(); n < 2 || n > 3 {
			c.Set(zgrid.Dying)
		}
	case zgrid.Dead:
		if c.CountAliveNeighbors() == 3 {
			c.Set(zgrid.Birthing)
		} else {
			c.Set(zgrid.DeadVisited)
		}
	}
}

// Tick advances g by one generation.
//
// The mark pass only evaluates live cells and the dead cells touching them.
// The first live neighbour to reach a dead cell leaves a marker on it, so no
// cell is evaluated twice and isolated dead cells are never evaluated. The
// commit pass then turns every marker back into Dead or Alive.
func Tick(g *zgrid.Grid) {
	mark(g)
	commit(g.Cells())
}

func mark(g *zgrid.Grid) {
	cells := g.Cells()
	for i := range cells {
		if cells[i] != zgrid.Alive {
			continue
		}
		c := g.CursorAddr(zgrid.Addr(i))
		UpdateCell(c)
		for _, d := range zgrid.MooreRing {
			var s zgrid.State
			c, s = c.Move(d, zgrid.Unresolved)
			if s == zgrid.Dead {
				UpdateCell(c)
			}
		}
	}
}

func commit(cells []zgrid.State) {
	for i, s := range cells {
		switch s {
		case zgrid.Birthing:
			cells[i] = zgrid.Alive
		case zgrid.Dying, zgrid.DeadVisited:
			cells[i] = zgrid.Dead
		}
	}
}
