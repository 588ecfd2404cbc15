package life

import (
	"math/rand/v2"
	"testing"

	"zlife/internal/zgrid"
)

func newGrid(t *testing.T, size int) *zgrid.Grid {
	t.Helper()
	g, err := zgrid.New(size)
	if err != nil {
		t.Fatalf("zgrid.New(%d): %v", size, err)
	}
	return g
}

func set(g *zgrid.Grid, coords ...[2]int) {
	for _, c := range coords {
		cur, _ := g.CursorAt(c[0], c[1])
		cur.Set(zgrid.Alive)
	}
}

func expectAlive(t *testing.T, g *zgrid.Grid, when string, coords ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, c := range coords {
		want[c] = true
	}
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if alive := g.Alive(x, y); alive != want[[2]int{x, y}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", when, x, y, alive, want[[2]int{x, y}])
			}
		}
	}
}

func expectResting(t *testing.T, g *zgrid.Grid) {
	t.Helper()
	for i, s := range g.Cells() {
		if s.Phase() != zgrid.Resting {
			t.Fatalf("cell %d left in %v after tick", i, s)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGrid(t, 8)
	set(g, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})

	Tick(g)
	expectResting(t, g)
	expectAlive(t, g, "after first tick", [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})

	Tick(g)
	expectResting(t, g)
	expectAlive(t, g, "after second tick", [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4})
}

func TestBlockIsStill(t *testing.T) {
	g := newGrid(t, 16)
	block := [][2]int{{5, 5}, {6, 5}, {5, 6}, {6, 6}}
	set(g, block...)
	for i := 0; i < 10; i++ {
		Tick(g)
		expectAlive(t, g, "block", block...)
	}
}

func TestBlockInCornerIsStill(t *testing.T) {
	g := newGrid(t, 4)
	block := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	set(g, block...)
	Tick(g)
	expectAlive(t, g, "corner block", block...)
}

func TestIsolatedCellDies(t *testing.T) {
	g := newGrid(t, 8)
	set(g, [2]int{4, 4})
	for i := 0; i < 3; i++ {
		Tick(g)
		expectResting(t, g)
		if pop := g.Population(); pop != 0 {
			t.Fatalf("tick %d: population %d, want 0", i+1, pop)
		}
	}
}

func TestUpdateCellIsIdempotent(t *testing.T) {
	g := newGrid(t, 8)
	set(g, [2]int{3, 2}, [2]int{3, 3}, [2]int{3, 4}, [2]int{6, 6})

	for _, p := range [][2]int{{3, 2}, {3, 3}, {2, 3}, {0, 0}, {6, 6}} {
		c, _ := g.CursorAt(p[0], p[1])
		UpdateCell(c)
		once := c.State()
		UpdateCell(c)
		if twice := c.State(); twice != once {
			t.Fatalf("cell %v: first call %v, second call %v", p, once, twice)
		}
	}

	want := map[[2]int]zgrid.State{
		{3, 2}: zgrid.Dying,
		{3, 3}: zgrid.Alive,
		{2, 3}: zgrid.Birthing,
		{0, 0}: zgrid.DeadVisited,
		{6, 6}: zgrid.Dying,
	}
	for p, s := range want {
		c, _ := g.CursorAt(p[0], p[1])
		if got := c.State(); got != s {
			t.Fatalf("cell %v = %v, want %v", p, got, s)
		}
	}
}

func TestGliderStopsAtEdge(t *testing.T) {
	g := newGrid(t, 8)
	set(g, [2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	for i := 0; i < 4; i++ {
		Tick(g)
	}
	expectAlive(t, g, "glider after one period", [2]int{2, 1}, [2]int{3, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3})

	for i := 0; i < 40; i++ {
		Tick(g)
	}
	expectResting(t, g)
	// Without wraparound the glider turns into a block in the far corner.
	expectAlive(t, g, "glider at the edge", [2]int{6, 6}, [2]int{7, 6}, [2]int{6, 7}, [2]int{7, 7})
}

// naiveStep computes one bounded generation directly from coordinates.
func naiveStep(cur []bool, size int) []bool {
	next := make([]bool, len(cur))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= size || ny >= size {
						continue
					}
					if cur[ny*size+nx] {
						n++
					}
				}
			}
			alive := cur[y*size+x]
			next[y*size+x] = n == 3 || (alive && n == 2)
		}
	}
	return next
}

func TestTickMatchesNaiveBoundedLife(t *testing.T) {
	for _, size := range []int{1, 2, 4, 32} {
		g := newGrid(t, size)
		g.PopulateRandom(rand.New(rand.NewPCG(uint64(size), 3)))

		ref := make([]bool, size*size)
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				ref[y*size+x] = g.Alive(x, y)
			}
		}

		for gen := 1; gen <= 30; gen++ {
			Tick(g)
			ref = naiveStep(ref, size)
			expectResting(t, g)
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if g.Alive(x, y) != ref[y*size+x] {
						t.Fatalf("size %d gen %d: cell (%d,%d) alive=%v, reference %v", size, gen, x, y, g.Alive(x, y), ref[y*size+x])
					}
				}
			}
		}
	}
}
