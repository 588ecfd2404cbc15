package core

import "zlife/internal/zgrid"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the viewer and the batch runner drive.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Clear()
	Generation() int
	// Grid exposes the board for rendering, editing and persistence.
	Grid() *zgrid.Grid
	// SetGrid swaps in a fully built board, e.g. after loading a snapshot.
	SetGrid(g *zgrid.Grid)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
