package zgrid

// State is the value stored for a cell. Bit 0 set means the cell counts as
// alive for its neighbours' counts.
type State uint8

const (
	Dead        State = 0b000
	Alive       State = 0b001
	Birthing    State = 0b010 // becomes Alive at commit
	Dying       State = 0b011 // alive now, becomes Dead at commit
	DeadVisited State = 0b100 // evaluated, stays Dead

	// AliveBit masks a State down to "counts as alive".
	AliveBit State = 0b001
	// Unresolved masks a State so that only a plain Dead cell reads as zero.
	Unresolved State = Alive | Birthing | DeadVisited
)

// Phase separates the resting values from the in-tick markers.
type Phase uint8

const (
	Resting Phase = iota
	InTick
)

// Phase reports whether s may appear outside of a running tick.
func (s State) Phase() Phase {
	if s == Dead || s == Alive {
		return Resting
	}
	return InTick
}

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	case Birthing:
		return "birthing"
	case Dying:
		return "dying"
	case DeadVisited:
		return "dead-visited"
	}
	return "invalid"
}
