package zgrid

// Addr is a Z-order (Morton) encoded cell address: x occupies the even bits
// and y the odd bits.
type Addr uint32

const (
	// MaskX selects the bits of an Addr that carry the x coordinate.
	MaskX Addr = 0x55555555
	// MaskY selects the bits of an Addr that carry the y coordinate.
	MaskY Addr = 0xAAAAAAAA
)

// Direction names one of the four unit steps on the grid.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// MooreRing visits all eight Moore neighbours of a cell in a closed loop:
// N, NW, W, SW, S, SE, E, NE.
var MooreRing = [8]Direction{Up, Left, Down, Down, Right, Right, Up, Up}

func deltaSwap(a, mask uint32, shift uint) uint32 {
	b := ((a << shift) ^ a) & mask
	return a ^ b ^ (b >> shift)
}

// Encode interleaves x and y into a Z-order address.
func Encode(x, y uint16) Addr {
	v := uint32(y)<<16 | uint32(x)
	v = deltaSwap(v, 0x00FF0000, 8)
	v = deltaSwap(v, 0x0F000F00, 4)
	v = deltaSwap(v, 0x30303030, 2)
	v = deltaSwap(v, 0x44444444, 1)
	return Addr(v)
}

// Decode splits the address back into its coordinates.
func (a Addr) Decode() (x, y uint16) {
	v := uint32(a)
	v = deltaSwap(v, 0x44444444, 1)
	v = deltaSwap(v, 0x30303030, 2)
	v = deltaSwap(v, 0x0F000F00, 4)
	v = deltaSwap(v, 0x00FF0000, 8)
	return uint16(v), uint16(v >> 16)
}

// Step returns the address one cell away in direction d. Arithmetic stays
// inside one axis' bit subset and wraps modulo 2^16 per axis; callers detect
// the grid edge by comparing the axis bits against the grid bound.
func (a Addr) Step(d Direction) Addr {
	switch d {
	case Up:
		return a&MaskX | ((a&MaskY)-1)&MaskY
	case Down:
		return a&MaskX | ((a|MaskX)+1)&MaskY
	case Left:
		return a&MaskY | ((a&MaskX)-1)&MaskX
	case Right:
		return a&MaskY | ((a|MaskY)+1)&MaskX
	}
	return a
}
