// Package snapshot converts a board to and from the .gol format: a sequence
// of little-endian uint32 words holding the side length followed by the
// Z-order address of every live cell in ascending order.
package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"

	"zlife/internal/zgrid"
)

const wordSize = 4

// ErrFormat is returned when persisted data cannot be a snapshot.
var ErrFormat = errors.New("snapshot: malformed data")

// Encode lists g's side length followed by the address of every Alive cell.
func Encode(g *zgrid.Grid) []uint32 {
	words := []uint32{uint32(g.Size())}
	for i, s := range g.Cells() {
		if s == zgrid.Alive {
			words = append(words, uint32(i))
		}
	}
	return words
}

// Decode loads words into g and returns the board to use from now on. When
// the stored size differs from g (or g is nil) a new grid is built; if that
// size is invalid the error wraps zgrid.ErrInvalidSize and g is untouched.
// Addresses beyond the board are ignored.
func Decode(words []uint32, g *zgrid.Grid) (*zgrid.Grid, error) {
	if len(words) == 0 {
		return g, fmt.Errorf("%w: missing size word", ErrFormat)
	}
	target := g
	if size := int(words[0]); target == nil || size != target.Size() {
		fresh, err := zgrid.New(size)
		if err != nil {
			return g, err
		}
		target = fresh
	}
	target.Clear()
	target.SetAlive(words[1:])
	return target, nil
}

// Marshal serialises g into .gol bytes.
func Marshal(g *zgrid.Grid) []byte {
	words := Encode(g)
	buf := make([]byte, len(words)*wordSize)
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*wordSize:], w)
	}
	return buf
}

// Unmarshal decodes .gol bytes into g; see Decode. Data whose length is not a
// whole, non-zero number of words is rejected with ErrFormat.
func Unmarshal(data []byte, g *zgrid.Grid) (*zgrid.Grid, error) {
	if len(data) < wordSize || len(data)%wordSize != 0 {
		return g, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrFormat, len(data), wordSize)
	}
	words := make([]uint32, len(data)/wordSize)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*wordSize:])
	}
	return Decode(words, g)
}
