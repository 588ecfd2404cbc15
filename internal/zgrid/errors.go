package zgrid

import "errors"

// MaxExponent bounds the grid side at 1<<MaxExponent cells.
const MaxExponent = 12

// ErrInvalidSize is returned when a requested side length is not a power of
// two or exceeds 1<<MaxExponent.
var ErrInvalidSize = errors.New("zgrid: size must be a power of two no larger than 4096")
