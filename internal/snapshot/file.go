package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"zlife/internal/zgrid"
)

// Ext is appended to save paths that lack it.
const Ext = ".gol"

// ErrUnavailable is returned when the backing storage cannot be opened.
var ErrUnavailable = errors.New("snapshot: storage unavailable")

// Write streams g's snapshot to w.
func Write(w io.Writer, g *zgrid.Grid) error {
	_, err := w.Write(Marshal(g))
	return err
}

// Read consumes r entirely and decodes it into g; see Decode.
func Read(r io.Reader, g *zgrid.Grid) (*zgrid.Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return g, err
	}
	return Unmarshal(data, g)
}

// Save writes g to path, adding Ext when missing, and returns the path used.
func Save(path string, g *zgrid.Grid) (string, error) {
	if !strings.HasSuffix(path, Ext) {
		path += Ext
	}
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return path, fmt.Errorf("snapshot: write %s: %w", path, err)
	}
	return path, f.Close()
}

// Load reads the snapshot at path into g; see Decode. On any error g is
// returned unchanged.
func Load(path string, g *zgrid.Grid) (*zgrid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return g, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()
	return Read(f, g)
}
