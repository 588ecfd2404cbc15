package snapshot

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"zlife/internal/core"
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

func liveAddrs(g *zgrid.Grid) []uint32 {
	var out []uint32
	for i, s := range g.Cells() {
		if s == zgrid.Alive {
			out = append(out, uint32(i))
		}
	}
	return out
}

func TestEncodeUsesZOrderAddresses(t *testing.T) {
	g := newGrid(t, 8)
	for _, p := range [][2]int{{1, 0}, {0, 1}, {3, 2}} {
		c, _ := g.CursorAt(p[0], p[1])
		c.Toggle()
	}
	got := Encode(g)
	want := []uint32{8, 1, 2, uint32(zgrid.Encode(3, 2))}
	if !slices.Equal(got, want) {
		t.Fatalf("Encode = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	src := newGrid(t, 64)
	src.PopulateRandom(core.NewRNG(11))

	dst := newGrid(t, 64)
	out, err := Unmarshal(Marshal(src), dst)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != dst {
		t.Fatal("same-size decode should reuse the target grid")
	}
	if !slices.Equal(liveAddrs(src), liveAddrs(out)) {
		t.Fatal("decoded live set differs from the original")
	}
}

func TestDecodeResizes(t *testing.T) {
	old := newGrid(t, 4)
	old.SetAlive([]uint32{1, 2})

	out, err := Decode([]uint32{16, 0, 255, 256, 1 << 31}, old)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out == old || out.Size() != 16 {
		t.Fatalf("expected a fresh 16x16 grid, got size %d", out.Size())
	}
	if !slices.Equal(liveAddrs(out), []uint32{0, 255}) {
		t.Fatalf("live = %v, out-of-range words should be ignored", liveAddrs(out))
	}
	if !slices.Equal(liveAddrs(old), []uint32{1, 2}) {
		t.Fatal("old grid was modified")
	}

	fresh, err := Decode([]uint32{2, 3}, nil)
	if err != nil || fresh.Size() != 2 || fresh.Population() != 1 {
		t.Fatalf("Decode into nil grid: %v", err)
	}
}

func TestDecodeClearsExistingCells(t *testing.T) {
	g := newGrid(t, 8)
	g.SetAlive([]uint32{5, 6, 7})
	out, err := Decode([]uint32{8, 9}, g)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(liveAddrs(out), []uint32{9}) {
		t.Fatalf("live = %v, want [9]", liveAddrs(out))
	}
}

func TestDecodeInvalidSizeLeavesGrid(t *testing.T) {
	g := newGrid(t, 8)
	g.SetAlive([]uint32{3})
	for _, size := range []uint32{0, 3, 8192} {
		out, err := Decode([]uint32{size, 1}, g)
		if !errors.Is(err, zgrid.ErrInvalidSize) {
			t.Fatalf("size %d: err = %v", size, err)
		}
		if out != g || !slices.Equal(liveAddrs(g), []uint32{3}) {
			t.Fatalf("size %d: grid changed on failed decode", size)
		}
	}
}

func TestUnmarshalFormatError(t *testing.T) {
	g := newGrid(t, 8)
	g.SetAlive([]uint32{4})
	valid := Marshal(g)

	for _, data := range [][]byte{nil, {8, 0, 0}, append(slices.Clone(valid), 1), valid[:len(valid)-2]} {
		out, err := Unmarshal(data, g)
		if !errors.Is(err, ErrFormat) {
			t.Fatalf("len %d: err = %v, want ErrFormat", len(data), err)
		}
		if out != g || !slices.Equal(liveAddrs(g), []uint32{4}) {
			t.Fatalf("len %d: grid changed", len(data))
		}
	}
}

func TestMarshalLittleEndian(t *testing.T) {
	g := newGrid(t, 4)
	g.SetAlive([]uint32{1})
	want := []byte{4, 0, 0, 0, 1, 0, 0, 0}
	if got := Marshal(g); !bytes.Equal(got, want) {
		t.Fatalf("Marshal = %v, want %v", got, want)
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	src := newGrid(t, 32)
	src.PopulateRandom(core.NewRNG(3))

	path, err := Save(filepath.Join(dir, "board"), src)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != Ext {
		t.Fatalf("saved to %q, want %s suffix", path, Ext)
	}
	again, err := Save(path, src)
	if err != nil || again != path {
		t.Fatalf("re-save to %q went to %q (%v)", path, again, err)
	}

	out, err := Load(path, newGrid(t, 4))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.Size() != 32 || !slices.Equal(liveAddrs(src), liveAddrs(out)) {
		t.Fatal("loaded board differs from saved board")
	}
}

func TestStorageUnavailable(t *testing.T) {
	dir := t.TempDir()
	g := newGrid(t, 4)

	if _, err := Load(filepath.Join(dir, "missing.gol"), g); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Load missing err = %v", err)
	}
	if _, err := Save(filepath.Join(dir, "no", "such", "dir", "x"), g); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Save into missing dir err = %v", err)
	}

	bad := filepath.Join(dir, "bad.gol")
	if err := os.WriteFile(bad, []byte{1, 2, 3, 4, 5}, 0o644); err != nil {
		t.Fatal(err)
	}
	g.SetAlive([]uint32{2})
	out, err := Load(bad, g)
	if !errors.Is(err, ErrFormat) || out != g || g.Population() != 1 {
		t.Fatalf("Load of truncated file: err=%v", err)
	}
}
