// Command life-batch advances .gol boards headlessly. Each file is simulated
// on its own goroutine; a single board is always stepped sequentially.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"zlife/internal/sims/life"
	"zlife/internal/snapshot"

	"golang.org/x/sync/errgroup"
)

type result struct {
	in, out   string
	size      int
	before    int
	after     int
	generated int
	elapsed   time.Duration
}

func main() {
	gens := flag.Int("gens", 100, "generations to advance each board")
	workers := flag.Int("workers", runtime.NumCPU(), "boards simulated in parallel")
	outDir := flag.String("out", "", "directory for results (default: next to the input, with an .out suffix)")
	newSize := flag.Int("new", 0, "instead of advancing files, write a random board of this size to each path")
	seed := flag.Int64("seed", 42, "seed for -new boards")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: life-batch [flags] board.gol...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *newSize > 0 {
		for i, p := range paths {
			l, err := life.New(*newSize)
			if err != nil {
				log.Fatalf("new board: %v", err)
			}
			l.Reset(*seed + int64(i))
			written, err := snapshot.Save(p, l.Grid())
			if err != nil {
				log.Fatalf("save %s: %v", written, err)
			}
			log.Printf("wrote %s (%dx%d, %d alive)", written, *newSize, *newSize, l.Grid().Population())
		}
		return
	}

	results := make([]result, len(paths))
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(max(*workers, 1))
	for i, p := range paths {
		eg.Go(func() error {
			r, err := advance(ctx, p, outPath(p, *outDir), *gens)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("%s -> %s: %dx%d, %d gens, alive %d -> %d (%s)\n",
			r.in, r.out, r.size, r.size, r.generated, r.before, r.after, r.elapsed.Round(time.Millisecond))
	}
}

func outPath(in, dir string) string {
	base := filepath.Base(in)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)] + ".out" + snapshot.Ext
	if dir == "" {
		dir = filepath.Dir(in)
	}
	return filepath.Join(dir, name)
}

func advance(ctx context.Context, in, out string, gens int) (result, error) {
	grid, err := snapshot.Load(in, nil)
	if err != nil {
		return result{}, err
	}
	l, err := life.New(grid.Size())
	if err != nil {
		return result{}, err
	}
	l.SetGrid(grid)

	r := result{in: in, size: grid.Size(), before: grid.Population()}
	start := time.Now()
	for l.Generation() < gens {
		if err := ctx.Err(); err != nil {
			return result{}, err
		}
		l.Step()
	}
	r.elapsed = time.Since(start)
	r.generated = l.Generation()
	r.after = l.Grid().Population()

	r.out, err = snapshot.Save(out, l.Grid())
	return r, err
}
