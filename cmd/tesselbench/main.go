// Command tesselbench times the tessel multiply strategies on generated
// matrices, and in -ooc mode streams an out-of-core multiply through a
// memory-mapped FileStore with live progress.
//
// The seq|par|fast aliases map onto the Algorithm enum here, in the caller:
// the engine core only understands the enum.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gosuri/uilive"

	"github.com/helmgren/tessel/mat"
	"github.com/helmgren/tessel/matmul"
	"github.com/helmgren/tessel/outofcore"
)

func main() {
	var (
		size      = flag.Int("size", 512, "matrix edge length")
		blockSize = flag.Int("block", matmul.DefaultBlockSize, "block size for the tiled strategies")
		algo      = flag.String("algo", "seq", "multiplication strategy: seq|par|fast")
		parallel  = flag.Int("parallel", matmul.DefaultOptions().Parallelism, "parallel task cap")
		threshold = flag.Int("threshold", matmul.DefaultStrassenThreshold, "strassen recursion cutoff")
		seed      = flag.Int64("seed", 1, "seed for the generated matrices")
		ooc       = flag.Bool("ooc", false, "run the out-of-core demo instead of the dense one")
		storePath = flag.String("store", "", "file path for the out-of-core result store (temp file when empty)")
	)
	flag.Parse()

	algorithm, err := parseAlgo(*algo)
	if err != nil {
		log.Fatal(err)
	}

	opts := matmul.DefaultOptions()
	opts.Algorithm = algorithm
	opts.BlockSize = *blockSize
	opts.StrassenThreshold = *threshold
	opts.Parallelism = *parallel

	a := randomMatrix(*size, *size, *seed)
	b := randomMatrix(*size, *size, *seed+1)

	if *ooc {
		if err := runOutOfCore(a, b, opts, *storePath); err != nil {
			log.Fatal(err)
		}

		return
	}

	start := time.Now()
	c, err := matmul.Multiply(a, b, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %dx%d multiply: %v (‖C‖ = %.4f)\n",
		opts.Algorithm, *size, *size, time.Since(start), c.Norm())
}

// parseAlgo maps the CLI aliases onto the engine's closed enum.
func parseAlgo(s string) (matmul.Algorithm, error) {
	switch s {
	case "seq", "sequential":
		return matmul.Sequential, nil
	case "par", "parallel":
		return matmul.Parallel, nil
	case "fast", "strassen":
		return matmul.Strassen, nil
	default:
		return 0, fmt.Errorf("unknown -algo %q (want seq|par|fast)", s)
	}
}

// randomMatrix generates a deterministic rows×cols matrix from seed.
func randomMatrix(rows, cols int, seed int64) *mat.Matrix {
	rng := rand.New(rand.NewSource(seed))
	m, err := mat.FromFunc(rows, cols, func(int, int) float64 {
		return rng.Float64()*2 - 1
	})
	if err != nil {
		log.Fatal(err)
	}

	return m
}

// runOutOfCore stages both operands into memory stores, multiplies into a
// FileStore, and renders progress lines as block tasks complete.
func runOutOfCore(a, b *mat.Matrix, opts matmul.Options, storePath string) error {
	ctx := context.Background()

	oa, err := outofcore.FromDense(ctx, a, opts.BlockSize, opts.BlockSize, outofcore.NewMemStore())
	if err != nil {
		return err
	}
	ob, err := outofcore.FromDense(ctx, b, opts.BlockSize, opts.BlockSize, outofcore.NewMemStore())
	if err != nil {
		return err
	}

	if storePath == "" {
		storePath = filepath.Join(os.TempDir(), fmt.Sprintf("tesselbench-%d.blocks", os.Getpid()))
		defer os.Remove(storePath)
	}
	result, err := outofcore.Create(storePath, oa.GridRows(), ob.GridCols(), opts.BlockSize, opts.BlockSize)
	if err != nil {
		return err
	}
	defer result.Close()

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	start := time.Now()
	var mu sync.Mutex // progress fires from concurrent block tasks
	c, err := oa.Mul(ctx, ob, opts.Parallelism, result, func(done, total int) {
		mu.Lock()
		fmt.Fprintf(writer, "blocks: %d/%d\n", done, total)
		mu.Unlock()
	})
	if err != nil {
		return err
	}

	dense, err := c.Materialize(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(writer.Bypass(), "out-of-core multiply via %s: %v (‖C‖ = %.4f)\n",
		storePath, time.Since(start), dense.Norm())

	return nil
}
