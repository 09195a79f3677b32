// Command heapdemo exercises the heap package the way spec.md's original
// driver did: it runs a fixed allocate/free scenario, with the manager's
// parameters taken from CLI flags, and dumps the result. It is a
// collaborator, not load-bearing for the allocator's correctness.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"varheap/config"
	"varheap/pkg/heap"
	"varheap/util/logger"
)

func main() {
	cfg := config.NewHeapConfig()

	app := &cli.App{
		Name:  "heapdemo",
		Usage: "run a canned allocate/free/coalesce scenario against pkg/heap",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:  "page-size",
				Usage: "bytes per page",
				Value: uint64(cfg.PageSize),
			},
			&cli.Uint64Flag{
				Name:  "fragment-threshold",
				Usage: "bytes of tolerated headroom before a split",
				Value: uint64(cfg.FragmentThreshold),
			},
			&cli.BoolFlag{
				Name:  "grow",
				Usage: "allocate a new page on exhaustion instead of aborting",
				Value: cfg.GrowOnExhaustion,
			},
			&cli.StringFlag{
				Name:  "dump",
				Usage: "path to write the memory dump to; '-' for stdout",
				Value: "-",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.L.Fatal(err)
	}
}

func run(c *cli.Context) error {
	cfg := &config.HeapConfig{
		PageSize:          uint32(c.Uint64("page-size")),
		FragmentThreshold: uint32(c.Uint64("fragment-threshold")),
		GrowOnExhaustion:  c.Bool("grow"),
		InitialPages:      1,
	}

	m, err := heap.New(cfg.Options())
	if err != nil {
		return err
	}
	defer m.Close()

	scalar, err := m.Alloc(28)
	if err != nil {
		return err
	}

	array, err := m.Alloc(280)
	if err != nil {
		return err
	}

	if err := m.Free(array); err != nil {
		return err
	}
	if err := m.Free(scalar); err != nil {
		return err
	}

	dest := c.String("dump")
	if dest == "-" {
		return m.Dump(os.Stdout)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating dump file: %w", err)
	}
	defer f.Close()

	return m.Dump(f)
}
