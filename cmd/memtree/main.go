package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/alexhholmes/memtree"
	"github.com/alexhholmes/memtree/internal/cli"
	"github.com/alexhholmes/memtree/logger"
)

var (
	degree    = flag.Int("degree", 3, "minimum degree t of the tree (>= 2)")
	cacheSize = flag.Uint("cache", 0, "search cache entries, 0 disables the cache")
	logTo     = flag.String("log", "none", "structural event logging: none, zap or logrus")
	check     = flag.Bool("check", false, "verify tree invariants after every insert")
)

func main() {
	flag.Parse()

	if *degree < 2 {
		fmt.Fprintf(os.Stderr, "invalid -degree %d: must be at least 2\n", *degree)
		os.Exit(2)
	}
	entries, err := cacheEntries(*cacheSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []memtree.Option{memtree.WithSearchCache(entries)}
	if *check {
		opts = append(opts, memtree.WithInvariantChecks())
	}

	switch *logTo {
	case "none":
	case "zap":
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "create zap logger: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = zapLogger.Sync() }()
		opts = append(opts, memtree.WithLogger(logger.NewZap(zapLogger)))
	case "logrus":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		opts = append(opts, memtree.WithLogger(logger.NewLogrus(l)))
	default:
		fmt.Fprintf(os.Stderr, "invalid -log %q: want none, zap or logrus\n", *logTo)
		os.Exit(2)
	}

	tree := memtree.New[int](*degree, opts...)
	demo := cli.NewCli(os.Stdin, os.Stdout, tree)
	if err := demo.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
}

// cacheEntries narrows the -cache flag to the cache's entry type.
func cacheEntries(n uint) (uint32, error) {
	if uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("invalid -cache %d: must be at most %d", n, uint64(math.MaxUint32))
	}
	return uint32(n), nil
}
