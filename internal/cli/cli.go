// Package cli implements the interactive shell of cmd/memtree.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/alexhholmes/memtree"
)

// levelColors cycles per tree depth when rendering.
var levelColors = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

var (
	errColor  = color.New(color.FgRed)
	hitColor  = color.New(color.FgGreen, color.Bold)
	missColor = color.New(color.FgYellow)
)

type Cli struct {
	scanner *bufio.Scanner
	out     io.Writer
	tree    *memtree.Tree[int]
}

func NewCli(in io.Reader, out io.Writer, tree *memtree.Tree[int]) *Cli {
	return &Cli{scanner: bufio.NewScanner(in), out: out, tree: tree}
}

// Start reads commands until EOF or "exit".
func (c *Cli) Start() error {
	c.printHelp()
	c.printPrompt()
	for c.scanner.Scan() {
		if !c.processInput(c.scanner.Text()) {
			return nil
		}
		c.printPrompt()
	}
	return c.scanner.Err()
}

func (c *Cli) printHelp() {
	fmt.Fprintln(c.out, `
B-Tree CLI

Available Commands:
  INSERT <key>...  Insert one or more integer keys
  SEARCH <key>     Show the node holding key
  SHOW             Print the tree level by level
  STATS            Print size, height and search cache counters
  VERIFY           Check the tree invariants
  EXIT             Terminate this session`)
}

func (c *Cli) printPrompt() {
	fmt.Fprint(c.out, "> ")
}

// processInput runs one command line and reports whether to keep reading.
func (c *Cli) processInput(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return true
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		errColor.Fprintf(c.out, "Unknown command %q\n", command)
	case "insert", "set":
		c.processInsertCommand(fields[1:])
	case "search", "get":
		c.processSearchCommand(fields[1:])
	case "show":
		c.show()
	case "stats":
		c.processStatsCommand()
	case "verify":
		c.processVerifyCommand()
	case "help":
		c.printHelp()
	case "exit", "quit":
		return false
	}
	return true
}

func (c *Cli) processInsertCommand(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(c.out, "Usage: INSERT <key>...")
		return
	}

	keys := make([]int, 0, len(args))
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			errColor.Fprintf(c.out, "Invalid key %q: %v\n", arg, err)
			return
		}
		keys = append(keys, k)
	}

	for _, k := range keys {
		c.tree.Insert(k)
	}
	c.show()
}

func (c *Cli) processSearchCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: SEARCH <key>")
		return
	}
	k, err := strconv.Atoi(args[0])
	if err != nil {
		errColor.Fprintf(c.out, "Invalid key %q: %v\n", args[0], err)
		return
	}

	node, ok := c.tree.Search(k)
	if !ok {
		missColor.Fprintln(c.out, "Key not found.")
		return
	}
	hitColor.Fprintf(c.out, "Found %d in node %v", k, node.Keys())
	if node.IsLeaf() {
		fmt.Fprintln(c.out, " (leaf)")
	} else {
		fmt.Fprintf(c.out, " (%d children)\n", node.NumChildren())
	}
}

func (c *Cli) processStatsCommand() {
	s := c.tree.Stats()
	fmt.Fprintf(c.out, "degree=%d len=%d height=%d nodes=%d checksum=%016x\n",
		c.tree.Degree(), s.Len, s.Height, s.Nodes, c.tree.Checksum())
	fmt.Fprintf(c.out, "cache hits=%d misses=%d purges=%d\n",
		s.CacheHits, s.CacheMisses, s.CachePurges)
}

func (c *Cli) processVerifyCommand() {
	if err := c.tree.Verify(); err != nil {
		errColor.Fprintln(c.out, err)
		return
	}
	hitColor.Fprintln(c.out, "OK")
}

// show renders the tree one level per line, colored by depth.
func (c *Cli) show() {
	levels := c.tree.Levels()
	if len(levels) == 0 {
		fmt.Fprintln(c.out, "(empty)")
		return
	}

	for depth, level := range levels {
		paint := levelColors[depth%len(levelColors)]
		nodes := make([]string, len(level))
		for i, keys := range level {
			nodes[i] = paint.Sprint(keys)
		}
		fmt.Fprintln(c.out, strings.Join(nodes, " "))
	}
}
