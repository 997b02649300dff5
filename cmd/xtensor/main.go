// Command xtensor selects a graph parser by file extension, runs
// algorithm U or C, and prints the result. It carries no persisted state
// beyond the flags listed below.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/xtensor/algorithm"
	"github.com/katalvlaran/xtensor/format"
	"github.com/katalvlaran/xtensor/xgraph"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "xtensor:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("xtensor", flag.ContinueOnError)
	graphPath := fs.String("graph", "", "path to a .g6, .s6, or .tsv graph file (required)")
	k := fs.Int("k", 2, "path length to count or decide")
	eps := fs.Float64("eps", 0.2, "relative error tolerance for algorithm C")
	seed := fs.Int64("seed", 0, "RNG seed (0 selects the package default)")
	decide := fs.Bool("u", false, "run decision algorithm U instead of approximate counting C")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *graphPath == "" {
		return fmt.Errorf("-graph is required")
	}

	g, err := parseGraphFile(*graphPath)
	if err != nil {
		return err
	}

	if *decide {
		ok, err := algorithm.U(g, *k)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, ok)
		return nil
	}

	estimate, err := algorithm.C(g, *k, *eps, *seed)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, estimate)
	return nil
}

// parseGraphFile selects a parser by file extension.
func parseGraphFile(path string) (*xgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".g6":
		return format.ParseGraph6(f)
	case ".s6":
		return format.ParseSparse6(f)
	case ".tsv":
		return format.ParseTSV(f)
	default:
		return nil, fmt.Errorf("xtensor: unrecognized graph file extension %q", filepath.Ext(path))
	}
}
