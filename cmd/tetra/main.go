// Command tetra is the command-line front end: it reads a .node or
// .poly input file, applies TetGen-style switches, and writes the
// resulting tetrahedralization in TetGen's output formats.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sunpia/tetgen"
	"github.com/sunpia/tetgen/behavior"
	"github.com/sunpia/tetgen/plc"
	"github.com/sunpia/tetgen/tetio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "tetra:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("tetra", flag.ExitOnError)
	switches := fs.String("s", "", "TetGen-style switch string, e.g. \"pq1.2a0.1A\"")
	out := fs.String("o", "out", "output file basename (without extension)")
	timeout := fs.Duration("timeout", 0, "abort the run after this long (0 = no limit)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tetra -s SWITCHES [-o OUT] INPUT.poly|INPUT.node")
	}
	inputPath := fs.Arg(0)

	b, err := behavior.Parse(*switches)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	in, err := loadInput(inputPath, b)
	if err != nil {
		return err
	}

	start := time.Now()
	output, err := tetgen.Tetrahedralize(ctx, b, in)
	if err != nil {
		return err
	}

	if !b.Quiet {
		fmt.Printf("tetra: %d vertices, %d tetrahedra, worst radius-edge ratio %.4f, %s\n",
			len(output.Store.Vertices), output.Quality.Count, output.Quality.Max, time.Since(start))
	}

	return writeOutput(*out, output, b, in.PLC.Segments)
}

func loadInput(path string, b behavior.Behavior) (tetgen.Input, error) {
	var in tetgen.Input

	switch strings.ToLower(filepath.Ext(path)) {
	case ".poly":
		ns, p, err := tetio.ReadPoly(path)
		if err != nil {
			return in, err
		}
		if ns == nil {
			return in, fmt.Errorf("tetra: %s has no inline points; load a companion .node file instead", path)
		}
		in.Points = ns.Points
		in.Attributes = ns.Attributes
		in.Markers = ns.Markers
		in.PLC = p
	case ".node":
		ns, err := tetio.ReadNode(path)
		if err != nil {
			return in, err
		}
		in.Points = ns.Points
		in.Attributes = ns.Attributes
		in.Markers = ns.Markers
	default:
		return in, fmt.Errorf("tetra: unrecognized input extension %q (want .poly or .node)", filepath.Ext(path))
	}
	return in, nil
}

func writeOutput(base string, output *tetgen.Output, b behavior.Behavior, segments []plc.Segment) error {
	if err := tetio.WriteNode(base+".node", output.Store); err != nil {
		return err
	}
	if b.EdgesOnly {
		if err := tetio.WriteEdge(base+".edge", segments); err != nil {
			return err
		}
	} else {
		if err := tetio.WriteEle(base+".ele", output.Store); err != nil {
			return err
		}
		if err := tetio.WriteFace(base+".face", output.Store); err != nil {
			return err
		}
	}
	if output.Dual != nil {
		if err := tetio.WriteVNode(base+".v.node", *output.Dual); err != nil {
			return err
		}
		if err := tetio.WriteVEdge(base+".v.edge", *output.Dual); err != nil {
			return err
		}
	}
	return nil
}
