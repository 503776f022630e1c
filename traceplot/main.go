// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command traceplot plots benchmark results as traces, reduced to
// roughly one point per pixel.
//
// traceplot takes input files in Go benchmark format [1]. Each metric
// of each benchmark becomes one trace. By default, a trace's X
// coordinate is the index of each result; with -x, it is taken from a
// numeric configuration key such as "commit-time". A result missing a
// metric breaks that metric's line.
//
// Each trace is kept in a ring buffer of -window points, then reduced
// to about -width points by merging runs of consecutive points that
// fall inside the viewport. The first and last points, the points
// around each break, and the points just outside the viewport are
// kept exactly.
//
// Default flags may be given in the TRACEPLOTFLAGS environment
// variable, using shell quoting.
//
// [1] https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-traceplot/accum"
	"github.com/aclements/go-traceplot/bench"
	"github.com/aclements/go-traceplot/ring"
	"github.com/kballard/go-shellquote"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("traceplot: ")
	log.SetFlags(0)

	var (
		flagOut    = flag.String("o", "", "write output to `file` (default: stdout)")
		flagTable  = flag.Bool("table", false, "output a table instead of a plot")
		flagWidth  = flag.Int("width", 500, "reduce each trace to about `n` points")
		flagWindow = flag.Int("window", 10000, "keep only the last `n` points of each trace")
		flagKeep   = flag.Int("keep", 0, "after loading, shrink each trace to `n` points")
		flagRetain = flag.Bool("retain", false, "keep points removed by -keep until they are plotted")
		flagX      = flag.String("x", "", "use configuration `key` as the X coordinate")
		flagV      = flag.Bool("v", false, "log the size and reduction of each trace")
		flagReduce = flagReducer{"mean", accum.Mean}
		flagXRange flagRange
		flagYRange flagRange
	)
	flag.Var(&flagReduce, "reduce", "merge runs of points using `func` (mean or median)")
	flag.Var(&flagXRange, "xrange", "set the X viewport to `lo:hi` (default: data bounds)")
	flag.Var(&flagYRange, "yrange", "set the Y viewport to `lo:hi` (default: data bounds)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [inputs...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	args, err := withEnvFlags(os.Getenv("TRACEPLOTFLAGS"), os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	flag.CommandLine.Parse(args)
	if *flagWidth < 1 || *flagWindow < 1 || *flagKeep < 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Parse benchmark inputs.
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var results []*bench.Result
	for _, path := range paths {
		func() {
			f := os.Stdin
			if path != "-" {
				var err error
				f, err = os.Open(path)
				if err != nil {
					log.Fatal(err)
				}
				defer f.Close()
			}

			rs, err := bench.Parse(f)
			if err != nil {
				log.Fatal(err)
			}
			results = append(results, rs...)
		}()
	}

	if len(results) == 0 {
		log.Fatal("no benchmark results in input")
	}

	cfg := config{
		width:  *flagWidth,
		window: *flagWindow,
		keep:   *flagKeep,
		policy: ring.DropOldest,
		reduce: flagReduce.f,
		xrange: flagXRange,
		yrange: flagYRange,
	}
	if *flagRetain {
		cfg.policy = ring.RetainOverflow
	}
	if *flagV {
		cfg.logf = log.Printf
	}
	traces, err := reduceAll(bench.Group(results, *flagX), cfg)
	if err != nil {
		log.Fatal(err)
	}
	tab := tracesToTable(traces)

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		var err error
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	} else if !*flagTable && term.IsTerminal(int(f.Fd())) {
		log.Fatal("refusing to write SVG to a terminal; use -o or -table")
	}

	// Output table.
	if *flagTable {
		if err := table.Fprint(f, tab); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Plot.
	p, ncols := plot(tab, cfg.xrange, cfg.yrange)
	if !(len(paths) == 1 && paths[0] == "-") {
		p.Add(gg.Title(strings.Join(paths, " ")))
	}
	if err := p.WriteSVG(f, 500*ncols, 350); err != nil {
		log.Fatal(err)
	}
}

// withEnvFlags returns args preceded by the shell-quoted flags in env.
func withEnvFlags(env string, args []string) ([]string, error) {
	extra, err := shellquote.Split(env)
	if err != nil {
		return nil, fmt.Errorf("parsing TRACEPLOTFLAGS: %w", err)
	}
	return append(extra, args...), nil
}
