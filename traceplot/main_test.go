// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-traceplot/accum"
	"github.com/aclements/go-traceplot/bench"
	"github.com/aclements/go-traceplot/ring"
	"github.com/aclements/go-traceplot/trace"
)

func TestFlagRange(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    flagRange
		wantErr bool
	}{
		{"0:10", flagRange{0, 10, true}, false},
		{"-1.5:2e3", flagRange{-1.5, 2000, true}, false},
		{"3:3", flagRange{3, 3, true}, false},
		{"10:0", flagRange{}, true},
		{"10", flagRange{}, true},
		{"a:1", flagRange{}, true},
		{"1:b", flagRange{}, true},
	} {
		var got flagRange
		err := got.Set(test.in)
		if (err != nil) != test.wantErr {
			t.Errorf("Set(%q): got error %v, want error %v", test.in, err, test.wantErr)
			continue
		}
		if got != test.want {
			t.Errorf("Set(%q): got %+v, want %+v", test.in, got, test.want)
		}
	}

	r := flagRange{1, 2, true}
	if lo, hi := r.apply(5, 6); lo != 1 || hi != 2 {
		t.Errorf("apply set range: got %v, %v", lo, hi)
	}
	if lo, hi := (flagRange{}).apply(5, 6); lo != 5 || hi != 6 {
		t.Errorf("apply unset range: got %v, %v", lo, hi)
	}
}

func TestFlagReducer(t *testing.T) {
	var f flagReducer
	if err := f.Set("median"); err != nil || f.String() != "median" || f.f == nil {
		t.Errorf("Set(median): %v, %q", err, f.String())
	}
	if err := f.Set("mode"); err == nil {
		t.Errorf("Set(mode) succeeded")
	}
}

func TestWithEnvFlags(t *testing.T) {
	got, err := withEnvFlags(`-width 10 -x 'commit time'`, []string{"-table", "in.txt"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-width", "10", "-x", "commit time", "-table", "in.txt"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if _, err := withEnvFlags(`-x 'unterminated`, nil); err == nil {
		t.Errorf("unterminated quote accepted")
	}
}

// benchInput returns n results of BenchmarkA with a linear ns/op
// and a B/op that is missing from result gap.
func benchInput(n, gap int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "seq: %d\n", i)
		if i == gap {
			fmt.Fprintf(&b, "BenchmarkA-4\t1\t%d ns/op\n", i)
		} else {
			fmt.Fprintf(&b, "BenchmarkA-4\t1\t%d ns/op\t%d B/op\n", i, 2*i)
		}
	}
	return b.String()
}

func loadSeries(t *testing.T, input string) []*bench.Series {
	t.Helper()
	rs, err := bench.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	return bench.Group(rs, "seq")
}

func TestReduceAll(t *testing.T) {
	series := loadSeries(t, benchInput(100, 50))
	var logged []string
	cfg := config{
		width:  10,
		window: 1000,
		policy: ring.DropOldest,
		reduce: accum.Mean,
		logf: func(format string, args ...interface{}) {
			logged = append(logged, fmt.Sprintf(format, args...))
		},
	}
	traces, err := reduceAll(series, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(traces) != 2 {
		t.Fatalf("got %d traces, want 2", len(traces))
	}
	if len(logged) != 2 {
		t.Errorf("got %d log lines, want 2: %q", len(logged), logged)
	}

	bop, ns := traces[0], traces[1]
	if bop.unit != "B/op" || ns.unit != "ns/op" {
		t.Fatalf("units %s, %s", bop.unit, ns.unit)
	}

	// 100 points to 10 gives runs of 10: first, 9 full runs of
	// 1..90, a short run of 91..98, and last.
	if len(ns.points) != 12 {
		t.Errorf("ns/op: got %d points, want 12: %v", len(ns.points), ns.points)
	}
	if p := ns.points[1]; p != (accum.Point{X: 5.5, Y: 5.5}) {
		t.Errorf("ns/op: first run got %v, want (5.5,5.5)", p)
	}

	// The gap at 50 must survive.
	found := false
	for _, p := range bop.points {
		if p.IsGap() {
			if p.X != 50 {
				t.Errorf("B/op gap at %v, want 50", p.X)
			}
			found = true
		}
	}
	if !found {
		t.Errorf("B/op: gap lost: %v", bop.points)
	}
}

func TestReduceAllWindow(t *testing.T) {
	series := loadSeries(t, benchInput(20, -1))
	for _, test := range []struct {
		window, keep int
		policy       ring.Policy
		first, n     float64
	}{
		{1000, 0, ring.DropOldest, 0, 20},
		{5, 0, ring.DropOldest, 15, 5},
		{1000, 4, ring.DropOldest, 16, 4},
		{1000, 4, ring.RetainOverflow, 0, 20},
	} {
		cfg := config{width: 1000, window: test.window, keep: test.keep, policy: test.policy, reduce: accum.Mean}
		traces, err := reduceAll(series, cfg)
		if err != nil {
			t.Fatal(err)
		}
		pts := traces[1].points
		if float64(len(pts)) != test.n || pts[0].X != test.first {
			t.Errorf("window %d keep %d %v: got %d points from %v, want %v from %v",
				test.window, test.keep, test.policy, len(pts), pts[0].X, test.n, test.first)
		}
	}
}

func TestReduceAllViewport(t *testing.T) {
	series := loadSeries(t, benchInput(100, -1))
	cfg := config{width: 2, window: 1000, policy: ring.DropOldest, reduce: accum.Mean}
	cfg.xrange.Set("40:59")
	traces, err := reduceAll(series, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Everything outside [40, 59] passes through; 40..59 is one
	// run of 20 merged at 49.5.
	pts := traces[1].points
	if len(pts) != 81 {
		t.Errorf("got %d points, want 81", len(pts))
	}
	if p := pts[40]; p != (accum.Point{X: 49.5, Y: 49.5}) {
		t.Errorf("merged point got %v, want (49.5,49.5)", p)
	}
}

func TestViewport(t *testing.T) {
	tr, _ := trace.New("x", 4, ring.DropOldest)
	tr.AddAll([]accum.Point{{X: 0, Y: 0}, accum.Gap(5), {X: 10, Y: 100}})
	var cfg config
	cfg.yrange.Set("20:30")
	v := viewport(tr, cfg)
	if v.X.Min != 0 || v.X.Max != 10 {
		t.Errorf("X: got %v:%v, want 0:10", v.X.Min, v.X.Max)
	}
	if v.Y.Min != 20 || v.Y.Max != 30 {
		t.Errorf("Y: got %v:%v, want 20:30", v.Y.Min, v.Y.Max)
	}
	if v.Visible(accum.Point{X: 5, Y: 50}) {
		t.Errorf("(5,50) visible outside -yrange")
	}
}

func TestTracesToTable(t *testing.T) {
	traces := []reducedTrace{
		{"A", "ns/op", []accum.Point{{X: 0, Y: 1}, accum.Gap(1), {X: 2, Y: 3}}},
		{"B", "ns/op", []accum.Point{{X: 0, Y: 5}}},
	}
	tab := tracesToTable(traces)
	if tab.Len() != 4 {
		t.Fatalf("got %d rows, want 4", tab.Len())
	}
	if got, want := tab.MustColumn("segment").([]int), []int{0, 1, 1, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("segment: got %v, want %v", got, want)
	}
	ys := tab.MustColumn("y").([]float64)
	if !math.IsNaN(ys[1]) || ys[3] != 5 {
		t.Errorf("y: got %v", ys)
	}

	var buf bytes.Buffer
	if err := table.Fprint(&buf, tab); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Count(buf.String(), "\n"); lines != 5 {
		t.Errorf("table has %d lines, want 5:\n%s", lines, buf.String())
	}
}

func TestPlot(t *testing.T) {
	series := loadSeries(t, benchInput(50, 10))
	traces, err := reduceAll(series, config{width: 10, window: 100, reduce: accum.Mean})
	if err != nil {
		t.Fatal(err)
	}
	p, ncols := plot(tracesToTable(traces), flagRange{}, flagRange{0, 100, true})
	if ncols != 2 {
		t.Errorf("got %d columns, want 2", ncols)
	}
	var buf bytes.Buffer
	if err := p.WriteSVG(&buf, 500*ncols, 350); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG:\n%.200s", buf.String())
	}
}
