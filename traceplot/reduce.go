// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/aclements/go-traceplot/accum"
	"github.com/aclements/go-traceplot/bench"
	"github.com/aclements/go-traceplot/ring"
	"github.com/aclements/go-traceplot/trace"
)

type config struct {
	width  int // target points per trace
	window int // ring capacity while loading
	keep   int // capacity after loading, or 0
	policy ring.Policy
	reduce accum.Reducer

	xrange, yrange flagRange

	logf func(format string, args ...interface{})
}

// reducedTrace is one trace ready for output.
type reducedTrace struct {
	name, unit string
	points     []accum.Point
}

// reduceAll loads each series into a trace and reduces it.
func reduceAll(series []*bench.Series, cfg config) ([]reducedTrace, error) {
	logf := cfg.logf
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}

	var out []reducedTrace
	for _, s := range series {
		tr, err := trace.New(s.Name+" "+s.Unit, cfg.window, cfg.policy)
		if err != nil {
			return nil, err
		}
		if dropped := tr.AddAll(s.Points); dropped > 0 {
			logf("%s: dropped %d oldest points beyond -window", tr.Name, dropped)
		}
		if cfg.keep > 0 && cfg.keep < tr.Len() {
			if err := tr.SetCapacity(cfg.keep); err != nil {
				return nil, err
			}
		}

		e, err := tr.Reduce(cfg.width, cfg.reduce, viewport(tr, cfg).Visible)
		if err != nil {
			return nil, err
		}
		pts, err := accum.Drain(e)
		if err != nil {
			return nil, fmt.Errorf("reducing %s: %w", tr.Name, err)
		}
		logf("%s: %d points, run length %d, %d reduced", tr.Name, tr.Len(), e.RunLength(), len(pts))
		out = append(out, reducedTrace{s.Name, s.Unit, pts})
	}
	return out, nil
}

// viewport returns the visible region for tr: its data bounds,
// overridden on each axis by the configured range.
func viewport(tr *trace.Trace, cfg config) accum.Viewport {
	v, _ := tr.Viewport()
	v.X.Min, v.X.Max = cfg.xrange.apply(v.X.Min, v.X.Max)
	v.Y.Min, v.Y.Max = cfg.yrange.apply(v.Y.Min, v.Y.Max)
	return v
}
