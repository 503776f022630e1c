// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/aclements/go-gg/table"
)

// tracesToTable flattens traces into one row per reduced point. The
// "segment" column numbers the unbroken pieces of each trace; gaps
// start a new segment.
func tracesToTable(traces []reducedTrace) *table.Table {
	var (
		names, units []string
		segments     []int
		xs, ys       []float64
	)
	for _, tr := range traces {
		seg := 0
		for _, p := range tr.points {
			if p.IsGap() {
				seg++
			}
			names = append(names, tr.name)
			units = append(units, tr.unit)
			segments = append(segments, seg)
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	return new(table.Builder).
		Add("name", names).
		Add("unit", units).
		Add("segment", segments).
		Add("x", xs).
		Add("y", ys).
		Done()
}
