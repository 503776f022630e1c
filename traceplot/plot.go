// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
)

// plot lays out one facet column per unit, with one line per
// benchmark. It returns the plot and its number of columns.
func plot(t *table.Table, xrange, yrange flagRange) (*gg.Plot, int) {
	ncols := len(table.GroupBy(t, "unit").Tables())

	plot := gg.NewPlot(removeGaps(t))

	if xrange.set {
		plot.SetScale("x", gg.NewLinearScaler().SetMin(xrange.lo).SetMax(xrange.hi))
	}
	if yrange.set {
		plot.SetScale("y", gg.NewLinearScaler().SetMin(yrange.lo).SetMax(yrange.hi))
	}

	plot.Add(gg.FacetX{Col: "unit", SplitYScales: true})

	// Draw each segment as its own path so gaps break the line.
	plot.GroupBy("segment")
	plot.Add(gg.LayerLines{
		X:     "x",
		Y:     "y",
		Color: "name",
	})

	return plot, ncols
}

func removeGaps(g table.Grouping) table.Grouping {
	return table.Filter(g, func(x, y float64) bool {
		return !math.IsNaN(x) && !math.IsNaN(y)
	}, "x", "y")
}
