// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"sort"
	"strconv"

	"github.com/aclements/go-traceplot/accum"
)

// Series is the values of one unit of one benchmark, in ascending X
// order.
type Series struct {
	Name, Unit string
	Points     []accum.Point
}

// Group splits results into one Series per benchmark name and unit.
// Series are ordered by the first appearance of their benchmark name,
// then by unit.
//
// The X coordinate of a result is the value of configuration key xKey
// if that key is set and numeric in every result with the same name,
// and otherwise the index of the result among those results. A result that lacks a unit
// reported by other results of the same benchmark becomes a gap in
// that unit's Series.
func Group(results []*Result, xKey string) []*Series {
	var names []string
	byName := make(map[string][]*Result)
	for _, r := range results {
		if _, ok := byName[r.Name]; !ok {
			names = append(names, r.Name)
		}
		byName[r.Name] = append(byName[r.Name], r)
	}

	var out []*Series
	for _, name := range names {
		rs := byName[name]

		unitSet := make(map[string]bool)
		for _, r := range rs {
			for unit := range r.Values {
				unitSet[unit] = true
			}
		}
		units := make([]string, 0, len(unitSet))
		for unit := range unitSet {
			units = append(units, unit)
		}
		sort.Strings(units)

		xs := xCoords(rs, xKey)
		for _, unit := range units {
			s := &Series{Name: name, Unit: unit, Points: make([]accum.Point, len(rs))}
			for i, r := range rs {
				x := xs[i]
				if y, ok := r.Values[unit]; ok {
					s.Points[i] = accum.Point{X: x, Y: y}
				} else {
					s.Points[i] = accum.Gap(x)
				}
			}
			sort.SliceStable(s.Points, func(i, j int) bool {
				return s.Points[i].X < s.Points[j].X
			})
			out = append(out, s)
		}
	}
	return out
}

// xCoords returns the X coordinate of each of rs. Config values of
// xKey are used only if all of them parse, so a series never mixes
// values with indexes.
func xCoords(rs []*Result, xKey string) []float64 {
	xs := make([]float64, len(rs))
	if xKey != "" {
		numeric := true
		for i, r := range rs {
			v, err := strconv.ParseFloat(r.Config[xKey], 64)
			if err != nil {
				numeric = false
				break
			}
			xs[i] = v
		}
		if numeric {
			return xs
		}
	}
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}
