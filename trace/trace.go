// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trace stores the points of a plotted trace in a bounded ring
// buffer and reduces them for display.
package trace

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-traceplot/accum"
	"github.com/aclements/go-traceplot/ring"
)

// Trace is a named, bounded sequence of points in ascending X order.
type Trace struct {
	Name string

	buf *ring.Buffer[accum.Point]
}

// New returns an empty trace that keeps at most capacity points.
func New(name string, capacity int, policy ring.Policy) (*Trace, error) {
	buf, err := ring.New[accum.Point](capacity, policy)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", name, err)
	}
	return &Trace{Name: name, buf: buf}, nil
}

// Add appends p. If the trace is full, it drops and returns its oldest
// point.
func (t *Trace) Add(p accum.Point) (evicted accum.Point, ok bool) {
	return t.buf.Add(p)
}

// AddAll appends ps and returns how many points were dropped to make
// room.
func (t *Trace) AddAll(ps []accum.Point) (evicted int) {
	for _, p := range ps {
		if _, ok := t.buf.Add(p); ok {
			evicted++
		}
	}
	return
}

// Len returns the number of points in t.
func (t *Trace) Len() int {
	return t.buf.Len()
}

// Cap returns the maximum number of points t keeps.
func (t *Trace) Cap() int {
	return t.buf.Cap()
}

// SetCapacity changes the maximum number of points t keeps. See
// ring.Buffer.SetCapacity.
func (t *Trace) SetCapacity(n int) error {
	if err := t.buf.SetCapacity(n); err != nil {
		return fmt.Errorf("trace %s: %w", t.Name, err)
	}
	return nil
}

// Points returns the points of t, oldest first.
func (t *Trace) Points() []accum.Point {
	ps := make([]accum.Point, 0, t.buf.Len())
	for it := t.buf.OldestFirst(); it.HasNext(); {
		p, _ := it.Next()
		ps = append(ps, p)
	}
	return ps
}

// Drain removes and returns every point in t, oldest first.
func (t *Trace) Drain() []accum.Point {
	return t.buf.RemoveAll()
}

// Bounds returns the range of the finite coordinates of t. ok is false
// if t has no point with finite X and Y.
func (t *Trace) Bounds() (xmin, xmax, ymin, ymax float64, ok bool) {
	var xs, ys []float64
	for it := t.buf.OldestFirst(); it.HasNext(); {
		p, _ := it.Next()
		if p.IsGap() || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(xs) == 0 {
		return 0, 0, 0, 0, false
	}
	xmin, xmax = stats.Bounds(xs)
	ymin, ymax = stats.Bounds(ys)
	return xmin, xmax, ymin, ymax, true
}

// Viewport returns the viewport that just contains t.
func (t *Trace) Viewport() (accum.Viewport, bool) {
	xmin, xmax, ymin, ymax, ok := t.Bounds()
	return accum.NewViewport(xmin, xmax, ymin, ymax), ok
}

// Reduce returns an Engine that reduces t to about target points.
// t must not be modified until the Engine is done.
func (t *Trace) Reduce(target int, reduce accum.Reducer, visible func(accum.Point) bool) (*accum.Engine, error) {
	e, err := accum.New(t.buf.OldestFirst(), t.buf.Len(), target, reduce, visible)
	if err != nil {
		return nil, fmt.Errorf("trace %s: %w", t.Name, err)
	}
	return e, nil
}
