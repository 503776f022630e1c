// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-moremath/stats"
)

// Point is a sample in a trace. A Point with a NaN coordinate is a
// gap: it marks a break in the trace and is never merged with other
// points.
type Point struct {
	X, Y float64
}

// Gap returns a gap at x.
func Gap(x float64) Point {
	return Point{x, math.NaN()}
}

// IsGap reports whether p is a discontinuity.
func (p Point) IsGap() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// A Reducer merges a run of consecutive points into one.
//
// The engine calls a Reducer only with a non-empty run of non-gap
// points, and reuses the slice afterwards. Reducers should still
// return ErrInvalidInput for an empty run or a gap.
type Reducer func(points []Point) (Point, error)

// Mean reduces points to the arithmetic mean of their X and Y
// coordinates, each taken independently.
func Mean(points []Point) (Point, error) {
	xs, ys, err := coords(points)
	if err != nil {
		return Point{}, err
	}
	return Point{stats.Mean(xs), stats.Mean(ys)}, nil
}

// Median reduces points to the median of their X and Y coordinates,
// each taken independently. It is less sensitive to spikes than Mean.
func Median(points []Point) (Point, error) {
	xs, ys, err := coords(points)
	if err != nil {
		return Point{}, err
	}
	return Point{
		stats.Sample{Xs: xs}.Quantile(0.5),
		stats.Sample{Xs: ys}.Quantile(0.5),
	}, nil
}

func coords(points []Point) (xs, ys []float64, err error) {
	if len(points) == 0 {
		return nil, nil, fmt.Errorf("%w: empty run", ErrInvalidInput)
	}
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		if p.IsGap() {
			return nil, nil, fmt.Errorf("%w: gap %v at %d in run", ErrInvalidInput, p, i)
		}
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys, nil
}

// Visible reports every point as visible. It is the predicate used
// when an Engine is given none.
func Visible(p Point) bool {
	return true
}

// Viewport is the visible region of a plot. Points that map outside
// [0, 1] on either axis are not visible.
type Viewport struct {
	X, Y scale.Linear
}

// NewViewport returns the viewport [xmin, xmax] × [ymin, ymax].
func NewViewport(xmin, xmax, ymin, ymax float64) Viewport {
	return Viewport{
		X: scale.Linear{Min: xmin, Max: xmax},
		Y: scale.Linear{Min: ymin, Max: ymax},
	}
}

// Visible reports whether p lies inside v.
func (v Viewport) Visible(p Point) bool {
	return inUnit(v.X, p.X) && inUnit(v.Y, p.Y)
}

func inUnit(s scale.Linear, x float64) bool {
	if s.Min == s.Max {
		// A degenerate axis has no interior to map onto.
		return x == s.Min
	}
	u := s.Map(x)
	return 0 <= u && u <= 1
}
