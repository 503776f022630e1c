// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accum

// SliceSource is a Source over a slice of points.
type SliceSource struct {
	points []Point
}

// NewSliceSource returns a Source that yields points in order.
func NewSliceSource(points []Point) *SliceSource {
	return &SliceSource{points}
}

func (s *SliceSource) HasNext() bool {
	return len(s.points) > 0
}

func (s *SliceSource) Next() (Point, error) {
	if len(s.points) == 0 {
		return Point{}, ErrExhausted
	}
	p := s.points[0]
	s.points = s.points[1:]
	return p, nil
}

// Accumulate reduces points to about targetCount points and returns
// the result. See New for the meaning of the arguments.
func Accumulate(points []Point, targetCount int, reduce Reducer, visible func(Point) bool) ([]Point, error) {
	e, err := New(NewSliceSource(points), len(points), targetCount, reduce, visible)
	if err != nil {
		return nil, err
	}
	return Drain(e)
}

// Drain reads e to the end and returns its points.
func Drain(e *Engine) ([]Point, error) {
	var out []Point
	for e.HasNext() {
		p, err := e.Next()
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}
