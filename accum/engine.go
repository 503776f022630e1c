// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package accum reduces long traces to roughly a target number of
// points for display.
//
// An Engine reads an ordered Source and merges each run of runLength
// consecutive visible points into one point with a Reducer, such as
// Mean. Some points are never merged and are passed through unchanged:
//
//   - gaps (points with a NaN coordinate), which break the trace;
//   - the first point of the trace and the first point after a gap;
//   - the last point of the trace;
//   - points outside the viewport, including the ones just before and
//     just after a visible run, which a renderer needs to clip the
//     line at the viewport edge.
//
// A run that is cut short by one of these points is flushed early, so
// no merged point ever spans a gap or a viewport crossing.
package accum

import (
	"errors"
	"fmt"
)

var (
	// ErrExhausted is returned by Engine.Next after the last point.
	ErrExhausted = errors.New("accum: iterator exhausted")

	// ErrInvalidInput is returned by a Reducer given an empty run or
	// a gap. Seeing it from an Engine means a Reducer broke its
	// contract or the engine has a bug.
	ErrInvalidInput = errors.New("accum: invalid reducer input")

	// ErrTarget is returned by New for a target count less than 1.
	ErrTarget = errors.New("accum: target count must be at least 1")
)

// A Source yields points in ascending X order.
//
// *ring.Iterator[Point] is a Source.
type Source interface {
	HasNext() bool
	Next() (Point, error)
}

// RunLength returns the number of consecutive eligible points an
// Engine merges into one when reducing sourceCount points to about
// targetCount points. It is at least 1.
func RunLength(sourceCount, targetCount int) int {
	if targetCount < 1 || sourceCount <= targetCount {
		return 1
	}
	return sourceCount / targetCount
}

type state int

const (
	stateStart state = iota
	stateEmitting
	stateDone
)

// Engine is a one-pass iterator over the reduced form of a Source.
// It is not safe for concurrent use.
type Engine struct {
	src       Source
	reduce    Reducer
	visible   func(Point) bool
	runLength int

	state state

	// run holds eligible points not yet flushed.
	run []Point

	// out holds points ready to return, oldest first. It never holds
	// more than a flushed run plus the point that flushed it.
	out  [2]Point
	nout int

	// segStart is set when the next source point begins a new
	// segment: it is the first point, or follows a gap.
	segStart bool

	err error
}

// New returns an Engine that reduces the sourceCount points of src to
// about targetCount points.
//
// reduce merges each run; it must not be nil. visible reports whether
// a point is inside the viewport; if it is nil, every point is
// visible. If targetCount >= sourceCount, the Engine passes every
// point through unchanged.
func New(src Source, sourceCount, targetCount int, reduce Reducer, visible func(Point) bool) (*Engine, error) {
	if targetCount < 1 {
		return nil, ErrTarget
	}
	if reduce == nil {
		return nil, fmt.Errorf("%w: nil Reducer", ErrInvalidInput)
	}
	if visible == nil {
		visible = Visible
	}
	n := RunLength(sourceCount, targetCount)
	return &Engine{
		src:       src,
		reduce:    reduce,
		visible:   visible,
		runLength: n,
		run:       make([]Point, 0, n),
		segStart:  true,
	}, nil
}

// RunLength returns the number of eligible points e merges into one.
func (e *Engine) RunLength() int {
	return e.runLength
}

// HasNext reports whether Next will return a point or an error.
func (e *Engine) HasNext() bool {
	e.fill()
	return e.nout > 0 || e.err != nil
}

// Next returns the next reduced point. It returns ErrExhausted once
// the reduced trace is done, or the error that stopped it from a
// Source or Reducer. After an error the Engine is done.
func (e *Engine) Next() (Point, error) {
	e.fill()
	if e.nout > 0 {
		p := e.out[0]
		e.out[0] = e.out[1]
		e.nout--
		return p, nil
	}
	if err := e.err; err != nil {
		e.err = nil
		e.state = stateDone
		return Point{}, err
	}
	return Point{}, ErrExhausted
}

// fill consumes source points until at least one output point is
// ready or the source is exhausted.
func (e *Engine) fill() {
	if e.state == stateStart {
		e.state = stateEmitting
	}
	for e.state == stateEmitting && e.nout == 0 && e.err == nil {
		if !e.src.HasNext() {
			// The last point always flushes the run, so run is
			// only non-empty here if the Source lied about
			// HasNext.
			e.flush()
			e.state = stateDone
			break
		}
		p, err := e.src.Next()
		if err != nil {
			e.err = err
			break
		}
		e.step(p, !e.src.HasNext())
	}
	if e.err != nil {
		e.state = stateDone
	}
}

// step handles one source point.
func (e *Engine) step(p Point, last bool) {
	switch {
	case p.IsGap():
		if e.flush() {
			e.emit(p)
			e.segStart = true
		}

	case e.segStart:
		if e.flush() {
			e.emit(p)
			e.segStart = false
		}

	case last, !e.visible(p):
		if e.flush() {
			e.emit(p)
		}

	default:
		e.run = append(e.run, p)
		if len(e.run) >= e.runLength {
			e.flush()
		}
	}
}

// flush emits the pending run. It reports false if the reducer
// failed, in which case nothing after the run may be emitted.
func (e *Engine) flush() bool {
	switch len(e.run) {
	case 0:
		return true
	case 1:
		e.emit(e.run[0])
	default:
		p, err := e.reduce(e.run)
		if err != nil {
			e.err = fmt.Errorf("reducing %d points from %v: %w", len(e.run), e.run[0], err)
		} else {
			e.emit(p)
		}
	}
	e.run = e.run[:0]
	return e.err == nil
}

func (e *Engine) emit(p Point) {
	e.out[e.nout] = p
	e.nout++
}
