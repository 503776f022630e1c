// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-traceplot/accum"
)

var reducers = map[string]accum.Reducer{
	"mean":   accum.Mean,
	"median": accum.Median,
}

type flagReducer struct {
	name string
	f    accum.Reducer
}

func (f *flagReducer) String() string {
	if f == nil {
		return ""
	}
	return f.name
}

func (f *flagReducer) Set(x string) error {
	r, ok := reducers[x]
	if !ok {
		var names []string
		for name := range reducers {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown reducer %q (want one of %s)", x, strings.Join(names, ", "))
	}
	f.name, f.f = x, r
	return nil
}

// flagRange is a closed interval lo:hi. The zero value is unset.
type flagRange struct {
	lo, hi float64
	set    bool
}

func (f *flagRange) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%g:%g", f.lo, f.hi)
}

func (f *flagRange) Set(x string) error {
	los, his, ok := strings.Cut(x, ":")
	if !ok {
		return fmt.Errorf("range %q is not lo:hi", x)
	}
	lo, err := strconv.ParseFloat(los, 64)
	if err != nil {
		return err
	}
	hi, err := strconv.ParseFloat(his, 64)
	if err != nil {
		return err
	}
	if !(lo <= hi) {
		return fmt.Errorf("range %q is empty", x)
	}
	*f = flagRange{lo, hi, true}
	return nil
}

// apply returns lo, hi overridden by f if f is set.
func (f flagRange) apply(lo, hi float64) (float64, float64) {
	if f.set {
		return f.lo, f.hi
	}
	return lo, hi
}
