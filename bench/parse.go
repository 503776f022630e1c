// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench reads Go benchmark results files as traces.
//
// This format is specified at:
// https://github.com/golang/proposal/blob/master/design/14313-benchmark-format.md
package bench

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Result is a single benchmark result line.
type Result struct {
	// Name is the name of the benchmark, without the "Benchmark"
	// prefix, "/key:value" configuration parts, or GOMAXPROCS
	// suffix. Sub-benchmark parts such as "/small" are kept.
	Name string

	// Iterations is the number of times this benchmark executed.
	Iterations int

	// Config holds the configuration in effect for this result:
	// the configuration block lines before it, overridden by any
	// "/key:value" parts of the benchmark name. A "-N" name suffix
	// is stored as "gomaxprocs".
	Config map[string]string

	// Values maps each unit (such as "ns/op") to its value.
	Values map[string]float64

	// Line is the 1-based line number of the result.
	Line int
}

var configRe = regexp.MustCompile(`^(\p{Ll}[^\p{Lu}\s\x85\xa0\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]*):(?:[ \t]+(.*))?$`)

// Parse parses a Go benchmark results file from r. It returns a Result
// for each benchmark result line in the file, in order.
func Parse(r io.Reader) ([]*Result, error) {
	var results []*Result
	config := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()

		if m := configRe.FindStringSubmatch(line); m != nil {
			config[m[1]] = m[2]
			continue
		}
		if strings.HasPrefix(line, "Benchmark") {
			if res := parseResult(line, config); res != nil {
				res.Line = lineNo
				results = append(results, res)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading benchmarks: %w", err)
	}
	return results, nil
}

func parseResult(line string, config map[string]string) *Result {
	f := strings.Fields(line)
	if len(f) < 4 {
		return nil
	}
	if f[0] != "Benchmark" {
		next, _ := utf8.DecodeRuneInString(f[0][len("Benchmark"):])
		if !unicode.IsUpper(next) {
			return nil
		}
	}

	n, err := strconv.Atoi(f[1])
	if err != nil || n <= 0 {
		return nil
	}
	res := &Result{
		Iterations: n,
		Config:     make(map[string]string, len(config)+1),
		Values:     make(map[string]float64),
	}
	for k, v := range config {
		res.Config[k] = v
	}

	name := strings.TrimPrefix(f[0], "Benchmark")
	if i := strings.LastIndex(name, "-"); i >= 0 {
		if _, err := strconv.Atoi(name[i+1:]); err == nil {
			res.Config["gomaxprocs"] = name[i+1:]
			name = name[:i]
		}
	}
	parts := strings.Split(name, "/")
	names := []string{parts[0]}
	for _, part := range parts[1:] {
		if k, v, ok := strings.Cut(part, ":"); ok {
			res.Config[k] = v
		} else {
			names = append(names, part)
		}
	}
	res.Name = strings.Join(names, "/")
	if _, ok := res.Config["gomaxprocs"]; !ok {
		res.Config["gomaxprocs"] = "1"
	}

	for i := 2; i+2 <= len(f); i += 2 {
		val, err := strconv.ParseFloat(f[i], 64)
		if err != nil {
			continue
		}
		res.Values[f[i+1]] = val
	}
	if len(res.Values) == 0 {
		return nil
	}
	return res
}
