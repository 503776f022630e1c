// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"fmt"

	"github.com/aclements/go-traceplot/ring"
)

func ExampleBuffer() {
	b, _ := ring.New[string](3, ring.RetainOverflow)
	for _, s := range []string{"a", "b", "c", "d"} {
		if old, ok := b.Add(s); ok {
			fmt.Println("evicted", old)
		}
	}

	// Shrinking keeps the overflow until it is read.
	b.SetCapacity(1)
	fmt.Println(b.Len(), b.Cap(), b.Pending())

	var rev []string
	for it := b.YoungestFirst(); it.HasNext(); {
		s, _ := it.Next()
		rev = append(rev, s)
	}
	fmt.Println(rev)
	fmt.Println(b.RemoveAll())
	// Output:
	// evicted a
	// 3 1 2
	// [d c b]
	// [b c d]
}
