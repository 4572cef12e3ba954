// Copyright 2026 The NDView Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides View, a non-owning reference wrapper over fixed-size
// multidimensional Go arrays.
//
// # Overview
//
// A View binds to an existing array and hides the irregularities of working
// with built-in multidimensional arrays generically. Think of it as a
// non-owning, statically-shaped span that works across ranks:
//   - Copy semantics: shallow view copy, deep assignment from arrays
//   - Fill, deep swap and shallow swap
//   - Recursive equality and lexicographic ordering
//   - Forward/backward iteration and positional decomposition
//   - Checked and unchecked indexing, direct (raw storage) and wrapped
//     (sub-view) forms
//
// # Basic Usage
//
//	import "github.com/ndview/ndview/view"
//
//	func main() {
//	    a := [3][4]int{}
//	    v := view.Bind[int](&a)     // rank 2, shape {3, 4}
//	    v.Fill(7)                   // writes through to a
//	    w := v.Sub(1)               // view over a[1]
//	    w.Set(0, 2)                 // a[1][2] = 0
//	}
//
// A View never owns the referred-to storage and never copies it: copying a
// View copies one handle. Binding through BindConst produces a read-only
// view whose mutating operations panic.
package view
