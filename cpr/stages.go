// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cpr implements the multi-stage compressor
package cpr

// NumStages returns the smallest number of stages n such that Rmax^n ≥ desired
//  Note: desired ≤ Rmax gives 1 stage; a compressor never has zero stages
func NumStages(desired float64, c Consts) (n int, err error) {
	if !positive(desired) {
		return 0, invalid("ratio", desired)
	}
	err = c.Check()
	if err != nil {
		return
	}
	n = 1
	cur := c.Rmax
	for cur < desired {
		cur *= c.Rmax
		n++
	}
	return
}
