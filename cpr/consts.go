// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import "github.com/sumitpatidar/brayton-cycle/ana"

// Consts holds constants shared by all stages of a compressor
//  Note: Consts is passed by value; there is no process-wide state
type Consts struct {
	Rmax float64 // maximum pressure ratio of one stage
	Rgas float64 // universal gas constant [J/(mol・K)]
}

// DefaultConsts returns Rmax = 1.2 and Rgas = 8.314
func DefaultConsts() Consts {
	return Consts{Rmax: ana.DefaultRmax, Rgas: ana.DefaultRgas}
}

// Check checks constants
func (o Consts) Check() error {
	if !(positive(o.Rmax) && o.Rmax > 1) {
		return invalid("rmax", o.Rmax)
	}
	if !positive(o.Rgas) {
		return invalid("rgas", o.Rgas)
	}
	return nil
}

// NumStages returns the number of stages needed to reach desired
func (o Consts) NumStages(desired float64) (int, error) {
	return NumStages(desired, o)
}
