// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// constants
const (
	DefaultRmax = 1.2   // maximum pressure ratio of one compression stage
	DefaultRgas = 8.314 // universal gas constant [J/(mol・K)]
)

// NumStages computes the number of stages with ratio rmax needed to reach r in closed form
//
//    n = ⌈ ln(r) / ln(rmax) ⌉   with n ≥ 1
//
//  Note: a small tolerance is subtracted before rounding up, so exact powers of rmax
//        (subject to round-off) give the integer exponent
func NumStages(r, rmax float64) int {
	if r <= rmax {
		return 1
	}
	return int(math.Ceil(math.Log(r)/math.Log(rmax) - 1e-12))
}

// CompressionTrain computes the state after n identical stages in closed form.
//  All stages have the same pressure ratio (Rmax) and temperature exponent (E), thus:
//
//    p(n) = P0・Rmax^n
//    T(n) = T0・Rmax^(n・E)
//    W(n) = Wfac・(T(n) - T0)    sum of works of all stages (telescoping)
//
//  Wfac is ṅ・R/(γ-1) for the adiabatic model and (γ/η)・ṅ・R/(γ-1) for the isentropic one
type CompressionTrain struct {
	P0   float64 // inlet pressure
	T0   float64 // inlet temperature
	Rmax float64 // pressure ratio of one stage
	E    float64 // temperature exponent
	Wfac float64 // work factor
}

// Init initialises this structure
func (o *CompressionTrain) Init(P0, T0, Rmax, E, Wfac float64) {
	o.P0 = P0
	o.T0 = T0
	o.Rmax = Rmax
	o.E = E
	o.Wfac = Wfac
}

// Calc computes pressure, temperature and total work after n stages
func (o CompressionTrain) Calc(n int) (p, T, W float64) {
	N := float64(n)
	p = o.P0 * math.Pow(o.Rmax, N)
	T = o.T0 * math.Pow(o.Rmax, N*o.E)
	W = o.Wfac * (T - o.T0)
	return
}
