// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

// Input holds the inlet conditions and gas properties of a compressor
type Input struct {
	Patm  float64 // inlet (atmospheric) pressure [Pa]
	Tin   float64 // inlet temperature [K]
	Gamma float64 // specific-heat ratio cp/cv
	Mdot  float64 // mass flow rate [kg/s]
	Mmol  float64 // molar mass [kg/mol]
}

// Check checks input values
//  Note: γ = 1 gives an undefined-physics error; γ < 1 is an invalid argument
func (o Input) Check() error {
	if !positive(o.Patm) {
		return invalid("patm", o.Patm)
	}
	if !positive(o.Tin) {
		return invalid("tin", o.Tin)
	}
	if o.Gamma == 1 {
		return undefined("gamma", o.Gamma)
	}
	if !(positive(o.Gamma) && o.Gamma > 1) {
		return invalid("gamma", o.Gamma)
	}
	if !positive(o.Mdot) {
		return invalid("flow", o.Mdot)
	}
	if !positive(o.Mmol) {
		return invalid("molmass", o.Mmol)
	}
	return nil
}
