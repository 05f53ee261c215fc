// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stage implements thermodynamic models for one compression stage
//  Two formulations are available:
//   "adiabatic"  -- basic adiabatic model: Tout = Tin・rp^(γ-1) and W = ṅ・R・ΔT/(γ-1)
//   "isentropic" -- efficiency-aware model: Tout = Tin・rp^((γ-1)/γ) and W = (γ/η)・ṅ・R・ΔT/(γ-1)
//  The isentropic model is the canonical one; the adiabatic model is the earlier
//  formulation kept for backward compatibility.
package stage

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Conditions holds data shared by all stages of a compression train
type Conditions struct {
	Rp    float64 // pressure ratio across one stage
	Rgas  float64 // universal gas constant [J/(mol・K)]
	Gamma float64 // specific-heat ratio cp/cv
	Mdot  float64 // mass flow rate [kg/s]
	Mmol  float64 // molar mass [kg/mol]
}

// Ndot returns the molar flow rate [mol/s]
func (o Conditions) Ndot() float64 {
	return o.Mdot / o.Mmol
}

// State holds the outlet state and energy rates of one stage
type State struct {
	Pout   float64 // outlet pressure [Pa]
	Tout   float64 // outlet temperature [K]
	Work   float64 // work rate required by the stage [J/s]
	ExGain float64 // exergy gained by the gas [J/s]
	ExLoss float64 // exergy destroyed by irreversibilities [J/s]
}

// Model defines the interface for stage models
type Model interface {
	Init(prms dbf.Params) error                             // initialises model
	GetPrms(example bool) dbf.Params                        // gets (an example) of parameters
	Exponent(γ float64) float64                             // exponent e in Tout = Tin・rp^e
	Update(s *State, pin, tin float64, c *Conditions) error // computes outlet state of one stage
	Exergy() bool                                           // whether Update splits work into exergy gain and loss
}

// New returns new stage model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'stage' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// checkConditions checks data that would make the governing equations singular
func checkConditions(c *Conditions) error {
	if c.Gamma == 1 {
		return chk.Err("specific-heat ratio γ = 1 makes the adiabatic relations singular")
	}
	if c.Mmol == 0 {
		return chk.Err("molar mass must be non-zero")
	}
	return nil
}
