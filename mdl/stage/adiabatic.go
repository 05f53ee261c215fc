// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Adiabatic implements the basic adiabatic stage model
//
//   Tout = Tin・(Pin/Pout)^(1-γ)
//   W    = ṅ・R・(Tout - Tin) / (γ - 1)
//
//  Note: the exponent γ-1 is the earliest formulation; use Isentropic for new analyses
type Adiabatic struct {
}

// add model to factory
func init() {
	allocators["adiabatic"] = func() Model { return new(Adiabatic) }
}

// Init initialises model
func (o *Adiabatic) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("adiabatic: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Adiabatic) GetPrms(example bool) dbf.Params {
	return dbf.Params{}
}

// Exponent returns γ-1
func (o Adiabatic) Exponent(γ float64) float64 {
	return γ - 1.0
}

// Exergy returns false; this model does not split work
func (o Adiabatic) Exergy() bool {
	return false
}

// Update computes outlet state of one stage
func (o *Adiabatic) Update(s *State, pin, tin float64, c *Conditions) (err error) {
	err = checkConditions(c)
	if err != nil {
		return
	}
	s.Pout = pin * c.Rp
	s.Tout = tin * math.Pow(pin/s.Pout, -o.Exponent(c.Gamma))
	s.Work = c.Ndot() * c.Rgas * (s.Tout - tin) / (c.Gamma - 1.0)
	s.ExGain, s.ExLoss = 0, 0
	return
}
