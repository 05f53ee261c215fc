// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stage

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Isentropic implements an efficiency-aware stage model
//
//   Tout = Tin・(1/rp)^((1-γ)/γ)
//   W    = (1/η)・γ・ṅ・R・(Tout - Tin) / (γ - 1)
//   Xg   = η・W          exergy gained by the gas
//   Xl   = W - Xg        exergy destroyed
//
type Isentropic struct {
	η float64 // stage efficiency; 0 < η ≤ 1
}

// add model to factory
func init() {
	allocators["isentropic"] = func() Model { return &Isentropic{η: 1} }
}

// Init initialises model
func (o *Isentropic) Init(prms dbf.Params) (err error) {
	o.η = 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "eta":
			o.η = p.V
		default:
			return chk.Err("isentropic: parameter named %q is incorrect\n", p.N)
		}
	}
	return o.checkEta()
}

// GetPrms gets (an example) of parameters
func (o Isentropic) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "eta", V: 0.85},
		}
	}
	return dbf.Params{
		&dbf.P{N: "eta", V: o.η},
	}
}

// Eta returns the stage efficiency
func (o Isentropic) Eta() float64 {
	return o.η
}

// Exponent returns (γ-1)/γ
func (o Isentropic) Exponent(γ float64) float64 {
	return (γ - 1.0) / γ
}

// Exergy returns true
func (o Isentropic) Exergy() bool {
	return true
}

// Update computes outlet state of one stage
func (o *Isentropic) Update(s *State, pin, tin float64, c *Conditions) (err error) {
	err = o.checkEta()
	if err != nil {
		return
	}
	err = checkConditions(c)
	if err != nil {
		return
	}
	s.Pout = pin * c.Rp
	s.Tout = tin * math.Pow(1.0/c.Rp, -o.Exponent(c.Gamma))
	s.Work = (1.0 / o.η) * c.Gamma * c.Ndot() * c.Rgas * (s.Tout - tin) / (c.Gamma - 1.0)
	s.ExGain = o.η * s.Work
	s.ExLoss = s.Work - s.ExGain
	return
}

// checkEta checks the efficiency range
func (o Isentropic) checkEta() error {
	if !(o.η > 0 && o.η <= 1) {
		return chk.Err("isentropic: efficiency must satisfy 0 < η ≤ 1. η = %g is invalid\n", o.η)
	}
	return nil
}
