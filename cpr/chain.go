// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import (
	"fmt"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/sumitpatidar/brayton-cycle/mdl/stage"
)

// efficient is implemented by stage models with an efficiency parameter
type efficient interface {
	Eta() float64 // stage efficiency; 0 < η ≤ 1
}

// NewModel allocates and initialises a stage model
//  Note: unknown names and invalid parameters are invalid-argument errors
func NewModel(name string, prms dbf.Params) (mdl stage.Model, err error) {
	mdl, err = stage.New(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	err = mdl.Init(prms)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return
}

// Simulate computes the states of nstages stages in series, each with pressure ratio c.Rmax
//  Input:
//   nstages -- number of stages; must be ≥ 1
//   in      -- inlet conditions of the first stage
//   mdl     -- stage model (initialised)
//   c       -- constants
//  Output:
//   a Train with exactly nstages records or an error; nothing is returned partially
func Simulate(nstages int, in Input, mdl stage.Model, c Consts) (t *Train, err error) {

	// check input
	if nstages < 1 {
		return nil, invalid("nstages", float64(nstages))
	}
	if mdl == nil {
		return nil, fmt.Errorf("%w: stage model is nil", ErrInvalidArgument)
	}
	if m, ok := mdl.(efficient); ok {
		if η := m.Eta(); !(η > 0 && η <= 1) {
			return nil, invalid("eta", η)
		}
	}
	err = c.Check()
	if err != nil {
		return
	}
	err = in.Check()
	if err != nil {
		return
	}

	// conditions shared by all stages
	cnd := &stage.Conditions{
		Rp:    c.Rmax,
		Rgas:  c.Rgas,
		Gamma: in.Gamma,
		Mdot:  in.Mdot,
		Mmol:  in.Mmol,
	}

	// the outlet of the seed record is the inlet of the first stage
	seed := StageRecord{Index: -1, Pout: in.Patm, Tout: in.Tin}
	exergy := mdl.Exergy()
	step := func(prev StageRecord) (rec StageRecord, err error) {
		var s stage.State
		err = mdl.Update(&s, prev.Pout, prev.Tout, cnd)
		if err != nil {
			return
		}
		rec = StageRecord{
			Index:  prev.Index + 1,
			Pin:    prev.Pout,
			Pout:   s.Pout,
			Tin:    prev.Tout,
			Tout:   s.Tout,
			Work:   s.Work,
			ExGain: s.ExGain,
			ExLoss: s.ExLoss,
			Exergy: exergy,
		}
		err = rec.check()
		return
	}

	// run
	recs, err := fold(nstages, seed, step)
	if err != nil {
		return nil, err
	}
	return &Train{recs: recs}, nil
}

// fold applies step n times starting from seed and collects the results
func fold(n int, seed StageRecord, step func(StageRecord) (StageRecord, error)) ([]StageRecord, error) {
	recs := make([]StageRecord, 0, min(n, 64))
	prev := seed
	for i := 0; i < n; i++ {
		rec, err := step(prev)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		recs = append(recs, rec)
		prev = rec
	}
	return recs, nil
}
