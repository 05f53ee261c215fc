// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import (
	"context"
	"fmt"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sumitpatidar/brayton-cycle/inp"
)

// Main holds all data for a batch of compressor simulations
type Main struct {
	Sim     *inp.Simulation // input data
	Consts  Consts          // constants
	Cases   []Case          // all cases
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   cmpfilepath -- input (.cmp) filename including full path
//   verbose     -- show messages
func NewMain(cmpfilepath string, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.ShowMsg = verbose

	// read input data
	o.Sim, err = inp.ReadCmp(cmpfilepath)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Input (.cmp) file read\n")
	}

	// constants
	o.Consts = Consts{Rmax: o.Sim.Consts.Rmax, Rgas: o.Sim.Consts.Rgas}
	err = o.Consts.Check()
	if err != nil {
		return nil, chk.Err("constants in %q are invalid:\n%v", cmpfilepath, err)
	}

	// cases
	o.Cases = make([]Case, len(o.Sim.Cases))
	for i, dat := range o.Sim.Cases {
		mdl, err := NewModel(dat.Model, dat.Prms)
		if err != nil {
			return nil, chk.Err("cannot allocate model of case # %d (%q):\n%v", i, dat.Key, err)
		}
		o.Cases[i] = Case{
			Key:     dat.Key,
			Ratio:   dat.Ratio,
			Nstages: dat.Nstages,
			Input: Input{
				Patm:  dat.Patm,
				Tin:   dat.Tin,
				Gamma: dat.Gamma,
				Mdot:  dat.Flow,
				Mmol:  dat.MolMass,
			},
			Model: mdl,
		}
	}
	if o.ShowMsg {
		io.Pf("> Initialisation step completed (%d cases)\n", len(o.Cases))
	}
	return
}

// Run runs all cases and reports the successful ones to sink
//  Note: the first case error is returned after all successful cases are reported
func (o *Main) Run(ctx context.Context, sink Sink, nworkers int) (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Solving cases\n")
	}

	// run and report
	res := RunBatch(ctx, o.Cases, o.Consts, nworkers)
	for _, r := range res {
		if r.Err != nil {
			if o.ShowMsg {
				io.Pfyel("> case %q failed: %v\n", r.Key, r.Err)
			}
			if err == nil {
				err = fmt.Errorf("case %q: %w", r.Key, r.Err)
			}
			continue
		}
		if e := sink.Report(r.Key, r.Train); e != nil && err == nil {
			err = fmt.Errorf("cannot report case %q: %w", r.Key, e)
		}
	}
	return
}

// onexit prints the final message
func (o *Main) onexit(cputime time.Time, prevErr error) error {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	return prevErr
}
