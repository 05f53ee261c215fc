// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import "github.com/cpmech/gosl/io"

// StageRecord holds the inlet and outlet states of one stage
type StageRecord struct {
	Index  int     // stage index, starting at 0
	Pin    float64 // inlet pressure [Pa]
	Pout   float64 // outlet pressure [Pa]
	Tin    float64 // inlet temperature [K]
	Tout   float64 // outlet temperature [K]
	Work   float64 // work rate [J/s]
	ExGain float64 // exergy gained by the gas [J/s]
	ExLoss float64 // exergy destroyed [J/s]
	Exergy bool    // ExGain and ExLoss were computed
}

// check checks that all values are finite
func (o StageRecord) check() error {
	vals := []float64{o.Pout, o.Tout, o.Work, o.ExGain, o.ExLoss}
	keys := []string{"pout", "tout", "work", "exgain", "exloss"}
	for i, v := range vals {
		if !finite(v) {
			return undefined(keys[i], v)
		}
	}
	return nil
}

// String returns a short representation of this record
func (o StageRecord) String() string {
	return io.Sf("stage %d: (%g Pa, %g K) → (%g Pa, %g K) W = %g J/s", o.Index, o.Pin, o.Tin, o.Pout, o.Tout, o.Work)
}

// Train holds the records of all stages of a compressor
//  Note: Train is immutable; accessors return copies. Trains are created by Simulate;
//        the zero value has no stages and its summaries are zero
type Train struct {
	recs []StageRecord
}

// Len returns the number of stages
func (o *Train) Len() int {
	return len(o.recs)
}

// At returns the record of stage i
func (o *Train) At(i int) StageRecord {
	return o.recs[i]
}

// Records returns a copy of all records
func (o *Train) Records() []StageRecord {
	res := make([]StageRecord, len(o.recs))
	copy(res, o.recs)
	return res
}

// Inlet returns the inlet pressure and temperature of the first stage
func (o *Train) Inlet() (p, T float64) {
	if len(o.recs) == 0 {
		return
	}
	return o.recs[0].Pin, o.recs[0].Tin
}

// Outlet returns the outlet pressure and temperature of the last stage
func (o *Train) Outlet() (p, T float64) {
	if len(o.recs) == 0 {
		return
	}
	last := o.recs[len(o.recs)-1]
	return last.Pout, last.Tout
}

// Ratio returns the overall pressure ratio achieved
func (o *Train) Ratio() float64 {
	if len(o.recs) == 0 {
		return 0
	}
	pin, _ := o.Inlet()
	pout, _ := o.Outlet()
	return pout / pin
}

// Exergy tells whether the records carry exergy gain and loss
func (o *Train) Exergy() bool {
	if len(o.recs) == 0 {
		return false
	}
	return o.recs[0].Exergy
}

// TotalWork returns the sum of the work of all stages
func (o *Train) TotalWork() (res float64) {
	for _, r := range o.recs {
		res += r.Work
	}
	return
}

// TotalExGain returns the sum of the exergy gained in all stages
func (o *Train) TotalExGain() (res float64) {
	for _, r := range o.recs {
		res += r.ExGain
	}
	return
}

// TotalExLoss returns the sum of the exergy destroyed in all stages
func (o *Train) TotalExLoss() (res float64) {
	for _, r := range o.recs {
		res += r.ExLoss
	}
	return
}
