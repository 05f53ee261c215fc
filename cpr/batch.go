// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sumitpatidar/brayton-cycle/mdl/stage"
)

// Case holds one independent compressor configuration
type Case struct {
	Key     string      // identifier; a random key is generated if empty
	Ratio   float64     // desired overall pressure ratio
	Nstages int         // number of stages; 0 means compute from Ratio
	Input   Input       // inlet conditions
	Model   stage.Model // stage model (initialised)
}

// Run simulates this case
func (o Case) Run(c Consts) (t *Train, err error) {
	n := o.Nstages
	if n == 0 {
		n, err = NumStages(o.Ratio, c)
		if err != nil {
			return
		}
	}
	return Simulate(n, o.Input, o.Model, c)
}

// Outcome holds the result of one case
type Outcome struct {
	Key   string // case key
	Train *Train // results; nil if Err != nil
	Err   error  // error, if any
}

// RunBatch runs all cases using up to nworkers goroutines
//  Note: results are returned in the same order as cases. Stages of one case
//        always run in series. Cases not started before ctx is done get ctx.Err()
func RunBatch(ctx context.Context, cases []Case, c Consts, nworkers int) []Outcome {
	if nworkers < 1 {
		nworkers = 1
	}
	res := make([]Outcome, len(cases))
	sem := make(chan struct{}, nworkers)
	var wg sync.WaitGroup
	for i, cs := range cases {
		res[i].Key = cs.Key
		if res[i].Key == "" {
			res[i].Key = uuid.NewString()
		}
		select {
		case <-ctx.Done():
			res[i].Err = ctx.Err()
			continue
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, cs Case) {
			defer func() {
				<-sem
				wg.Done()
			}()
			if err := ctx.Err(); err != nil {
				res[i].Err = err
				return
			}
			res[i].Train, res[i].Err = cs.Run(c)
		}(i, cs)
	}
	wg.Wait()
	return res
}
