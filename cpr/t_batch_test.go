// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import (
	"context"
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/google/uuid"
)

// cases returns cases with increasing ratios; case i has i+1 stages
func cases(tst *testing.T, ncases int) (res []Case) {
	c := DefaultConsts()
	r := 1.0
	for i := 0; i < ncases; i++ {
		r *= c.Rmax
		res = append(res, Case{
			Key:   io.Sf("case%d", i),
			Ratio: r * 0.999,
			Input: air(),
			Model: newModel(tst, "isentropic", 0.9),
		})
	}
	return
}

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01")

	c := DefaultConsts()
	cs := cases(tst, 12)
	cs[5].Key = ""
	cs[7].Nstages = 2
	for _, nworkers := range []int{0, 1, 3, 20} {
		res := RunBatch(context.Background(), cs, c, nworkers)
		chk.Int(tst, "nres", len(res), len(cs))
		for i, r := range res {
			if r.Err != nil {
				tst.Errorf("case %d failed:\n%v", i, r.Err)
				return
			}
			n := i + 1
			if i == 7 {
				n = 2
			}
			chk.Int(tst, io.Sf("nstages of case %d", i), r.Train.Len(), n)
			if i == 5 {
				if _, err := uuid.Parse(r.Key); err != nil {
					tst.Errorf("key of unnamed case must be a uuid. key = %q", r.Key)
					return
				}
				continue
			}
			chk.String(tst, r.Key, cs[i].Key)
		}
	}
}

func Test_batch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch02")

	c := DefaultConsts()
	cs := cases(tst, 4)
	cs[2].Input.Gamma = 1

	// one failing case does not affect the others
	res := RunBatch(context.Background(), cs, c, 2)
	for i, r := range res {
		if i == 2 {
			if !errors.Is(r.Err, ErrUndefinedPhysics) || r.Train != nil {
				tst.Errorf("case 2 must fail with undefined physics. err = %v", r.Err)
				return
			}
			continue
		}
		if r.Err != nil {
			tst.Errorf("case %d failed:\n%v", i, r.Err)
			return
		}
	}

	// canceled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res = RunBatch(ctx, cases(tst, 5), c, 2)
	for i, r := range res {
		if !errors.Is(r.Err, context.Canceled) || r.Train != nil {
			tst.Errorf("case %d must be canceled. err = %v", i, r.Err)
			return
		}
	}
}

func Test_batch03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch03")

	c := DefaultConsts()
	cs := Case{Ratio: 2.0, Input: air(), Model: newModel(tst, "isentropic", 1)}
	t, err := cs.Run(c)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "nstages", t.Len(), 4)

	cs.Ratio = -2
	_, err = cs.Run(c)
	if !errors.Is(err, ErrInvalidArgument) {
		tst.Errorf("negative ratio: invalid-argument error expected. err = %v", err)
	}
}
