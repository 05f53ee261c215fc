// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_cmp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmp01")

	sim, err := ReadCmp("data/air.cmp")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "air")
	chk.Float64(tst, "rmax", 1e-17, sim.Consts.Rmax, 1.2)
	chk.Float64(tst, "rgas", 1e-17, sim.Consts.Rgas, 8.314)
	chk.Int(tst, "ncases", len(sim.Cases), 4)

	keys := make([]string, len(sim.Cases))
	for i, c := range sim.Cases {
		keys[i] = c.Key
	}
	chk.Strings(tst, "keys", keys, []string{"ideal", "eta85", "legacy", ""})

	// explicit values and gas presets
	c := sim.Cases[1]
	chk.Float64(tst, "ratio", 1e-17, c.Ratio, 2)
	chk.Float64(tst, "tin", 1e-17, c.Tin, 288)
	chk.Float64(tst, "gamma", 1e-17, c.Gamma, 1.4)
	chk.Float64(tst, "molmass", 1e-17, c.MolMass, 0.02896)
	chk.String(tst, c.Model, "isentropic")
	if len(c.Prms) != 1 {
		tst.Errorf("eta85 case must have one parameter")
		return
	}
	chk.String(tst, c.Prms[0].N, "eta")
	chk.Float64(tst, "eta", 1e-17, c.Prms[0].V, 0.85)

	// defaults
	c = sim.Cases[2]
	chk.String(tst, c.Model, "adiabatic")
	chk.Int(tst, "nstages", c.Nstages, 1)
	chk.Float64(tst, "patm", 1e-17, c.Patm, 101325)
	chk.Float64(tst, "flow", 1e-17, c.Flow, 1)

	// gamma given explicitly is not replaced by preset
	c = sim.Cases[3]
	chk.Float64(tst, "gamma", 1e-17, c.Gamma, 1.39)
	chk.Float64(tst, "molmass", 1e-17, c.MolMass, 0.0280134)
	chk.Float64(tst, "tin", 1e-17, c.Tin, 288.15)
	chk.Float64(tst, "flow", 1e-17, c.Flow, 2.5)

	var buf bytes.Buffer
	err = sim.GetInfo(&buf)
	if err != nil {
		tst.Errorf("GetInfo failed:\n%v", err)
		return
	}
	io.Pforan("%s\n", buf.String())
}

func Test_cmp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmp02")

	for _, fn := range []string{"bad-noratio", "bad-repeated", "bad-gas", "bad-empty"} {
		_, err := ReadCmp("data/" + fn + ".cmp")
		if err == nil {
			tst.Errorf("%s: error expected\n", fn)
			continue
		}
		io.Pforan("%s: %v\n", fn, err)
	}
}

func Test_cmp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cmp03. missing file")

	sim, err := ReadCmp("data/nonexistent.cmp")
	if err == nil || sim != nil {
		tst.Errorf("missing file must give an error and no data\n")
		return
	}
	if !strings.Contains(err.Error(), "cannot read input file") {
		tst.Errorf("error message is incorrect: %v\n", err)
		return
	}
	io.Pforan("%v\n", err)
}
