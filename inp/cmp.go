// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.cmp) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/sumitpatidar/brayton-cycle/ana"
)

// ConstsData holds constants shared by all cases
type ConstsData struct {
	Rmax float64 `json:"rmax"` // maximum pressure ratio of one stage
	Rgas float64 `json:"rgas"` // universal gas constant
}

// CaseData holds data of one compressor configuration
type CaseData struct {

	// identification
	Key string `json:"key"` // key of case; may be empty
	Gas string `json:"gas"` // name of gas in database; fills gamma and molmass if these are zero

	// number of stages
	Ratio   float64 `json:"ratio"`   // desired overall pressure ratio
	Nstages int     `json:"nstages"` // number of stages; 0 means compute from ratio

	// inlet conditions and gas properties
	Patm    float64 `json:"patm"`    // inlet pressure [Pa]
	Tin     float64 `json:"tin"`     // inlet temperature [K]
	Gamma   float64 `json:"gamma"`   // specific-heat ratio
	MolMass float64 `json:"molmass"` // molar mass [kg/mol]
	Flow    float64 `json:"flow"`    // mass flow rate [kg/s]

	// stage model
	Model string     `json:"model"` // name of stage model; e.g. "isentropic", "adiabatic"
	Prms  dbf.Params `json:"prms"`  // model parameters
}

// Simulation holds all input data
type Simulation struct {
	Desc   string      `json:"desc"`   // description of simulation
	Consts ConstsData  `json:"consts"` // constants
	Cases  []*CaseData `json:"cases"`  // all cases

	// derived
	Key string `json:"-"` // filename key; e.g. air.cmp => air
}

// SetDefault sets defaults values
func (o *ConstsData) SetDefault() {
	o.Rmax = ana.DefaultRmax
	o.Rgas = ana.DefaultRgas
}

// SetDefault sets defaults values
func (o *CaseData) SetDefault() {
	o.Patm = 101325
	o.Tin = 288.15
	o.Flow = 1
	o.Model = "isentropic"
}

// UnmarshalJSON sets default values before decoding
func (o *CaseData) UnmarshalJSON(b []byte) error {
	type plain CaseData
	o.SetDefault()
	return json.Unmarshal(b, (*plain)(o))
}

// ReadCmp reads all input data from a .cmp JSON file
func ReadCmp(cmpfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(cmpfilepath)
	if err != nil {
		return nil, chk.Err("ReadCmp: cannot read input file %q:\n%v", cmpfilepath, err)
	}

	// set default values
	o = new(Simulation)
	o.Consts.SetDefault()

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("ReadCmp: cannot unmarshal input file %q:\n%v", cmpfilepath, err)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(cmpfilepath))

	// check and fill derived values
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("ReadCmp: input file %q is invalid:\n%v", cmpfilepath, err)
	}
	return
}

// PostProcess resolves gases and checks cases
func (o *Simulation) PostProcess() (err error) {
	if len(o.Cases) == 0 {
		return chk.Err("at least one case must be given")
	}
	keys := make(map[string]bool)
	for i, c := range o.Cases {
		if c == nil {
			return chk.Err("case # %d is empty", i)
		}
		if c.Key != "" {
			if keys[c.Key] {
				return chk.Err("case key %q is repeated", c.Key)
			}
			keys[c.Key] = true
		}
		if !(c.Ratio > 0 || c.Nstages > 0) {
			return chk.Err("case # %d: either ratio or nstages must be positive", i)
		}
		if c.Gas != "" {
			gas, err := ana.GetGas(c.Gas)
			if err != nil {
				return chk.Err("case # %d: %v", i, err)
			}
			if c.Gamma == 0 {
				c.Gamma = gas.Gamma
			}
			if c.MolMass == 0 {
				c.MolMass = gas.M
			}
		}
	}
	return
}

// GetInfo writes input data in JSON format
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
