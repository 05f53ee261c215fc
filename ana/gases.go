// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions and reference data for gases and compression trains
package ana

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Gas holds ideal-gas properties @ 300K
type Gas struct {
	Name  string  // name of gas
	Gamma float64 // specific-heat ratio cp/cv
	M     float64 // molar mass [kg/mol]
}

// Rspec returns the specific gas constant R/M [J/(kg・K)]
func (o Gas) Rspec(Rgas float64) float64 {
	return Rgas / o.M
}

// Cp returns the specific heat at constant pressure γ・R/(M・(γ-1)) [J/(kg・K)]
func (o Gas) Cp(Rgas float64) float64 {
	return o.Gamma * Rgas / (o.M * (o.Gamma - 1.0))
}

// Cv returns the specific heat at constant volume R/(M・(γ-1)) [J/(kg・K)]
func (o Gas) Cv(Rgas float64) float64 {
	return Rgas / (o.M * (o.Gamma - 1.0))
}

// gases holds the database of gases
var gases = map[string]Gas{
	"air": {"air", 1.4, 0.02896},
	"n2":  {"n2", 1.4, 0.0280134},
	"o2":  {"o2", 1.395, 0.0319988},
	"he":  {"he", 1.667, 0.0040026},
	"ar":  {"ar", 1.667, 0.039948},
	"co2": {"co2", 1.289, 0.04401},
	"ch4": {"ch4", 1.304, 0.016043},
}

// GetGas returns gas from database
//  Note: name is case insensitive; e.g. "Air", "N2"
func GetGas(name string) (gas Gas, err error) {
	gas, ok := gases[strings.ToLower(name)]
	if !ok {
		err = chk.Err("gas %q is not available in database. options are %v", name, GasNames())
	}
	return
}

// GasNames returns the names of all gases in database
func GasNames() (names []string) {
	for name := range gases {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
