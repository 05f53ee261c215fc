// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/sumitpatidar/brayton-cycle/cpr"
	"github.com/sumitpatidar/brayton-cycle/mdl/stage"
	"github.com/sumitpatidar/brayton-cycle/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".cmp", true)
	verbose := io.ArgToBool(1, true)
	nworkers := io.ArgToInt(2, 1)
	doprof := io.ArgToInt(3, 0)

	// message
	if verbose {
		io.PfWhite("\nBrayton-cycle compressor -- multi-stage adiabatic compression\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"number of concurrent cases", "nworkers", nworkers,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
		io.Pf("stage models available: %v\n\n", stage.Names())
	}

	// profiling?
	switch doprof {
	case 1:
		defer utl.ProfCPU(os.TempDir(), "brayton-cycle-cpu.pprof", !verbose)()
	case 2:
		defer utl.ProfMEM(os.TempDir(), "brayton-cycle-mem.pprof", !verbose)()
	}

	// analysis data
	analysis, err := cpr.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("NewMain failed:\n%v", err)
	}

	// run simulation
	err = analysis.Run(context.Background(), out.NewText(os.Stdout), nworkers)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
}
