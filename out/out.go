// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements sinks for compressor simulation results
package out

import (
	"bytes"
	goio "io"
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/sumitpatidar/brayton-cycle/cpr"
)

// Text writes results as text; one line per stage followed by a line with totals
type Text struct {
	W  goio.Writer // output
	mu sync.Mutex  // serialises writes
}

// NewText returns a new Text sink writing to w
func NewText(w goio.Writer) *Text {
	return &Text{W: w}
}

// Report writes the train of stages of case key
func (o *Text) Report(key string, t *cpr.Train) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "%s (%d stages)\n", key, t.Len())
	for _, r := range t.Records() {
		io.Ff(&buf, "P_in = %.0f Pa\tT_in = %.2f K\tP_out = %.0f Pa\tT_out = %.2f K\tW_req = %.2f J/s", r.Pin, r.Tin, r.Pout, r.Tout, r.Work)
		if r.Exergy {
			io.Ff(&buf, "\tX_gain = %.2f J/s\tX_loss = %.2f J/s", r.ExGain, r.ExLoss)
		}
		io.Ff(&buf, "\n")
	}
	io.Ff(&buf, "ratio = %.4f\tW_total = %.2f J/s", t.Ratio(), t.TotalWork())
	if t.Exergy() {
		io.Ff(&buf, "\tX_gain_total = %.2f J/s\tX_loss_total = %.2f J/s", t.TotalExGain(), t.TotalExLoss())
	}
	io.Ff(&buf, "\n\n")
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err = o.W.Write(buf.Bytes())
	return
}

// Memory keeps results in memory
type Memory struct {
	mu     sync.Mutex
	trains map[string]*cpr.Train
}

// NewMemory returns a new Memory sink
func NewMemory() *Memory {
	return &Memory{trains: make(map[string]*cpr.Train)}
}

// Report stores the train of stages of case key
func (o *Memory) Report(key string, t *cpr.Train) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.trains[key]; ok {
		return chk.Err("results of case %q were already reported", key)
	}
	o.trains[key] = t
	return nil
}

// Get returns the train of case key or nil
func (o *Memory) Get(key string) *cpr.Train {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.trains[key]
}

// Keys returns the sorted keys of all reported cases
func (o *Memory) Keys() (keys []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for k := range o.trains {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
