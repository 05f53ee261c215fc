// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

// Sink receives the results of simulations
type Sink interface {
	Report(key string, t *Train) error // reports the train of stages of case key
}
