// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpr

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/io"
)

// error kinds
var (
	ErrInvalidArgument  = errors.New("invalid argument")  // out-of-range input value
	ErrUndefinedPhysics = errors.New("undefined physics") // input for which the governing equations are singular
)

// InputError reports an input value that cannot be simulated
type InputError struct {
	Field string  // name of offending field
	Value float64 // offending value
	Err   error   // ErrInvalidArgument or ErrUndefinedPhysics
}

// Error implements the error interface
func (o *InputError) Error() string {
	return io.Sf("%v: %s = %g", o.Err, o.Field, o.Value)
}

// Unwrap returns the error kind
func (o *InputError) Unwrap() error {
	return o.Err
}

// invalid returns an invalid-argument error for field
func invalid(field string, value float64) error {
	return &InputError{Field: field, Value: value, Err: ErrInvalidArgument}
}

// undefined returns an undefined-physics error for field
func undefined(field string, value float64) error {
	return &InputError{Field: field, Value: value, Err: ErrUndefinedPhysics}
}

// positive tells whether x is positive and finite
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// finite tells whether x is neither NaN nor ±Inf
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
