// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

// Errs keeps the first non-nil error it is given.
type Errs struct{ Err error }

func (errs *Errs) Errored() bool { return errs.Err != nil }

// Add records the first non-nil error in [errors] if no error has been
// recorded yet.
func (errs *Errs) Add(errors ...error) {
	if errs.Err != nil {
		return
	}
	for _, err := range errors {
		if err != nil {
			errs.Err = err
			return
		}
	}
}
