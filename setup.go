// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

import (
	"github.com/bitmark-inc/eloarg/store"
)

// KeyStore - the narrow contract required of the backing associative
// store: lookup, insertion, existence check, count and ordered
// enumeration of occupied slots
type KeyStore interface {
	Set(key string, value interface{}) bool
	Get(key string) (interface{}, bool)
	Has(key string) bool
	Count() int
	Range(f func(key string, value interface{}) bool)
	Finalise()
}

// Args - an option parsing context
//
// Each context is independent; create one per parse.  A context is
// not thread safe.
type Args struct {
	options  KeyStore
	declared uint64 // counts declarations, tags records in order
}

// New - create a context with the default backing store
func New() *Args {
	return NewWithStore(store.New())
}

// NewWithStore - create a context over a caller supplied store
func NewWithStore(options KeyStore) *Args {
	return &Args{
		options: options,
	}
}

// Finalise - release all declared options
//
// Aliased records are indexed twice but owned once by the store, so
// the whole set is released in a single operation.  Finalise on an
// already finalised or empty context is a no-op.
func (a *Args) Finalise() {
	if nil != a.options {
		a.options.Finalise()
		a.options = nil
	}
	a.declared = 0
}
