// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

// Has - check if an option was provided on the command line
//
// Either the short or the long name selects the same option.
func (a *Args) Has(name string) bool {
	r := a.record(name)
	return nil != r && r.provided
}

// Get - the captured value of a provided option
//
// The boolean result distinguishes an absent value from an empty one;
// it is false when the option was not provided or carries no value.
func (a *Args) Get(name string) (string, bool) {
	r := a.record(name)
	if nil == r || !r.provided || !r.valueSet {
		return "", false
	}
	return r.value, true
}

// Count - how many times a provided option was matched, 0 otherwise
func (a *Args) Count(name string) int {
	r := a.record(name)
	if nil == r || !r.provided {
		return 0
	}
	return r.count
}

// internal lookup, nil when unknown or the context is finalised
func (a *Args) record(name string) *optionRecord {
	if nil == a.options {
		return nil
	}
	if item, ok := a.options.Get(name); ok {
		return item.(*optionRecord)
	}
	return nil
}
