// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

// Store - type to hold the root node of a tree
type Store struct {
	root  *node
	count int
}

// node - a single key→value slot
type node struct {
	key     string
	value   interface{}
	left    *node
	right   *node
	balance int
}

// New - create an initially empty store
func New() *Store {
	return &Store{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if the store contains no data
func (p *Store) IsEmpty() bool {
	return nil == p.root
}

// Count - number of keys currently in the store
func (p *Store) Count() int {
	return p.count
}

// Finalise - release all slots; the store remains usable as an empty
// store, so repeated calls are harmless
func (p *Store) Finalise() {
	p.root = nil
	p.count = 0
}
