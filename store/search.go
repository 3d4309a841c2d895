// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"strings"
)

// Get - find the value stored under a specific key
func (p *Store) Get(key string) (interface{}, bool) {
	tree := p.root
	for nil != tree {
		switch strings.Compare(tree.key, key) {
		case +1: // tree.key > key
			tree = tree.left
		case -1: // tree.key < key
			tree = tree.right
		default:
			return tree.value, true
		}
	}
	return nil, false
}

// Has - check if a key is present
func (p *Store) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}
