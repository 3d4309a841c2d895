// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

// Range - call f for each occupied slot in ascending key order
// enumeration stops early if f returns false
func (p *Store) Range(f func(key string, value interface{}) bool) {
	inorder(p.root, f)
}

// internal recursive traversal
func inorder(p *node, f func(key string, value interface{}) bool) bool {
	if nil == p {
		return true
	}
	if !inorder(p.left, f) {
		return false
	}
	if !f(p.key, p.value) {
		return false
	}
	return inorder(p.right, f)
}
