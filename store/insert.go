// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"strings"
)

// Set - insert a new key or overwrite the value of an existing key
// returns true if a new slot was created
func (p *Store) Set(key string, value interface{}) bool {
	added := false
	p.root, added, _ = insert(key, value, p.root)
	if added {
		p.count += 1
	}
	return added
}

// internal routine for insert
// returns the possibly updated subtree root, whether a node was
// added and whether the subtree height has grown
func insert(key string, value interface{}, p *node) (*node, bool, bool) {
	if nil == p { // insert new node
		p = &node{
			key:   key,
			value: value,
		}
		return p, true, true
	}

	added := false
	h := false

	switch strings.Compare(p.key, key) {
	case +1: // p.key > key
		p.left, added, h = insert(key, value, p.left)
		if h {
			// left branch has grown
			if 1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = -1
			} else { // balance == -1, rebalance
				p1 := p.left
				if -1 == p1.balance {
					// single LL rotation
					p.left = p1.right
					p1.right = p
					p.balance = 0
					p = p1
				} else {
					// double LR rotation
					p2 := p1.right
					p1.right = p2.left
					p2.left = p1
					p.left = p2.right
					p2.right = p
					if -1 == p2.balance {
						p.balance = 1
					} else {
						p.balance = 0
					}
					if +1 == p2.balance {
						p1.balance = -1
					} else {
						p1.balance = 0
					}
					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	case -1: // p.key < key
		p.right, added, h = insert(key, value, p.right)
		if h {
			// right branch has grown
			if -1 == p.balance {
				p.balance = 0
				h = false
			} else if 0 == p.balance {
				p.balance = 1
			} else { // balance == +1, rebalance
				p1 := p.right
				if 1 == p1.balance {
					// single RR rotation
					p.right = p1.left
					p1.left = p
					p.balance = 0
					p = p1
				} else {
					// double RL rotation
					p2 := p1.left
					p1.left = p2.right
					p2.right = p1
					p.right = p2.left
					p2.left = p
					if +1 == p2.balance {
						p.balance = -1
					} else {
						p.balance = 0
					}
					if -1 == p2.balance {
						p1.balance = 1
					} else {
						p1.balance = 0
					}
					p = p2
				}
				p.balance = 0
				h = false
			}
		}
	default: // existing key
		p.value = value
	}
	return p, added, h
}
