// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store - an ordered associative store mapping string keys to
// arbitrary values, backed by an AVL balanced tree
//
// Note: an individual store is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// A Set with an existing key overwrites the stored value.  There is
// no delete; a store is released as a whole by Finalise.  Range
// enumerates occupied slots in ascending key order, which gives a
// deterministic enumeration independent of insertion order.
package store
