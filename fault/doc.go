// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides error classes for option declaration and parsing failures
// to allow easy comparison without having to resort to partial string
// matches
package fault
