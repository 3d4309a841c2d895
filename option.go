// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

// LibraryName - tag prefixed to fatal error reports by CLI adapters
const LibraryName = "EloArg"

// HasArg - the value-acceptance mode of an option
type HasArg int

// all possible modes
const (
	NO_ARGUMENT       HasArg = iota // flag only
	INFO_ARGUMENT                   // flag that stops parsing (help/version)
	OPTIONAL_ARGUMENT               // value accepted if present
	REQUIRED_ARGUMENT               // value must be present
)

// declaration bounds
const (
	ShortOptionLength = 1
	LongOptionLength  = 32
	DescriptionLength = 150
)

// Option - declaration of a single command-line option
//
// At least one of Short and Long must be set
type Option struct {
	Short       string // single character, e.g. "v"
	Long        string // e.g. "verbose"
	Description string
	HasArg      HasArg
}

// one declared option; a record may be indexed in the store under
// both its short and its long key
type optionRecord struct {
	short       string
	long        string
	description string
	hasArg      HasArg
	tag         uint64 // declaration order, used for help deduplication

	// mutated by Parse
	value    string
	valueSet bool
	provided bool
	count    int
}

// display name preferring the long form, with leading dashes
func (r *optionRecord) name() string {
	if "" != r.long {
		return "--" + r.long
	}
	return "-" + r.short
}
