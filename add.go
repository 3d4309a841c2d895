// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

import (
	"fmt"

	"github.com/bitmark-inc/eloarg/fault"
)

// Add - declare a single option
//
// The option must carry at least one of the short and long names and
// a description; names must not collide with an earlier declaration
// and all fields are length limited.  Any violation is a
// ConfigurationError and no option is created.
func (a *Args) Add(opt Option) error {
	if nil == a.options {
		return fault.ErrContextIsFinalised
	}

	if "" == opt.Short && "" == opt.Long {
		return fault.ErrMissingOptionName
	}
	if "" == opt.Description {
		name := opt.Long
		if "" == name {
			name = opt.Short
		}
		return fault.ConfigurationError(fmt.Sprintf("You must set the description for option '%s'.", name))
	}

	if "" != opt.Short && a.options.Has(opt.Short) {
		return fault.ConfigurationError(fmt.Sprintf("You've already set the short option '%s'.", opt.Short))
	}
	if "" != opt.Long && a.options.Has(opt.Long) {
		return fault.ConfigurationError(fmt.Sprintf("You've already set the long option '%s'.", opt.Long))
	}

	if len(opt.Short) > ShortOptionLength {
		return fault.ConfigurationError(fmt.Sprintf("The maximum length of the short option is %d.", ShortOptionLength))
	}
	if len(opt.Long) > LongOptionLength {
		return fault.ConfigurationError(fmt.Sprintf("The maximum length of the long option is %d.", LongOptionLength))
	}
	if len(opt.Description) > DescriptionLength {
		return fault.ConfigurationError(fmt.Sprintf("The maximum length of the description is %d.", DescriptionLength))
	}

	record := &optionRecord{
		short:       opt.Short,
		long:        opt.Long,
		description: opt.Description,
		hasArg:      opt.HasArg,
		tag:         a.declared,
	}

	// one record, up to two keys
	if "" != opt.Short {
		a.options.Set(opt.Short, record)
	}
	if "" != opt.Long {
		a.options.Set(opt.Long, record)
	}

	a.declared += 1

	return nil
}
