// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/eloarg/fault"
)

// ParseOS - parse the process arguments
func (a *Args) ParseOS() error {
	return a.Parse(os.Args)
}

// Parse - scan an argument vector and capture matched options
//
// arguments[0] is the program name and is skipped.  Scanning stops at
// the literal "--" or as soon as an INFO_ARGUMENT option is matched;
// both paths also suppress the missing required option check, so a
// help or version style flag anywhere wins over an unmet required
// option earlier in the arguments.  This precedence is a deliberate
// rule, not an accident of ordering.
func (a *Args) Parse(arguments []string) error {
	if nil == a.options {
		return fault.ErrContextIsFinalised
	}
	if 0 == len(arguments) || 0 == a.options.Count() {
		return nil
	}

scan:
	for i := 1; i < len(arguments); i += 1 {
		arg := arguments[i]

		// end of options; remaining arguments are not inspected
		if "--" == arg {
			return nil
		}

		// long option
		if strings.HasPrefix(arg, "--") {
			name := arg[2:]

			if eq := strings.IndexByte(name, '='); eq >= 0 {
				value := name[eq+1:]
				name = name[:eq]

				r, err := a.lookupLong(name)
				if nil != err {
					return err
				}
				if OPTIONAL_ARGUMENT != r.hasArg && REQUIRED_ARGUMENT != r.hasArg {
					return fault.UnexpectedValueError(fmt.Sprintf("option '--%s' doesn't allow an argument.", name))
				}
				if "" == value {
					return fault.MissingValueError(fmt.Sprintf("Missing value for option: --%s=", name))
				}
				r.provided = true
				r.count += 1
				r.value = value
				r.valueSet = true
				continue scan
			}

			r, err := a.lookupLong(name)
			if nil != err {
				return err
			}
			r.provided = true
			r.count += 1

			switch r.hasArg {
			case INFO_ARGUMENT:
				return nil
			case OPTIONAL_ARGUMENT, REQUIRED_ARGUMENT:
				if i+1 < len(arguments) && !strings.HasPrefix(arguments[i+1], "-") {
					i += 1
					r.value = arguments[i]
					r.valueSet = true
				} else {
					return fault.MissingValueError(fmt.Sprintf("Missing value for option: --%s", name))
				}
			}
			continue scan
		}

		// combined short options; a bare "-" is ignored
		if strings.HasPrefix(arg, "-") && len(arg) > 1 {
			cluster := arg[1:]
			for j := 0; j < len(cluster); j += 1 {
				c := cluster[j : j+1]

				item, ok := a.options.Get(c)
				if !ok {
					return fault.UnknownOptionError(fmt.Sprintf("Unknown option '%s'.\nUse option '--help' for more information.", c))
				}
				r := item.(*optionRecord)
				r.provided = true
				r.count += 1

				switch r.hasArg {
				case INFO_ARGUMENT:
					return nil
				case OPTIONAL_ARGUMENT, REQUIRED_ARGUMENT:
					if j+1 < len(cluster) {
						// rest of the cluster is the value, e.g. -p8080
						r.value = cluster[j+1:]
						r.valueSet = true
						continue scan
					}
					if i+1 < len(arguments) && !strings.HasPrefix(arguments[i+1], "-") {
						i += 1
						r.value = arguments[i]
						r.valueSet = true
						continue scan
					}
					return fault.MissingValueError(fmt.Sprintf("Missing value for option: -%s", c))
				}
			}
			continue scan
		}

		// plain arguments are not collected
	}

	// the scan ran to completion: every required option must have
	// received a value
	var err error
	a.options.Range(func(key string, item interface{}) bool {
		r := item.(*optionRecord)
		if REQUIRED_ARGUMENT == r.hasArg && !r.valueSet {
			err = fault.MissingRequiredError(fmt.Sprintf("Missing required option: '%s'\nUse option '--help' for more information.", r.name()))
			return false
		}
		return true
	})
	return err
}

// resolve a long form token, the name is as written in the token
func (a *Args) lookupLong(name string) (*optionRecord, error) {
	item, ok := a.options.Get(name)
	if !ok {
		return nil, fault.UnknownOptionError(fmt.Sprintf("Unknown option: --%s.\nUse option '--help' for more information.", name))
	}
	return item.(*optionRecord), nil
}
