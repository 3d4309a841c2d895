// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command-line options processing
//
// Parses options of the forms:
//   -a                    - short option
//   -abc                  - combined short options
//   -p8080                - short option with inline value
//   -p 8080               - short option with separated value
//   --option              - long option
//   --option=value        - long option with inline value
//   --option value        - long option with separated value
//   --                    - stop option parsing
//
// Note:
//   An option declared with both a short and a long name is a single
//   option; querying either name gives identical results.
//   Repeated options increment an occurrence count, e.g. "-vvv" makes
//   Count("v") == 3.
//   An option declared with INFO_ARGUMENT (help/version style) stops
//   parsing as soon as it is matched.
//
// Errors are returned as distinct classes from the fault sub-package
// so that a host can recover; a command wanting the conventional CLI
// behaviour prints the error prefixed with the library tag and exits
// with status 1.
package eloarg
