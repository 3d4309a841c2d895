// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eloarg

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/eloarg/store"
)

// help layout
const (
	helpDescriptionColumn = 46 // column where descriptions start
	helpWrapColumns       = 70 // maximum description line length
)

// Render - format all declared options as a usage listing
//
// Layout: optional header lines, an "Options:" line, then one entry
// per declared option in store enumeration order with the description
// word-wrapped into a fixed column.  A footer, when given, follows a
// blank line.  The result is empty when no options are declared.
//
// Render only formats; printing the text and terminating the process
// (exit status 0 in the conventional help path) is the caller's
// decision.
func (a *Args) Render(header string, footer string) string {
	if nil == a.options || 0 == a.options.Count() {
		return ""
	}

	buffer := &strings.Builder{}

	if "" != header {
		buffer.WriteString(header)
		buffer.WriteByte('\n')
	}
	buffer.WriteString("Options:\n")

	// an aliased record is enumerated under both of its keys; the
	// declaration tag picks out the first appearance
	seen := store.New()
	defer seen.Finalise()

	a.options.Range(func(key string, item interface{}) bool {
		r := item.(*optionRecord)

		tag := strconv.FormatUint(r.tag, 10)
		if seen.Has(tag) {
			return true
		}
		seen.Set(tag, true)

		prefix := ""
		switch {
		case "" != r.short && "" != r.long:
			prefix = "  -" + r.short + ", --" + r.long
		case "" != r.short:
			prefix = "  -" + r.short
		default:
			prefix = "      --" + r.long
		}
		if len(prefix) < helpDescriptionColumn {
			prefix += strings.Repeat(" ", helpDescriptionColumn-len(prefix))
		} else {
			prefix += " "
		}
		buffer.WriteString(prefix)
		wrapDescription(buffer, r.description)

		return true
	})

	if "" != footer {
		buffer.WriteByte('\n')
		buffer.WriteString(footer)
		buffer.WriteByte('\n')
	}

	return buffer.String()
}

// greedy word wrap: pack words while the running line fits, then
// break and indent to the description column
func wrapDescription(buffer *strings.Builder, description string) {
	length := 0
	for _, word := range strings.Fields(description) {
		space := 0
		if length > 0 {
			space = 1
		}
		if length+len(word)+space <= helpWrapColumns {
			if space > 0 {
				buffer.WriteByte(' ')
			}
			buffer.WriteString(word)
			length += len(word) + space
		} else {
			buffer.WriteByte('\n')
			buffer.WriteString(strings.Repeat(" ", helpDescriptionColumn))
			buffer.WriteString(word)
			length = len(word)
		}
	}
	buffer.WriteByte('\n')
}
