// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a class for each kind of declaration or parsing failure
// to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type ConfigurationError GenericError
type UnknownOptionError GenericError
type MissingValueError GenericError
type UnexpectedValueError GenericError
type MissingRequiredError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrContextIsFinalised = ProcessError("the parsing context has already been finalised")
	ErrMissingOptionName  = ConfigurationError("You must enter either the short or long option.")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConfigurationError) Error() string   { return string(e) }
func (e UnknownOptionError) Error() string   { return string(e) }
func (e MissingValueError) Error() string    { return string(e) }
func (e UnexpectedValueError) Error() string { return string(e) }
func (e MissingRequiredError) Error() string { return string(e) }
func (e ProcessError) Error() string         { return string(e) }

// determine the class of an error
func IsErrConfiguration(e error) bool   { _, ok := e.(ConfigurationError); return ok }
func IsErrUnknownOption(e error) bool   { _, ok := e.(UnknownOptionError); return ok }
func IsErrMissingValue(e error) bool    { _, ok := e.(MissingValueError); return ok }
func IsErrUnexpectedValue(e error) bool { _, ok := e.(UnexpectedValueError); return ok }
func IsErrMissingRequired(e error) bool { _, ok := e.(MissingRequiredError); return ok }
func IsErrProcess(e error) bool         { _, ok := e.(ProcessError); return ok }
