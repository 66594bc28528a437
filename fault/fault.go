// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolation     = InvalidError("balance factor out of range")
	ErrCountMismatch        = InvalidError("cached count does not match")
	ErrDatabaseVersion      = InvalidError("database version is not supported")
	ErrHeightMismatch       = InvalidError("cached height does not match")
	ErrInvalidElement       = InvalidError("invalid element")
	ErrInvalidInterval      = InvalidError("interval must be positive")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidSetName       = InvalidError("invalid set name")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrIsADirectory         = InvalidError("path is a directory")
	ErrKindMismatch         = InvalidError("element kind does not match stored set")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrMissingConfiguration = InvalidError("configuration result is not a table")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotInitialised       = NotFoundError("not initialised")
	ErrNotPlainFileName     = InvalidError("file name must not contain a directory")
	ErrOrderViolation       = InvalidError("items are out of order")
	ErrReadOnly             = ProcessError("database is read only")
	ErrSetNotFound          = NotFoundError("set not found")
	ErrShapeViolation       = InvalidError("branch without children")
	ErrUnknownCommand       = NotFoundError("unknown command")
	ErrUnknownKind          = NotFoundError("unknown element kind")
	ErrWatchedFileMissing   = NotFoundError("watched file does not exist")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
