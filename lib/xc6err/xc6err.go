// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package xc6err defines the error kinds shared across the bitstream
// codec and fabric model builder, so that a caller can tell a
// malformed-input problem (the bitstream is garbage) apart from an
// unsupported-input problem (the bitstream is well-formed but
// outside what this tool understands) from a resource-exhaustion or
// internal-invariant problem (a bug in this tool, not the input).
package xc6err

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// Malformed reports that the input violates the bitstream
	// format itself: wrong magic, bad packet header, unknown
	// register, FDRI without a preceding FAR, a word count out of
	// range, a wrong IDCODE or FLR, a truncated string, or a
	// nonzero reserved bit where the format requires zero.
	Malformed Kind = iota
	// Unsupported reports that the input is well-formed but names
	// something this tool does not implement: more than 1024
	// active routing switches, an IOB site byte pattern absent
	// from the known table, a LUT position bit-mask outside the
	// documented set, or a die other than the XC6SLX9.
	Unsupported
	// Exhausted reports that some bounded resource ran out: an
	// allocation failed, the string interner reached its 1M-ID
	// cap, or a switch chain walk exceeded its depth limit.
	Exhausted
	// Invariant reports that an internal consistency check
	// failed: a duplicate switch, inconsistent connection-point
	// indices, or an unknown wire ID handed back by the
	// catalogue. This is always a bug in this tool, not a problem
	// with the input, and is never recovered from locally.
	Invariant
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed input"
	case Unsupported:
		return "unsupported input"
	case Exhausted:
		return "resource exhausted"
	case Invariant:
		return "internal invariant violation"
	default:
		return fmt.Sprintf("xc6err.Kind(%d)", int(k))
	}
}

// Error is the structured error value returned across package
// boundaries in this module. Offset and Tile are optional location
// hints; a zero Tile (Y==0 && X==0 && !HasTile) means "no tile
// context".
type Error struct {
	Kind    Kind
	Msg     string
	Offset  int64 // byte offset into the input, or -1 if not applicable
	HasTile bool
	Y, X    int
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	var loc string
	switch {
	case e.HasTile:
		loc = fmt.Sprintf(" (tile y=%d x=%d)", e.Y, e.X)
	case e.Offset >= 0:
		loc = fmt.Sprintf(" (offset 0x%x)", e.Offset)
	}
	if e.Err != nil {
		return fmt.Sprintf("%v%s: %s: %v", e.Kind, loc, e.Msg, e.Err)
	}
	return fmt.Sprintf("%v%s: %s", e.Kind, loc, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Malformedf builds a Malformed error with a byte offset, no wrapped
// cause.
func Malformedf(offset int64, format string, args ...interface{}) *Error {
	return &Error{Kind: Malformed, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Unsupportedf builds an Unsupported error with no location.
func Unsupportedf(format string, args ...interface{}) *Error {
	return &Error{Kind: Unsupported, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// Exhaustedf builds a resource-exhaustion error.
func Exhaustedf(format string, args ...interface{}) *Error {
	return &Error{Kind: Exhausted, Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// Invariantf builds an internal-invariant-violation error at a tile
// location.
func Invariantf(y, x int, format string, args ...interface{}) *Error {
	return &Error{Kind: Invariant, Offset: -1, HasTile: true, Y: y, X: x, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a wrapped cause to e and returns e, for chaining at
// the point an error crosses a package boundary:
//
//	if err != nil {
//		return xc6err.Malformedf(off, "reading FDRI").Wrap(err)
//	}
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// Is reports whether err is an *Error of the given Kind, for
// dispatch at the boundary where a caller decides whether something
// is fatal-to-the-operation vs. a bug to report differently:
//
//	if xc6err.Is(err, xc6err.Unsupported) { ... }
func Is(err error, kind Kind) bool {
	if ke, ok := err.(*Error); ok {
		return ke.Kind == kind
	}
	return false
}
