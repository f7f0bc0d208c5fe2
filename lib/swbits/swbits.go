// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package swbits holds the switch bit-position catalogue: the table
// that says, for a routing tile's programmable muxes, which bits of
// which minor frame encode which (from-wire, to-wire) switch.
//
// The full catalogue (about 1,500 entries) is external data, sourced
// from the vendor's own routing mux documentation rather than from
// anything derivable from this package; see Catalogue's doc comment.
// What's here is the record shape, the bit-location arithmetic that
// every entry obeys, and a representative subset of entries covering
// each documented wire family, enough to exercise the extractor and
// emitter end to end.
package swbits

// Entry is one programmable routing-mux bit position: a two-bit
// field selecting among up to three driving wires (two_bits_val 1,
// 2, or 3; 0 means "off"), gated by a one-bit enable.
//
// For Minor == 20, all three bits live in that single minor frame at
// the literal TwoBitsOffset/TwoBitsOffset+1/OneBitOffset positions.
// For every other minor, the two-bit field straddles Minor and
// Minor+1 at bit TwoBitsOffset/2 in each, and the one bit lives in
// Minor+(OneBitOffset&1) at bit OneBitOffset/2.
type Entry struct {
	Minor         int
	TwoBitsOffset int
	TwoBitsVal    int // 1, 2, or 3
	OneBitOffset  int
	FromWire      string
	ToWire        string
	Bidir         bool
}

// TwoBitsLocation returns the (minorLo, bitLo, minorHi, bitHi) pair
// of bit positions holding e's two-bit field; minorLo contributes the
// field's low bit, minorHi the high bit.
func (e Entry) TwoBitsLocation() (minorLo, bitLo, minorHi, bitHi int) {
	if e.Minor == 20 {
		return e.Minor, e.TwoBitsOffset, e.Minor, e.TwoBitsOffset + 1
	}
	return e.Minor, e.TwoBitsOffset / 2, e.Minor + 1, e.TwoBitsOffset / 2
}

// OneBitLocation returns the (minor, bit) position of e's enable bit.
func (e Entry) OneBitLocation() (minor, bit int) {
	if e.Minor == 20 {
		return e.Minor, e.OneBitOffset
	}
	return e.Minor + (e.OneBitOffset & 1), e.OneBitOffset / 2
}

// GetBit reads a single bit out of a minor frame; FrameGetter adapts
// whatever frame storage the caller has (usually a *frame.Buffer
// slice) to this package's bit-location arithmetic without this
// package needing to import the frame layout itself.
type FrameGetter func(minor, bit int) bool

// FrameSetter is the write-side counterpart of FrameGetter.
type FrameSetter func(minor, bit int, val bool)

// ReadTwoBits decodes e's two-bit field via get.
func (e Entry) ReadTwoBits(get FrameGetter) int {
	minorLo, bitLo, minorHi, bitHi := e.TwoBitsLocation()
	lo, hi := 0, 0
	if get(minorLo, bitLo) {
		lo = 1
	}
	if get(minorHi, bitHi) {
		hi = 1
	}
	return lo | hi<<1
}

// WriteTwoBits encodes val (expected to be e.TwoBitsVal, or 0 to
// clear) into e's two-bit field via set.
func (e Entry) WriteTwoBits(set FrameSetter, val int) {
	minorLo, bitLo, minorHi, bitHi := e.TwoBitsLocation()
	set(minorLo, bitLo, val&1 != 0)
	set(minorHi, bitHi, val&2 != 0)
}

// ReadOneBit reports whether e's enable bit is set.
func (e Entry) ReadOneBit(get FrameGetter) bool {
	minor, bit := e.OneBitLocation()
	return get(minor, bit)
}

// WriteOneBit sets or clears e's enable bit.
func (e Entry) WriteOneBit(set FrameSetter, val bool) {
	minor, bit := e.OneBitLocation()
	set(minor, bit, val)
}

// Active reports whether e's bit pattern is currently programmed:
// the two-bit field equals e.TwoBitsVal and the enable bit is set.
func (e Entry) Active(get FrameGetter) bool {
	return e.ReadTwoBits(get) == e.TwoBitsVal && e.ReadOneBit(get)
}

// Clear zeroes out e's three bits, used after an active switch has
// been recorded during extraction.
func (e Entry) Clear(set FrameSetter) {
	e.WriteTwoBits(set, 0)
	e.WriteOneBit(set, false)
}

// Catalogue is a representative subset of the switch bit-position
// table, covering the wire families the model builder documents:
// LOGICIN_B<i> muxes, LOGICOUT feedback, the GFAN0/GFAN1 VCC tie,
// and a handful of long-line (NN2/WW4/NR1/SL1) entries. The real
// catalogue runs to roughly 1,500 entries sourced from outside this
// repository (see the package doc comment); callers that need
// complete routing-switch coverage for a specific tile must extend
// this table from that external source.
var Catalogue = []Entry{
	{Minor: 20, TwoBitsOffset: 0, TwoBitsVal: 1, OneBitOffset: 2, FromWire: "LOGICIN_B0", ToWire: "GFAN0"},
	{Minor: 20, TwoBitsOffset: 4, TwoBitsVal: 2, OneBitOffset: 6, FromWire: "LOGICIN_B1", ToWire: "GFAN1"},
	{Minor: 20, TwoBitsOffset: 8, TwoBitsVal: 1, OneBitOffset: 10, FromWire: "VCC_WIRE", ToWire: "GFAN0"},
	{Minor: 20, TwoBitsOffset: 12, TwoBitsVal: 1, OneBitOffset: 14, FromWire: "VCC_WIRE", ToWire: "GFAN1"},

	{Minor: 22, TwoBitsOffset: 16, TwoBitsVal: 1, OneBitOffset: 18, FromWire: "LOGICOUT0", ToWire: "NN2B0"},
	{Minor: 22, TwoBitsOffset: 20, TwoBitsVal: 2, OneBitOffset: 22, FromWire: "LOGICOUT1", ToWire: "WW4E3"},
	{Minor: 22, TwoBitsOffset: 24, TwoBitsVal: 3, OneBitOffset: 26, FromWire: "LOGICOUT2", ToWire: "NR1B", Bidir: true},

	{Minor: 24, TwoBitsOffset: 0, TwoBitsVal: 1, OneBitOffset: 2, FromWire: "SL1E", ToWire: "LOGICIN_B2"},
	{Minor: 24, TwoBitsOffset: 4, TwoBitsVal: 2, OneBitOffset: 6, FromWire: "GCLK0", ToWire: "LOGICIN_B3"},
	{Minor: 24, TwoBitsOffset: 8, TwoBitsVal: 1, OneBitOffset: 10, FromWire: "GCLK0", ToWire: "LOGICIN_B3_BRK"},

	{Minor: 26, TwoBitsOffset: 0, TwoBitsVal: 1, OneBitOffset: 2, FromWire: "CLK0", ToWire: "LOGICIN_B4"},
	{Minor: 26, TwoBitsOffset: 4, TwoBitsVal: 1, OneBitOffset: 6, FromWire: "SR0", ToWire: "LOGICIN_B5"},
	{Minor: 26, TwoBitsOffset: 8, TwoBitsVal: 2, OneBitOffset: 10, FromWire: "KEEP1_WIRE", ToWire: "LOGICIN_B6"},

	{Minor: 28, TwoBitsOffset: 0, TwoBitsVal: 1, OneBitOffset: 2, FromWire: "LOGICIN_B5", ToWire: "INT_IOI_LOGICIN_B5"},
	{Minor: 28, TwoBitsOffset: 4, TwoBitsVal: 1, OneBitOffset: 6, FromWire: "LOGICIN_B4", ToWire: "INT_IOI_LOGICIN_B4"},
}
