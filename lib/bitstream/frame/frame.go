// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package frame is the bit-interleaved configuration frame buffer: a
// flat byte array holding every configuration frame of a device,
// addressed the same way the hardware's frame-data shift register
// addresses it, plus the bit-level accessors that every higher layer
// (extractor, emitter, LUT codec) builds on.
package frame

import (
	"fmt"
	"strings"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// Sizes of the three regions of a Buffer, in bytes. Grounded on bit.h's
// FRAMES_DATA_LEN / BRAM_DATA_LEN / IOB_DATA_LEN / BITS_LEN macros.
const (
	FramesDataLen = xc6parts.NumRows * xc6parts.FramesPerRow * xc6parts.FrameSize
	BRAMDataLen   = xc6parts.NumRows * xc6parts.BRAMMajorsPerRow * xc6parts.FrameSize
	IOBDataLen    = xc6parts.IOBWords * 2

	FramesDataStart = 0
	BRAMDataStart   = FramesDataStart + FramesDataLen
	IOBDataStart    = BRAMDataStart + BRAMDataLen
	BitsLen         = IOBDataStart + IOBDataLen
)

// Buffer is the whole configuration memory image for one part: the
// frame data region, the block-RAM initialization region, and the IOB
// tail, laid out back to back exactly as the FDRI shift register
// writes them.
type Buffer struct {
	d [BitsLen]byte
}

// NewBuffer returns a zeroed Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Bytes returns the whole buffer as a flat slice, for bulk I/O with
// the bitstream parser/writer.
func (b *Buffer) Bytes() []byte {
	return b.d[:]
}

// Frame is one configuration frame: FrameSize bytes addressed with
// frame_get_bit's bit-interleaved scheme rather than plain big-endian
// bit order.
type Frame []byte

// FrameAt returns the frame at byteOffset within the buffer, a
// FrameSize-byte window. byteOffset is usually FrameIndex*FrameSize
// for some frame index into the frame-data region, but the BRAM and
// IOB regions are addressed separately (see BRAMDataStart/IOBDataStart).
func (b *Buffer) FrameAt(byteOffset int) Frame {
	return Frame(b.d[byteOffset : byteOffset+xc6parts.FrameSize])
}

// TwoFramesAt returns the pair of adjacent frames starting at
// byteOffset, for LUT accessors that read across a minor-frame
// boundary.
func (b *Buffer) TwoFramesAt(byteOffset int) []byte {
	return b.d[byteOffset : byteOffset+2*xc6parts.FrameSize]
}

// GetBit reports whether the given bit of the frame is set. bit
// indexes within [0, FrameSize*8).
//
// The interleaving comes straight from frame_get_bit: pairs of bytes
// are stored with the second byte of the pair first, so that 16-bit
// reads of the raw bytes come out in the right order on a
// little-endian host without a byte swap.
func (f Frame) GetBit(bit int) bool {
	v := byte(1) << (7 - uint(bit)%8)
	idx := (bit/16)*2 + boolToInt((bit/8)%2 == 0)
	return f[idx]&v != 0
}

func (f Frame) SetBit(bit int) {
	v := byte(1) << (7 - uint(bit)%8)
	idx := (bit/16)*2 + boolToInt((bit/8)%2 == 0)
	f[idx] |= v
}

func (f Frame) ClearBit(bit int) {
	v := byte(1) << (7 - uint(bit)%8)
	idx := (bit/16)*2 + boolToInt((bit/8)%2 == 0)
	f[idx] &^= v
}

func (f Frame) PutBit(bit int, set bool) {
	if set {
		f.SetBit(bit)
	} else {
		f.ClearBit(bit)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// GetU8 reverses the bit order of the byte at d[0], since the frame's
// bit-interleaving inverts bit significance within each stored byte.
func GetU8(frameD []byte) uint8 {
	var v uint8
	for i := 0; i < 8; i++ {
		if frameD[0]&(1<<i) != 0 {
			v |= 1 << (7 - i)
		}
	}
	return v
}

func GetU16(frameD []byte) uint16 {
	high := uint16(GetU8(frameD))
	low := uint16(GetU8(frameD[1:]))
	return (high << 8) | low
}

func GetU32(frameD []byte) uint32 {
	low := uint32(GetU16(frameD))
	high := uint32(GetU16(frameD[2:]))
	return (high << 16) | low
}

func GetU64(frameD []byte) uint64 {
	low := uint64(GetU32(frameD))
	high := uint64(GetU32(frameD[4:]))
	return (high << 32) | low
}

// IsEmpty reports whether every byte of d is zero.
func IsEmpty(d []byte) bool {
	for _, v := range d {
		if v != 0 {
			return false
		}
	}
	return true
}

// CountBits returns the number of set bits in d, raw byte order (not
// bit-interleaved); used for deciding whether a frame is sparse enough
// to print bit-by-bit.
func CountBits(d []byte) int {
	n := 0
	for _, v := range d {
		for v != 0 {
			n += int(v & 1)
			v >>= 1
		}
	}
	return n
}

// ReadLUT64 decodes the 64-bit truth table stored across a pair of
// adjacent minor frames ("two minors"), at bit offset offInFrame
// within each. Every nibble of the LUT takes two consecutive bits
// from each of the two frames, per read_lut64.
func ReadLUT64(twoMinors []byte, offInFrame int) uint64 {
	lo := Frame(twoMinors[:xc6parts.FrameSize])
	hi := Frame(twoMinors[xc6parts.FrameSize : 2*xc6parts.FrameSize])
	var lut uint64
	for j := 0; j < 16; j++ {
		if lo.GetBit(offInFrame + j*2) {
			lut |= 1 << uint(j*4)
		}
		if lo.GetBit(offInFrame + j*2 + 1) {
			lut |= 1 << uint(j*4+1)
		}
		if hi.GetBit(offInFrame + j*2) {
			lut |= 1 << uint(j*4+2)
		}
		if hi.GetBit(offInFrame + j*2 + 1) {
			lut |= 1 << uint(j*4+3)
		}
	}
	return lut
}

// WriteLUT64 is the inverse of ReadLUT64: it sets/clears the bits of
// the pair of minor frames representing the 64-bit truth table lut.
func WriteLUT64(twoMinors []byte, offInFrame int, lut uint64) {
	lo := Frame(twoMinors[:xc6parts.FrameSize])
	hi := Frame(twoMinors[xc6parts.FrameSize : 2*xc6parts.FrameSize])
	for j := 0; j < 16; j++ {
		lo.PutBit(offInFrame+j*2, lut&(1<<uint(j*4)) != 0)
		lo.PutBit(offInFrame+j*2+1, lut&(1<<uint(j*4+1)) != 0)
		hi.PutBit(offInFrame+j*2, lut&(1<<uint(j*4+2)) != 0)
		hi.PutBit(offInFrame+j*2+1, lut&(1<<uint(j*4+3)) != 0)
	}
}

// DumpText renders one frame as a human-readable diagnostic: a dash if
// empty, a list of "bit N" lines if sparse, or a hex block otherwise.
// This mirrors printf_frames/bit2txt's three-tier format, minus the
// row/major/minor addressing prefix (callers that have that context
// prepend it themselves).
func (f Frame) DumpText() string {
	if IsEmpty(f) {
		return "-"
	}
	var out strings.Builder
	if CountBits(f) <= 32 {
		for i := 0; i < xc6parts.FrameSize*8; i++ {
			if !f.GetBit(i) {
				continue
			}
			if i >= 512 && i < 528 {
				fmt.Fprintf(&out, "bit %d (clock %d)\n", i, i-512)
				continue
			}
			iNoClock := i
			if iNoClock >= 528 {
				iNoClock -= 16
			}
			fmt.Fprintf(&out, "bit %d %d*%d+%d %d*%d+%d\n",
				i, 64, iNoClock/64, iNoClock%64, 256, iNoClock/256, iNoClock%256)
		}
		return strings.TrimSuffix(out.String(), "\n")
	}
	fmt.Fprintf(&out, "hex\n{\n")
	for i := 0; i < len(f); i += 8 {
		end := i + 8
		if end > len(f) {
			end = len(f)
		}
		fmt.Fprintf(&out, " @%05x", i)
		for _, b := range f[i:end] {
			fmt.Fprintf(&out, " %02x", b)
		}
		out.WriteByte('\n')
	}
	out.WriteByte('}')
	return out.String()
}
