// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package writer emits a bit-exact vendor configuration bitstream
// from a header and frame buffer: the ASCII header, sync word, FAR
// positioning, FDRI frame streaming (with padding frames), and the
// register defaults and DESYNC trailer every bitstream carries.
package writer

import (
	"bytes"
	"encoding/binary"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/regs"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// Header mirrors parser.Header's fields for the write side, kept as
// its own type so this package doesn't need to import parser.
type Header struct {
	Fields  map[byte]string
	DataLen uint32
}

// Write serializes header and the frame data in buf into a complete
// bitstream.
func Write(h *Header, buf *frame.Buffer) []byte {
	var out bytes.Buffer
	writeMagic(&out)
	for _, key := range []byte{'a', 'b', 'c', 'd'} {
		writeStringField(&out, key, h.Fields[key])
	}
	out.WriteByte('e')
	writeU32(&out, h.DataLen)

	out.WriteByte(0xFF)
	out.Write(regs.SyncWord[:])

	writeReg(&out, regs.FLR, []uint32{uint32(xc6parts.FramesPerRow - 1)})
	writeReg(&out, regs.COR1, []uint32{regs.COR1Default})
	writeReg(&out, regs.COR2, []uint32{regs.COR2Default})
	writeReg(&out, regs.IDCODE, []uint32{xc6parts.SupportedIDCode})
	writeReg(&out, regs.MASK, []uint32{regs.MaskDefault})
	writeReg(&out, regs.CTL, []uint32{regs.CtlDefault})
	writeReg(&out, regs.CMD, []uint32{uint32(regs.CmdWCFG)})

	writeFrames(&out, buf)

	writeReg(&out, regs.CMD, []uint32{uint32(regs.CmdGRESTORE)})
	writeReg(&out, regs.CMD, []uint32{uint32(regs.CmdDESYNC)})

	return out.Bytes()
}

// Magic is the fixed 13-byte preamble every .bit file starts with.
// The reader never validates its contents (original_source/bit2txt.c
// just echoes it back), but a writer should still emit the vendor's
// actual bytes so third-party tools that do check it still accept
// the result.
var Magic = [13]byte{0x00, 0x09, 0x0f, 0xf0, 0x0f, 0xf0, 0x0f, 0xf0, 0x0f, 0xf0, 0x00, 0x00, 0x01}

func writeMagic(out *bytes.Buffer) {
	out.Write(Magic[:])
}

func writeStringField(out *bytes.Buffer, key byte, s string) {
	out.WriteByte(key)
	b := append([]byte(s), 0)
	writeU16(out, uint16(len(b)))
	out.Write(b)
}

func writeU16(out *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	out.Write(b[:])
}

func writeU32(out *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	out.Write(b[:])
}

// writeReg emits a type-1 packet writing words to reg.
func writeReg(out *bytes.Buffer, reg regs.Register, words []uint32) {
	header := uint32(1)<<29 | uint32(2)<<27 | (uint32(reg)&0x3FFF)<<13 | uint32(len(words))&0x7FF
	writeU32(out, header)
	for _, w := range words {
		writeU32(out, w)
	}
}

// writeFrames streams every row's frames via FAR_MAJ + FDRI, skipping
// the two padding frames at the start of each row and inserting them
// as all-0xFF frames instead, per §4.E.
func writeFrames(out *bytes.Buffer, buf *frame.Buffer) {
	d := buf.Bytes()
	for row := 0; row < xc6parts.NumRows; row++ {
		far := uint32(row&0x1F) << 26
		writeReg(out, regs.FAR_MAJ, []uint32{far})

		padding := bytes.Repeat([]byte{0xFF}, xc6parts.FrameSize*xc6parts.PaddingFramesPerRow)
		rowOff := row * xc6parts.FramesPerRow * xc6parts.FrameSize
		rowLen := xc6parts.FramesPerRow * xc6parts.FrameSize
		rowData := d[rowOff : rowOff+rowLen]

		allWords := make([]uint32, 0, (len(padding)+len(rowData))/4)
		allWords = append(allWords, bytesToWords(padding)...)
		allWords = append(allWords, bytesToWords(rowData)...)

		writeFDRIWords(out, allWords)
	}
}

func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(b[i*4 : i*4+4])
	}
	return words
}

// writeFDRIWords emits an FDRI type-1 header (for the first up-to-
// 0x7FF words) followed by a type-2 continuation packet for the rest,
// matching how the vendor tool splits a large FDRI burst per ug380.
func writeFDRIWords(out *bytes.Buffer, words []uint32) {
	const type1Max = 0x7FF
	first := words
	rest := []uint32(nil)
	if len(words) > type1Max {
		first = words[:type1Max]
		rest = words[type1Max:]
	}

	header := uint32(1)<<29 | uint32(2)<<27 | (uint32(regs.FDRI)&0x3FFF)<<13 | uint32(len(first))&0x7FF
	writeU32(out, header)
	for _, w := range first {
		writeU32(out, w)
	}

	if len(rest) > 0 {
		header2 := uint32(2)<<29 | uint32(2)<<27
		writeU32(out, header2)
		writeU32(out, uint32(len(rest)))
		for _, w := range rest {
			writeU32(out, w)
		}
	}
}
