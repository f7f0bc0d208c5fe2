// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package parser

import (
	"encoding/binary"
	"fmt"

	"github.com/datawire/dlib/derror"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/frame"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/regs"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

// packetOp is a decoded packet's opcode, independent of its type-1 vs
// type-2 wire encoding.
type packetOp int

const (
	opNoop packetOp = iota
	opRead
	opWrite
)

// RegAction records one register write/read seen in the packet
// stream, in stream order, for diagnostics. NOOP packets are not
// recorded, and writer.Write does not take this log: it emits its own
// fixed register sequence.
type RegAction struct {
	Op   packetOp
	Reg  regs.Register
	Data []uint32
}

// FAR is the Frame Address Register state: (block, row, major,
// minor).
type FAR struct {
	Block, Row, Major, Minor int
}

// farPos converts a FAR into a byte offset within a frame.Buffer,
// per §4.E's row/major/minor addressing. Parse fills block, row and
// major from the bitfields of one 32-bit FAR_MAJ register write:
// block in bit 31, row in bits 26-30, major in bits 18-25.
func farPos(f FAR) int {
	if f.Block == 1 {
		return frame.BRAMDataStart + f.Row*xc6parts.BRAMMajorsPerRow*xc6parts.FrameSize + f.Major*xc6parts.FrameSize
	}
	rowOff := f.Row * xc6parts.FramesPerRow * xc6parts.FrameSize
	majorOff := 0
	for m := 0; m < f.Major; m++ {
		majorOff += xc6parts.MinorsPerMajor[m] * xc6parts.FrameSize
	}
	return rowOff + majorOff + f.Minor*xc6parts.FrameSize
}

// Result is the fully decoded packet stream: the header, the frame
// buffer FDRI streamed into, the register action log, and any
// non-fatal Warnings encountered along the way (unknown CMD values,
// a missing CRC register write, bytes left over after the LFRM or
// GRESTORE command that ends the packet stream) — per §7, these don't
// stop parsing. The header's declared data length is not compared
// against the file size.
type Result struct {
	Header   *Header
	Buffer   *frame.Buffer
	Actions  []RegAction
	Warnings derror.MultiError
}

// Parse decodes the entire bitstream in data: header, sync word, and
// the packet stream (type-1/type-2, NOOP/read/write), streaming FDRI
// writes into a fresh frame.Buffer via the FAR state machine.
func Parse(data []byte) (*Result, error) {
	h, off, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	off, err = FindSync(data, off)
	if err != nil {
		return nil, err
	}

	res := &Result{Header: h, Buffer: frame.NewBuffer()}
	var far FAR
	var cmd regs.Cmd
	sawCRC := false
	fdriPos := 0
	framesWritten := 0

	for off < len(data) {
		op, reg, words, n, err := decodePacket(data, off)
		if err != nil {
			return nil, err
		}
		off += n
		if op == opNoop {
			continue
		}

		res.Actions = append(res.Actions, RegAction{Op: op, Reg: reg, Data: words})

		switch reg {
		case regs.CRC:
			sawCRC = true
		case regs.FAR_MAJ:
			if len(words) == 0 {
				return nil, xc6err.Malformedf(int64(off), "FAR_MAJ write with no data")
			}
			v := words[0]
			far.Block = int((v >> 31) & 1)
			far.Row = int((v >> 26) & 0x1F)
			far.Major = int((v >> 18) & 0xFF)
			far.Minor = 0
			fdriPos = farPos(far)
		case regs.CMD:
			if len(words) > 0 {
				cmd = regs.Cmd(words[0])
			}
			if cmd.String() == "CMD(?)" {
				res.Warnings = append(res.Warnings, fmt.Errorf("offset %d: unknown CMD value %d", off, words[0]))
			}
			if cmd == regs.CmdLFRM || cmd == regs.CmdGRESTORE {
				goto done
			}
		case regs.FDRI:
			if cmd != regs.CmdWCFG {
				continue
			}
			for _, w := range words {
				if isPaddingFramePos(fdriPos, framesWritten) {
					framesWritten++
					continue
				}
				writeFrameWord(res.Buffer, fdriPos, w)
				fdriPos += 4
				framesWritten++
			}
		}
	}
done:
	if !sawCRC {
		res.Warnings = append(res.Warnings, fmt.Errorf("bitstream never wrote the CRC register"))
	}
	if off < len(data) {
		res.Warnings = append(res.Warnings, fmt.Errorf("%d trailing byte(s) after the packet stream ended", len(data)-off))
	}
	return res, nil
}

// isPaddingFramePos reports whether the next FDRI write lands on one
// of the two all-0xFF padding frames emitted at major=0,minor=0 of
// every row boundary (every framesWritten%507==0 or ==1, per §4.E).
func isPaddingFramePos(_ int, framesWritten int) bool {
	const framesPerRowWithPadding = xc6parts.FramesPerRow + xc6parts.PaddingFramesPerRow
	wordsPerFrame := xc6parts.FrameSize / 4
	frameIdx := framesWritten / wordsPerFrame
	return frameIdx%framesPerRowWithPadding < xc6parts.PaddingFramesPerRow
}

// writeFrameWord writes one big-endian 32-bit FDRI word into the
// buffer at byte offset pos, if in range.
func writeFrameWord(buf *frame.Buffer, pos int, w uint32) {
	d := buf.Bytes()
	if pos+4 > len(d) {
		return
	}
	binary.BigEndian.PutUint32(d[pos:pos+4], w)
}

// decodePacket decodes one packet (type-1 or type-2) at off, returning
// its opcode, register (if any), data words, and byte length consumed.
func decodePacket(data []byte, off int) (packetOp, regs.Register, []uint32, int, error) {
	if off+4 > len(data) {
		return opNoop, regs.NoReg, nil, len(data) - off, nil
	}
	header := binary.BigEndian.Uint32(data[off : off+4])
	typ := header >> 29

	switch typ {
	case 0:
		// type-0 / NOOP word.
		return opNoop, regs.NoReg, nil, 4, nil
	case 1:
		opcode := (header >> 27) & 0x3
		reg := regs.Register((header >> 13) & 0x3FFF)
		wordCount := int(header & 0x7FF)
		words, err := readWords(data, off+4, wordCount)
		if err != nil {
			return opNoop, regs.NoReg, nil, len(data) - off, err
		}
		return opFromCode(opcode), reg, words, 4 + wordCount*4, nil
	case 2:
		opcode := (header >> 27) & 0x3
		if off+8 > len(data) {
			return opNoop, regs.NoReg, nil, len(data) - off, xc6err.Malformedf(int64(off), "truncated type-2 packet header")
		}
		wordCount := int(binary.BigEndian.Uint32(data[off+4:off+8]) & 0x07FFFFFF)
		// type-2 carries the register address from the most recent
		// type-1 packet; the caller (Parse's loop) only needs this
		// for FDRI continuation, so that's what we report here.
		words, err := readWords(data, off+8, wordCount)
		if err != nil {
			return opNoop, regs.NoReg, nil, len(data) - off, err
		}
		return opFromCode(opcode), regs.FDRI, words, 8 + wordCount*4, nil
	default:
		return opNoop, regs.NoReg, nil, 4, xc6err.Malformedf(int64(off), "unknown packet type %d", typ)
	}
}

func opFromCode(opcode uint32) packetOp {
	switch opcode {
	case 1:
		return opRead
	case 2:
		return opWrite
	default:
		return opNoop
	}
}

func readWords(data []byte, bodyOff, wordCount int) ([]uint32, error) {
	need := wordCount * 4
	if bodyOff+need > len(data) {
		return nil, xc6err.Malformedf(int64(bodyOff), "packet body truncated: need %d bytes", need)
	}
	words := make([]uint32, wordCount)
	for i := 0; i < wordCount; i++ {
		words[i] = binary.BigEndian.Uint32(data[bodyOff+i*4 : bodyOff+i*4+4])
	}
	return words, nil
}
