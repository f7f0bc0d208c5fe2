// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package parser decodes the vendor's framed, packet-oriented
// configuration bitstream: the ASCII header, the type-1/type-2
// packet stream, the FAR state machine, and FDRI frame streaming
// into a frame.Buffer.
package parser

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/regs"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/diskio"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
)

// Header is the decoded ASCII preamble: 13-byte magic, four
// length-prefixed strings keyed 'a'..'d' (design name, part name,
// date, time), and the key-'e' data-length field.
type Header struct {
	Fields   map[byte]string // keys 'a'..'d'
	DataLen  uint32          // key 'e' length field
}

const magicLen = 13

// ParseHeader reads the header from the start of data and returns it
// along with the offset of the byte immediately following the key-'e'
// length field (where 0xFF padding and then the sync word follow).
func ParseHeader(data []byte) (*Header, int, error) {
	if len(data) < magicLen {
		return nil, 0, xc6err.Malformedf(0, "bitstream shorter than %d-byte magic", magicLen)
	}
	off := magicLen
	h := &Header{Fields: map[byte]string{}}

	for _, want := range []byte{'a', 'b', 'c', 'd'} {
		if off >= len(data) {
			return nil, 0, xc6err.Malformedf(int64(off), "truncated header before key %q", want)
		}
		key := data[off]
		off++
		if key != want {
			return nil, 0, xc6err.Malformedf(int64(off-1), "expected header key %q, got %q", want, key)
		}
		if off+2 > len(data) {
			return nil, 0, xc6err.Malformedf(int64(off), "truncated header length for key %q", key)
		}
		n := int(binary.BigEndian.Uint16(data[off : off+2]))
		off += 2
		if off+n > len(data) {
			return nil, 0, xc6err.Malformedf(int64(off), "header field %q length %d exceeds buffer", key, n)
		}
		h.Fields[key] = string(bytes.TrimRight(data[off:off+n], "\x00"))
		off += n
	}

	if off >= len(data) || data[off] != 'e' {
		return nil, 0, xc6err.Malformedf(int64(off), "expected header key 'e'")
	}
	off++
	if off+4 > len(data) {
		return nil, 0, xc6err.Malformedf(int64(off), "truncated key 'e' length field")
	}
	h.DataLen = binary.BigEndian.Uint32(data[off : off+4])
	off += 4

	return h, off, nil
}

// FindSync locates the sync word in data starting at or after
// searchFrom, skipping any 0xFF padding bytes that precede it.
func FindSync(data []byte, searchFrom int) (int, error) {
	offsets, err := diskio.FindAll(bytes.NewReader(data[searchFrom:]), regs.SyncWord[:])
	if err != nil {
		return 0, fmt.Errorf("searching for sync word: %w", err)
	}
	if len(offsets) == 0 {
		return 0, xc6err.Malformedf(int64(searchFrom), "sync word %x not found", regs.SyncWord)
	}
	return searchFrom + int(offsets[0]) + len(regs.SyncWord), nil
}
