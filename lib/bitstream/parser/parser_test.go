// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package parser_test

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/parser"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/bitstream/regs"
)

// type1Write encodes a single type-1 register-write packet: header
// word (type=1, op=write(2), register, word count) then the data
// words, matching the layout writer.go emits.
func type1Write(reg regs.Register, words ...uint32) []byte {
	var buf bytes.Buffer
	header := uint32(1)<<29 | uint32(2)<<27 | (uint32(reg)&0x3FFF)<<13 | uint32(len(words))&0x7FF
	var hdrBuf [4]byte
	binary.BigEndian.PutUint32(hdrBuf[:], header)
	buf.Write(hdrBuf[:])
	for _, w := range words {
		var wb [4]byte
		binary.BigEndian.PutUint32(wb[:], w)
		buf.Write(wb[:])
	}
	return buf.Bytes()
}

func buildMinimalBitstream(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 13))
	for _, f := range []struct {
		key byte
		val string
	}{
		{'a', "design"}, {'b', "6slx9"}, {'c', "2026/07/30"}, {'d', "00:00:00"},
	} {
		buf.WriteByte(f.key)
		s := append([]byte(f.val), 0)
		var lenBuf [2]byte
		binary.BigEndian.PutUint16(lenBuf[:], uint16(len(s)))
		buf.Write(lenBuf[:])
		buf.Write(s)
	}
	buf.WriteByte('e')
	var dataLen [4]byte
	binary.BigEndian.PutUint32(dataLen[:], 0)
	buf.Write(dataLen[:])
	buf.WriteByte(0xFF)
	buf.Write([]byte{0xAA, 0x99, 0x55, 0x66})
	return buf.Bytes()
}

func TestParseHeaderFields(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	h, off, err := parser.ParseHeader(data)
	require.NoError(t, err)
	assert.Equal(t, "design", h.Fields['a'])
	assert.Equal(t, "6slx9", h.Fields['b'])
	assert.Less(t, off, len(data))
}

func TestParseHeaderRejectsBadFieldKey(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	data[13] = 'z' // corrupt the 'a' key
	_, _, err := parser.ParseHeader(data)
	assert.Error(t, err)
}

func TestFindSyncLocatesWord(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	_, off, err := parser.ParseHeader(data)
	require.NoError(t, err)
	syncEnd, err := parser.FindSync(data, off)
	require.NoError(t, err)
	assert.Equal(t, len(data), syncEnd)
}

func TestParseEmptyPacketStream(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	res, err := parser.Parse(data)
	require.NoError(t, err)
	assert.NotNil(t, res.Buffer)
	assert.Empty(t, res.Actions)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Error(), "CRC")
}

func TestParseWarnsOnUnknownCMDAndMissingCRC(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	data = append(data, type1Write(regs.CMD, 0x06)...) // unassigned opcode slot
	data = append(data, type1Write(regs.CMD, uint32(regs.CmdGRESTORE))...)

	res, err := parser.Parse(data)
	require.NoError(t, err)
	require.Len(t, res.Actions, 2)

	var sawUnknownCMD, sawMissingCRC bool
	for _, w := range res.Warnings {
		msg := w.Error()
		if strings.Contains(msg, "unknown CMD") {
			sawUnknownCMD = true
		}
		if strings.Contains(msg, "CRC") {
			sawMissingCRC = true
		}
	}
	assert.True(t, sawUnknownCMD, "expected an unknown-CMD warning, got %v", res.Warnings)
	assert.True(t, sawMissingCRC, "expected a missing-CRC warning, got %v", res.Warnings)
}

func TestParseWarnsOnTrailingBytes(t *testing.T) {
	t.Parallel()
	data := buildMinimalBitstream(t)
	data = append(data, type1Write(regs.CRC, 0)...)
	data = append(data, type1Write(regs.CMD, uint32(regs.CmdGRESTORE))...)
	data = append(data, 0x01, 0x02, 0x03) // trailing garbage past GRESTORE

	res, err := parser.Parse(data)
	require.NoError(t, err)

	var sawTrailing bool
	for _, w := range res.Warnings {
		if strings.Contains(w.Error(), "trailing byte") {
			sawTrailing = true
		}
	}
	assert.True(t, sawTrailing, "expected a trailing-bytes warning, got %v", res.Warnings)
}
