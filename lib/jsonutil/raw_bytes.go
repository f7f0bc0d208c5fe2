// Copyright (C) 2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package jsonutil

import (
	"bytes"
	"io"

	"git.lukeshu.com/go/lowmemjson"
)

// RawBytes is a []byte that (de)serializes to/from JSON as a hex
// string rather than lowmemjson's default base64, for fields that
// get eyeballed in diagnostic output (bitstream magic bytes, raw
// register tails) where hex matches how datasheets and other tools
// already print them.
type RawBytes []byte

var (
	_ lowmemjson.Encodable = RawBytes(nil)
	_ lowmemjson.Decodable = (*RawBytes)(nil)
)

func (b RawBytes) EncodeJSON(w io.Writer) error {
	return EncodeHexString(w, []byte(b))
}

func (b *RawBytes) DecodeJSON(r io.RuneScanner) error {
	var buf bytes.Buffer
	if err := DecodeHexString(r, &buf); err != nil {
		return err
	}
	*b = buf.Bytes()
	return nil
}
