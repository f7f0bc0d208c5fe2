// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"bufio"
	"context"
	"io"
	"os"

	"git.lukeshu.com/go/lowmemjson"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/fabricmodel/builder"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/streamio"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6parts"
)

func errUnsupportedPart(part string) error {
	return xc6err.Unsupportedf("part %q: only xc6slx9 is supported", part)
}

// readJSONFile decodes filename as a single JSON value of type T,
// reporting read progress and honoring ctx cancellation the way the
// `decode`/`encode` subcommands' dgroup goroutine expects for any
// long-running I/O.
func readJSONFile[T any](ctx context.Context, filename string) (T, error) {
	var zero T
	fh, err := os.Open(filename)
	if err != nil {
		return zero, err
	}
	rs, err := streamio.NewRuneScanner(ctx, fh)
	if err != nil {
		fh.Close()
		return zero, err
	}
	defer rs.Close()
	var ret T
	if err := lowmemjson.DecodeThenEOF(rs, &ret); err != nil {
		return zero, err
	}
	return ret, nil
}

func writeJSONFile(w io.Writer, obj any) (err error) {
	buffer := bufio.NewWriter(w)
	defer func() {
		if _err := buffer.Flush(); err == nil && _err != nil {
			err = _err
		}
	}()
	cfg := lowmemjson.ReEncoderConfig{
		Out:                   buffer,
		Indent:                "\t",
		ForceTrailingNewlines: true,
	}
	return lowmemjson.Encode(&cfg, obj)
}

// buildEmptyModel constructs and populates the XC6SLX9's fabric
// model: the tile grid, then every device/port/wire/switch the
// builder knows how to stamp.
func buildEmptyModel() (*fabricmodel.Model, error) {
	m, err := fabricmodel.NewModel(xc6parts.NumConfigRows, xc6parts.Columns, xc6parts.LeftWiring, xc6parts.RightWiring)
	if err != nil {
		return nil, err
	}
	if err := builder.Build(m); err != nil {
		return nil, err
	}
	return m, nil
}
