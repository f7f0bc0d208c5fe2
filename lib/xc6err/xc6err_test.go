// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package xc6err_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
)

func TestMalformedfFormatsOffset(t *testing.T) {
	t.Parallel()
	err := xc6err.Malformedf(0x1234, "bad magic %x", 0xdead)
	assert.Contains(t, err.Error(), "0x1234")
	assert.Contains(t, err.Error(), "bad magic dead")
	assert.True(t, xc6err.Is(err, xc6err.Malformed))
	assert.False(t, xc6err.Is(err, xc6err.Unsupported))
}

func TestWrapUnwraps(t *testing.T) {
	t.Parallel()
	cause := errors.New("eof")
	err := xc6err.Exhaustedf("interner full").Wrap(cause)
	assert.ErrorIs(t, err, cause)
}

func TestInvariantfIncludesTile(t *testing.T) {
	t.Parallel()
	err := xc6err.Invariantf(3, 7, "duplicate switch")
	assert.Contains(t, err.Error(), "y=3")
	assert.Contains(t, err.Error(), "x=7")
	assert.True(t, xc6err.Is(err, xc6err.Invariant))
}
