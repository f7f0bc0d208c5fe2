// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package jtag_counter is a placeholder for an example design that
// reads a counter value back out over JTAG, the step that would
// exercise a BSCAN device (see fabricdev.BSCAN) and an external
// mini-jtag-style loader. Out of scope here: this repository builds
// and reads bitstreams, it does not implement a JTAG transport.
package jtag_counter
