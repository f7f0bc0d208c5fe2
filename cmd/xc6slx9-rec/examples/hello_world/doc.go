// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package hello_world is a placeholder for the simplest example
// design: a handful of LOGIC tiles tying their outputs to constant
// values, compiled with `xc6slx9-rec encode` and loaded onto real
// hardware with a JTAG programmer. Out of scope here (no board, no
// JTAG loader in this repository) — a real version of this package
// would build an fpConfig value by hand and call emit.EmitLogic
// directly, the way encode.go does from a JSON file.
package hello_world
