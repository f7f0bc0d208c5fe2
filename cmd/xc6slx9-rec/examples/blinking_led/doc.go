// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package blinking_led is a placeholder for an example design driving
// an IOB output from a counter built out of LOGIC tiles' FF state,
// the next step up from hello_world once clocking and IOB OUSED
// wiring are involved. Out of scope here for the same reason as
// hello_world: no attached board to blink.
package blinking_led
