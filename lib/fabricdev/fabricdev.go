// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package fabricdev holds the per-device-kind configuration payloads
// referenced by a fabricmodel.Device. Each exported struct is the
// tagged-union arm for one fabricmodel.DeviceKind; which arm a given
// Device.Payload holds is determined by its Device.Kind.
package fabricdev

// IOB is an input/output buffer's configuration: I/O standard,
// drive/slew, termination, and the bypass/input muxing the vendor
// tools expose per ug381.
type IOB struct {
	Subtype   string // "M" (master), "S" (slave), or "" (ordinary)
	IStandard string
	OStandard string
	BypassMux string
	IMux      string
	Drive     int
	Slew      string
	Suspend   string
	InTerm    string
	OutTerm   string
	OUsed     bool

	PinO, PinT, PinI  int // pin connection-point indices, -1 if unused
	PinDiffO, PinDiffI int
}

// Logic is an LUT-based logic slice's configuration (LOGIC_XL or
// LOGIC_XM), one per physical slice instance ("A"/"B" position
// pairs collapse to one Logic device per the vendor's SLICEM/SLICEL
// naming, here just keyed by TypeIndex on the owning tile).
type Logic struct {
	Subtype string // "M", "L", or "X" (LOGIC_XM's extra X-slice)

	// LUTEquation[i] is the boolean expression (lutexpr syntax) for
	// LUT position i (0=A .. 3=D for the M/L slice, 4=X's own A..D
	// when Subtype=="X" reuses the same 4 slots).
	LUTEquation [4]string

	FF      [4]bool
	FFMux   [4]string
	FFSRInit [4]string
	CY0     [4]string

	ClkInv     bool
	SyncAttr   string
	PreCYInit  string
	CoutUsed   bool
	AUsed      bool
	BUsed      bool
	CUsed      bool
	DUsed      bool

	PinCLK, PinSR, PinCE int
}

// BRAM16 and BRAM8 are the two widths of block-RAM primitive found on
// a BRAM tile (BRAM16 backed by two cascaded BRAM8 halves on some
// dies; on the XC6SLX9 a BRAM tile hosts one BRAM16 instance).
type BRAM16 struct {
	DataWidthA, DataWidthB int
	WriteModeA, WriteModeB string
}

type BRAM8 struct {
	DataWidth  int
	WriteMode  string
}

// MACC is the DSP48A1-equivalent multiply/accumulate primitive.
type MACC struct {
	CReg, PReg, MReg bool
	CarryInSel       string
	OpMode            string
}

// PLL and DCM are the clock management primitives present once per
// chip half, at the top/bottom center columns.
type PLL struct {
	DivideClkIn   int
	Multiply      int
	Divide        int
	Compensation  string
}

type DCM struct {
	ClkFXDivide, ClkFXMultiply int
	ClkFeedback                string
	DFSFrequencyMode           string
}

// BUFG, BUFIO, BUFH, BUFPLL are clock buffer/distribution devices;
// they carry no configuration state of their own beyond "instanced
// at this tile", so the struct is a location marker.
type BUFG struct{}
type BUFIO struct{}
type BUFH struct{}
type BUFPLL struct {
	Divide int
}

// IODELAY, ILOGIC, OLOGIC are the IO-adjacent serialization/delay
// primitives (ISERDES2/OSERDES2/IODELAY2 equivalents).
type IODELAY struct {
	IDelayType  string
	IDelayValue int
}

type ILOGIC struct {
	Bypass bool
	DDR    bool
}

type OLOGIC struct {
	Bypass bool
	DDR    bool
}

// TIEOFF, BSCAN, ICAP are fixed single-instance utility primitives.
type TIEOFF struct{}
type BSCAN struct{ UserID int }
type ICAP struct{}
