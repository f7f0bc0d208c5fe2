// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package lutexpr implements the two-way conversion between a LUT's
// 64-bit truth table and the boolean sum-of-products expression
// notation ("A3*A5+~A1") that a bitstream's textual dump uses for
// it: a small recursive-descent parser/evaluator for the expression
// side, and a Quine-McCluskey-style minterm reducer for the truth
// table side.
package lutexpr

import (
	"fmt"
	"strings"
)

// Expr is a parsed boolean expression over the six LUT input
// variables A1..A6.
type Expr interface {
	eval(vars [6]bool) bool
}

// Var is a reference to input variable A(n+1).
type Var int

func (v Var) eval(vars [6]bool) bool { return vars[v] }

type notExpr struct{ x Expr }

func (e *notExpr) eval(vars [6]bool) bool { return !e.x.eval(vars) }

type andExpr struct{ l, r Expr }

func (e *andExpr) eval(vars [6]bool) bool { return e.l.eval(vars) && e.r.eval(vars) }

type orExpr struct{ l, r Expr }

func (e *orExpr) eval(vars [6]bool) bool { return e.l.eval(vars) || e.r.eval(vars) }

type xorExpr struct{ l, r Expr }

func (e *xorExpr) eval(vars [6]bool) bool { return e.l.eval(vars) != e.r.eval(vars) }

// Eval evaluates e against an assignment of A1..A6 (index 0..5).
func Eval(e Expr, vars [6]bool) bool {
	return e.eval(vars)
}

// Parse parses a boolean expression using the operators '+' (or),
// '*' (and), '@' (xor), '~' (not), parentheses, and variables
// A1..A6, with the same grammar and precedence as the reducer that
// produces these strings: '*' binds a left-to-right chain of
// factors; each '+' or '@' splits the expression and recurses on
// everything to its right, so it is weaker than any '*' to its
// left but the right-hand side can itself contain more of either.
func Parse(s string) (Expr, error) {
	p := &parser{s: s}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.i != len(p.s) {
		return nil, fmt.Errorf("lutexpr: unexpected %q at offset %d", s[p.i:], p.i)
	}
	return e, nil
}

type parser struct {
	s string
	i int
}

func (p *parser) expr() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.i < len(p.s) {
		switch p.s[p.i] {
		case '+':
			p.i++
			right, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &orExpr{left, right}, nil
		case '@':
			p.i++
			right, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &xorExpr{left, right}, nil
		case '*':
			p.i++
			right, err := p.factor()
			if err != nil {
				return nil, err
			}
			left = &andExpr{left, right}
		default:
			return left, nil
		}
	}
	return left, nil
}

func (p *parser) factor() (Expr, error) {
	negate := false
	if p.i < len(p.s) && p.s[p.i] == '~' {
		negate = true
		p.i++
	}
	if p.i >= len(p.s) {
		return nil, fmt.Errorf("lutexpr: unexpected end of expression")
	}
	var e Expr
	switch {
	case p.s[p.i] == '(':
		p.i++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.i >= len(p.s) || p.s[p.i] != ')' {
			return nil, fmt.Errorf("lutexpr: unclosed paren at offset %d", p.i)
		}
		p.i++
		e = inner
	case p.s[p.i] == 'A':
		p.i++
		if p.i >= len(p.s) || p.s[p.i] < '1' || p.s[p.i] > '6' {
			return nil, fmt.Errorf("lutexpr: expected A1..A6 at offset %d", p.i)
		}
		e = Var(p.s[p.i] - '1')
		p.i++
	default:
		return nil, fmt.Errorf("lutexpr: unexpected %q at offset %d", p.s[p.i:], p.i)
	}
	if negate {
		e = &notExpr{e}
	}
	return e, nil
}

// mintermVars computes the per-variable polarity for truth-table row
// i, starting from the LUT position's logic-base polarities and
// flipping each variable whose bit is set in i — except bit 2 (A3),
// which instead is forced to 1 whenever bits 2 and 3 (A3, A4)
// disagree, and bit 0 (A1) which is additionally flipped when
// flipB0 is set and A3/A4 disagree. This mirrors the fixed wiring
// between a LUT's configuration bit order and its logical inputs.
func mintermVars(i int, base [6]int, flipB0 bool) [6]bool {
	v := base
	for j := 0; j < 6; j++ {
		if j != 2 && i&(1<<j) != 0 {
			v[j] = 1 - v[j]
		}
	}
	if ((i&8 != 0) != (i&4 != 0)) {
		v[2] = 1
	}
	if flipB0 && (v[2]^v[3] != 0) {
		v[0] = 1 - v[0]
	}
	var out [6]bool
	for j := 0; j < 6; j++ {
		out[j] = v[j] != 0
	}
	return out
}

// CompileToLUT evaluates expr at every row of a truth table of the
// given width (64 for a 6-input LUT, 32 for a 5-input LUT) and packs
// the results into the low bits bits-width of the returned value.
func CompileToLUT(expr Expr, bits int, base [6]int, flipB0 bool) uint64 {
	var lut uint64
	for i := 0; i < bits; i++ {
		if Eval(expr, mintermVars(i, base, flipB0)) {
			lut |= 1 << uint(i)
		}
	}
	return lut
}

// ParseBoolExpr parses expr and compiles it into a 64-row truth
// table under the given logic base and flip_b0 parameter. It is the
// inverse of LUT2Bool.
func ParseBoolExpr(expr string, base [6]int, flipB0 bool) (uint64, error) {
	e, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return CompileToLUT(e, 64, base, flipB0), nil
}

type minterm struct {
	a      [6]int8 // 0, 1, or 2 ("don't care" / merged-out)
	merged bool
}

// LUT2Bool reduces a truth table to a sum-of-products boolean
// expression string over A1..A6, using Quine-McCluskey-style
// iterative minterm merging across seven size classes (1, 2, 4, 8,
// 16, 32, 64). bits is the table width actually populated (64 for a
// 6-input LUT, 32 for a 5-input one); base and flipB0 are the LUT
// position's logic-base polarity vector and flip_b0 parameter, and
// must match the values used to originally compile the table or the
// round trip will not reproduce the same minterms.
func LUT2Bool(lut uint64, bits int, base [6]int, flipB0 bool) string {
	var mt [7][]minterm

	for i := 0; i < bits; i++ {
		if lut&(1<<uint(i)) == 0 {
			continue
		}
		vars := mintermVars(i, base, flipB0)
		var a [6]int8
		for j, v := range vars {
			if v {
				a[j] = 1
			}
		}
		mt[0] = append(mt[0], minterm{a: a})
	}

	if len(mt[0]) == 0 {
		return ""
	}

	for round := 1; round < 7; round++ {
		prev := mt[round-1]
		for i := range prev {
			for j := i + 1; j < len(prev); j++ {
				onlyDiff := -1
				for k := 0; k < 6; k++ {
					if prev[i].a[k] != prev[j].a[k] {
						if onlyDiff != -1 {
							onlyDiff = -1
							break
						}
						onlyDiff = k
					}
				}
				if onlyDiff == -1 {
					continue
				}
				newTerm := prev[i].a
				newTerm[onlyDiff] = 2

				found := false
				for _, existing := range mt[round] {
					if existing.a == newTerm {
						found = true
						break
					}
				}
				if !found {
					mt[round] = append(mt[round], minterm{a: newTerm})
				}
				prev[i].merged = true
				prev[j].merged = true
			}
		}
	}

	allDontCare := [6]int8{2, 2, 2, 2, 2, 2}
	for _, m := range mt[6] {
		if m.a == allDontCare {
			return "A6+~A6"
		}
	}

	var out strings.Builder
	for round := 0; round < 7; round++ {
		for _, m := range mt[round] {
			if m.merged {
				continue
			}
			if out.Len() > 0 {
				out.WriteByte('+')
			}
			first := true
			for j := 0; j < 6; j++ {
				if m.a[j] == 2 {
					continue
				}
				if !first {
					out.WriteByte('*')
				}
				if m.a[j] == 0 {
					out.WriteByte('~')
				}
				fmt.Fprintf(&out, "A%d", j+1)
				first = false
			}
		}
	}
	return out.String()
}
