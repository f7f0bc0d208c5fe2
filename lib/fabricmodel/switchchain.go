// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package fabricmodel

import (
	"git.lukeshu.com/xc6slx9-progs-ng/lib/containers"
	"git.lukeshu.com/xc6slx9-progs-ng/lib/xc6err"
)

// ChainDirection selects which side of a switch is matched against
// the chain's current endpoint: ChainFromTo walks from a switch's
// From side toward its To side, ChainToFrom the reverse. The codec
// maps catalogue entries back to switch indices by (from,to) lookup,
// which relies on this direction convention staying fixed.
type ChainDirection int

const (
	ChainFromTo ChainDirection = iota
	ChainToFrom
)

// NoSwitch mirrors the original model's NO_SWITCH sentinel: no
// switch in a tile matches the endpoint being searched for.
const NoSwitch = -1

// MaxChainDepth is the hard ceiling on how many switches a single
// chain may accumulate before EnumerateSwitchChains gives up with an
// Exhausted error, per §4.D/§7.
const MaxChainDepth = 32

func switchNear(s Switch, dir ChainDirection) int {
	if dir == ChainFromTo {
		return s.From()
	}
	return s.To()
}

func switchFar(s Switch, dir ChainDirection) int {
	if dir == ChainFromTo {
		return s.To()
	}
	return s.From()
}

// EnumerateSwitchChains performs the DFS chain traversal of §4.D/§7
// over tile t's switches, starting at connection-point index cp and
// walking in direction dir. Every switch whose near endpoint matches
// the current chain's last (or starting) endpoint is a candidate:
// each candidate is first returned as a chain of its own (the "first
// round", sibling switches out of the current endpoint), and then —
// unless its far endpoint would close a cycle — is descended into for
// longer chains (the "second round"), matching fpga_switch_chain_enum's
// first_round discipline, which the codec depends on to recover a
// stable sibling order when mapping catalogue entries back to switch
// indices.
//
// Cycle detection compares each candidate's far endpoint against
// every endpoint already on the current chain (the starting cp and
// every switch's near endpoint visited so far, per control.c's "don't
// fall into endless recursion" check): a cycling candidate is still
// returned as a one-step-longer chain, but the walk does not descend
// past it.
//
// A cp with no matching switch at all returns (nil, nil) — the
// NO_SWITCH case: no error, just nothing found. Exceeding
// MaxChainDepth is a hard failure, since it almost certainly means a
// cycle evaded detection rather than a legitimately long chain.
func EnumerateSwitchChains(t *Tile, cp int, dir ChainDirection) ([][]int, error) {
	var out [][]int
	visited := containers.NewSet(cp)
	if err := enumerateChains(t, dir, cp, nil, visited, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func enumerateChains(t *Tile, dir ChainDirection, cp int, stack []int, visited containers.Set[int], out *[][]int) error {
	if len(stack) >= MaxChainDepth {
		return xc6err.Exhaustedf("switch chain depth exceeded %d", MaxChainDepth)
	}
	first := len(*out)
	for i, sw := range t.Switches {
		if switchNear(sw, dir) != cp {
			continue
		}

		chain := make([]int, len(stack)+1)
		copy(chain, stack)
		chain[len(stack)] = i
		*out = append(*out, chain)
	}
	for _, chain := range (*out)[first:] {
		far := switchFar(t.Switches[chain[len(chain)-1]], dir)
		if visited.Has(far) {
			continue // cycle: the edge is reported above, don't descend past it
		}
		visited.Insert(far)
		if err := enumerateChains(t, dir, far, chain, visited, out); err != nil {
			return err
		}
		visited.Delete(far) // backtrack: a sibling branch may reuse this endpoint
	}
	return nil
}
