// Copyright (C) 2022-2023  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

// Package wireintern is a content-addressable string table that
// assigns small, stable, dense integer IDs to the wire and
// connection-point names used throughout a fabric model.
//
// Model construction interns the same handful of wire-name shapes
// millions of times as the grid is populated tile-by-tile; collapsing
// them to integers up front turns every later connection-point
// comparison into an integer compare instead of a string compare.
package wireintern

import (
	"fmt"
	"hash/fnv"
)

// ID is a dense identifier for an interned string. The zero value,
// NoEntry, never names a string.
type ID uint32

// NoEntry is the reserved ID meaning "no entry".
const NoEntry ID = 0

// MaxIDs is the hard cap on the number of distinct strings an
// Interner will hold.
const MaxIDs = 1_000_000

const chunkSize = 32 * 1024

const defaultNumBuckets = 4096

// location of one entry within a bucket's chunk data.
type location struct {
	bucket int32
	offset int32
}

// Interner assigns dense IDs in [1, MaxIDs] to byte-strings. It is not
// safe for concurrent use without external synchronization; a built
// Model owns exactly one Interner for its whole lifetime.
type Interner struct {
	buckets [][]byte // bucket index -> length-prefixed (len,bytes,id) entries
	rev     []location
	nextID  ID
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{
		buckets: make([][]byte, defaultNumBuckets),
	}
}

func bucketFor(numBuckets int, s string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int(h.Sum64() % uint64(numBuckets))
}

// growChunked appends extra bytes to data, growing the backing array
// in chunkSize increments instead of Go's usual doubling, per the
// design's "allocate in 32 KiB chunks" rule.
func growChunked(data []byte, extra []byte) []byte {
	need := len(data) + len(extra)
	if cap(data) < need {
		newCap := ((need + chunkSize - 1) / chunkSize) * chunkSize
		grown := make([]byte, len(data), newCap)
		copy(grown, data)
		data = grown
	}
	return append(data, extra...)
}

// encodeEntry lays out one bucket entry as: 1-byte length, name bytes,
// 4-byte big-endian-ish ID (native order is fine; never persisted).
func encodeEntry(s string, id ID) []byte {
	buf := make([]byte, 1+len(s)+4)
	buf[0] = byte(len(s))
	copy(buf[1:], s)
	off := 1 + len(s)
	buf[off] = byte(id >> 24)
	buf[off+1] = byte(id >> 16)
	buf[off+2] = byte(id >> 8)
	buf[off+3] = byte(id)
	return buf
}

func decodeEntryAt(data []byte, off int32) (s string, id ID, entryLen int32) {
	n := int(data[off])
	s = string(data[off+1 : int(off)+1+n])
	idOff := int(off) + 1 + n
	id = ID(data[idOff])<<24 | ID(data[idOff+1])<<16 | ID(data[idOff+2])<<8 | ID(data[idOff+3])
	return s, id, int32(1 + n + 4)
}

// Find returns the ID previously assigned to s, or NoEntry.
func (in *Interner) Find(s string) ID {
	if len(s) > 255 {
		return NoEntry
	}
	b := bucketFor(len(in.buckets), s)
	data := in.buckets[b]
	var off int32
	for int(off) < len(data) {
		name, id, entryLen := decodeEntryAt(data, off)
		if name == s {
			return id
		}
		off += entryLen
	}
	return NoEntry
}

// Add interns s, returning its existing ID if already present, or
// assigning and returning the next dense ID otherwise. Add is
// idempotent.
func (in *Interner) Add(s string) (ID, error) {
	if id := in.Find(s); id != NoEntry {
		return id, nil
	}
	if len(s) > 255 {
		return NoEntry, fmt.Errorf("wireintern: name %q longer than 255 bytes", s)
	}
	if in.nextID+1 > MaxIDs {
		return NoEntry, fmt.Errorf("wireintern: interner full (cap %d)", MaxIDs)
	}
	id := in.nextID + 1
	if err := in.place(s, id); err != nil {
		return NoEntry, err
	}
	in.nextID = id
	return id, nil
}

// Stash binds s to a caller-chosen id, used by catalogues that
// pre-assign enum values to well-known names. It fails if s is already
// interned under a different id, or if id is already bound to a
// different string.
func (in *Interner) Stash(s string, id ID) error {
	if id == NoEntry {
		return fmt.Errorf("wireintern: cannot stash at reserved id 0")
	}
	if existing := in.Find(s); existing != NoEntry {
		if existing == id {
			return nil
		}
		return fmt.Errorf("wireintern: %q already interned as %d, cannot stash as %d", s, existing, id)
	}
	if int(id) <= len(in.rev) && in.rev[id-1].offset >= 0 {
		got, _, _ := decodeEntryAt(in.buckets[in.rev[id-1].bucket], in.rev[id-1].offset)
		return fmt.Errorf("wireintern: id %d already bound to %q, cannot stash %q", id, got, s)
	}
	if err := in.place(s, id); err != nil {
		return err
	}
	if id > in.nextID {
		in.nextID = id
	}
	return nil
}

func (in *Interner) place(s string, id ID) error {
	b := bucketFor(len(in.buckets), s)
	entry := encodeEntry(s, id)
	offset := int32(len(in.buckets[b]))
	in.buckets[b] = growChunked(in.buckets[b], entry)
	if int(id) > len(in.rev) {
		grown := make([]location, id)
		for i := len(in.rev); i < len(grown); i++ {
			grown[i] = location{offset: -1}
		}
		copy(grown, in.rev)
		in.rev = grown
	}
	in.rev[id-1] = location{bucket: int32(b), offset: offset}
	return nil
}

// Lookup returns the string bound to id, or ok=false if no such
// binding exists.
func (in *Interner) Lookup(id ID) (s string, ok bool) {
	if id == NoEntry || int(id) > len(in.rev) {
		return "", false
	}
	loc := in.rev[id-1]
	if loc.offset < 0 {
		return "", false
	}
	data := in.buckets[loc.bucket]
	if int(loc.offset) >= len(data) {
		return "", false
	}
	name, _, _ := decodeEntryAt(data, loc.offset)
	return name, true
}

// Len returns the highest ID assigned so far. Unless Stash has left
// gaps below that ID, this is the number of distinct strings interned.
func (in *Interner) Len() int {
	return int(in.nextID)
}
