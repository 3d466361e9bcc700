//
// beluga - a Reversi (Othello) playing engine
//
// MIT License
//
// Copyright (c) 2020-2026 the beluga authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package tt implements the search's transposition table: a fixed-size,
// direct-mapped, always-replace-with-depth-heuristic cache of previously
// searched positions.
//
// A TT is owned exclusively by one Searcher; it is never shared across
// concurrent searches (see internal/search).
package tt

import (
	"math"
	"unsafe"

	. "github.com/sunfish-shogi/beluga/internal/types"
)

// Type is the kind of bound a stored score represents.
type Type int8

const (
	Upper Type = iota
	Lower
	Actual
)

// Entry is one transposition table slot.
type Entry struct {
	Hash     uint64
	Score    Score
	Depth    int
	Type     Type
	BestMove Square
}

const entrySize = uint64(unsafe.Sizeof(Entry{})) // bytes per slot, alignment padding included

// DefaultSize is the table capacity spec.md mandates: 2^20 entries.
const DefaultSize = 1 << 20

// TT is the direct-mapped transposition table.
type TT struct {
	entries []Entry
	mask    uint64
}

// New creates a TT sized to fit within sizeMBytes, rounded down to the
// nearest power of two entry count (at least 1). Every slot's hash is
// initialized to the bitwise complement of its own index so that no real
// board hash can spuriously collide with an empty slot before the first
// store.
func New(sizeMBytes int) *TT {
	sizeBytes := uint64(sizeMBytes) * 1024 * 1024
	n := uint64(1)
	if sizeBytes >= entrySize {
		n = uint64(1) << uint64(math.Floor(math.Log2(float64(sizeBytes)/float64(entrySize))))
	}
	return newSized(n)
}

// NewDefault creates a TT with the spec-mandated 2^20 entries.
func NewDefault() *TT {
	return newSized(DefaultSize)
}

func newSized(n uint64) *TT {
	t := &TT{entries: make([]Entry, n), mask: n - 1}
	for i := range t.entries {
		t.entries[i].Hash = ^uint64(i)
	}
	return t
}

// Probe returns the slot for hash and whether its stored hash matches
// (i.e. whether this is a genuine hit rather than a colliding/empty slot).
func (t *TT) Probe(hash uint64) (*Entry, bool) {
	e := &t.entries[hash&t.mask]
	return e, e.Hash == hash
}

// Store writes hash/score/depth/type/bestMove into its slot, subject to the
// always-replace-with-depth-heuristic policy: overwrite when the slot held
// a different hash (including a still-untouched, complement-initialized
// slot) or when its stored depth is not deeper than the new one.
func (t *TT) Store(hash uint64, score Score, depth int, typ Type, bestMove Square) {
	e := &t.entries[hash&t.mask]
	if e.Hash != hash || e.Depth <= depth {
		e.Hash = hash
		e.Score = score
		e.Depth = depth
		e.Type = typ
		e.BestMove = bestMove
	}
}

// Usable reports whether e's stored score may be returned immediately for a
// probe at (alpha, beta, depth) on a non-PV node, and if so, the score to
// return. isPV must be beta != alpha+1 evaluated by the caller. Each TTType
// case is gated independently - the type enum is not treated as falling
// through between Upper and Lower.
func (e *Entry) Usable(isPV bool, depth int, alpha, beta Score) (Score, bool) {
	if isPV || e.Depth < depth {
		return 0, false
	}
	switch e.Type {
	case Actual:
		return e.Score, true
	case Upper:
		if e.Score <= alpha {
			return e.Score, true
		}
	case Lower:
		if e.Score >= beta {
			return e.Score, true
		}
	}
	return 0, false
}
