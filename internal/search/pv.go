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

package search

import (
	"strings"

	. "github.com/sunfish-shogi/beluga/internal/types"
)

// maxPlies bounds a principal variation: a Reversi game never exceeds 60
// plies (four squares are filled before the first move).
const maxPlies = 60

// PV is a principal variation: an ordered sequence of moves, value-copied
// by assignment.
type PV struct {
	moves  [maxPlies]Square
	length int
}

// Clear empties the line.
func (p *PV) Clear() {
	p.length = 0
}

// Set makes p read first followed by child's moves, truncating silently if
// the combined line would overflow maxPlies (it never does in practice).
func (p *PV) Set(first Square, child PV) {
	p.moves[0] = first
	n := copy(p.moves[1:], child.moves[:child.length])
	p.length = 1 + n
}

// Moves returns the line as a slice sharing no memory with p.
func (p PV) Moves() []Square {
	out := make([]Square, p.length)
	copy(out, p.moves[:p.length])
	return out
}

// Len returns the number of moves in the line.
func (p PV) Len() int {
	return p.length
}

// At returns the i-th move of the line.
func (p PV) At(i int) Square {
	return p.moves[i]
}

func (p PV) String() string {
	var sb strings.Builder
	for i := 0; i < p.length; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.moves[i].String())
	}
	return sb.String()
}
