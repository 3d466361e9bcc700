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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64 bit set, one bit per square, raw index = y*8+x.
type Bitboard uint64

// maskCol1to7/maskCol2to8 erase the file that a horizontal or diagonal shift
// would otherwise wrap around the board edge into.
const (
	maskCol1to7 Bitboard = 0x7f7f7f7f7f7f7f7f // drops file h - used after a Left-ish shift
	maskCol2to8 Bitboard = 0xfefefefefefefefe // drops file a - used after a Right-ish shift
)

// Bb returns the single-bit Bitboard for the square.
func (s Square) Bb() Bitboard {
	return Bitboard(1) << uint(s)
}

// Count returns the number of set bits.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// Get reports whether s is set in b.
func (b Bitboard) Get(s Square) bool {
	return b&s.Bb() != 0
}

// Set returns b with s set.
func (b Bitboard) Set(s Square) Bitboard {
	return b | s.Bb()
}

// Unset returns b with s cleared.
func (b Bitboard) Unset(s Square) Bitboard {
	return b &^ s.Bb()
}

// Pick removes and returns the lowest-indexed square set in *b, or Invalid if
// b is empty. Isolates the lsb with b & -b and clears it with b & (b-1)
// rather than scanning bit by bit.
func (b *Bitboard) Pick() Square {
	if *b == 0 {
		return Invalid
	}
	low := *b & (-*b)
	*b &= *b - 1
	return Square(bits.TrailingZeros64(uint64(low)))
}

// The eight directional shifts move every set bit one square in the given
// direction, masking off the file a bit would otherwise wrap into.
func (b Bitboard) Up() Bitboard        { return b >> 8 }
func (b Bitboard) Down() Bitboard      { return b << 8 }
func (b Bitboard) Left() Bitboard      { return (b >> 1) & maskCol1to7 }
func (b Bitboard) Right() Bitboard     { return (b << 1) & maskCol2to8 }
func (b Bitboard) LeftUp() Bitboard    { return (b >> 9) & maskCol1to7 }
func (b Bitboard) RightUp() Bitboard   { return (b >> 7) & maskCol2to8 }
func (b Bitboard) LeftDown() Bitboard  { return (b << 7) & maskCol1to7 }
func (b Bitboard) RightDown() Bitboard { return (b << 9) & maskCol2to8 }

// Shift dispatches to the directional shift named by dir.
func (b Bitboard) Shift(dir Direction) Bitboard {
	switch dir {
	case LeftUp:
		return b.LeftUp()
	case Up:
		return b.Up()
	case RightUp:
		return b.RightUp()
	case Left:
		return b.Left()
	case Right:
		return b.Right()
	case LeftDown:
		return b.LeftDown()
	case Down:
		return b.Down()
	case RightDown:
		return b.RightDown()
	}
	return b
}

// String renders b as an 8x8 grid, rank 1 first, '.' empty / 'X' set.
func (b Bitboard) String() string {
	var sb strings.Builder
	for y := int8(0); y < 8; y++ {
		for x := int8(0); x < 8; x++ {
			if b.Get(NewSquare(x, y)) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
