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

// Package types holds the bitboard-level primitives shared by every other
// package: Square, Bitboard, Direction, Disk and Score.

// Direction is one of the eight rays a disc flip can travel along.
type Direction int8

const (
	LeftUp Direction = iota
	Up
	RightUp
	Left
	Right
	LeftDown
	Down
	RightDown
)

// Square is a board cell in 0..63 (raw = y*8+x) or Invalid (-1).
type Square int8

// Invalid marks "no square" - used for move-not-found / pass sentinels.
const Invalid Square = -1

// SquareBegin/SquareEnd bound the iteration range 0..63 used throughout the
// engine ("for sq := SquareBegin; sq != SquareEnd; sq++").
const (
	SquareBegin Square = 0
	SquareEnd   Square = 64
)

// NewSquare builds a Square from 0-based file/rank coordinates.
func NewSquare(x, y int8) Square {
	return Square(y*8 + x)
}

// X returns the 0-based file (column) of the square.
func (s Square) X() int8 {
	return int8(s) % 8
}

// Y returns the 0-based rank (row) of the square.
func (s Square) Y() int8 {
	return int8(s) / 8
}

// IsInvalid reports whether s is the Invalid sentinel.
func (s Square) IsInvalid() bool {
	return s == Invalid
}

// IsWall reports whether moving one more step from s in the given direction
// would leave the board. Backed by a pre-tabulated lookup (see dirWall below).
func (s Square) IsWall(dir Direction) bool {
	return dirWall[dir][s]
}

// Dir returns the neighboring square in the given direction. The result is
// only meaningful when s.IsWall(dir) is false for the square being walked
// from - callers must check the wall before stepping, not after.
func (s Square) Dir(dir Direction) Square {
	return Square(int8(s) + dirDelta[dir])
}

// String renders the square in algebraic form, e.g. "f5". Returns "-" for
// the Invalid sentinel.
func (s Square) String() string {
	if s < SquareBegin || s >= SquareEnd {
		return "-"
	}
	return squareStrings[s]
}

var dirDelta = [8]int8{
	LeftUp: -9, Up: -8, RightUp: -7,
	Left: -1, Right: 1,
	LeftDown: 7, Down: 8, RightDown: 9,
}

var squareStrings = func() [64]string {
	var out [64]string
	files := "abcdefgh"
	for sq := 0; sq < 64; sq++ {
		file := files[sq%8]
		rank := byte('1' + sq/8)
		out[sq] = string([]byte{file, rank})
	}
	return out
}()

// dirWall[dir][sq] is true when sq sits on the board edge that a step in
// dir would cross. Mirrors the teacher's pre-tabulated attack/edge tables
// (internal/types/magic.go's per-square ray boundaries) adapted to
// Reversi's eight flat directions instead of sliding-piece rays.
var dirWall = func() [8][64]bool {
	var w [8][64]bool
	for sq := 0; sq < 64; sq++ {
		x, y := int8(sq%8), int8(sq/8)
		w[LeftUp][sq] = x == 0 || y == 0
		w[Up][sq] = y == 0
		w[RightUp][sq] = x == 7 || y == 0
		w[Left][sq] = x == 0
		w[Right][sq] = x == 7
		w[LeftDown][sq] = x == 0 || y == 7
		w[Down][sq] = y == 7
		w[RightDown][sq] = x == 7 || y == 7
	}
	return w
}()
