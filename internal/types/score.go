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

// Score is a 16-bit signed evaluation unit. One disc is worth ScoreScale
// points, so a disc-difference score is diff*ScoreScale.
type Score int16

const (
	// ScoreScale is the number of Score units per disc.
	ScoreScale Score = 100
	// ScoreInfinity bounds every legal search score; used to seed alpha/beta
	// and to pin the TT move during move ordering.
	ScoreInfinity Score = 100 * ScoreScale
	// ScoreZero is the neutral/draw score.
	ScoreZero Score = 0
)

// Neg returns the negated score, used when flipping perspective between
// plies in a negamax-style search.
func (s Score) Neg() Score {
	return -s
}
