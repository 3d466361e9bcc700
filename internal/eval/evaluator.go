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

package eval

import (
	. "github.com/sunfish-shogi/beluga/internal/board"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// Evaluator holds the Score-valued parameter tables used during search.
// Zero value is a valid (all-zero) evaluator.
type Evaluator struct {
	FeatureParameters[Score]
}

// Evaluate returns the sum of every pattern lookup, in the Black-to-move
// convention: callers negate when the side to move is White.
func (e *Evaluator) Evaluate(board Board) Score {
	return extractEval(board, &e.FeatureParameters)
}

// Symmetrize re-folds every symmetric table by keeping the lower-indexed
// cell's value and writing it into its symmetric partner.
func (e *Evaluator) Symmetrize() {
	symmetrize(&e.FeatureParameters, func(a, _ Score) Score { return a })
}
