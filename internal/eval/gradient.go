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
)

// Gradient holds the float-valued accumulator used by the training loop:
// one cell per pattern-table entry, matching Evaluator's layout exactly.
type Gradient struct {
	FeatureParameters[float32]
}

// Add adds gradient to every pattern instance's indexed cell for board.
func (g *Gradient) Add(board Board, gradient float32) {
	extractAdd(board, &g.FeatureParameters, gradient)
}

// Symmetrize sums gradient contributions from symmetric pattern instances
// into both of their cells.
func (g *Gradient) Symmetrize() {
	symmetrize(&g.FeatureParameters, func(a, b float32) float32 { return a + b })
}
