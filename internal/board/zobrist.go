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

package board

// zobristTable holds 32 tables of 16 u64 constants, one per nibble (4-bit
// window) of the black and white bitboards (16 nibbles each). GetHash XORs
// all 32 lookups together; it intentionally does not fold in side-to-move
// (see DESIGN.md).
var zobristTable [32][16]uint64

var initialized = false

func init() {
	if !initialized {
		initZobrist()
		initialized = true
	}
}

// initZobrist fills zobristTable with a fixed, reproducible sequence so that
// hashes stay stable across runs and processes - required for the
// transposition table to be meaningful at all.
func initZobrist() {
	r := newRandom(1070372)
	for t := 0; t < 32; t++ {
		for n := 0; n < 16; n++ {
			zobristTable[t][n] = r.rand64()
		}
	}
}
