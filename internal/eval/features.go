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

// Package eval is the pattern-based static evaluator: eleven dense tables
// indexed by a base-3 Horner encoding of disk state (empty/black/white)
// over a fixed list of squares per pattern instance.
//
// Evaluator (Score-valued, used during search) and Gradient (float-valued,
// used during training) are both FeatureParameters instances sharing the
// same table layout, pattern list, and symmetry-folding machinery.
package eval

import (
	. "github.com/sunfish-shogi/beluga/internal/board"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// Number is the set of cell types a FeatureParameters instance can hold.
type Number interface {
	~int16 | ~float32
}

// Table cell counts, per spec.
const (
	edgeSize      = 59049
	hor2Size      = 6561
	hor3Size      = 6561
	hor4Size      = 6561
	diag8Size     = 6561
	diag7Size     = 2187
	diag6Size     = 729
	diag5Size     = 243
	diag4Size     = 81
	corner3x3Size = 19683
	corner5x2Size = 59049
)

// FeatureParameters is the flat aggregate of all eleven pattern tables.
// Evaluator and Gradient each wrap an instantiation of it.
type FeatureParameters[T Number] struct {
	Edge      [edgeSize]T
	Hor2      [hor2Size]T
	Hor3      [hor3Size]T
	Hor4      [hor4Size]T
	Diag8     [diag8Size]T
	Diag7     [diag7Size]T
	Diag6     [diag6Size]T
	Diag5     [diag5Size]T
	Diag4     [diag4Size]T
	Corner3x3 [corner3x3Size]T
	Corner5x2 [corner5x2Size]T
}

// Tables returns all eleven pattern tables in declared order, as slices
// aliasing fp's backing arrays so callers can mutate cells in place. Used
// by the training pipeline to walk an Evaluator's and a Gradient's tables
// in lockstep.
func (fp *FeatureParameters[T]) Tables() [][]T {
	return [][]T{
		fp.Edge[:], fp.Hor2[:], fp.Hor3[:], fp.Hor4[:], fp.Diag8[:],
		fp.Diag7[:], fp.Diag6[:], fp.Diag5[:], fp.Diag4[:],
		fp.Corner3x3[:], fp.Corner5x2[:],
	}
}

type tableID int

const (
	tEdge tableID = iota
	tHor2
	tHor3
	tHor4
	tDiag8
	tDiag7
	tDiag6
	tDiag5
	tDiag4
	tCorner3x3
	tCorner5x2
)

// tableSlice returns a slice aliasing the named table's backing array, so
// writes through it mutate fp in place.
func tableSlice[T Number](fp *FeatureParameters[T], id tableID) []T {
	switch id {
	case tEdge:
		return fp.Edge[:]
	case tHor2:
		return fp.Hor2[:]
	case tHor3:
		return fp.Hor3[:]
	case tHor4:
		return fp.Hor4[:]
	case tDiag8:
		return fp.Diag8[:]
	case tDiag7:
		return fp.Diag7[:]
	case tDiag6:
		return fp.Diag6[:]
	case tDiag5:
		return fp.Diag5[:]
	case tDiag4:
		return fp.Diag4[:]
	case tCorner3x3:
		return fp.Corner3x3[:]
	case tCorner5x2:
		return fp.Corner5x2[:]
	default:
		panic("eval: unknown table id")
	}
}

// patternSpec is one lookup into a named table: an ordered list of squares
// fed to the base-3 Horner encoding. The orderings below are transcribed
// verbatim (as octal literals, since raw = y*8+x is exactly a two-digit
// base-8 number) from the reference evaluator's extraction list so that the
// ternary code for each cell matches the reference table layout exactly.
var patternSpecs = []struct {
	table   tableID
	squares []Square
}{
	{tEdge, []Square{0o11, 0o00, 0o01, 0o02, 0o03, 0o04, 0o05, 0o06, 0o07, 0o16}},
	{tEdge, []Square{0o61, 0o70, 0o71, 0o72, 0o73, 0o74, 0o75, 0o76, 0o77, 0o66}},
	{tEdge, []Square{0o11, 0o00, 0o10, 0o20, 0o30, 0o40, 0o50, 0o60, 0o70, 0o61}},
	{tEdge, []Square{0o16, 0o07, 0o17, 0o27, 0o37, 0o47, 0o57, 0o67, 0o77, 0o66}},

	{tHor2, []Square{0o10, 0o11, 0o12, 0o13, 0o14, 0o15, 0o16, 0o17}},
	{tHor2, []Square{0o60, 0o61, 0o62, 0o63, 0o64, 0o65, 0o66, 0o67}},
	{tHor2, []Square{0o01, 0o11, 0o21, 0o31, 0o41, 0o51, 0o61, 0o71}},
	{tHor2, []Square{0o06, 0o16, 0o26, 0o36, 0o46, 0o56, 0o66, 0o76}},

	{tHor3, []Square{0o20, 0o21, 0o22, 0o23, 0o24, 0o25, 0o26, 0o27}},
	{tHor3, []Square{0o50, 0o51, 0o52, 0o53, 0o54, 0o55, 0o56, 0o57}},
	{tHor3, []Square{0o02, 0o12, 0o22, 0o32, 0o42, 0o52, 0o62, 0o72}},
	{tHor3, []Square{0o05, 0o15, 0o25, 0o35, 0o45, 0o55, 0o65, 0o75}},

	{tHor4, []Square{0o30, 0o31, 0o32, 0o33, 0o34, 0o35, 0o36, 0o37}},
	{tHor4, []Square{0o40, 0o41, 0o42, 0o43, 0o44, 0o45, 0o46, 0o47}},
	{tHor4, []Square{0o03, 0o13, 0o23, 0o33, 0o43, 0o53, 0o63, 0o73}},
	{tHor4, []Square{0o04, 0o14, 0o24, 0o34, 0o44, 0o54, 0o64, 0o74}},

	{tDiag8, []Square{0o00, 0o11, 0o22, 0o33, 0o44, 0o55, 0o66, 0o77}},
	{tDiag8, []Square{0o70, 0o61, 0o52, 0o43, 0o34, 0o25, 0o16, 0o07}},

	{tDiag7, []Square{0o01, 0o12, 0o23, 0o34, 0o45, 0o56, 0o67}},
	{tDiag7, []Square{0o10, 0o21, 0o32, 0o43, 0o54, 0o65, 0o76}},
	{tDiag7, []Square{0o71, 0o62, 0o53, 0o44, 0o35, 0o26, 0o17}},
	{tDiag7, []Square{0o60, 0o51, 0o42, 0o33, 0o24, 0o15, 0o06}},

	{tDiag6, []Square{0o02, 0o13, 0o24, 0o35, 0o46, 0o57}},
	{tDiag6, []Square{0o20, 0o31, 0o42, 0o53, 0o64, 0o75}},
	{tDiag6, []Square{0o72, 0o63, 0o54, 0o45, 0o36, 0o27}},
	{tDiag6, []Square{0o50, 0o41, 0o32, 0o23, 0o14, 0o05}},

	{tDiag5, []Square{0o03, 0o14, 0o25, 0o36, 0o47}},
	{tDiag5, []Square{0o30, 0o41, 0o52, 0o63, 0o74}},
	{tDiag5, []Square{0o73, 0o64, 0o55, 0o46, 0o37}},
	{tDiag5, []Square{0o40, 0o31, 0o22, 0o13, 0o04}},

	{tDiag4, []Square{0o04, 0o15, 0o26, 0o37}},
	{tDiag4, []Square{0o40, 0o51, 0o62, 0o73}},
	{tDiag4, []Square{0o74, 0o65, 0o56, 0o47}},
	{tDiag4, []Square{0o30, 0o21, 0o12, 0o03}},

	{tCorner3x3, []Square{0o00, 0o01, 0o02, 0o10, 0o11, 0o12, 0o20, 0o21, 0o22}},
	{tCorner3x3, []Square{0o07, 0o06, 0o05, 0o17, 0o16, 0o15, 0o27, 0o26, 0o25}},
	{tCorner3x3, []Square{0o70, 0o71, 0o72, 0o60, 0o61, 0o62, 0o50, 0o51, 0o52}},
	{tCorner3x3, []Square{0o77, 0o76, 0o75, 0o67, 0o66, 0o65, 0o57, 0o56, 0o55}},

	{tCorner5x2, []Square{0o00, 0o01, 0o02, 0o03, 0o04, 0o10, 0o11, 0o12, 0o13, 0o14}},
	{tCorner5x2, []Square{0o07, 0o06, 0o05, 0o04, 0o03, 0o17, 0o16, 0o15, 0o14, 0o13}},
	{tCorner5x2, []Square{0o70, 0o71, 0o72, 0o73, 0o74, 0o60, 0o61, 0o62, 0o63, 0o64}},
	{tCorner5x2, []Square{0o77, 0o76, 0o75, 0o74, 0o73, 0o67, 0o66, 0o65, 0o64, 0o63}},
	{tCorner5x2, []Square{0o00, 0o10, 0o20, 0o30, 0o40, 0o01, 0o11, 0o21, 0o31, 0o41}},
	{tCorner5x2, []Square{0o70, 0o60, 0o50, 0o40, 0o30, 0o71, 0o61, 0o51, 0o41, 0o31}},
	{tCorner5x2, []Square{0o07, 0o17, 0o27, 0o37, 0o47, 0o06, 0o16, 0o26, 0o36, 0o46}},
	{tCorner5x2, []Square{0o77, 0o67, 0o57, 0o47, 0o37, 0o76, 0o66, 0o56, 0o46, 0o36}},
}

// horner computes the base-3 index for squares, where the k-th square in
// the list (0-indexed) contributes at weight 3^k: empty=0, black=1, white=2.
func horner(board Board, squares []Square) int {
	idx := 0
	for k := len(squares) - 1; k >= 0; k-- {
		idx = idx*3 + int(board.Get(squares[k]))
	}
	return idx
}

// decodeDigits splits idx into n base-3 digits, digits[0] at weight 3^0.
func decodeDigits(idx, n int) []int {
	d := make([]int, n)
	for k := 0; k < n; k++ {
		d[k] = idx % 3
		idx /= 3
	}
	return d
}

// encodeDigits is the inverse of decodeDigits.
func encodeDigits(d []int) int {
	idx := 0
	for k := len(d) - 1; k >= 0; k-- {
		idx = idx*3 + d[k]
	}
	return idx
}

// reverseIndex pairs idx with the index obtained by reversing its n-digit
// base-3 representation - the symmetry used by Edge/Hor2/Hor3/Hor4/Diag8/
// Diag7/Diag6/Diag5/Diag4.
func reverseIndex(idx, n int) int {
	d := decodeDigits(idx, n)
	r := make([]int, n)
	for k := 0; k < n; k++ {
		r[k] = d[n-1-k]
	}
	return encodeDigits(r)
}

// transposeIndex3x3 pairs idx with its 3x3-block transpose, the symmetry
// used by Corner3x3: digit at position k swaps with the digit at position
// (k%3)*3+(k/3), treating k as a row-major index into the 3x3 block.
func transposeIndex3x3(idx int) int {
	d := decodeDigits(idx, 9)
	r := make([]int, 9)
	for k := 0; k < 9; k++ {
		r[k] = d[(k%3)*3+(k/3)]
	}
	return encodeDigits(r)
}

// symmetrizeReversal applies combine to every (i, reverseIndex(i)) pair with
// i < reverseIndex(i), writing the result back to both cells.
func symmetrizeReversal[T Number](table []T, n int, combine func(a, b T) T) {
	for i0 := range table {
		i1 := reverseIndex(i0, n)
		if i0 < i1 {
			v := combine(table[i0], table[i1])
			table[i0] = v
			table[i1] = v
		}
	}
}

// symmetrizeTranspose3x3 applies combine to every (i, transposeIndex3x3(i))
// pair with i < transposeIndex3x3(i).
func symmetrizeTranspose3x3[T Number](table []T, combine func(a, b T) T) {
	for i0 := range table {
		i1 := transposeIndex3x3(i0)
		if i0 < i1 {
			v := combine(table[i0], table[i1])
			table[i0] = v
			table[i1] = v
		}
	}
}

// symmetrize re-folds every symmetric table of fp using combine. Corner5x2
// is deliberately excluded - its eight instances already cover both
// orientations, so no two cells of one instance's table are symmetric
// partners of each other.
func symmetrize[T Number](fp *FeatureParameters[T], combine func(a, b T) T) {
	symmetrizeReversal(fp.Edge[:], 10, combine)
	symmetrizeReversal(fp.Hor2[:], 8, combine)
	symmetrizeReversal(fp.Hor3[:], 8, combine)
	symmetrizeReversal(fp.Hor4[:], 8, combine)
	symmetrizeReversal(fp.Diag8[:], 8, combine)
	symmetrizeReversal(fp.Diag7[:], 7, combine)
	symmetrizeReversal(fp.Diag6[:], 6, combine)
	symmetrizeReversal(fp.Diag5[:], 5, combine)
	symmetrizeReversal(fp.Diag4[:], 4, combine)
	symmetrizeTranspose3x3(fp.Corner3x3[:], combine)
}

// extractEval sums (eval mode) and extractAdd adds a gradient into
// (training mode) every pattern instance's indexed cell.
func extractEval[T Number](board Board, fp *FeatureParameters[T]) T {
	var sum T
	for _, p := range patternSpecs {
		table := tableSlice(fp, p.table)
		sum += table[horner(board, p.squares)]
	}
	return sum
}

func extractAdd[T Number](board Board, fp *FeatureParameters[T], g T) {
	for _, p := range patternSpecs {
		table := tableSlice(fp, p.table)
		table[horner(board, p.squares)] += g
	}
}
