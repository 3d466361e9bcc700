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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/sunfish-shogi/beluga/internal/board"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

func TestEvaluateOpeningIsZeroForAllZeroParameters(t *testing.T) {
	var e Evaluator
	b := GetNormalInitBoard()
	assert.Equal(t, Score(0), e.Evaluate(b))
}

func TestEvaluateReadsPerPatternCells(t *testing.T) {
	var e Evaluator
	e.Edge[0] = 7
	b := GetEmptyBoard()
	// all four Edge instances index cell 0 on an empty board
	assert.Equal(t, Score(4*7), e.Evaluate(b))
}

func TestSymmetrizeReversalMakesPairsEqual(t *testing.T) {
	var e Evaluator
	e.Diag4[5] = 11
	e.Symmetrize()
	assert.Equal(t, e.Diag4[5], e.Diag4[reverseIndex(5, 4)])
}

func TestSymmetrizeCorner3x3Transpose(t *testing.T) {
	var e Evaluator
	e.Corner3x3[3] = 42 // digit pattern with a single 1 at position 1
	e.Symmetrize()
	assert.Equal(t, e.Corner3x3[3], e.Corner3x3[transposeIndex3x3(3)])
}

func TestGradientAddAccumulatesAcrossOverlappingPatterns(t *testing.T) {
	var g Gradient
	b := GetNormalInitBoard()
	g.Add(b, 1.5)
	// instances that index the same cell add into it, so the mass over all
	// cells is one contribution per instance
	var total float32
	for _, table := range g.Tables() {
		for _, v := range table {
			total += v
		}
	}
	assert.InDelta(t, float32(1.5*float64(len(patternSpecs))), total, 1e-6)
}

func TestSaveLoadParamRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eval.bin")

	var e Evaluator
	e.Edge[100] = 123
	e.Corner5x2[0] = -9
	require.NoError(t, e.SaveParam(path))

	var loaded Evaluator
	require.NoError(t, loaded.LoadParam(path))
	assert.Equal(t, e.FeatureParameters, loaded.FeatureParameters)
}

func TestLoadParamRejectsBadSignature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bin")
	data := append([]byte{'B', 'e', 'l', 'u', 'g', 'a'}, make([]byte, 10)...)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var e Evaluator
	err := e.LoadParam(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid signature")
}

func TestLoadParamOpenFailure(t *testing.T) {
	var e Evaluator
	err := e.LoadParam(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}
