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

package learn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sunfish-shogi/beluga/internal/board"
	"github.com/sunfish-shogi/beluga/internal/eval"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

func TestStochasticStepIsZeroWhenGradientIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, Score(0), stochasticStep(0, rng))
	}
}

func TestStochasticStepSignFollowsGradient(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, stochasticStep(0.5, rng), Score(0))
		assert.LessOrEqual(t, stochasticStep(-0.5, rng), Score(0))
	}
}

func TestStochasticStepMagnitudeIsAtMostTwo(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		s := stochasticStep(1, rng)
		assert.GreaterOrEqual(t, s, Score(0))
		assert.LessOrEqual(t, s, Score(2))
	}
}

func TestAdjustPushesZeroEvaluatorTowardPositiveLabel(t *testing.T) {
	var e eval.Evaluator
	b := GetNormalInitBoard()
	samples := []Sample{{Board: b, Label: 400}}
	rng := rand.New(rand.NewSource(1))

	var changed bool
	for i := 0; i < 50; i++ {
		adjust(&e, samples, rng)
		if e.Evaluate(b) != 0 {
			changed = true
			break
		}
	}
	assert.True(t, changed, "evaluator should move off zero toward a consistently positive label")
}

func TestAdjustOnEmptySampleSetLeavesEvaluatorUnchanged(t *testing.T) {
	var e eval.Evaluator
	e.Edge[0] = 5
	e.Symmetrize()
	before := e.FeatureParameters
	rng := rand.New(rand.NewSource(1))
	adjust(&e, nil, rng)
	assert.Equal(t, before, e.FeatureParameters)
}

func TestLossOfIsZeroWhenEvaluationMatchesLabel(t *testing.T) {
	var e eval.Evaluator
	e.Edge[0] = 4
	b := GetEmptyBoard()
	// all four Edge instances index cell 0 on an empty board
	loss := lossOf(&e, Sample{Board: b, Label: 4 * 4})
	assert.InDelta(t, 0, loss, 1e-6)
}
