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

	"github.com/sunfish-shogi/beluga/internal/eval"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// l1Norm is the per-cell L1 shrinkage applied before the stochastic step,
// pulling every nonzero gradient cell toward zero; a cell whose gradient is
// exactly zero (no sample support) is left as it is.
const l1Norm float32 = 1e-3

// gradientScale converts a sample's loss into the per-sample gradient
// contribution accumulated into Gradient.
const gradientScale = 1e-4

// lossOf returns the training loss for a sample: the label minus the
// evaluator's current static score, in disc units.
func lossOf(evaluator *eval.Evaluator, s Sample) float32 {
	return float32(s.Label-evaluator.Evaluate(s.Board)) / float32(ScoreScale)
}

// adjust runs one pass over samples: accumulates a fresh gradient, folds it
// by symmetry, and nudges every one of evaluator's cells by a small
// stochastic integer step whose sign follows the shrunk gradient. Returns
// the mean absolute loss observed, for progress reporting.
func adjust(evaluator *eval.Evaluator, samples []Sample, rng *rand.Rand) float32 {
	var gradient eval.Gradient
	var lossSum float32

	for _, s := range samples {
		loss := lossOf(evaluator, s)
		lossSum += abs32(loss)
		gradient.Add(s.Board, loss*gradientScale)
	}
	gradient.Symmetrize()

	gradTables := gradient.Tables()
	evalTables := evaluator.Tables()
	for t := range gradTables {
		gt := gradTables[t]
		et := evalTables[t]
		for i, g := range gt {
			switch {
			case g > 0:
				g -= l1Norm
			case g < 0:
				g += l1Norm
			}
			et[i] += stochasticStep(g, rng)
		}
	}

	evaluator.Symmetrize()

	if len(samples) == 0 {
		return 0
	}
	return lossSum / float32(len(samples))
}

// stochasticStep draws a Score step of magnitude 0, 1 or 2 - the sum of two
// independent Bernoulli(0.5) draws - signed by g, or exactly 0 when g is 0.
func stochasticStep(g float32, rng *rand.Rand) Score {
	if g == 0 {
		return 0
	}
	var mag Score
	if rng.Intn(2) == 1 {
		mag++
	}
	if rng.Intn(2) == 1 {
		mag++
	}
	if g < 0 {
		return -mag
	}
	return mag
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
