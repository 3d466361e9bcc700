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

package search

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/sunfish-shogi/beluga/internal/board"
	"github.com/sunfish-shogi/beluga/internal/eval"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// playDownTo repeatedly plays the lowest-indexed legal move (passing when
// there is none) until at most empties squares remain empty, giving a
// deterministic, reproducible fixture position.
func playDownTo(empties int) Board {
	b := GetNormalInitBoard()
	for 64-(b.GetBlackBoard()|b.GetWhiteBoard()).Count() > empties && !b.IsEnd() {
		moves := b.GenerateMoves()
		if moves == 0 {
			b.Pass()
			continue
		}
		b.DoMove(moves.Pick())
	}
	return b
}

// naiveMinimax is an independent, unbounded, no-pruning-shortcut-free
// (beyond plain alpha-beta) reference implementation used to validate the
// endgame solver: it shares no code with Searcher.
func naiveMinimax(b Board, alpha, beta Score) Score {
	if b.IsEnd() {
		return terminalScore(b)
	}
	moves := b.GenerateMoves()
	if moves == 0 {
		child := b
		child.Pass()
		return -naiveMinimax(child, -beta, -alpha)
	}
	best := -ScoreInfinity
	for sq := SquareBegin; sq != SquareEnd; sq++ {
		if !moves.Get(sq) {
			continue
		}
		child := b
		child.DoMove(sq)
		score := -naiveMinimax(child, -beta, -max(alpha, best))
		if score > best {
			best = score
			if best >= beta {
				break
			}
		}
	}
	return best
}

// naiveAlphaBeta is a plain depth-limited negamax with alpha-beta pruning
// and no transposition table, ProbCut, aspiration window or move ordering -
// used to validate that negascout converges to the same value.
func naiveAlphaBeta(b Board, depth int, alpha, beta Score) Score {
	if b.IsEnd() {
		return terminalScore(b)
	}
	if depth < depthOnePly {
		var e eval.Evaluator
		score := e.Evaluate(b)
		if b.GetNextDisk() == White {
			return -score
		}
		return score
	}
	moves := b.GenerateMoves()
	if moves == 0 {
		child := b
		child.Pass()
		return -naiveAlphaBeta(child, depth, -beta, -alpha)
	}
	best := -ScoreInfinity
	for sq := SquareBegin; sq != SquareEnd; sq++ {
		if !moves.Get(sq) {
			continue
		}
		child := b
		child.DoMove(sq)
		score := -naiveAlphaBeta(child, depth-1, -beta, -max(alpha, best))
		if score > best {
			best = score
			if best >= beta {
				break
			}
		}
	}
	return best
}

func TestSearchReturnsInvalidMoveOnRootMustPass(t *testing.T) {
	b := GetEmptyBoard()
	var e eval.Evaluator
	s := NewSearcher(&e, nil)
	result := s.Search(b, 4, 4)
	assert.Equal(t, Invalid, result.Move)
	assert.Equal(t, Score(0), result.Score)
}

func TestSearchUsesEndgameSolverWhenFewEmptiesRemain(t *testing.T) {
	b := playDownTo(8)
	assert.LessOrEqual(t, 64-(b.GetBlackBoard()|b.GetWhiteBoard()).Count(), 8)

	var e eval.Evaluator
	s := NewSearcher(&e, nil)
	result := s.Search(b, 1, 8)
	assert.True(t, result.Ending)

	want := naiveMinimax(b, -ScoreInfinity, ScoreInfinity)
	assert.Equal(t, want, result.Score)
}

func TestNegascoutAgreesWithNaiveAlphaBeta(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const depth = 3

	for i := 0; i < 20; i++ {
		b := GetNormalInitBoard()
		plies := 4 + rng.Intn(16)
		for p := 0; p < plies && !b.IsEnd(); p++ {
			moves := b.GenerateMoves()
			if moves == 0 {
				b.Pass()
				continue
			}
			candidates := make([]Square, 0, 32)
			for sq := SquareBegin; sq != SquareEnd; sq++ {
				if moves.Get(sq) {
					candidates = append(candidates, sq)
				}
			}
			b.DoMove(candidates[rng.Intn(len(candidates))])
		}
		if b.IsEnd() {
			continue
		}

		var e eval.Evaluator
		s := NewSearcher(&e, nil)
		got := s.Search(b, depth, 0)
		want := naiveAlphaBeta(b, depth, -ScoreInfinity, ScoreInfinity)
		assert.Equal(t, want, got.Score, "position %d", i)
	}
}

// TestProbCutProbeSameSideToMoveAsOuterSearch pins down the ProbCut probe's
// sign convention: since the probe reuses tree's board with no DoMove/Pass
// around it, the side to move does not change, so the probe must be read in
// the *same* perspective as the outer call - unlike an actual child
// recursion, it must not be negated. maxDepth is set well past the
// fixture's remaining empties (and endingDepth to 0, to force the main
// search path rather than the ending solver) so the deepest iteration
// explores all the way to terminal nodes and so must equal the exact
// unbounded minimax value; ProbCut's depth >= 5 gate fires repeatedly along
// the way, so a sign-inverted probe would corrupt that otherwise-exact
// result.
func TestProbCutProbeSameSideToMoveAsOuterSearch(t *testing.T) {
	b := playDownTo(10)
	if b.IsEnd() {
		t.Skip("fixture already ended")
	}

	var e eval.Evaluator
	s := NewSearcher(&e, nil)
	got := s.Search(b, 12, 0)
	want := naiveMinimax(b, -ScoreInfinity, ScoreInfinity)
	assert.Equal(t, want, got.Score)
}

func TestStopDuringSearchIsObservedByRecursion(t *testing.T) {
	b := GetNormalInitBoard()
	var e eval.Evaluator
	s := NewSearcher(&e, nil)
	s.Stop()
	result := s.Search(b, 10, 0)
	assert.NotNil(t, result)
}
