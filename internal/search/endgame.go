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
	"sort"

	. "github.com/sunfish-shogi/beluga/internal/types"
)

// endingWindow is the full window the endgame solver searches with: no
// legal position can fall outside ±64 discs.
const endingWindow = 64 * ScoreScale

// searchEndingRoot runs the exact endgame solver from the root and returns
// its choice of move. Used once few enough empty squares remain that a
// full-depth search to game end is affordable; it uses no transposition
// table, no ProbCut, no aspiration window and no internal iterative
// deepening.
func (s *Searcher) searchEndingRoot(tree *searchTree) Result {
	root := &tree.stack[0]
	root.pv.Clear()
	s.generateMovesEnding(tree)
	if root.count == 0 {
		return Result{Move: Invalid, Score: 0, Ending: true}
	}

	s.searchEnding(tree, -endingWindow, endingWindow)

	sort.SliceStable(root.moves[:root.count], func(i, j int) bool {
		return root.moves[i].score > root.moves[j].score
	})

	if s.handler != nil {
		s.handler.OnEnding(root.pv, root.moves[0].score, tree.nodes)
	}
	return Result{Move: root.moves[0].square, Score: root.moves[0].score, Ending: true}
}

// searchEnding is a plain negamax with alpha-beta pruning and pass
// handling, searched all the way to game end rather than to a depth
// budget: its leaf condition is two consecutive passes.
func (s *Searcher) searchEnding(tree *searchTree, alpha, beta Score) Score {
	n := &tree.stack[tree.ply]
	if tree.ply != 0 {
		n.pv.Clear()
	}
	tree.nodes++

	if tree.board.IsEnd() {
		return terminalScore(tree.board)
	}

	if tree.ply == 0 {
		n.index = 0
	} else {
		s.generateMovesEnding(tree)
	}

	if n.count == 0 {
		tree.board.Pass()
		score := -s.searchEnding(tree, -beta, -alpha)
		tree.board.Pass()
		return score
	}

	bestScore := -ScoreInfinity

	for n.index < n.count {
		if s.stop.Load() {
			return 0
		}
		m := &n.moves[n.index]
		n.index++

		newAlpha := max(alpha, bestScore)

		mask := tree.board.DoMove(m.square)
		tree.ply++
		score := -s.searchEnding(tree, -beta, -newAlpha)
		tree.board.UndoMove(m.square, mask)
		tree.ply--

		m.score = score

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			child := &tree.stack[tree.ply+1]
			n.pv.Set(m.square, child.pv)
			if bestScore >= beta {
				break
			}
		}
	}

	return bestScore
}

// generateMovesEnding fills the current ply's candidate list by simple
// square-order enumeration, with no ordering heuristic.
func (s *Searcher) generateMovesEnding(tree *searchTree) {
	n := &tree.stack[tree.ply]
	n.count = 0
	n.index = 0
	moves := tree.board.GenerateMoves()
	for sq := SquareBegin; sq != SquareEnd; sq++ {
		if moves.Get(sq) {
			n.moves[n.count] = moveScore{square: sq}
			n.count++
		}
	}
}
