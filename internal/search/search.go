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

// Package search implements the iterative-deepening, principal-variation
// (negascout) searcher: aspiration windows, a transposition table, ProbCut,
// internal-iterative-deepening move ordering, and a separate exact endgame
// solver used once few enough empty squares remain.
package search

import (
	"math/rand"
	"sort"
	"time"

	"github.com/op/go-logging"

	"github.com/sunfish-shogi/beluga/internal/belog"
	. "github.com/sunfish-shogi/beluga/internal/board"
	"github.com/sunfish-shogi/beluga/internal/config"
	"github.com/sunfish-shogi/beluga/internal/eval"
	"github.com/sunfish-shogi/beluga/internal/tt"
	. "github.com/sunfish-shogi/beluga/internal/types"
	"github.com/sunfish-shogi/beluga/internal/util"
)

const depthOnePly = 1

// Result is what Search returns: the chosen root move, its score from the
// perspective of the side to move at the root, and whether it came from the
// exact endgame solver rather than the iterative-deepening main search.
type Result struct {
	Move   Square
	Score  Score
	Ending bool
}

// Handler receives progress events from a running search, synchronously on
// the search's own goroutine.
type Handler interface {
	OnIterate(depth int, pv PV, score Score, nodes int)
	OnFailHigh(depth int, score Score, nodes int)
	OnFailLow(depth int, score Score, nodes int)
	OnEnding(pv PV, score Score, nodes int)
}

// moveScore is a node-local candidate move paired with its search score.
type moveScore struct {
	square Square
	score  Score
}

// node holds one ply's candidate list, current index into it, and PV.
type node struct {
	moves [48]moveScore
	count int
	index int
	pv    PV
}

// searchTree is a single search call's mutable state: the board (mutated in
// place via DoMove/UndoMove), the current ply, and a preallocated node
// stack so recursion never allocates.
type searchTree struct {
	board Board
	ply   int
	stack [64]node
	nodes int
}

// Searcher runs one search at a time against a shared, read-only Evaluator.
// It owns its own transposition table and must not be shared across
// concurrently running searches; see internal/learn for how callers give
// each self-play worker its own Searcher.
type Searcher struct {
	log     *logging.Logger
	slog    *logging.Logger
	eval    *eval.Evaluator
	table   *tt.TT
	handler Handler
	stop    *util.Bool
	rng     *rand.Rand
}

// NewSearcher creates a Searcher over evaluator with its own transposition
// table sized per config.Settings.Search.TTSizeMbytes. handler may be nil.
func NewSearcher(evaluator *eval.Evaluator, handler Handler) *Searcher {
	return &Searcher{
		log:     belog.GetLog(),
		slog:    belog.GetSearchLog(),
		eval:    evaluator,
		table:   tt.New(config.Settings.Search.TTSizeMbytes),
		handler: handler,
		stop:    util.NewBool(false),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reset clears the stop flag so the Searcher can run another search.
func (s *Searcher) Reset() {
	s.stop.Store(false)
}

// Stop requests that the currently running (or next) search abort as soon
// as it next polls the flag.
func (s *Searcher) Stop() {
	s.stop.Store(true)
}

// Search runs the engine on board and returns its choice of move. If the
// position has at most endingDepth empty squares it delegates to the
// exact endgame solver; otherwise it runs iterative deepening up to
// maxDepth plies with aspiration windows.
func (s *Searcher) Search(board Board, maxDepth, endingDepth int) Result {
	tree := &searchTree{board: board}

	empties := 64 - (board.GetBlackBoard() | board.GetWhiteBoard()).Count()
	if empties <= endingDepth {
		return s.searchEndingRoot(tree)
	}

	root := &tree.stack[0]
	root.pv.Clear()
	s.generateRootMoves(tree)
	if root.count == 0 {
		return Result{Move: Invalid, Score: 0}
	}

	s.rng.Shuffle(root.count, func(i, j int) {
		root.moves[i], root.moves[j] = root.moves[j], root.moves[i]
	})

	for depth := depthOnePly; depth <= maxDepth; depth++ {
		for i := 1; i < root.count; i++ {
			root.moves[i].score = -ScoreInfinity
		}

		var score Score
		if depth == depthOnePly {
			score = s.search(tree, depth, -ScoreInfinity, ScoreInfinity)
		} else {
			delta := 8 * ScoreScale
			alpha := root.moves[0].score - delta
			beta := root.moves[0].score + delta
			for {
				score = s.search(tree, depth, alpha, beta)
				if s.stop.Load() {
					break
				}
				if alpha < score && score < beta {
					break
				}
				if score <= alpha {
					alpha = score - delta
					if s.handler != nil {
						s.handler.OnFailLow(depth, score, tree.nodes)
					}
				} else if score >= beta {
					beta = score + delta
					if s.handler != nil {
						s.handler.OnFailHigh(depth, score, tree.nodes)
					}
				}
				delta += 10 * ScoreScale
			}
		}

		if s.stop.Load() {
			break
		}

		sort.SliceStable(root.moves[:root.count], func(i, j int) bool {
			return root.moves[i].score > root.moves[j].score
		})

		if s.handler != nil {
			s.handler.OnIterate(depth, root.pv, root.moves[0].score, tree.nodes)
		}
		s.storePV(board, root.pv, root.moves[0].score)
		s.slog.Debugf("depth %d: %s score %d nodes %d", depth, root.moves[0].square, score, tree.nodes)
	}

	return Result{Move: root.moves[0].square, Score: root.moves[0].score}
}

// storePV walks pv from board, recording each resulting position into the
// transposition table as an exact score at a depth equal to the remaining
// length of the line, so later iterations probe straight into it.
func (s *Searcher) storePV(board Board, pv PV, score Score) {
	for i := 0; i < pv.Len(); i++ {
		if board.MustPass() {
			board.Pass()
		}
		hash := board.GetHash()
		depth := pv.Len() - i
		s.table.Store(hash, score, depth, tt.Actual, pv.At(i))
		board.DoMove(pv.At(i))
	}
}

// terminalScore returns the exact disk-difference score of a finished
// board, from the perspective of the side to move.
func terminalScore(board Board) Score {
	ts := board.GetTotalScore()
	score := Score(ts.Black-ts.White) * ScoreScale
	if board.GetNextDisk() == White {
		return -score
	}
	return score
}

// evaluate returns the static evaluation of board from the perspective of
// the side to move.
func (s *Searcher) evaluate(board Board) Score {
	score := s.eval.Evaluate(board)
	if board.GetNextDisk() == White {
		return -score
	}
	return score
}

// search is the negascout (principal-variation) alpha-beta search, with TT
// probing/storing, ProbCut, and move ordering via internal iterative
// deepening.
func (s *Searcher) search(tree *searchTree, depth int, alpha, beta Score) Score {
	n := &tree.stack[tree.ply]
	if tree.ply != 0 {
		n.pv.Clear()
	}
	tree.nodes++

	if tree.board.IsEnd() {
		return terminalScore(tree.board)
	}
	if depth < depthOnePly {
		return s.evaluate(tree.board)
	}

	isPV := beta != alpha+1

	ttMove := Invalid
	hash := tree.board.GetHash()
	entry, hit := s.table.Probe(hash)
	if hit {
		if score, ok := entry.Usable(isPV, depth, alpha, beta); ok {
			return score
		}
		ttMove = entry.BestMove
	}

	if tree.ply > 0 && depth >= 5 && beta < 40*ScoreScale {
		probeBeta := beta + 10*ScoreScale
		probe := s.search(tree, depth-depthOnePly, probeBeta-1, probeBeta)
		if s.stop.Load() {
			return 0
		}
		if probe >= probeBeta {
			return beta
		}
	}

	if tree.ply == 0 {
		n.index = 0
	} else {
		s.generateMoves(tree, ttMove, depth, alpha, beta)
	}

	if n.count == 0 {
		tree.board.Pass()
		score := -s.search(tree, depth, -beta, -alpha)
		tree.board.Pass()
		return score
	}

	bestScore := -ScoreInfinity
	bestMove := Invalid

	for n.index < n.count {
		if s.stop.Load() {
			return 0
		}
		isFirst := n.index == 0
		m := &n.moves[n.index]
		n.index++

		newAlpha := max(alpha, bestScore)
		newDepth := depth - depthOnePly

		mask := tree.board.DoMove(m.square)
		tree.ply++

		var score Score
		if isFirst || beta == newAlpha+1 {
			score = -s.search(tree, newDepth, -beta, -newAlpha)
		} else {
			score = -s.search(tree, newDepth, -(newAlpha + 1), -newAlpha)
			if score >= newAlpha+1 {
				score = -s.search(tree, newDepth, -beta, -newAlpha)
			}
		}
		m.score = score

		tree.board.UndoMove(m.square, mask)
		tree.ply--

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m.square
			child := &tree.stack[tree.ply+1]
			n.pv.Set(m.square, child.pv)
			if bestScore >= beta {
				break
			}
		}
	}

	ttType := tt.Actual
	switch {
	case bestScore >= beta:
		ttType = tt.Lower
	case bestScore <= alpha:
		ttType = tt.Upper
	}
	s.table.Store(hash, bestScore, depth, ttType, bestMove)

	return bestScore
}

// generateRootMoves fills tree.stack[0] with every legal root move, in
// square order, score zero.
func (s *Searcher) generateRootMoves(tree *searchTree) {
	n := &tree.stack[0]
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

// generateMoves fills the current ply's candidate list and, when there is
// enough depth budget left, orders it by a shallow internal-iterative-
// deepening search (except the TT move, pinned to the front with
// +ScoreInfinity).
func (s *Searcher) generateMoves(tree *searchTree, ttMove Square, depth int, alpha, beta Score) {
	n := &tree.stack[tree.ply]
	n.count = 0
	n.index = 0

	moves := tree.board.GenerateMoves()
	if moves == 0 {
		return
	}
	for sq := SquareBegin; sq != SquareEnd; sq++ {
		if moves.Get(sq) {
			n.moves[n.count] = moveScore{square: sq}
			n.count++
		}
	}

	if n.count <= 1 {
		return
	}

	if depth <= depthOnePly {
		for i := 0; i < n.count; i++ {
			if n.moves[i].square == ttMove {
				n.moves[i], n.moves[0] = n.moves[0], n.moves[i]
				break
			}
		}
		return
	}

	var iidDepth int
	switch {
	case depth <= 4:
		iidDepth = 1
	case depth <= 7:
		iidDepth = depth - 4
	default:
		iidDepth = 3
	}

	for i := 0; i < n.count; i++ {
		m := &n.moves[i]
		if m.square == ttMove {
			m.score = ScoreInfinity
			continue
		}
		mask := tree.board.DoMove(m.square)
		tree.ply++
		m.score = -s.search(tree, iidDepth, -beta, -alpha)
		tree.board.UndoMove(m.square, mask)
		tree.ply--
	}

	sort.Slice(n.moves[:n.count], func(i, j int) bool {
		return n.moves[i].score > n.moves[j].score
	})
}
