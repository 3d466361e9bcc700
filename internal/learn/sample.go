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

// Package learn implements the offline supervised-learning pipeline: two
// self-play sample generators, a gradient accumulator with 8-fold symmetry
// reduction, and a stochastic integer parameter update.
package learn

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	. "github.com/sunfish-shogi/beluga/internal/board"
	"github.com/sunfish-shogi/beluga/internal/eval"
	"github.com/sunfish-shogi/beluga/internal/search"
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// Sample is a labeled training example: a position and the disc-difference
// score (Black-to-move convention) it should evaluate to.
type Sample struct {
	Board Board
	Label Score
}

// sampleWorkers bounds how many self-play games run concurrently while
// generating a batch; each worker owns its own Searcher (and so its own
// transposition table) and its own random source.
const sampleWorkers = 8

// GenerateBatchSamples plays gameCount self-play games choosing uniformly
// at random among legal moves from the standard initial position to
// completion. Whenever the disc count on the board matches one of
// targetCounts, the position is recorded with label 0.0 (an un-learned,
// purely structural sample used to seed symmetry-folded cells that the
// full-game generator rarely visits).
func GenerateBatchSamples(gameCount int, targetCounts []int, seed int64) []Sample {
	targets := make(map[int]bool, len(targetCounts))
	for _, c := range targetCounts {
		targets[c] = true
	}

	samples := make([]Sample, 0, gameCount*len(targetCounts))
	rng := rand.New(rand.NewSource(seed))

	for g := 0; g < gameCount; g++ {
		b := GetNormalInitBoard()
		for !b.IsEnd() {
			if b.MustPass() {
				b.Pass()
				continue
			}
			moves := b.GenerateMoves()
			count := moves.Count()
			idx := rng.Intn(count)
			var move Square
			for i := 0; i <= idx; i++ {
				move = moves.Pick()
			}
			occupied := (b.GetBlackBoard() | b.GetWhiteBoard()).Count()
			if targets[occupied] {
				samples = append(samples, Sample{Board: b, Label: 0})
			}
			b.DoMove(move)
		}
	}
	return samples
}

// GenerateFullGameSamples plays gameCount self-play games: the first 12
// plies chosen uniformly at random (rejecting a resulting position already
// seen, to diversify openings), then the remainder played by searcher at
// (depth, endingDepth). Every pre-move position with fewer than 64-
// endingDepth discs on the board is recorded, labeled with the game's final
// disc difference. Games run on sampleWorkers concurrent goroutines, each
// with its own Searcher and Evaluator copy sharing evaluator's parameters
// by value (read-only during search).
func GenerateFullGameSamples(gameCount int, evaluator *eval.Evaluator, depth, endingDepth int, seed int64) []Sample {
	sem := semaphore.NewWeighted(int64(min(sampleWorkers, runtime.NumCPU())))
	ctx := context.Background()

	results := make(chan []Sample, gameCount)
	seen := newBoardSet()

	for g := 0; g < gameCount; g++ {
		_ = sem.Acquire(ctx, 1)
		go func(workerSeed int64) {
			defer sem.Release(1)
			rng := rand.New(rand.NewSource(workerSeed))
			e := *evaluator
			searcher := search.NewSearcher(&e, nil)
			results <- playOneFullGame(searcher, rng, depth, endingDepth, seen)
		}(seed + int64(g))
	}

	samples := make([]Sample, 0, gameCount*10)
	for g := 0; g < gameCount; g++ {
		samples = append(samples, <-results...)
	}
	return samples
}

func playOneFullGame(searcher *search.Searcher, rng *rand.Rand, depth, endingDepth int, seen *boardSet) []Sample {
	var b Board
	for {
		b = GetNormalInitBoard()
		for !b.IsEnd() && (b.GetBlackBoard()|b.GetWhiteBoard()).Count() < 4+12 {
			if b.MustPass() {
				b.Pass()
				continue
			}
			moves := b.GenerateMoves()
			count := moves.Count()
			idx := rng.Intn(count)
			var move Square
			for i := 0; i <= idx; i++ {
				move = moves.Pick()
			}
			b.DoMove(move)
		}
		if seen.addIfAbsent(b) {
			break
		}
	}

	var recorded []Board
	for !b.IsEnd() {
		if b.MustPass() {
			b.Pass()
			continue
		}
		count := (b.GetBlackBoard() | b.GetWhiteBoard()).Count()
		if count < 64-endingDepth {
			recorded = append(recorded, b)
		}
		result := searcher.Search(b, depth, endingDepth)
		b.DoMove(result.Move)
	}

	ts := b.GetTotalScore()
	label := Score(ts.Black-ts.White) * ScoreScale

	samples := make([]Sample, len(recorded))
	for i, board := range recorded {
		samples[i] = Sample{Board: board, Label: label}
	}
	return samples
}

// boardSet is a concurrency-safe set of previously seen opening positions,
// used to reject duplicate random openings across self-play workers.
type boardSet struct {
	mu sync.Mutex
	m  map[Board]bool
}

func newBoardSet() *boardSet {
	return &boardSet{m: make(map[Board]bool)}
}

// addIfAbsent reports whether b was not already present, inserting it if so.
func (s *boardSet) addIfAbsent(b Board) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m[b] {
		return false
	}
	s.m[b] = true
	return true
}
