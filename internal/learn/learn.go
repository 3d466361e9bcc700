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
	"time"

	"github.com/sunfish-shogi/beluga/internal/belog"
	"github.com/sunfish-shogi/beluga/internal/config"
	"github.com/sunfish-shogi/beluga/internal/eval"
)

// Run drives the full offline training schedule against evaluator: for
// config.Settings.Learn.BatchCount outer iterations it samples a fresh set
// of self-play games, adjusts evaluator's parameters over that fixed set
// config.Settings.Learn.UpdateCount times, and saves the parameters to
// fileName once per outer iteration.
func Run(evaluator *eval.Evaluator, fileName string) error {
	log := belog.GetLearnLog()
	cfg := config.Settings.Learn
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for batch := 0; batch < cfg.BatchCount; batch++ {
		log.Infof("batch %d/%d: generating %d self-play games", batch+1, cfg.BatchCount, cfg.GamesPerBatch)
		samples := GenerateFullGameSamples(cfg.GamesPerBatch, evaluator, cfg.SearchDepth, cfg.EndingDepth, rng.Int63())
		log.Infof("batch %d/%d: %d samples collected", batch+1, cfg.BatchCount, len(samples))

		for update := 0; update < cfg.UpdateCount; update++ {
			meanLoss := adjust(evaluator, samples, rng)
			if update%32 == 0 || update == cfg.UpdateCount-1 {
				log.Debugf("batch %d/%d update %d/%d: mean abs loss %.4f", batch+1, cfg.BatchCount, update+1, cfg.UpdateCount, meanLoss)
			}
		}

		if err := evaluator.SaveParam(fileName); err != nil {
			return err
		}
		log.Infof("batch %d/%d: saved parameters to %s", batch+1, cfg.BatchCount, fileName)
	}
	return nil
}
