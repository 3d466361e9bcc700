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

// beluga-learn runs the offline supervised-learning pipeline against the
// standard parameter file. It takes no flags: the training schedule (games
// per batch, batch count, update count, search depths) comes entirely from
// config.toml / its built-in defaults. Random seeds are taken from the clock,
// so two runs with the same configuration do not produce the same parameters.
package main

import (
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sunfish-shogi/beluga/internal/belog"
	"github.com/sunfish-shogi/beluga/internal/config"
	"github.com/sunfish-shogi/beluga/internal/eval"
	"github.com/sunfish-shogi/beluga/internal/learn"
)

var out = message.NewPrinter(language.English)

func main() {
	// go tool pprof -http=localhost:8080 beluga-learn cpu.pprof
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	config.Setup()
	log := belog.GetLearnLog()

	var e eval.Evaluator
	if err := e.LoadParam(eval.EvaluationParamFileName); err != nil {
		log.Infof("no existing parameter file (%v), starting from an all-zero evaluator", err)
	}

	out.Printf("training schedule: %d batches x %d games x %d updates\n",
		config.Settings.Learn.BatchCount, config.Settings.Learn.GamesPerBatch, config.Settings.Learn.UpdateCount)

	start := time.Now()
	if err := learn.Run(&e, eval.EvaluationParamFileName); err != nil {
		log.Errorf("training run failed: %v", err)
		os.Exit(1)
	}
	out.Printf("training finished in %s\n", time.Since(start).Round(time.Second))
}
