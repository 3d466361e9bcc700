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

package config

// learnConfiguration is a data structure to hold the configuration of the
// offline supervised-learning pipeline (internal/learn).
type learnConfiguration struct {
	// number of self-play games sampled per outer iteration
	GamesPerBatch int

	// number of outer iterations (sample + adjust + save)
	BatchCount int

	// number of gradient-adjustment passes over the sampled set per iteration
	UpdateCount int

	// search parameters used while generating full-game samples
	SearchDepth int
	EndingDepth int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Learn.GamesPerBatch = 100_000
	Settings.Learn.BatchCount = 10
	Settings.Learn.UpdateCount = 256
	Settings.Learn.SearchDepth = 3
	Settings.Learn.EndingDepth = 10
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupLearn() {
	if Settings.Learn.GamesPerBatch == 0 {
		Settings.Learn.GamesPerBatch = 100_000
	}
	if Settings.Learn.BatchCount == 0 {
		Settings.Learn.BatchCount = 10
	}
	if Settings.Learn.UpdateCount == 0 {
		Settings.Learn.UpdateCount = 256
	}
	if Settings.Learn.SearchDepth == 0 {
		Settings.Learn.SearchDepth = 3
	}
	if Settings.Learn.EndingDepth == 0 {
		Settings.Learn.EndingDepth = 10
	}
}
