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

// searchConfiguration is a data structure to hold the configuration of an
// instance of a search.
type searchConfiguration struct {
	// Transposition table
	TTSizeMbytes int

	// Iterative deepening / endgame switch defaults used when the shell
	// does not pass explicit depths to Searcher.Search.
	DefaultMaxDepth    int
	DefaultEndingDepth int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.TTSizeMbytes = 128
	Settings.Search.DefaultMaxDepth = 12
	Settings.Search.DefaultEndingDepth = 10
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupSearch() {
	if Settings.Search.TTSizeMbytes == 0 {
		Settings.Search.TTSizeMbytes = 128
	}
	if Settings.Search.DefaultMaxDepth == 0 {
		Settings.Search.DefaultMaxDepth = 12
	}
	if Settings.Search.DefaultEndingDepth == 0 {
		Settings.Search.DefaultEndingDepth = 10
	}
}
