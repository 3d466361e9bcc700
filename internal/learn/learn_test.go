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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunfish-shogi/beluga/internal/config"
	"github.com/sunfish-shogi/beluga/internal/eval"
)

func TestRunSavesParametersOnceBatch(t *testing.T) {
	saved := config.Settings.Learn
	defer func() { config.Settings.Learn = saved }()

	config.Settings.Learn.BatchCount = 1
	config.Settings.Learn.UpdateCount = 2
	config.Settings.Learn.GamesPerBatch = 2
	config.Settings.Learn.SearchDepth = 1
	config.Settings.Learn.EndingDepth = 6

	dir := t.TempDir()
	path := filepath.Join(dir, "eval.bin")

	var e eval.Evaluator
	require.NoError(t, Run(&e, path))

	var loaded eval.Evaluator
	require.NoError(t, loaded.LoadParam(path))
}
