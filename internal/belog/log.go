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

// Package belog is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package belog

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/sunfish-shogi/beluga/internal/config"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	learnLog  *logging.Logger

	standardFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
	)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	learnLog = logging.MustGetLogger("learn")
}

// GetLog returns the general-purpose engine logger, preconfigured with an
// os.Stdout backend and level driven by config.LogLevel.
func GetLog() *logging.Logger {
	return configured(engineLog)
}

// GetSearchLog returns the search-trace logger, used for per-iteration
// diagnostics (OnIterate/OnFailHigh/OnFailLow/OnEnding).
func GetSearchLog() *logging.Logger {
	return configured(searchLog)
}

// GetLearnLog returns the logger used by the offline learning pipeline.
func GetLearnLog() *logging.Logger {
	return configured(learnLog)
}

func configured(l *logging.Logger) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	l.SetBackend(leveled)
	return l
}
