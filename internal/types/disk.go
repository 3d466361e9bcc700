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

package types

// Disk is the content of a single square: empty, or occupied by one color.
type Disk int8

const (
	None Disk = iota
	Black
	White
)

// Opponent returns the other disk color. Calling it on None returns None.
func (d Disk) Opponent() Disk {
	switch d {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (d Disk) String() string {
	switch d {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// Winner reports which side a finished game went to.
type Winner int8

const (
	BlackWon Winner = iota
	WhiteWon
	Draw
)

func (w Winner) String() string {
	switch w {
	case BlackWon:
		return "black won"
	case WhiteWon:
		return "white won"
	default:
		return "draw"
	}
}

// TotalScore is the final disk count of a finished or in-progress game.
type TotalScore struct {
	Black  int
	White  int
	Winner Winner
}
