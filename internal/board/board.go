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

// Package board represents a Reversi (Othello) position as a pair of
// bitboards plus the side to move, and the legal-move generation, make/undo,
// and hashing operations over it.
//
// Create a position with GetEmptyBoard() or GetNormalInitBoard().
package board

import (
	. "github.com/sunfish-shogi/beluga/internal/types"
)

// Board is a Reversi position: which squares hold a black disk, which hold a
// white disk, and whose turn it is. black and white never overlap; a square
// is empty iff it is set in neither.
type Board struct {
	black    Bitboard
	white    Bitboard
	nextDisk Disk
}

// GetEmptyBoard returns a board with no disks set and black to move.
func GetEmptyBoard() Board {
	return Board{nextDisk: Black}
}

// GetNormalInitBoard returns the standard Reversi starting position:
// d4=white, e4=black, d5=black, e5=white, black to move.
func GetNormalInitBoard() Board {
	b := GetEmptyBoard()
	b.SetWhite(NewSquare(3, 3)) // d4
	b.SetBlack(NewSquare(4, 3)) // e4
	b.SetBlack(NewSquare(3, 4)) // d5
	b.SetWhite(NewSquare(4, 4)) // e5
	return b
}

// Set places disk on square, clearing nothing else. Setting None is a no-op.
func (b *Board) Set(square Square, disk Disk) {
	switch disk {
	case Black:
		b.black = b.black.Set(square)
	case White:
		b.white = b.white.Set(square)
	}
}

// Get returns the disk occupying square, or None if it is empty.
func (b Board) Get(square Square) Disk {
	if b.black.Get(square) {
		return Black
	}
	if b.white.Get(square) {
		return White
	}
	return None
}

// GetBlackBoard returns the raw black-disk bitboard.
func (b Board) GetBlackBoard() Bitboard { return b.black }

// GetWhiteBoard returns the raw white-disk bitboard.
func (b Board) GetWhiteBoard() Bitboard { return b.white }

// GetNextDisk returns the side to move.
func (b Board) GetNextDisk() Disk { return b.nextDisk }

// SetBlack sets a black disk at square.
func (b *Board) SetBlack(square Square) { b.black = b.black.Set(square) }

// SetWhite sets a white disk at square.
func (b *Board) SetWhite(square Square) { b.white = b.white.Set(square) }

// UnsetBlack clears a black disk at square.
func (b *Board) UnsetBlack(square Square) { b.black = b.black.Unset(square) }

// UnsetWhite clears a white disk at square.
func (b *Board) UnsetWhite(square Square) { b.white = b.white.Unset(square) }

// reverse flips every square in mask between black and white.
func (b *Board) reverse(mask Bitboard) {
	b.black ^= mask
	b.white ^= mask
}

// SetNextDisk overrides the side to move.
func (b *Board) SetNextDisk(disk Disk) { b.nextDisk = disk }

// CanMove reports whether placing the side-to-move's disk on square would be
// legal: square must be empty and flip at least one opposing disk.
func (b Board) CanMove(square Square) bool {
	if b.Get(square) != None {
		return false
	}
	return b.canMove(square, b.nextDisk)
}

func (b Board) canMove(square Square, color Disk) bool {
	mine, theirs := b.black, b.white
	if color == White {
		mine, theirs = b.white, b.black
	}
	for dir := LeftUp; dir <= RightDown; dir++ {
		if square.IsWall(dir) {
			continue
		}
		reversible := false
		for sq := square.Dir(dir); ; sq = sq.Dir(dir) {
			if theirs.Get(sq) {
				reversible = true
			} else if reversible && mine.Get(sq) {
				return true
			} else {
				break
			}
			if sq.IsWall(dir) {
				break
			}
		}
	}
	return false
}

// DoMove places the side-to-move's disk on square, flips every disk it
// captures, and advances the side to move. Returns the mask of flipped
// squares, which UndoMove needs to reverse the move.
func (b *Board) DoMove(square Square) Bitboard {
	var mask Bitboard
	mine, theirs := b.black, b.white
	if b.nextDisk == White {
		mine, theirs = b.white, b.black
	}
	for dir := LeftUp; dir <= RightDown; dir++ {
		if square.IsWall(dir) {
			continue
		}
		var m Bitboard
		for sq := square.Dir(dir); ; sq = sq.Dir(dir) {
			if theirs.Get(sq) {
				m = m.Set(sq)
			} else {
				if mine.Get(sq) {
					mask |= m
				}
				break
			}
			if sq.IsWall(dir) {
				break
			}
		}
	}
	b.reverse(mask)
	if b.nextDisk == Black {
		b.SetBlack(square)
		b.nextDisk = White
	} else {
		b.SetWhite(square)
		b.nextDisk = Black
	}
	return mask
}

// UndoMove reverses a DoMove: mask is the value DoMove returned.
func (b *Board) UndoMove(square Square, mask Bitboard) {
	b.reverse(mask)
	if b.nextDisk == White {
		b.UnsetBlack(square)
		b.nextDisk = Black
	} else {
		b.UnsetWhite(square)
		b.nextDisk = White
	}
}

// Pass toggles the side to move without changing either bitboard.
func (b *Board) Pass() {
	b.nextDisk = b.nextDisk.Opponent()
}

// MustPass reports whether the side to move has no legal move.
func (b Board) MustPass() bool {
	return b.GenerateMoves() == 0
}

// IsEnd reports whether neither color has a legal move.
func (b Board) IsEnd() bool {
	return b.generateMoves(Black) == 0 && b.generateMoves(White) == 0
}

// GenerateMoves returns a bitboard of every legal move for the side to move.
func (b Board) GenerateMoves() Bitboard {
	return b.generateMoves(b.nextDisk)
}

// generateMoves restricts candidates to empty squares adjacent to at least
// one opposing disk, then filters with CanMove.
func (b Board) generateMoves(color Disk) Bitboard {
	occupied := b.black | b.white
	empty := ^occupied

	opp := b.white
	if color == White {
		opp = b.black
	}
	open := (opp.Up() | opp.Down() | opp.Left() | opp.Right() |
		opp.LeftUp() | opp.LeftDown() | opp.RightUp() | opp.RightDown()) & empty

	var moves Bitboard
	for sq := open.Pick(); !sq.IsInvalid(); sq = open.Pick() {
		if b.canMove(sq, color) {
			moves = moves.Set(sq)
		}
	}
	return moves
}

// GetTotalScore counts disks for both colors and declares a winner.
func (b Board) GetTotalScore() TotalScore {
	black, white := b.black.Count(), b.white.Count()
	var winner Winner
	switch {
	case black > white:
		winner = BlackWon
	case black < white:
		winner = WhiteWon
	default:
		winner = Draw
	}
	return TotalScore{Black: black, White: white, Winner: winner}
}

// GetHash returns a 64-bit Zobrist-style hash of the black/white bitboards.
// It does not fold in side-to-move; see DESIGN.md for why that is safe here.
func (b Board) GetHash() uint64 {
	var hash uint64
	black, white := uint64(b.black), uint64(b.white)
	for i := 0; i < 16; i++ {
		hash ^= zobristTable[i][(black>>(4*uint(i)))&0xf]
	}
	for i := 0; i < 16; i++ {
		hash ^= zobristTable[16+i][(white>>(4*uint(i)))&0xf]
	}
	return hash
}

// String renders the board as an 8x8 grid with '.'/'B'/'W', rank 1 first.
func (b Board) String() string {
	out := make([]byte, 0, 8*9)
	for y := int8(0); y < 8; y++ {
		for x := int8(0); x < 8; x++ {
			switch b.Get(NewSquare(x, y)) {
			case Black:
				out = append(out, 'B')
			case White:
				out = append(out, 'W')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
