package chess

import (
	"fmt"

	"github.com/Bademeischta/Chess-GPT/internal/errors"
)

// Square is a board square index in 0..63, row-major from the top:
// a8 is 0, h8 is 7, a1 is 56, h1 is 63.
type Square int

// NoSquare marks the absence of a square, e.g. no en passant target.
const NoSquare Square = -1

// BoardSize is the number of files and ranks.
const BoardSize = 8

// MakeSquare builds a square from a file (0 = a) and a row (0 = rank 8).
func MakeSquare(file, row int) Square {
	return Square(row*BoardSize + file)
}

// File returns the file index, 0 (a) to 7 (h).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Row returns the row index from the top, 0 (rank 8) to 7 (rank 1).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// Rank returns the rank digit, 1 to 8.
func (s Square) Rank() int {
	return BoardSize - s.Row()
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < BoardSize*BoardSize
}

// ParseSquare converts algebraic notation ("e4") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file := int(text[0] - 'a')
	rank := int(text[1] - '1')
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return MakeSquare(file, BoardSize-1-rank), nil
}

// String returns the algebraic notation of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('0' + s.Rank())})
}
