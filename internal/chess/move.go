package chess

import (
	"fmt"

	"github.com/Bademeischta/Chess-GPT/internal/errors"
)

// Move is a from/to square pair plus an optional promotion kind.
// Promotion is NoKind unless a pawn reaches the final rank.
// Two moves are equal iff all three fields are equal.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// promotionKind maps a promotion letter to its piece kind.
func promotionKind(c byte) PieceKind {
	switch c {
	case 'n':
		return Knight
	case 'b':
		return Bishop
	case 'r':
		return Rook
	case 'q':
		return Queen
	default:
		return NoKind
	}
}

// promotionLetter maps a piece kind to its promotion letter.
func promotionLetter(kind PieceKind) byte {
	switch kind {
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	default:
		return 0
	}
}

// ParseMove converts the literal move form used by callers and tests:
// two algebraic squares plus an optional promotion letter, e.g. "e2e4"
// or "a7a8q".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	move := Move{From: from, To: to}
	if len(text) == 5 {
		move.Promotion = promotionKind(text[4])
		if move.Promotion == NoKind {
			return Move{}, fmt.Errorf("%q: bad promotion letter: %w", text, errors.ErrInvalidMove)
		}
	}
	return move, nil
}

// String returns the move in the same literal form ParseMove accepts.
func (m Move) String() string {
	text := m.From.String() + m.To.String()
	if c := promotionLetter(m.Promotion); c != 0 {
		text += string(c)
	}
	return text
}
