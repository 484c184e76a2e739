package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Bademeischta/Chess-GPT/internal/chess"
	"github.com/Bademeischta/Chess-GPT/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromFENChar converts a FEN letter to a coloured piece.
func pieceFromFENChar(c byte) (chess.Piece, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return chess.MakePiece(colour, chess.Pawn), true
	case 'N':
		return chess.MakePiece(colour, chess.Knight), true
	case 'B':
		return chess.MakePiece(colour, chess.Bishop), true
	case 'R':
		return chess.MakePiece(colour, chess.Rook), true
	case 'Q':
		return chess.MakePiece(colour, chess.Queen), true
	case 'K':
		return chess.MakePiece(colour, chess.King), true
	default:
		return chess.Empty, false
	}
}

// fenChar returns the FEN letter of a piece: uppercase for white,
// lowercase for black.
func fenChar(piece chess.Piece) byte {
	letters := [...]byte{chess.Pawn: 'P', chess.Knight: 'N', chess.Bishop: 'B', chess.Rook: 'R', chess.Queen: 'Q', chess.King: 'K'}
	c := letters[piece.Kind()]
	if piece.Colour() == chess.Black {
		c += 'a' - 'A'
	}
	return c
}

// ParseFEN builds a position from a FEN string. All six fields are
// required and validated; errors wrap errors.ErrInvalidFEN with detail
// and fail here, never deep inside move generation.
func ParseFEN(fen string) (chess.Position, error) {
	var pos chess.Position
	pos.EnPassant = chess.NoSquare

	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return pos, errors.Wrapf(errors.ErrInvalidFEN, "expected 6 fields, got %d", len(parts))
	}

	if err := parsePlacement(&pos, parts[0]); err != nil {
		return pos, err
	}
	switch parts[1] {
	case "w":
		pos.SideToMove = chess.White
	case "b":
		pos.SideToMove = chess.Black
	default:
		return pos, errors.Wrapf(errors.ErrInvalidFEN, "bad side to move %q", parts[1])
	}

	rights, err := parseCastlingRights(parts[2])
	if err != nil {
		return pos, err
	}
	pos.Castling = rights

	if parts[3] != "-" {
		target, err := chess.ParseSquare(parts[3])
		if err != nil {
			return pos, errors.Wrapf(errors.ErrInvalidFEN, "bad en passant square %q", parts[3])
		}
		pos.EnPassant = target
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return pos, errors.Wrapf(errors.ErrInvalidFEN, "bad halfmove clock %q", parts[4])
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return pos, errors.Wrapf(errors.ErrInvalidFEN, "bad fullmove number %q", parts[5])
	}
	pos.FullmoveNumber = fullmove

	return pos, nil
}

// parsePlacement parses the piece placement field, one row per rank from
// rank 8 down, each row covering exactly eight files.
func parsePlacement(pos *chess.Position, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return errors.Wrapf(errors.ErrInvalidFEN, "expected 8 ranks, got %d", len(rows))
	}
	for row, text := range rows {
		file := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceFromFENChar(c)
			if !ok {
				return errors.Wrapf(errors.ErrInvalidFEN, "bad piece character %q", c)
			}
			if file >= chess.BoardSize {
				return errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", chess.BoardSize-row)
			}
			pos.SetPiece(chess.MakeSquare(file, row), piece)
			file++
		}
		if file != chess.BoardSize {
			return errors.Wrapf(errors.ErrInvalidFEN, "rank %d covers %d files", chess.BoardSize-row, file)
		}
	}
	return nil
}

// parseCastlingRights parses the rights field, "-" or a subset of "KQkq".
func parseCastlingRights(text string) (chess.CastlingRights, error) {
	rights := chess.NoCastling
	if text == "-" {
		return rights, nil
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'K':
			rights = rights.With(chess.WhiteKingside)
		case 'Q':
			rights = rights.With(chess.WhiteQueenside)
		case 'k':
			rights = rights.With(chess.BlackKingside)
		case 'q':
			rights = rights.With(chess.BlackQueenside)
		default:
			return rights, errors.Wrapf(errors.ErrInvalidFEN, "bad castling rights %q", text)
		}
	}
	return rights, nil
}

// FEN renders the position as a FEN string. It round-trips losslessly
// through ParseFEN.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Board[chess.MakeSquare(file, row)]
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(fenChar(piece))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if pos.SideToMove == chess.Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s %s %s %d %d", side, pos.Castling, pos.EnPassant, pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	pos, err := ParseFEN(InitialFEN)
	if err != nil {
		panic(err)
	}
	return pos
}
