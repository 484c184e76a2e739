// Package engine implements the chess rule engine: attack detection,
// move generation, legality filtering, move application and terminal
// state queries. All functions are pure computations over Position
// values; nothing here keeps state or mutates a caller's position.
package engine

import (
	"github.com/Bademeischta/Chess-GPT/internal/chess"
	"github.com/Bademeischta/Chess-GPT/internal/errors"
)

// Apply applies a move to the position and returns the resulting position
// as a new value. The input position is never modified. Apply does not
// verify legality; that is LegalMoves' job. It fails only if the from
// square holds no piece.
func Apply(pos *chess.Position, move chess.Move) (chess.Position, error) {
	next := *pos
	piece := next.PieceAt(move.From)
	if piece == chess.Empty {
		return chess.Position{}, errors.Wrapf(errors.ErrInvalidMove, "no piece on %s", move.From)
	}
	colour := piece.Colour()
	kind := piece.Kind()

	// A move captures if the destination is occupied, or if a pawn moves
	// diagonally onto the en passant target. The en passant victim sits
	// behind the target square, not on it.
	capture := next.PieceAt(move.To) != chess.Empty
	if kind == chess.Pawn && move.To == pos.EnPassant && !capture && move.From.File() != move.To.File() {
		victim := chess.MakeSquare(move.To.File(), move.To.Row()-pawnDir(colour))
		next.SetPiece(victim, chess.Empty)
		capture = true
	}

	// Relocate the piece, promoting a pawn that reaches its final rank.
	// With no promotion kind supplied the pawn is left unpromoted; this
	// mirrors literal piece placement and is deliberate.
	next.SetPiece(move.From, chess.Empty)
	placed := piece
	if kind == chess.Pawn && move.To.Row() == promotionRow(colour) {
		switch move.Promotion {
		case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
			placed = chess.MakePiece(colour, move.Promotion)
		}
	}
	next.SetPiece(move.To, placed)

	// A king moving two files is a castle: drag the rook to the square
	// beside the king's destination and drop both of that side's rights.
	if kind == chess.King {
		fileDelta := move.To.File() - move.From.File()
		if fileDelta == 2 || fileDelta == -2 {
			row := move.From.Row()
			var rookFrom, rookTo chess.Square
			if fileDelta > 0 {
				rookFrom = chess.MakeSquare(chess.BoardSize-1, row)
				rookTo = chess.MakeSquare(5, row)
			} else {
				rookFrom = chess.MakeSquare(0, row)
				rookTo = chess.MakeSquare(3, row)
			}
			next.SetPiece(rookTo, next.PieceAt(rookFrom))
			next.SetPiece(rookFrom, chess.Empty)
		}
		if colour == chess.White {
			next.Castling = next.Castling.Without(chess.WhiteKingside | chess.WhiteQueenside)
		} else {
			next.Castling = next.Castling.Without(chess.BlackKingside | chess.BlackQueenside)
		}
	}

	// A rook home square as origin or destination of any move drops that
	// wing's right, covering both a rook moving and a rook being captured.
	for _, sq := range [2]chess.Square{move.From, move.To} {
		switch sq {
		case squareA1:
			next.Castling = next.Castling.Without(chess.WhiteQueenside)
		case squareH1:
			next.Castling = next.Castling.Without(chess.WhiteKingside)
		case squareA8:
			next.Castling = next.Castling.Without(chess.BlackQueenside)
		case squareH8:
			next.Castling = next.Castling.Without(chess.BlackKingside)
		}
	}

	// The en passant window lasts exactly one ply: set it on a double
	// pawn push, clear it on everything else.
	next.EnPassant = chess.NoSquare
	if kind == chess.Pawn {
		rowDelta := move.To.Row() - move.From.Row()
		if rowDelta == 2 || rowDelta == -2 {
			next.EnPassant = chess.MakeSquare(move.From.File(), (move.From.Row()+move.To.Row())/2)
		}
	}

	if kind == chess.Pawn || capture {
		next.HalfmoveClock = 0
	} else {
		next.HalfmoveClock++
	}
	if colour == chess.Black {
		next.FullmoveNumber++
	}
	next.SideToMove = colour.Opposite()

	return next, nil
}
