package engine

import "github.com/Bademeischta/Chess-GPT/internal/chess"

// Named home squares used by castling and rights bookkeeping.
const (
	squareA8 chess.Square = 0
	squareE8 chess.Square = 4
	squareH8 chess.Square = 7
	squareA1 chess.Square = 56
	squareE1 chess.Square = 60
	squareH1 chess.Square = 63
)

// promotionKinds lists the pieces a pawn may promote to, in the order
// promotion variants are generated.
var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// promotionRow returns the row a colour's pawns promote on.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return 0
	}
	return chess.BoardSize - 1
}

// pawnStartRow returns the row a colour's pawns start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BoardSize - 2
	}
	return 1
}

// PseudoLegalMoves enumerates every move the side to move could make by
// piece-movement rules alone, without testing whether the mover's own
// king is left in check. Moves come out in board scan order.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	colour := pos.SideToMove
	for sq := chess.Square(0); sq < 64; sq++ {
		piece := pos.Board[sq]
		if piece == chess.Empty || piece.Colour() != colour {
			continue
		}
		switch piece.Kind() {
		case chess.Pawn:
			moves = pawnMoves(pos, sq, colour, moves)
		case chess.Knight:
			moves = stepMoves(pos, sq, colour, knightOffsets[:], moves)
		case chess.Bishop:
			moves = slideMoves(pos, sq, colour, bishopOffsets[:], moves)
		case chess.Rook:
			moves = slideMoves(pos, sq, colour, rookOffsets[:], moves)
		case chess.Queen:
			moves = slideMoves(pos, sq, colour, bishopOffsets[:], moves)
			moves = slideMoves(pos, sq, colour, rookOffsets[:], moves)
		case chess.King:
			moves = stepMoves(pos, sq, colour, kingOffsets[:], moves)
			moves = castleMoves(pos, sq, colour, moves)
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes, captures and en passant,
// expanding final-rank moves into the four promotion variants.
func pawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := pawnDir(colour)
	row, file := from.Row(), from.File()
	promoRow := promotionRow(colour)

	// Forward pushes need an empty destination.
	if r := row + dir; onBoard(r, file) {
		to := chess.MakeSquare(file, r)
		if pos.Board[to] == chess.Empty {
			moves = appendPawnMove(moves, from, to, r == promoRow)
			if row == pawnStartRow(colour) {
				to2 := chess.MakeSquare(file, r+dir)
				if pos.Board[to2] == chess.Empty {
					moves = append(moves, chess.Move{From: from, To: to2})
				}
			}
		}
	}

	// Diagonal captures, including onto the en passant target.
	for df := -1; df <= 1; df += 2 {
		r, f := row+dir, file+df
		if !onBoard(r, f) {
			continue
		}
		to := chess.MakeSquare(f, r)
		target := pos.Board[to]
		if target != chess.Empty && target.Colour() != colour {
			moves = appendPawnMove(moves, from, to, r == promoRow)
		} else if target == chess.Empty && to == pos.EnPassant {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

func appendPawnMove(moves []chess.Move, from, to chess.Square, promote bool) []chess.Move {
	if !promote {
		return append(moves, chess.Move{From: from, To: to})
	}
	for _, kind := range promotionKinds {
		moves = append(moves, chess.Move{From: from, To: to, Promotion: kind})
	}
	return moves
}

// stepMoves generates the fixed-offset moves of knights and kings onto
// empty or enemy-occupied squares.
func stepMoves(pos *chess.Position, from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	row, file := from.Row(), from.File()
	for _, d := range offsets {
		r, f := row+d[0], file+d[1]
		if !onBoard(r, f) {
			continue
		}
		to := chess.MakeSquare(f, r)
		target := pos.Board[to]
		if target == chess.Empty || target.Colour() != colour {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slideMoves walks each ray until blocked, including the blocking square
// only when it holds an enemy piece.
func slideMoves(pos *chess.Position, from chess.Square, colour chess.Colour, dirs [][2]int, moves []chess.Move) []chess.Move {
	row, file := from.Row(), from.File()
	for _, d := range dirs {
		r, f := row+d[0], file+d[1]
		for onBoard(r, f) {
			to := chess.MakeSquare(f, r)
			target := pos.Board[to]
			if target != chess.Empty {
				if target.Colour() != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to})
			r += d[0]
			f += d[1]
		}
	}
	return moves
}

// castleMoves generates the king's two-square castling moves. The matching
// right must be held, the rook must sit on its home square, the squares
// between must be empty, and the king may not castle out of, through, or
// into an attacked square. Rook relocation happens in Apply.
func castleMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	home := squareE1
	kingside, queenside := chess.WhiteKingside, chess.WhiteQueenside
	if colour == chess.Black {
		home = squareE8
		kingside, queenside = chess.BlackKingside, chess.BlackQueenside
	}
	if from != home {
		return moves
	}
	opponent := colour.Opposite()
	rook := chess.MakePiece(colour, chess.Rook)

	if pos.Castling.Has(kingside) &&
		pos.Board[home+1] == chess.Empty && pos.Board[home+2] == chess.Empty &&
		pos.Board[home+3] == rook &&
		!IsInCheck(pos, colour) &&
		!IsSquareAttacked(pos, home+1, opponent) &&
		!IsSquareAttacked(pos, home+2, opponent) {
		moves = append(moves, chess.Move{From: home, To: home + 2})
	}

	if pos.Castling.Has(queenside) &&
		pos.Board[home-1] == chess.Empty && pos.Board[home-2] == chess.Empty &&
		pos.Board[home-3] == chess.Empty &&
		pos.Board[home-4] == rook &&
		!IsInCheck(pos, colour) &&
		!IsSquareAttacked(pos, home-1, opponent) &&
		!IsSquareAttacked(pos, home-2, opponent) {
		moves = append(moves, chess.Move{From: home, To: home - 2})
	}
	return moves
}
