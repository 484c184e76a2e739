package engine

import "github.com/Bademeischta/Chess-GPT/internal/chess"

// Movement offsets as (row, file) deltas. Rows grow downward, from
// rank 8 toward rank 1.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	bishopOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookOffsets   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pawnDir returns the row delta of a colour's forward pawn step.
// White pawns move toward row 0 (rank 8).
func pawnDir(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

func onBoard(row, file int) bool {
	return row >= 0 && row < chess.BoardSize && file >= 0 && file < chess.BoardSize
}

// IsSquareAttacked reports whether byColour has at least one piece that
// could capture on sq on its next move, ignoring whose turn it is.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	row, file := sq.Row(), sq.File()

	// Pawn attackers sit on the two diagonal squares behind the target,
	// relative to their forward direction.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	pawnRow := row - pawnDir(byColour)
	for df := -1; df <= 1; df += 2 {
		if onBoard(pawnRow, file+df) && pos.Board[chess.MakeSquare(file+df, pawnRow)] == pawn {
			return true
		}
	}

	// Knight attackers.
	knight := chess.MakePiece(byColour, chess.Knight)
	for _, d := range knightOffsets {
		r, f := row+d[0], file+d[1]
		if onBoard(r, f) && pos.Board[chess.MakeSquare(f, r)] == knight {
			return true
		}
	}

	// Bishop or queen along diagonal rays; any piece blocks the ray.
	bishop := chess.MakePiece(byColour, chess.Bishop)
	queen := chess.MakePiece(byColour, chess.Queen)
	for _, d := range bishopOffsets {
		r, f := row+d[0], file+d[1]
		for onBoard(r, f) {
			piece := pos.Board[chess.MakeSquare(f, r)]
			if piece != chess.Empty {
				if piece == bishop || piece == queen {
					return true
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}

	// Rook or queen along orthogonal rays.
	rook := chess.MakePiece(byColour, chess.Rook)
	for _, d := range rookOffsets {
		r, f := row+d[0], file+d[1]
		for onBoard(r, f) {
			piece := pos.Board[chess.MakeSquare(f, r)]
			if piece != chess.Empty {
				if piece == rook || piece == queen {
					return true
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}

	// The enemy king.
	king := chess.MakePiece(byColour, chess.King)
	for _, d := range kingOffsets {
		r, f := row+d[0], file+d[1]
		if onBoard(r, f) && pos.Board[chess.MakeSquare(f, r)] == king {
			return true
		}
	}

	return false
}

// IsInCheck reports whether the given colour's king is attacked.
// A missing king reports false rather than an error; partially
// constructed positions occur in test fixtures.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.KingSquare(colour)
	if king == chess.NoSquare {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}
