package chess

// CastlingRights is a set of the four per-side, per-wing castling flags.
type CastlingRights int

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// NoCastling is the empty rights set.
const NoCastling CastlingRights = 0

// Has reports whether all of the given flags are held.
func (r CastlingRights) Has(flags CastlingRights) bool {
	return r&flags == flags
}

// With returns the rights with the given flags added.
func (r CastlingRights) With(flags CastlingRights) CastlingRights {
	return r | flags
}

// Without returns the rights with the given flags removed.
func (r CastlingRights) Without(flags CastlingRights) CastlingRights {
	return r &^ flags
}

// String returns the FEN-style rights field, "KQkq" down to "-".
func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	var buf []byte
	if r.Has(WhiteKingside) {
		buf = append(buf, 'K')
	}
	if r.Has(WhiteQueenside) {
		buf = append(buf, 'Q')
	}
	if r.Has(BlackKingside) {
		buf = append(buf, 'k')
	}
	if r.Has(BlackQueenside) {
		buf = append(buf, 'q')
	}
	return string(buf)
}

// Position is a full game state snapshot. It is a plain value type:
// assignment clones it and == is structural equality. The rule engine
// never mutates a caller's Position, it produces new values.
type Position struct {
	// Board holds the piece on each square, indexed by Square.
	Board [64]Piece

	// SideToMove has the next move.
	SideToMove Colour

	// Castling holds the remaining castling rights.
	Castling CastlingRights

	// EnPassant is the square passed over by a double pawn push on the
	// immediately preceding move, or NoSquare.
	EnPassant Square

	// HalfmoveClock counts half-moves since the last pawn move or capture.
	HalfmoveClock int

	// FullmoveNumber starts at 1 and increments after each black move.
	FullmoveNumber int
}

// PieceAt returns the piece on the given square, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Board[sq]
}

// SetPiece places a piece on the given square.
func (p *Position) SetPiece(sq Square, piece Piece) {
	if sq.Valid() {
		p.Board[sq] = piece
	}
}

// KingSquare returns the square of the given colour's king, or NoSquare
// if that king is absent.
func (p *Position) KingSquare(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); sq < 64; sq++ {
		if p.Board[sq] == king {
			return sq
		}
	}
	return NoSquare
}
