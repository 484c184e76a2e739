// Package chess provides the core chess value types: squares, pieces,
// moves and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceKind represents a chess piece type, independent of colour.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Piece is a (kind, colour) pair packed into a single value.
// The zero value Empty means an unoccupied square.
type Piece int

// Empty is the empty square value.
const Empty Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece of the given kind.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece of the given kind.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece type from a coloured piece.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Colour extracts the colour from a coloured piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// String returns the string representation of a piece, e.g. "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}
