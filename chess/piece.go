package chess

import "unicode"

// Color color.
type Color uint8

const (
	White Color = iota
	Black
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// ParseColor accepts "white"/"w" and "black"/"b".
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return White, false
}

// PieceType is the tag of the piece union.
type PieceType uint8

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceTypeToLetter = map[PieceType]rune{
	Pawn:   'p',
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
	King:   'k',
}

var letterToPieceType = map[rune]PieceType{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// Letter is the upper case SAN letter, empty for pawns.
func (t PieceType) Letter() string {
	if t == Pawn || t == NoPiece {
		return ""
	}
	return string(unicode.ToUpper(pieceTypeToLetter[t]))
}

// ParsePieceType reads a single FEN/SAN letter in either case.
func ParsePieceType(r rune) (PieceType, bool) {
	t, ok := letterToPieceType[unicode.ToLower(r)]
	return t, ok
}

func (t PieceType) promotable() bool {
	return t == Knight || t == Bishop || t == Rook || t == Queen
}

// Piece is owned by exactly one cell. Moved is only consulted for kings
// and rooks when deciding castling eligibility.
type Piece struct {
	Color Color
	Type  PieceType
	Moved bool
}

// NewPiece returns an unmoved piece.
func NewPiece(color Color, t PieceType) Piece {
	return Piece{Color: color, Type: t}
}

// Empty reports whether p is the zero piece.
func (p Piece) Empty() bool {
	return p.Type == NoPiece
}

// Rune is the FEN letter: upper case for white.
func (p Piece) Rune() rune {
	r, ok := pieceTypeToLetter[p.Type]
	if !ok {
		return '.'
	}
	if p.Color == White {
		return unicode.ToUpper(r)
	}
	return r
}

func (p Piece) String() string {
	return string(p.Rune())
}
