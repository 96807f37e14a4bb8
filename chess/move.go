package chess

import "fmt"

// MoveType is derived from the board just before a move is applied.
type MoveType uint8

const (
	Normal MoveType = iota
	EnPassant
	KingsideCastle
	QueensideCastle
)

func (t MoveType) String() string {
	switch t {
	case EnPassant:
		return "en passant"
	case KingsideCastle:
		return "O-O"
	case QueensideCastle:
		return "O-O-O"
	}
	return "normal"
}

// Move describes an applied move.
type Move struct {
	From      Cell
	To        Cell
	Piece     Piece
	Type      MoveType
	Captured  Piece
	Promotion PieceType
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(pieceTypeToLetter[m.Promotion])
	}
	return s
}

type castling struct {
	kingTo   Cell
	rookFrom Cell
	rookTo   Cell
}

func castlingSide(color Color, kingside bool) castling {
	home := homeRank(color)
	if kingside {
		return castling{kingTo: MustCell(7, home), rookFrom: MustCell(8, home), rookTo: MustCell(6, home)}
	}
	return castling{kingTo: MustCell(3, home), rookFrom: MustCell(1, home), rookTo: MustCell(4, home)}
}

// simulate relocates the piece on from to to, including the en passant
// victim, runs fn and restores the board.
func (b *Board) simulate(from, to Cell, fn func()) {
	saved := b.squares
	defer func() { b.squares = saved }()
	p := b.at(from)
	if p.Type == Pawn && b.enPassantCapture(from, to, p.Color) {
		b.Place(Cell{file: to.file, rank: from.rank}, Piece{})
	}
	b.Place(to, p)
	b.Place(from, Piece{})
	fn()
}

// exposesKing reports whether moving from to to leaves the mover's own
// king in check.
func (b *Board) exposesKing(from, to Cell) bool {
	color := b.at(from).Color
	exposed := false
	b.simulate(from, to, func() {
		exposed = b.IsCheck(color)
	})
	return exposed
}

func (b *Board) classify(from, to Cell, p Piece) MoveType {
	switch p.Type {
	case King:
		switch to.File() - from.File() {
		case 2:
			return KingsideCastle
		case -2:
			return QueensideCastle
		}
	case Pawn:
		if from.file != to.file && b.enPassantCapture(from, to, p.Color) {
			return EnPassant
		}
	}
	return Normal
}

// MovePiece moves from to to, promoting to a queen when a pawn reaches the
// last rank.
func (b *Board) MovePiece(from, to Cell) (Move, error) {
	return b.Move(from, to, Queen)
}

// Move validates and applies a move. Validation failures return a wrapped
// sentinel error and leave the board unchanged. promotion is only consulted
// when a pawn reaches the last rank.
func (b *Board) Move(from, to Cell, promotion PieceType) (Move, error) {
	if !from.Valid() || !to.Valid() {
		return Move{}, fmt.Errorf("%w: %v to %v", ErrInvalidCoordinate, from, to)
	}
	p := b.at(from)
	if p.Empty() {
		return Move{}, fmt.Errorf("%w: %v", ErrEmptySourceCell, from)
	}
	if p.Color != b.turn {
		return Move{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, b.turn)
	}
	if !b.destinations(from, true).Has(to) || b.at(to).Type == King {
		return Move{}, fmt.Errorf("%w: %v%v", ErrIllegalDestination, from, to)
	}
	promotes := p.Type == Pawn && to.Rank() == homeRank(p.Color.Opponent())
	if promotes && !promotion.promotable() {
		return Move{}, fmt.Errorf("%w: %s", ErrInvalidPromotion, promotion)
	}
	if _, err := b.kingCell(p.Color); err != nil {
		return Move{}, err
	}
	if b.exposesKing(from, to) {
		return Move{}, fmt.Errorf("%w: %v%v", ErrMoveExposesKing, from, to)
	}

	m := Move{From: from, To: to, Piece: p, Type: b.classify(from, to, p)}
	if promotes {
		m.Promotion = promotion
	}
	b.apply(&m)
	return m, nil
}

func (b *Board) relocate(from, to Cell) {
	p := b.at(from)
	p.Moved = true
	b.Place(to, p)
	b.Place(from, Piece{})
}

func (b *Board) apply(m *Move) {
	b.clearEnPassant()
	switch m.Type {
	case KingsideCastle, QueensideCastle:
		side := castlingSide(m.Piece.Color, m.Type == KingsideCastle)
		b.relocate(m.From, side.kingTo)
		b.relocate(side.rookFrom, side.rookTo)
		b.halfMove++
	case EnPassant:
		victim := Cell{file: m.To.file, rank: m.From.rank}
		m.Captured = b.at(victim)
		b.Place(victim, Piece{})
		b.relocate(m.From, m.To)
		b.halfMove = 0
	default:
		m.Captured = b.at(m.To)
		b.relocate(m.From, m.To)
		if m.Promotion != NoPiece {
			b.Place(m.To, Piece{Color: m.Piece.Color, Type: m.Promotion, Moved: true})
		}
		if m.Piece.Type == Pawn || !m.Captured.Empty() {
			b.halfMove = 0
		} else {
			b.halfMove++
		}
		if m.Piece.Type == Pawn && (m.To.Rank()-m.From.Rank() == 2 || m.From.Rank()-m.To.Rank() == 2) {
			skipped := Cell{file: m.From.file, rank: (m.From.rank + m.To.rank) / 2}
			b.squares[skipped.index()].enPassant = true
		}
	}
	if b.turn == Black {
		b.fullMove++
	}
	b.turn = b.turn.Opponent()
}
