package chess

import (
	"fmt"
	"strings"
)

type square struct {
	piece     Piece
	enPassant bool
}

// Board is a single game position. It is not safe for concurrent use; a
// session owning the board must serialize callers.
type Board struct {
	squares  [64]square
	turn     Color
	halfMove int
	fullMove int
}

// Placement puts Piece on Cell.
type Placement struct {
	Cell  Cell
	Piece Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns an empty board.
func NewBoard(turn Color, halfMove, fullMove int) *Board {
	return &Board{turn: turn, halfMove: halfMove, fullMove: fullMove}
}

// NewStandardBoard returns the opening position with white to move.
func NewStandardBoard() *Board {
	b := NewBoard(White, 0, 1)
	for file := 1; file <= 8; file++ {
		b.Place(MustCell(file, 1), NewPiece(White, backRank[file-1]))
		b.Place(MustCell(file, 2), NewPiece(White, Pawn))
		b.Place(MustCell(file, 7), NewPiece(Black, Pawn))
		b.Place(MustCell(file, 8), NewPiece(Black, backRank[file-1]))
	}
	return b
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Turn() Color   { return b.turn }
func (b *Board) HalfMove() int { return b.halfMove }
func (b *Board) FullMove() int { return b.fullMove }

// Piece returns the occupant of c.
func (b *Board) Piece(c Cell) (Piece, bool) {
	if !c.Valid() {
		return Piece{}, false
	}
	p := b.squares[c.index()].piece
	return p, !p.Empty()
}

func (b *Board) at(c Cell) Piece {
	return b.squares[c.index()].piece
}

// EnPassantEligible reports whether the previous move skipped over c with a
// two step pawn advance.
func (b *Board) EnPassantEligible(c Cell) bool {
	return c.Valid() && b.squares[c.index()].enPassant
}

func (b *Board) enPassantCell() (Cell, bool) {
	for i := range b.squares {
		if b.squares[i].enPassant {
			return cellAt(i), true
		}
	}
	return Cell{}, false
}

func (b *Board) clearEnPassant() {
	for i := range b.squares {
		b.squares[i].enPassant = false
	}
}

// Place sets the occupant of c, replacing whatever was there. An empty
// piece clears the cell.
func (b *Board) Place(c Cell, p Piece) {
	b.squares[c.index()].piece = p
}

// Occupied returns every occupied cell in AllCells order.
func (b *Board) Occupied() []Placement {
	out := make([]Placement, 0, 32)
	for i, sq := range b.squares {
		if !sq.piece.Empty() {
			out = append(out, Placement{Cell: cellAt(i), Piece: sq.piece})
		}
	}
	return out
}

// Load replaces the board contents with a decoded position and validates it.
// On error b is left unchanged.
func (b *Board) Load(pos Position) error {
	var next Board
	if err := next.load(pos); err != nil {
		return err
	}
	*b = next
	return nil
}

func (b *Board) load(pos Position) error {
	*b = Board{turn: pos.Turn, halfMove: pos.HalfMove, fullMove: pos.FullMove}
	for _, pl := range pos.Placements {
		if !pl.Cell.Valid() {
			return fmt.Errorf("%w: placement on %v", ErrInvalidCoordinate, pl.Cell)
		}
		if !b.at(pl.Cell).Empty() {
			return fmt.Errorf("%w: two pieces on %v", ErrInvalidBoardState, pl.Cell)
		}
		p := pl.Piece
		switch p.Type {
		case King:
			home := homeRank(p.Color)
			p.Moved = pl.Cell != MustCell(5, home) ||
				!(pos.Castling.Has(castlingRight(p.Color, true)) || pos.Castling.Has(castlingRight(p.Color, false)))
		case Rook:
			home := homeRank(p.Color)
			switch pl.Cell {
			case MustCell(8, home):
				p.Moved = !pos.Castling.Has(castlingRight(p.Color, true))
			case MustCell(1, home):
				p.Moved = !pos.Castling.Has(castlingRight(p.Color, false))
			default:
				p.Moved = true
			}
		}
		b.Place(pl.Cell, p)
	}
	if pos.EnPassant.Valid() {
		want := 6
		if pos.Turn == Black {
			want = 3
		}
		if pos.EnPassant.Rank() != want || !b.at(pos.EnPassant).Empty() {
			return fmt.Errorf("%w: en passant target %v", ErrInvalidBoardState, pos.EnPassant)
		}
		b.squares[pos.EnPassant.index()].enPassant = true
	}
	return b.Validate()
}

// FromFEN decodes fen into a new board.
func FromFEN(fen string) (*Board, error) {
	pos, err := DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	b := &Board{}
	if err := b.Load(pos); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that each side has exactly one king and that the side
// not to move is not in check.
func (b *Board) Validate() error {
	for _, color := range []Color{White, Black} {
		count := 0
		for _, sq := range b.squares {
			if sq.piece.Type == King && sq.piece.Color == color {
				count++
			}
		}
		if count != 1 {
			return fmt.Errorf("%w: %d %s kings", ErrInvalidBoardState, count, color)
		}
	}
	for file := 1; file <= 8; file++ {
		for _, rank := range []int{1, 8} {
			if b.at(MustCell(file, rank)).Type == Pawn {
				return fmt.Errorf("%w: pawn on %v", ErrInvalidBoardState, MustCell(file, rank))
			}
		}
	}
	if b.IsCheck(b.turn.Opponent()) {
		return fmt.Errorf("%w: %s is in check but not to move", ErrInvalidBoardState, b.turn.Opponent())
	}
	return nil
}

func (b *Board) kingCell(color Color) (Cell, error) {
	for i, sq := range b.squares {
		if sq.piece.Type == King && sq.piece.Color == color {
			return cellAt(i), nil
		}
	}
	return Cell{}, fmt.Errorf("%w: no %s king", ErrInvalidBoardState, color)
}

func homeRank(color Color) int {
	if color == White {
		return 1
	}
	return 8
}

// CastlingRights derives the FEN castling field from the moved flags.
func (b *Board) CastlingRights() CastlingRights {
	var rights CastlingRights
	for _, color := range []Color{White, Black} {
		home := homeRank(color)
		k := b.at(MustCell(5, home))
		if k.Type != King || k.Color != color || k.Moved {
			continue
		}
		if r := b.at(MustCell(8, home)); r.Type == Rook && r.Color == color && !r.Moved {
			rights |= castlingRight(color, true)
		}
		if r := b.at(MustCell(1, home)); r.Type == Rook && r.Color == color && !r.Moved {
			rights |= castlingRight(color, false)
		}
	}
	return rights
}

// String draws the board from white's side, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		for file := 1; file <= 8; file++ {
			sb.WriteRune(b.at(MustCell(file, rank)).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
