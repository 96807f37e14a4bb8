package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard opening position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CastlingRights is the FEN castling field as a bit set.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

func castlingRight(color Color, kingside bool) CastlingRights {
	switch {
	case color == White && kingside:
		return WhiteKingside
	case color == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	}
	return BlackQueenside
}

// Has reports whether r includes right.
func (r CastlingRights) Has(right CastlingRights) bool {
	return r&right != 0
}

func (r CastlingRights) String() string {
	var sb strings.Builder
	for _, l := range castlingLetters {
		if r.Has(l.right) {
			sb.WriteByte(l.letter)
		}
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

func parseCastlingRights(s string) (CastlingRights, error) {
	if s == "-" {
		return 0, nil
	}
	var rights CastlingRights
outer:
	for i := 0; i < len(s); i++ {
		for _, l := range castlingLetters {
			if s[i] == l.letter && !rights.Has(l.right) {
				rights |= l.right
				continue outer
			}
		}
		return 0, fmt.Errorf("%w: castling field %q", ErrInvalidFEN, s)
	}
	return rights, nil
}

// Position is a decoded FEN record.
type Position struct {
	Placements []Placement
	Turn       Color
	Castling   CastlingRights
	EnPassant  Cell
	HalfMove   int
	FullMove   int
}

// DecodeFEN parses a FEN record. The placement and side to move fields are
// required; the rest default to "- - 0 1".
func DecodeFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 || len(fields) > 6 {
		return Position{}, fmt.Errorf("%w: %d fields", ErrInvalidFEN, len(fields))
	}
	defaults := []string{"-", "-", "0", "1"}
	fields = append(fields, defaults[len(fields)-2:]...)

	pos := Position{}
	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return Position{}, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(rows))
	}
	for i, row := range rows {
		rank := 8 - i
		file := 1
		for _, ch := range row {
			if file > 8 {
				return Position{}, fmt.Errorf("%w: rank %d too long", ErrInvalidFEN, rank)
			}
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			t, ok := ParsePieceType(ch)
			if !ok {
				return Position{}, fmt.Errorf("%w: piece %q", ErrInvalidFEN, ch)
			}
			color := Black
			if ch >= 'A' && ch <= 'Z' {
				color = White
			}
			pos.Placements = append(pos.Placements, Placement{Cell: MustCell(file, rank), Piece: NewPiece(color, t)})
			file++
		}
		if file != 9 {
			return Position{}, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank, file-1)
		}
	}

	switch fields[1] {
	case "w":
		pos.Turn = White
	case "b":
		pos.Turn = Black
	default:
		return Position{}, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return Position{}, err
	}
	pos.Castling = rights

	if fields[3] != "-" {
		c, err := ParseCell(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: en passant %q", ErrInvalidFEN, fields[3])
		}
		pos.EnPassant = c
	}

	if pos.HalfMove, err = strconv.Atoi(fields[4]); err != nil || pos.HalfMove < 0 {
		return Position{}, fmt.Errorf("%w: half move %q", ErrInvalidFEN, fields[4])
	}
	if pos.FullMove, err = strconv.Atoi(fields[5]); err != nil || pos.FullMove < 1 {
		return Position{}, fmt.Errorf("%w: full move %q", ErrInvalidFEN, fields[5])
	}
	return pos, nil
}

// EncodeFEN serializes b.
func EncodeFEN(b *Board) string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			p := b.at(MustCell(file, rank))
			if p.Empty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(b.CastlingRights().String())
	sb.WriteByte(' ')
	if c, ok := b.enPassantCell(); ok {
		sb.WriteString(c.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", b.halfMove, b.fullMove)
	return sb.String()
}

// FEN is EncodeFEN(b).
func (b *Board) FEN() string {
	return EncodeFEN(b)
}

// CanonicalKey keeps placement, side to move, castling and en passant,
// dropping the move counters so repeated positions compare equal.
func CanonicalKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
