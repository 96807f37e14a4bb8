package chess

import (
	"fmt"
	"strings"
)

// Algebraic renders the move from to to in standard algebraic notation,
// given the board immediately before and after it was played.
func Algebraic(before, after *Board, from, to Cell) (string, error) {
	p, ok := before.Piece(from)
	if !ok {
		return "", fmt.Errorf("%w: %v", ErrEmptySourceCell, from)
	}
	if !to.Valid() {
		return "", fmt.Errorf("%w: %v", ErrInvalidCoordinate, to)
	}

	var sb strings.Builder
	switch before.classify(from, to, p) {
	case KingsideCastle:
		sb.WriteString("O-O")
	case QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		capture := !before.at(to).Empty() || before.classify(from, to, p) == EnPassant
		if p.Type == Pawn {
			if capture {
				sb.WriteByte(byte('a' + from.file - 1))
			}
		} else {
			sb.WriteString(p.Type.Letter())
			sb.WriteString(disambiguation(before, from, to, p))
		}
		if capture {
			sb.WriteByte('x')
		}
		sb.WriteString(to.String())
		if promoted, ok := after.Piece(to); ok && p.Type == Pawn && promoted.Type != Pawn {
			sb.WriteByte('=')
			sb.WriteString(promoted.Type.Letter())
		}
	}

	mover := after.Turn()
	if after.IsCheck(mover) {
		if after.PlayerHasNoLegalMoves(mover) {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String(), nil
}

// disambiguation returns the file, rank or both needed to tell from apart
// from other pieces of the same type that could also reach to.
func disambiguation(b *Board, from, to Cell, p Piece) string {
	var rivals []Cell
	for _, pl := range b.Occupied() {
		if pl.Cell == from || pl.Piece.Type != p.Type || pl.Piece.Color != p.Color {
			continue
		}
		if b.AvailableDestinationsCheckSafe(pl.Cell).Has(to) {
			rivals = append(rivals, pl.Cell)
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, c := range rivals {
		if c.file == from.file {
			sameFile = true
		}
		if c.rank == from.rank {
			sameRank = true
		}
	}
	file := string(rune('a' + from.file - 1))
	rank := fmt.Sprint(from.Rank())
	switch {
	case !sameFile:
		return file
	case !sameRank:
		return rank
	}
	return file + rank
}
