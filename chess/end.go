package chess

// EndType classifies how, if at all, a game has finished.
type EndType uint8

const (
	NotEnded EndType = iota
	Checkmate
	Stalemate
	DeadPosition
	ThreefoldRepetition
	Resignation
	MutualDraw
	FiftyMoveRule
)

var endTypeNames = map[EndType]string{
	NotEnded:            "NotEnded",
	Checkmate:           "Checkmate",
	Stalemate:           "Stalemate",
	DeadPosition:        "DeadPosition",
	ThreefoldRepetition: "ThreefoldRepetition",
	Resignation:         "Resignation",
	MutualDraw:          "MutualDraw",
	FiftyMoveRule:       "FiftyMoveRule",
}

func (e EndType) String() string {
	return endTypeNames[e]
}

// ParseEndType is the inverse of String.
func ParseEndType(s string) (EndType, bool) {
	for e, name := range endTypeNames {
		if name == s {
			return e, true
		}
	}
	return NotEnded, false
}

// Decisive reports whether e has a winner.
func (e EndType) Decisive() bool {
	return e == Checkmate || e == Resignation
}

// IsCheck reports whether color's king is on a cell some opposing piece
// could move to. A board without that king is never in check.
func (b *Board) IsCheck(color Color) bool {
	king, err := b.kingCell(color)
	if err != nil {
		return false
	}
	for i, sq := range b.squares {
		if sq.piece.Empty() || sq.piece.Color == color {
			continue
		}
		if b.destinations(cellAt(i), false).Has(king) {
			return true
		}
	}
	return false
}

// AvailableDestinationsCheckSafe is AvailableDestinations minus the moves
// that would leave the mover's king in check.
func (b *Board) AvailableDestinationsCheckSafe(from Cell) CellSet {
	var safe CellSet
	for _, to := range b.AvailableDestinations(from).Cells() {
		if b.at(to).Type == King {
			continue
		}
		if !b.exposesKing(from, to) {
			safe = safe.Add(to)
		}
	}
	return safe
}

// PlayerHasNoLegalMoves reports whether every move available to color
// would leave its king in check.
func (b *Board) PlayerHasNoLegalMoves(color Color) bool {
	for i, sq := range b.squares {
		if sq.piece.Empty() || sq.piece.Color != color {
			continue
		}
		if b.AvailableDestinationsCheckSafe(cellAt(i)).Len() > 0 {
			return false
		}
	}
	return true
}

// EndType classifies the position for color, the side to move. history
// holds the FEN of every position of the game, current one included.
func (b *Board) EndType(color Color, history []string) (EndType, error) {
	if _, err := b.kingCell(color); err != nil {
		return NotEnded, err
	}
	if _, err := b.kingCell(color.Opponent()); err != nil {
		return NotEnded, err
	}
	if b.PlayerHasNoLegalMoves(color) {
		if b.IsCheck(color) {
			return Checkmate, nil
		}
		return Stalemate, nil
	}
	if b.IsDeadPosition() {
		return DeadPosition, nil
	}
	if Repeated(history, 3) {
		return ThreefoldRepetition, nil
	}
	return NotEnded, nil
}

// IsDeadPosition reports insufficient mating material: kings with at most
// one minor piece, or one bishop each on the same colour of square.
func (b *Board) IsDeadPosition() bool {
	var minors []Placement
	for _, pl := range b.Occupied() {
		switch pl.Piece.Type {
		case Rook, Queen, Pawn:
			return false
		case Bishop, Knight:
			minors = append(minors, pl)
		}
	}
	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		x, y := minors[0], minors[1]
		return x.Piece.Type == Bishop && y.Piece.Type == Bishop &&
			x.Piece.Color != y.Piece.Color &&
			x.Cell.Light() == y.Cell.Light()
	}
	return false
}

// Repeated reports whether any canonical position in history occurs at
// least n times.
func Repeated(history []string, n int) bool {
	counts := make(map[string]int, len(history))
	for _, fen := range history {
		key := CanonicalKey(fen)
		counts[key]++
		if counts[key] >= n {
			return true
		}
	}
	return false
}
