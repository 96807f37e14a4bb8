package chess

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// AvailableDestinations returns the cells the piece on from could move to,
// ignoring whether the move would leave its own king in check. An empty
// cell has no destinations.
func (b *Board) AvailableDestinations(from Cell) CellSet {
	if !from.Valid() {
		return 0
	}
	return b.destinations(from, true)
}

// destinations dispatches on the piece tag. Castling is left out when
// computing attacks, both because a castling king never captures and
// because the castling path test itself asks which cells are attacked.
func (b *Board) destinations(from Cell, castling bool) CellSet {
	p := b.at(from)
	switch p.Type {
	case Pawn:
		return b.movesForPawn(from, p)
	case Knight:
		return b.movesForKnight(from, p)
	case Bishop:
		return b.movesForSlider(from, p, diagonals)
	case Rook:
		return b.movesForSlider(from, p, orthogonals)
	case Queen:
		return b.movesForSlider(from, p, Directions)
	case King:
		moves := b.movesForKing(from, p)
		if castling {
			moves |= b.castlingForKing(from, p)
		}
		return moves
	}
	return 0
}

func (b *Board) friendly(c Cell, color Color) bool {
	p := b.at(c)
	return !p.Empty() && p.Color == color
}

func (b *Board) hostile(c Cell, color Color) bool {
	p := b.at(c)
	return !p.Empty() && p.Color != color
}

func forward(color Color) int {
	if color == White {
		return 1
	}
	return -1
}

func pawnRank(color Color) int {
	if color == White {
		return 2
	}
	return 7
}

func (b *Board) movesForPawn(from Cell, p Piece) CellSet {
	var moves CellSet
	dr := forward(p.Color)
	if one, ok := from.offset(0, dr); ok && b.at(one).Empty() {
		moves = moves.Add(one)
		if two, ok := from.offset(0, 2*dr); ok && from.Rank() == pawnRank(p.Color) && b.at(two).Empty() {
			moves = moves.Add(two)
		}
	}
	for _, df := range []int{-1, 1} {
		dest, ok := from.offset(df, dr)
		if !ok {
			continue
		}
		if b.hostile(dest, p.Color) {
			moves = moves.Add(dest)
			continue
		}
		if b.enPassantCapture(from, dest, p.Color) {
			moves = moves.Add(dest)
		}
	}
	return moves
}

// enPassantCapture reports whether a pawn of color on from may take en
// passant by landing on dest. The captured pawn stands beside from, on
// dest's file.
func (b *Board) enPassantCapture(from, dest Cell, color Color) bool {
	if !b.EnPassantEligible(dest) || !b.at(dest).Empty() {
		return false
	}
	victim := b.at(Cell{file: dest.file, rank: from.rank})
	return victim.Type == Pawn && victim.Color != color
}

func (b *Board) movesForKnight(from Cell, p Piece) CellSet {
	var moves CellSet
	for _, o := range knightOffsets {
		if dest, ok := from.offset(o[0], o[1]); ok && !b.friendly(dest, p.Color) {
			moves = moves.Add(dest)
		}
	}
	return moves
}

func (b *Board) movesForSlider(from Cell, p Piece, dirs []Direction) CellSet {
	var moves CellSet
	for _, d := range dirs {
		for dest := range CellsInDirection(from, d) {
			if b.friendly(dest, p.Color) {
				break
			}
			moves = moves.Add(dest)
			if !b.at(dest).Empty() {
				break
			}
		}
	}
	return moves
}

func (b *Board) movesForKing(from Cell, p Piece) CellSet {
	var moves CellSet
	for _, d := range Directions {
		if dest, ok := from.Neighbor(d); ok && !b.friendly(dest, p.Color) {
			moves = moves.Add(dest)
		}
	}
	return moves
}

// castlingForKing returns the castling destinations, two files toward each
// eligible rook.
func (b *Board) castlingForKing(from Cell, p Piece) CellSet {
	home := homeRank(p.Color)
	if p.Moved || from != MustCell(5, home) {
		return 0
	}
	var moves CellSet
	for _, kingside := range []bool{true, false} {
		side := castlingSide(p.Color, kingside)
		rook := b.at(side.rookFrom)
		if rook.Type != Rook || rook.Color != p.Color || rook.Moved {
			continue
		}
		if !b.castlingPathClear(from, side) {
			continue
		}
		if b.castlingPathAttacked(from, side, p.Color) {
			continue
		}
		moves = moves.Add(side.kingTo)
	}
	return moves
}

func (b *Board) castlingPathClear(from Cell, side castling) bool {
	lo, hi := from.File(), side.rookFrom.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	for file := lo + 1; file < hi; file++ {
		if !b.at(MustCell(file, from.Rank())).Empty() {
			return false
		}
	}
	return true
}

// castlingPathAttacked places the king on its start, intermediate and end
// cells in turn and asks whether it would be in check there.
func (b *Board) castlingPathAttacked(from Cell, side castling, color Color) bool {
	if b.IsCheck(color) {
		return true
	}
	for _, step := range []Cell{side.rookTo, side.kingTo} {
		attacked := false
		b.simulate(from, step, func() {
			attacked = b.IsCheck(color)
		})
		if attacked {
			return true
		}
	}
	return false
}
