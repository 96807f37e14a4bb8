package chess

import (
	"fmt"
	"iter"
	"math/bits"
)

// Cell is a board square. Files and ranks both run 1..8, so the zero Cell
// is not on the board.
type Cell struct {
	file int8
	rank int8
}

// FindCell returns the cell at file, rank.
func FindCell(file, rank int) (Cell, error) {
	if file < 1 || file > 8 || rank < 1 || rank > 8 {
		return Cell{}, fmt.Errorf("%w: file %d rank %d", ErrInvalidCoordinate, file, rank)
	}
	return Cell{file: int8(file), rank: int8(rank)}, nil
}

// MustCell is FindCell for coordinates known to be valid.
func MustCell(file, rank int) Cell {
	c, err := FindCell(file, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCell reads coordinates like "e4".
func ParseCell(s string) (Cell, error) {
	if len(s) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	c, err := FindCell(int(s[0]-'a')+1, int(s[1]-'1')+1)
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return c, nil
}

func cellAt(index int) Cell {
	return Cell{file: int8(index%8 + 1), rank: int8(index/8 + 1)}
}

// File is 1 for the a-file.
func (c Cell) File() int { return int(c.file) }

// Rank is 1 for white's back rank.
func (c Cell) Rank() int { return int(c.rank) }

// Valid reports whether c is on the board.
func (c Cell) Valid() bool {
	return c.file >= 1 && c.file <= 8 && c.rank >= 1 && c.rank <= 8
}

// Light reports whether c is a light square; a1 is dark.
func (c Cell) Light() bool {
	return (c.file+c.rank)%2 == 1
}

func (c Cell) index() int {
	return int(c.rank-1)*8 + int(c.file-1)
}

func (c Cell) String() string {
	if !c.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+c.file-1, c.rank)
}

// offset returns the cell df files and dr ranks away, if it is on the board.
func (c Cell) offset(df, dr int) (Cell, bool) {
	n := Cell{file: c.file + int8(df), rank: c.rank + int8(dr)}
	return n, n.Valid()
}

// Neighbor returns the adjacent cell in direction d.
func (c Cell) Neighbor(d Direction) (Cell, bool) {
	return c.offset(d.df, d.dr)
}

// Direction is one of the eight compass steps. Up is toward black.
type Direction struct {
	df, dr int
}

var (
	Up        = Direction{0, 1}
	Down      = Direction{0, -1}
	Left      = Direction{-1, 0}
	Right     = Direction{1, 0}
	UpLeft    = Direction{-1, 1}
	UpRight   = Direction{1, 1}
	DownLeft  = Direction{-1, -1}
	DownRight = Direction{1, -1}
)

// Directions lists all eight directions.
var Directions = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

var (
	orthogonals = []Direction{Up, Down, Left, Right}
	diagonals   = []Direction{UpLeft, UpRight, DownLeft, DownRight}
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{-d.df, -d.dr}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case UpLeft:
		return "up-left"
	case UpRight:
		return "up-right"
	case DownLeft:
		return "down-left"
	case DownRight:
		return "down-right"
	}
	return fmt.Sprintf("(%d,%d)", d.df, d.dr)
}

// AllCells returns every cell, rank by rank from a1 to h8.
func AllCells() []Cell {
	cells := make([]Cell, 0, 64)
	for i := 0; i < 64; i++ {
		cells = append(cells, cellAt(i))
	}
	return cells
}

// CellsInDirection walks outward from c, excluding c, until the board edge.
func CellsInDirection(c Cell, d Direction) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for n, ok := c.Neighbor(d); ok; n, ok = n.Neighbor(d) {
			if !yield(n) {
				return
			}
		}
	}
}

// CellSet is a set of cells, one bit per square.
type CellSet uint64

// Add returns s with c included.
func (s CellSet) Add(c Cell) CellSet {
	return s | 1<<uint(c.index())
}

// Has reports whether c is in s.
func (s CellSet) Has(c Cell) bool {
	return c.Valid() && s&(1<<uint(c.index())) != 0
}

// Len is the number of cells in s.
func (s CellSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// Cells returns the members of s in AllCells order.
func (s CellSet) Cells() []Cell {
	cells := make([]Cell, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		cells = append(cells, cellAt(bits.TrailingZeros64(rest)))
	}
	return cells
}

// Strings returns the members of s as coordinates.
func (s CellSet) Strings() []string {
	cells := s.Cells()
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.String())
	}
	return out
}
