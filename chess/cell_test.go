package chess

import (
	. "gopkg.in/check.v1"
)

type CellSuite struct{}

var _ = Suite(&CellSuite{})

func (s *CellSuite) TestNeighborsSymmetric(c *C) {
	for _, from := range AllCells() {
		for _, d := range Directions {
			to, ok := from.Neighbor(d)
			if !ok {
				continue
			}
			back, ok := to.Neighbor(d.Opposite())
			c.Assert(ok, Equals, true, Commentf("%v %v", from, d))
			c.Assert(back, Equals, from)
		}
	}
}

func (s *CellSuite) TestNeighborCount(c *C) {
	counts := map[int]int{}
	for _, from := range AllCells() {
		n := 0
		for _, d := range Directions {
			if _, ok := from.Neighbor(d); ok {
				n++
			}
		}
		counts[n]++
	}
	c.Assert(counts, DeepEquals, map[int]int{3: 4, 5: 24, 8: 36})
}

func (s *CellSuite) TestNoWraparound(c *C) {
	_, ok := cell(c, "h1").Neighbor(Right)
	c.Assert(ok, Equals, false)
	_, ok = cell(c, "a4").Neighbor(Left)
	c.Assert(ok, Equals, false)
	_, ok = cell(c, "h4").Neighbor(UpRight)
	c.Assert(ok, Equals, false)
	_, ok = cell(c, "d8").Neighbor(Up)
	c.Assert(ok, Equals, false)
	n, ok := cell(c, "a1").Neighbor(UpRight)
	c.Assert(ok, Equals, true)
	c.Assert(n.String(), Equals, "b2")
}

func (s *CellSuite) TestAllCellsOrder(c *C) {
	cells := AllCells()
	c.Assert(cells, HasLen, 64)
	c.Assert(cells[0].String(), Equals, "a1")
	c.Assert(cells[1].String(), Equals, "b1")
	c.Assert(cells[8].String(), Equals, "a2")
	c.Assert(cells[63].String(), Equals, "h8")
	seen := map[Cell]bool{}
	for _, cl := range cells {
		seen[cl] = true
	}
	c.Assert(seen, HasLen, 64)
}

func (s *CellSuite) TestFindCell(c *C) {
	e4, err := FindCell(5, 4)
	c.Assert(err, IsNil)
	c.Assert(e4.String(), Equals, "e4")
	c.Assert(e4.File(), Equals, 5)
	c.Assert(e4.Rank(), Equals, 4)
	for _, coords := range [][2]int{{0, 1}, {9, 1}, {1, 0}, {1, 9}, {-3, 4}} {
		_, err := FindCell(coords[0], coords[1])
		c.Assert(err, ErrorIs, ErrInvalidCoordinate)
	}
}

func (s *CellSuite) TestParseCell(c *C) {
	for _, bad := range []string{"", "e", "i1", "e9", "e0", "E4", "e44"} {
		_, err := ParseCell(bad)
		c.Assert(err, ErrorIs, ErrInvalidCoordinate, Commentf("%q", bad))
	}
	c.Assert(Cell{}.Valid(), Equals, false)
	c.Assert(Cell{}.String(), Equals, "-")
}

func (s *CellSuite) TestCellsInDirection(c *C) {
	var walked []string
	for cl := range CellsInDirection(cell(c, "a1"), UpRight) {
		walked = append(walked, cl.String())
	}
	c.Assert(walked, DeepEquals, []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"})

	walked = nil
	for cl := range CellsInDirection(cell(c, "d4"), Left) {
		walked = append(walked, cl.String())
	}
	c.Assert(walked, DeepEquals, []string{"c4", "b4", "a4"})

	walked = nil
	for cl := range CellsInDirection(cell(c, "d4"), Down) {
		walked = append(walked, cl.String())
		if len(walked) == 2 {
			break
		}
	}
	c.Assert(walked, DeepEquals, []string{"d3", "d2"})

	for range CellsInDirection(cell(c, "h8"), Up) {
		c.Fatal("walked off the board")
	}
}

func (s *CellSuite) TestColors(c *C) {
	c.Assert(cell(c, "a1").Light(), Equals, false)
	c.Assert(cell(c, "h1").Light(), Equals, true)
	c.Assert(cell(c, "d1").Light(), Equals, true)
	c.Assert(cell(c, "e1").Light(), Equals, false)
}

func (s *CellSuite) TestCellSet(c *C) {
	var set CellSet
	set = set.Add(cell(c, "h8")).Add(cell(c, "a1")).Add(cell(c, "e4")).Add(cell(c, "a1"))
	c.Assert(set.Len(), Equals, 3)
	c.Assert(set.Has(cell(c, "e4")), Equals, true)
	c.Assert(set.Has(cell(c, "e5")), Equals, false)
	c.Assert(set.Has(Cell{}), Equals, false)
	c.Assert(set.Strings(), DeepEquals, []string{"a1", "e4", "h8"})
}

func (s *CellSuite) TestDirectionOpposite(c *C) {
	c.Assert(Up.Opposite(), Equals, Down)
	c.Assert(UpLeft.Opposite(), Equals, DownRight)
	c.Assert(Left.Opposite().String(), Equals, "right")
}
