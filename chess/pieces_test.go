package chess

import (
	. "gopkg.in/check.v1"
)

type PiecesSuite struct{}

var _ = Suite(&PiecesSuite{})

func (s *PiecesSuite) destinations(c *C, fen, from string) []string {
	return load(c, fen).AvailableDestinations(cell(c, from)).Strings()
}

func (s *PiecesSuite) TestOpening(c *C) {
	b := NewStandardBoard()
	c.Assert(b.AvailableDestinations(cell(c, "b1")).Strings(), DeepEquals, []string{"a3", "c3"})
	c.Assert(b.AvailableDestinations(cell(c, "e2")).Strings(), DeepEquals, []string{"e3", "e4"})
	c.Assert(b.AvailableDestinations(cell(c, "c1")).Len(), Equals, 0)
	c.Assert(b.AvailableDestinations(cell(c, "a1")).Len(), Equals, 0)
	c.Assert(b.AvailableDestinations(cell(c, "e1")).Len(), Equals, 0)
	c.Assert(b.AvailableDestinations(cell(c, "g8")).Strings(), DeepEquals, []string{"f6", "h6"})
	c.Assert(b.AvailableDestinations(cell(c, "e4")).Len(), Equals, 0)
}

func (s *PiecesSuite) TestRook(c *C) {
	dests := s.destinations(c, "4k3/8/8/8/3R4/8/8/4K3 w - - 0 1", "d4")
	c.Assert(dests, HasLen, 14)
}

func (s *PiecesSuite) TestQueenStopsAtPieces(c *C) {
	b := load(c, "4k3/8/5p2/8/3Q4/8/1P6/4K3 w - - 0 1")
	dests := b.AvailableDestinations(cell(c, "d4"))
	c.Assert(dests.Len(), Equals, 23)
	c.Assert(dests.Has(cell(c, "f6")), Equals, true)
	c.Assert(dests.Has(cell(c, "g7")), Equals, false)
	c.Assert(dests.Has(cell(c, "b2")), Equals, false)
	c.Assert(dests.Has(cell(c, "c3")), Equals, true)
}

func (s *PiecesSuite) TestBishop(c *C) {
	dests := s.destinations(c, "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1")
	c.Assert(dests, DeepEquals, []string{"b2", "d2", "a3", "e3", "f4", "g5", "h6"})
}

func (s *PiecesSuite) TestKnight(c *C) {
	c.Assert(s.destinations(c, "4k3/8/8/8/8/8/2P5/N3K3 w - - 0 1", "a1"), DeepEquals, []string{"b3"})
	c.Assert(s.destinations(c, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", "d4"), HasLen, 8)
}

func (s *PiecesSuite) TestPawn(c *C) {
	c.Assert(s.destinations(c, "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4"), DeepEquals, []string{"d5", "e5"})
	c.Assert(s.destinations(c, "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1", "e2"), HasLen, 0)
	c.Assert(s.destinations(c, "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1", "e2"), DeepEquals, []string{"e3"})
	c.Assert(s.destinations(c, "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7"), DeepEquals, []string{"d5", "d6"})
	c.Assert(s.destinations(c, "4k3/8/8/8/8/3p4/4P3/4K3 w - - 0 1", "e2"), DeepEquals, []string{"d3", "e3", "e4"})
}

func (s *PiecesSuite) TestPawnEnPassant(c *C) {
	b := load(c, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 3")
	c.Assert(b.EnPassantEligible(cell(c, "d6")), Equals, true)
	c.Assert(b.AvailableDestinations(cell(c, "e5")).Strings(), DeepEquals, []string{"d6", "e6"})

	b = load(c, "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 3")
	c.Assert(b.AvailableDestinations(cell(c, "e5")).Strings(), DeepEquals, []string{"e6"})
}

func (s *PiecesSuite) TestCastlingScenario(c *C) {
	b := NewBoard(White, 0, 1)
	b.Place(cell(c, "e1"), NewPiece(White, King))
	b.Place(cell(c, "e8"), NewPiece(Black, King))
	b.Place(cell(c, "a1"), NewPiece(White, Rook))
	b.Place(cell(c, "h1"), NewPiece(White, Rook))
	c.Assert(b.Validate(), IsNil)
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, true)
	c.Assert(dests.Has(cell(c, "c1")), Equals, true)
	c.Assert(dests.Len(), Equals, 7)
	c.Assert(b.CastlingRights().String(), Equals, "KQ")
}

func (s *PiecesSuite) TestCastlingThroughAttack(c *C) {
	b := load(c, "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1")
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, false)
	c.Assert(dests.Has(cell(c, "c1")), Equals, true)
}

func (s *PiecesSuite) TestCastlingIntoAttack(c *C) {
	b := load(c, "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, false)
	c.Assert(dests.Has(cell(c, "c1")), Equals, true)
}

func (s *PiecesSuite) TestCastlingOutOfCheck(c *C) {
	b := load(c, "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1")
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, false)
	c.Assert(dests.Has(cell(c, "c1")), Equals, false)
}

func (s *PiecesSuite) TestCastlingRookAttackedIsFine(c *C) {
	b := load(c, "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	c.Assert(b.AvailableDestinations(cell(c, "e1")).Has(cell(c, "c1")), Equals, true)
}

func (s *PiecesSuite) TestCastlingNeedsRights(c *C) {
	b := load(c, "4k3/8/8/8/8/8/8/R3K2R w K - 0 1")
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, true)
	c.Assert(dests.Has(cell(c, "c1")), Equals, false)
}

func (s *PiecesSuite) TestCastlingBlocked(c *C) {
	b := load(c, "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1")
	dests := b.AvailableDestinations(cell(c, "e1"))
	c.Assert(dests.Has(cell(c, "g1")), Equals, true)
	c.Assert(dests.Has(cell(c, "c1")), Equals, false)
}

func (s *PiecesSuite) TestEmptyCell(c *C) {
	c.Assert(NewStandardBoard().AvailableDestinations(cell(c, "e4")), Equals, CellSet(0))
	c.Assert(NewStandardBoard().AvailableDestinations(Cell{}), Equals, CellSet(0))
}
