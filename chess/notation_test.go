package chess

import (
	"strings"

	. "gopkg.in/check.v1"
)

type NotationSuite struct{}

var _ = Suite(&NotationSuite{})

// san plays moves on b and returns their algebraic notation.
func (s *NotationSuite) san(c *C, b *Board, moves ...string) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		from, to := cell(c, m[:2]), cell(c, m[2:4])
		promotion := Queen
		if len(m) == 5 {
			t, ok := ParsePieceType(rune(m[4]))
			c.Assert(ok, Equals, true)
			promotion = t
		}
		before := b.Clone()
		_, err := b.Move(from, to, promotion)
		c.Assert(err, IsNil, Commentf("%s on %s", m, before.FEN()))
		text, err := Algebraic(before, b, from, to)
		c.Assert(err, IsNil)
		out = append(out, text)
	}
	return out
}

func (s *NotationSuite) TestOpening(c *C) {
	c.Assert(s.san(c, NewStandardBoard(), "e2e4", "d7d5", "e4d5", "d8d5", "b1c3", "d5a5"),
		DeepEquals, []string{"e4", "d5", "exd5", "Qxd5", "Nc3", "Qa5"})
}

func (s *NotationSuite) TestFoolsMate(c *C) {
	c.Assert(s.san(c, NewStandardBoard(), "f2f3", "e7e5", "g2g4", "d8h4"),
		DeepEquals, []string{"f3", "e5", "g4", "Qh4#"})
}

func (s *NotationSuite) TestCheck(c *C) {
	c.Assert(s.san(c, load(c, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"), "a1a8"), DeepEquals, []string{"Ra8+"})
}

func (s *NotationSuite) TestCastling(c *C) {
	c.Assert(s.san(c, load(c, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"), "e1g1", "e8c8"),
		DeepEquals, []string{"O-O", "O-O-O"})
}

func (s *NotationSuite) TestEnPassant(c *C) {
	c.Assert(s.san(c, load(c, "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 3"), "e5d6"), DeepEquals, []string{"exd6"})
}

func (s *NotationSuite) TestPromotion(c *C) {
	c.Assert(s.san(c, load(c, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"), "e7e8"), DeepEquals, []string{"e8=Q"})
	c.Assert(s.san(c, load(c, "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"), "e7e8n"), DeepEquals, []string{"e8=N"})
	c.Assert(s.san(c, load(c, "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1"), "e7d8r"), DeepEquals, []string{"exd8=R"})
}

func (s *NotationSuite) TestDisambiguation(c *C) {
	c.Assert(s.san(c, load(c, "4k3/8/8/8/8/8/8/1N2KN2 w - - 0 1"), "b1d2"), DeepEquals, []string{"Nbd2"})
	c.Assert(s.san(c, load(c, "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1"), "a1a3"), DeepEquals, []string{"R1a3"})
	c.Assert(s.san(c, load(c, "4k3/8/8/8/8/Q7/8/Q1Q1K3 w - - 0 1"), "a1b2"), DeepEquals, []string{"Qa1b2"})
}

func (s *NotationSuite) TestDisambiguationIgnoresPinnedRival(c *C) {
	c.Assert(s.san(c, load(c, "4k3/8/8/8/4b3/1N3N2/8/7K w - - 0 1"), "b3d4"), DeepEquals, []string{"Nd4"})
}

func (s *NotationSuite) TestEmptySource(c *C) {
	b := NewStandardBoard()
	_, err := Algebraic(b, b, cell(c, "e4"), cell(c, "e5"))
	c.Assert(err, ErrorIs, ErrEmptySourceCell)
}

type PGNSuite struct{}

var _ = Suite(&PGNSuite{})

func (s *PGNSuite) TestRecord(c *C) {
	r := Record{
		Tags:   []Tag{{Name: "Event", Value: "Casual \"blitz\""}, {Name: "Result", Value: "*"}},
		Moves:  []string{"e4", "e5", "Nf3"},
		Result: "*",
	}
	c.Assert(r.String(), Equals, "[Event \"Casual \\\"blitz\\\"\"]\n[Result \"*\"]\n\n1. e4 e5 2. Nf3 *\n")
}

func (s *PGNSuite) TestBlackFirst(c *C) {
	r := Record{FirstMove: 5, FirstColor: Black, Moves: []string{"Nf6", "Nc3", "Be7"}, Result: "1/2-1/2"}
	c.Assert(r.String(), Equals, "5... Nf6 6. Nc3 Be7 1/2-1/2\n")
}

func (s *PGNSuite) TestEmpty(c *C) {
	c.Assert(Record{}.String(), Equals, "*\n")
}

func (s *PGNSuite) TestWrap(c *C) {
	moves := make([]string, 0, 120)
	for i := 0; i < 30; i++ {
		moves = append(moves, "Nf3", "Nf6", "Ng1", "Ng8")
	}
	text := Record{Moves: moves, Result: "1/2-1/2"}.String()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	c.Assert(len(lines) > 1, Equals, true)
	for _, line := range lines {
		c.Assert(len(line) <= 79, Equals, true, Commentf("%q", line))
		c.Assert(strings.HasPrefix(line, " "), Equals, false)
	}
	fields := strings.Fields(text)
	c.Assert(fields, HasLen, 120+60+1)
	c.Assert(fields[len(fields)-4:], DeepEquals, []string{"60.", "Ng1", "Ng8", "1/2-1/2"})
}
