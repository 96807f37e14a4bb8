package main

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/maplefeline/nchess/chess"
)

// move is a move in coordinate notation: "e2e4", or "e7e8n" to promote to
// something other than a queen.
type move struct {
	from      chess.Cell
	to        chess.Cell
	promotion chess.PieceType
}

func (m *move) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, nil)
	if err != nil {
		return err
	}
	s := string(token)
	if len(s) != 4 && len(s) != 5 {
		return fmt.Errorf("invalid move format %d %s", len(s), s)
	}
	if m.from, err = chess.ParseCell(s[:2]); err != nil {
		return fmt.Errorf("invalid move format %s: %w", s, err)
	}
	if m.to, err = chess.ParseCell(s[2:4]); err != nil {
		return fmt.Errorf("invalid move format %s: %w", s, err)
	}
	m.promotion = chess.NoPiece
	if len(s) == 5 {
		promotion, ok := chess.ParsePieceType(rune(s[4]))
		if !ok {
			return fmt.Errorf("invalid move format %s: promotion %q", s, s[4])
		}
		m.promotion = promotion
	}
	return nil
}

func (m move) String() string {
	s := m.from.String() + m.to.String()
	if m.promotion != chess.NoPiece {
		s += string(chess.NewPiece(chess.Black, m.promotion).Rune())
	}
	return s
}

func (m *move) UnmarshalJSON(bytes []byte) error {
	var text string
	if err := json.Unmarshal(bytes, &text); err != nil {
		return err
	}
	_, err := fmt.Sscan(text, m)
	return err
}

func (m move) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// position stores a board as its FEN.
type position struct {
	*chess.Board
}

func (p position) GormDataType() string {
	return "string"
}

func (p position) Value() (driver.Value, error) {
	if p.Board == nil {
		return "", nil
	}
	return p.FEN(), nil
}

func (p *position) Scan(cell interface{}) error {
	var fen string
	switch cell := cell.(type) {
	case string:
		fen = cell
	case []byte:
		fen = string(cell)
	default:
		return fmt.Errorf("invalid format scaning %#v", cell)
	}
	board, err := chess.FromFEN(fen)
	if err != nil {
		return err
	}
	p.Board = board
	return nil
}

func (p position) MarshalJSON() ([]byte, error) {
	if p.Board == nil {
		return []byte("null"), nil
	}
	return json.Marshal(p.FEN())
}

func (p *position) UnmarshalJSON(bytes []byte) error {
	var fen *string
	if err := json.Unmarshal(bytes, &fen); err != nil {
		return err
	}
	if fen == nil {
		p.Board = nil
		return nil
	}
	return p.Scan(*fen)
}
