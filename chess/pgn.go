package chess

import (
	"fmt"
	"strings"
)

const pgnLineWidth = 79

// Tag is a PGN tag pair.
type Tag struct {
	Name  string
	Value string
}

// Record is a game in PGN form. FirstMove and FirstColor locate the first
// move of Moves, which is not 1. White for games set up from a FEN.
type Record struct {
	Tags       []Tag
	FirstMove  int
	FirstColor Color
	Moves      []string
	Result     string
}

// Result returns the PGN result token, crediting winner when e is decisive.
func (e EndType) Result(winner Color) string {
	switch {
	case e == NotEnded:
		return "*"
	case e.Decisive() && winner == White:
		return "1-0"
	case e.Decisive():
		return "0-1"
	}
	return "1/2-1/2"
}

func (r Record) movetext() []string {
	tokens := make([]string, 0, len(r.Moves)*3/2+1)
	number := r.FirstMove
	if number < 1 {
		number = 1
	}
	color := r.FirstColor
	for i, san := range r.Moves {
		switch {
		case color == White:
			tokens = append(tokens, fmt.Sprintf("%d.", number))
		case i == 0:
			tokens = append(tokens, fmt.Sprintf("%d...", number))
		}
		tokens = append(tokens, san)
		if color == Black {
			number++
		}
		color = color.Opponent()
	}
	result := r.Result
	if result == "" {
		result = "*"
	}
	return append(tokens, result)
}

func (r Record) String() string {
	var sb strings.Builder
	for _, tag := range r.Tags {
		value := strings.ReplaceAll(tag.Value, `\`, `\\`)
		value = strings.ReplaceAll(value, `"`, `\"`)
		fmt.Fprintf(&sb, "[%s \"%s\"]\n", tag.Name, value)
	}
	if len(r.Tags) > 0 {
		sb.WriteByte('\n')
	}
	width := 0
	for _, token := range r.movetext() {
		if width > 0 && width+1+len(token) > pgnLineWidth {
			sb.WriteByte('\n')
			width = 0
		}
		if width > 0 {
			sb.WriteByte(' ')
			width++
		}
		sb.WriteString(token)
		width += len(token)
	}
	sb.WriteByte('\n')
	return sb.String()
}
