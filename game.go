package main

import (
	"net/http"
	"strconv"

	"github.com/apex/log"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/labstack/echo/v4"
	"github.com/maplefeline/nchess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// fiftyMoveHalfMoves is the half-move clock at which a game is drawn.
const fiftyMoveHalfMoves = 100

// Game game.
type Game struct {
	gorm.Model

	GameID    uuid.UUID `gorm:"<-:create;type:varchar;size:36;uniqueIndex"`
	Name      string
	Start     position
	Board     position
	End       string
	Winner    string
	DrawOffer string
	Plays     []Play `gorm:"foreignKey:GameRefer"`
}

// Play is one applied move of a game.
type Play struct {
	gorm.Model

	GameRefer uint `gorm:"index"`
	Ply       int
	Move      string
	SAN       string
	FEN       position
}

func makeGame(fen string) (*Game, error) {
	if fen == "" {
		fen = chess.StartFEN
	}
	board, err := chess.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	game := Game{
		GameID: uuid.NewV4(),
		Name:   petname.Generate(2, "-"),
		Start:  position{board.Clone()},
		Board:  position{board},
		End:    chess.NotEnded.String(),
	}
	// a position set up from FEN may already be over
	if err := game.classify(board.Turn().Opponent()); err != nil {
		return nil, err
	}
	if err := db.Create(&game).Error; err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"game": game.GameID, "name": game.Name, "fen": board.FEN()}).Info("game created")
	return getGame(game.GameID)
}

func getGame(id uuid.UUID) (*Game, error) {
	var game Game
	err := db.Preload("Plays", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("ply")
	}).First(&game, Game{GameID: id}).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func getGames() ([]Game, error) {
	var games []Game
	if err := db.Order("id").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (game Game) endType() chess.EndType {
	end, _ := chess.ParseEndType(game.End)
	return end
}

func (game Game) winner() chess.Color {
	color, _ := chess.ParseColor(game.Winner)
	return color
}

func (game Game) over() bool {
	return game.endType() != chess.NotEnded
}

// history lists the FEN of every position of the game in order.
func (game Game) history() []string {
	fens := make([]string, 0, len(game.Plays)+1)
	fens = append(fens, game.Start.FEN())
	for _, play := range game.Plays {
		fens = append(fens, play.FEN.FEN())
	}
	return fens
}

// classify sets End from the current board; mover is the side that made
// the last move and wins a checkmate.
func (game *Game) classify(mover chess.Color) error {
	board := game.Board.Board
	end, err := board.EndType(board.Turn(), game.history())
	if err != nil {
		return err
	}
	if end == chess.NotEnded && board.HalfMove() >= fiftyMoveHalfMoves {
		end = chess.FiftyMoveRule
	}
	game.finish(end, mover)
	return nil
}

func (game *Game) finish(end chess.EndType, winner chess.Color) {
	game.End = end.String()
	game.Winner = ""
	if end.Decisive() {
		game.Winner = winner.String()
	}
	if end != chess.NotEnded {
		game.DrawOffer = ""
		log.WithFields(log.Fields{"game": game.GameID, "end": game.End, "winner": game.Winner}).Info("game over")
	}
}

func (game *Game) save(tx *gorm.DB) error {
	return tx.Omit(clause.Associations).Save(game).Error
}

func (game *Game) play(m move) (*Play, error) {
	if game.over() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	before := game.Board.Board
	board := before.Clone()
	promotion := m.promotion
	if promotion == chess.NoPiece {
		promotion = chess.Queen
	}
	applied, err := board.Move(m.from, m.to, promotion)
	if err != nil {
		return nil, err
	}
	san, err := chess.Algebraic(before, board, m.from, m.to)
	if err != nil {
		return nil, err
	}

	mover := before.Turn()
	play := Play{
		GameRefer: game.ID,
		Ply:       len(game.Plays) + 1,
		Move:      applied.String(),
		SAN:       san,
		FEN:       position{board},
	}
	game.Board = position{board}
	game.Plays = append(game.Plays, play)
	if game.DrawOffer == mover.Opponent().String() {
		game.DrawOffer = ""
	}
	if err := game.classify(mover); err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&game.Plays[len(game.Plays)-1]).Error; err != nil {
			return err
		}
		return game.save(tx)
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"game": game.GameID, "ply": play.Ply, "move": play.Move, "san": san}).Debug("move applied")
	return &game.Plays[len(game.Plays)-1], nil
}

func (game *Game) resign(color chess.Color) error {
	if game.over() {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	game.finish(chess.Resignation, color.Opponent())
	return game.save(db)
}

// draw records an offer from color, or agrees to the opponent's standing
// offer.
func (game *Game) draw(color chess.Color) error {
	if game.over() {
		return echo.NewHTTPError(http.StatusBadRequest, "game is over")
	}
	if game.DrawOffer == color.Opponent().String() {
		game.finish(chess.MutualDraw, color)
	} else {
		game.DrawOffer = color.String()
		log.WithFields(log.Fields{"game": game.GameID, "color": game.DrawOffer}).Debug("draw offered")
	}
	return game.save(db)
}

// hints maps each cell of the side to move to its check safe destinations.
func (game Game) hints() map[string][]string {
	board := game.Board.Board
	hints := make(map[string][]string)
	if game.over() {
		return hints
	}
	for _, pl := range board.Occupied() {
		if pl.Piece.Color != board.Turn() {
			continue
		}
		if dests := board.AvailableDestinationsCheckSafe(pl.Cell); dests.Len() > 0 {
			hints[pl.Cell.String()] = dests.Strings()
		}
	}
	return hints
}

func (game Game) record() chess.Record {
	start := game.Start.Board
	result := game.endType().Result(game.winner())
	tags := []chess.Tag{
		{Name: "Event", Value: game.Name},
		{Name: "Site", Value: "nchess"},
		{Name: "Date", Value: game.CreatedAt.Format("2006.01.02")},
		{Name: "Round", Value: "-"},
		{Name: "White", Value: "white"},
		{Name: "Black", Value: "black"},
		{Name: "Result", Value: result},
	}
	if fen := start.FEN(); fen != chess.StartFEN {
		tags = append(tags, chess.Tag{Name: "SetUp", Value: "1"}, chess.Tag{Name: "FEN", Value: fen})
	}
	if game.over() {
		tags = append(tags, chess.Tag{Name: "Termination", Value: game.End})
	}
	tags = append(tags, chess.Tag{Name: "PlyCount", Value: strconv.Itoa(len(game.Plays))})

	moves := make([]string, 0, len(game.Plays))
	for _, play := range game.Plays {
		moves = append(moves, play.SAN)
	}
	return chess.Record{
		Tags:       tags,
		FirstMove:  start.FullMove(),
		FirstColor: start.Turn(),
		Moves:      moves,
		Result:     result,
	}
}
