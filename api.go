package main

import (
	"errors"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/maplefeline/nchess/chess"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type gameRequest struct {
	FEN string
}

type playRequest struct {
	Move *move
}

type colorRequest struct {
	Color string
}

type gameResponse struct {
	Href string
	Game Game
}

type gamesResponse struct {
	Href  string
	Games []Game
}

type playsResponse struct {
	Href  string
	Turn  string
	Hints map[string][]string
	Plays []Play
}

type playResponse struct {
	Href string
	Play Play
	Game Game
}

type indexResponse struct {
	Href  string
	Games string
	Stats string
}

type statsResponse struct {
	Href  string
	Stats gameStats
}

var badRequest = []error{
	chess.ErrInvalidCoordinate,
	chess.ErrEmptySourceCell,
	chess.ErrIllegalDestination,
	chess.ErrMoveExposesKing,
	chess.ErrInvalidPromotion,
	chess.ErrInvalidBoardState,
	chess.ErrInvalidFEN,
}

func errToHTTP(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, chess.ErrNotYourTurn) {
		return echo.NewHTTPError(http.StatusNotAcceptable, err.Error())
	}
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return err
}

func requestID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.FromString(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return id, nil
}

func requestGame(c echo.Context) (*Game, error) {
	id, err := requestID(c)
	if err != nil {
		return nil, err
	}
	return getGame(id)
}

func requestColor(c echo.Context) (chess.Color, error) {
	var request colorRequest
	if err := c.Bind(&request); err != nil {
		return chess.White, err
	}
	color, ok := chess.ParseColor(request.Color)
	if !ok {
		return chess.White, echo.NewHTTPError(http.StatusBadRequest, "invalid color")
	}
	return color, nil
}

func gameHref(game *Game) string {
	return path.Join("/games", game.GameID.String())
}

func responseGame(game *Game) gameResponse {
	return gameResponse{Game: *game, Href: gameHref(game)}
}

func responseGames(games []Game) gamesResponse {
	return gamesResponse{Games: games, Href: "/games"}
}

func responsePlays(game *Game) playsResponse {
	plays := game.Plays
	if plays == nil {
		plays = []Play{}
	}
	return playsResponse{
		Href:  path.Join(gameHref(game), "plays"),
		Turn:  game.Board.Turn().String(),
		Hints: game.hints(),
		Plays: plays,
	}
}

func responsePlay(game *Game, play *Play) playResponse {
	return playResponse{Href: path.Join(gameHref(game), "plays"), Play: *play, Game: *game}
}

// apiHandler apiHandler.
func apiHandler() *echo.Echo {
	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, indexResponse{Href: "/", Games: "/games", Stats: "/stats"})
	})
	e.GET("/games", func(c echo.Context) error {
		games, err := getGames()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGames(games))
	})
	e.POST("/games", func(c echo.Context) error {
		var request gameRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		game, err := makeGame(request.FEN)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusCreated, responseGame(game))
	})
	e.GET("/games/:id", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/plays", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePlays(game))
	})
	e.PUT("/games/:id/plays", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		var request playRequest
		if err := c.Bind(&request); err != nil {
			return err
		}
		if request.Move == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "missing move")
		}
		var play *Play
		game, err := withGame(id, func(game *Game) error {
			var err error
			play, err = game.play(*request.Move)
			return err
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responsePlay(game, play))
	})
	e.POST("/games/:id/resign", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		color, err := requestColor(c)
		if err != nil {
			return err
		}
		game, err := withGame(id, func(game *Game) error {
			return game.resign(color)
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.POST("/games/:id/draw", func(c echo.Context) error {
		id, err := requestID(c)
		if err != nil {
			return err
		}
		color, err := requestColor(c)
		if err != nil {
			return err
		}
		game, err := withGame(id, func(game *Game) error {
			return game.draw(color)
		})
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, responseGame(game))
	})
	e.GET("/games/:id/pgn", func(c echo.Context) error {
		game, err := requestGame(c)
		if err != nil {
			return errToHTTP(err)
		}
		return c.String(http.StatusOK, game.record().String())
	})
	e.GET("/stats", func(c echo.Context) error {
		summary, err := plyStats()
		if err != nil {
			return errToHTTP(err)
		}
		return c.JSON(http.StatusOK, statsResponse{Href: "/stats", Stats: summary})
	})

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Gzip())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	return e
}
