package chess

import "errors"

var (
	ErrInvalidCoordinate  = errors.New("invalid coordinate")
	ErrEmptySourceCell    = errors.New("no piece on source cell")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalDestination = errors.New("illegal destination")
	ErrMoveExposesKing    = errors.New("move leaves king in check")
	ErrInvalidPromotion   = errors.New("invalid promotion")
	ErrInvalidBoardState  = errors.New("invalid board state")
	ErrInvalidFEN         = errors.New("invalid FEN")
)
