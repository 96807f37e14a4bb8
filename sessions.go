package main

import (
	"sync"

	uuid "github.com/satori/go.uuid"
)

// sessions holds one mutex per game id. A board is single threaded, so
// every load, move and save of a game runs under its lock.
var sessions sync.Map

func lockGame(id uuid.UUID) func() {
	value, _ := sessions.LoadOrStore(id, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// withGame loads the game under its session lock and runs fn on it.
func withGame(id uuid.UUID, fn func(*Game) error) (*Game, error) {
	unlock := lockGame(id)
	defer unlock()
	game, err := getGame(id)
	if err != nil {
		return nil, err
	}
	if err := fn(game); err != nil {
		return nil, err
	}
	return game, nil
}
