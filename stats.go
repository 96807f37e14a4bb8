package main

import (
	"github.com/maplefeline/nchess/chess"
	"github.com/montanaflynn/stats"
)

type gameStats struct {
	Games  int
	Ended  int64
	Mean   float64
	Median float64
	P80    float64
	Max    float64
}

// plyStats summarizes the number of plies played per stored game.
func plyStats() (gameStats, error) {
	var counts []int64
	err := db.Model(&Game{}).
		Joins("LEFT JOIN plays ON plays.game_refer = games.id AND plays.deleted_at IS NULL").
		Group("games.id").
		Order("games.id").
		Pluck("count(plays.id)", &counts).Error
	if err != nil {
		return gameStats{}, err
	}
	var summary gameStats
	if err := db.Model(&Game{}).Not(Game{End: chess.NotEnded.String()}).Count(&summary.Ended).Error; err != nil {
		return gameStats{}, err
	}
	summary.Games = len(counts)
	if summary.Games == 0 {
		return summary, nil
	}

	data := stats.LoadRawData(counts)
	if summary.Mean, err = stats.Mean(data); err != nil {
		return gameStats{}, err
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return gameStats{}, err
	}
	if summary.P80, err = stats.Percentile(data, 80); err != nil {
		return gameStats{}, err
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return gameStats{}, err
	}
	return summary, nil
}
