package api

import (
	"context"

	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_mock.go -package=mock

type AchievementService interface {
	ListGames(ctx context.Context) ([]steam.UserGame, error)
	ForGame(ctx context.Context, game steam.UserGame) ([]achievements.Achievement, error)
}
