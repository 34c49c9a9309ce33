package achievements

import (
	"context"

	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/achievements_mock.go -package=mock

// SteamClient is the subset of the Steam Web API the service needs.
type SteamClient interface {
	GetOwnedGames(ctx context.Context, steamID string) ([]steam.UserGame, error)
	GetSchemaForGame(ctx context.Context, appID uint32) ([]steam.GameAchievement, error)
	GetPlayerAchievements(ctx context.Context, steamID string, appID uint32) ([]steam.PlayerGameAchievement, error)
}

// Chooser asks the user to pick one of labels. ok is false when the user
// cancelled without choosing.
type Chooser interface {
	Choose(ctx context.Context, prompt string, labels []string) (index int, ok bool, err error)
}
