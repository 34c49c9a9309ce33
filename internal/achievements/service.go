package achievements

import (
	"context"
	"fmt"

	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/sirupsen/logrus"
)

const ChoosePrompt = "What game do you want to view achievements for?"

type Service struct {
	client SteamClient
	userID string
}

func NewService(client SteamClient, userID string) *Service {
	return &Service{
		client: client,
		userID: userID,
	}
}

// ListGames returns the configured user's library.
func (s *Service) ListGames(ctx context.Context) ([]steam.UserGame, error) {
	games, err := s.client.GetOwnedGames(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user's games: %w", err)
	}
	return games, nil
}

// ForGame fetches both achievement sources for a game and merges them.
func (s *Service) ForGame(ctx context.Context, game steam.UserGame) ([]Achievement, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"steam_id": s.userID,
		"app_id":   game.ID,
		"game":     game.Name,
	})

	player, err := s.client.GetPlayerAchievements(ctx, s.userID, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user's achievements for game %q: %w", game.Name, err)
	}

	schema, err := s.client.GetSchemaForGame(ctx, game.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get list of game achievements for %q: %w", game.Name, err)
	}

	merged, err := Merge(player, schema)
	if err != nil {
		log.WithError(err).Warn("Player and schema achievements do not line up")
		return nil, fmt.Errorf("failed to merge achievements for game %q: %w", game.Name, err)
	}

	ReportAchievements(merged, game)
	log.WithField("achievement_count", len(merged)).Debug("Merged achievements")
	return merged, nil
}

// Run lists the user's games, lets chooser pick one and returns the merged
// achievements of the chosen game.
func (s *Service) Run(ctx context.Context, chooser Chooser) (steam.UserGame, []Achievement, error) {
	games, err := s.ListGames(ctx)
	if err != nil {
		return steam.UserGame{}, nil, err
	}

	labels := make([]string, len(games))
	for i, game := range games {
		labels[i] = game.Name
	}

	if len(labels) == 0 {
		logger.Log.WithField("steam_id", s.userID).Warn("No owned games to choose from")
		return steam.UserGame{}, nil, ErrNoSelection
	}

	index, ok, err := chooser.Choose(ctx, ChoosePrompt, labels)
	if err != nil {
		return steam.UserGame{}, nil, fmt.Errorf("failed to choose a game: %w", err)
	}
	if !ok {
		return steam.UserGame{}, nil, ErrNoSelection
	}
	if index < 0 || index >= len(games) {
		return steam.UserGame{}, nil, fmt.Errorf("%w: index %d out of range", ErrNoSelection, index)
	}

	game := games[index]
	achievements, err := s.ForGame(ctx, game)
	if err != nil {
		return game, nil, err
	}
	return game, achievements, nil
}
