package achievements_test

import (
	"context"
	"testing"
	"time"

	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
	"github.com/joshhsoj1902/achievement-hunter/internal/mock"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "76561197960287930"

func newTestService(t *testing.T) (*achievements.Service, *mock.MockSteamClient, *mock.MockChooser) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockSteamClient(ctrl)
	chooser := mock.NewMockChooser(ctrl)
	return achievements.NewService(client, testUserID), client, chooser
}

func strPtr(s string) *string { return &s }

func unix(sec int64) *time.Time {
	t := time.Unix(sec, 0).UTC()
	return &t
}

var testGames = []steam.UserGame{
	{ID: 1510, Name: "Uplink", LastPlayed: time.Unix(1400429710, 0).UTC()},
	{ID: 1817070, Name: "Spider-Man", LastPlayed: time.Unix(1700000000, 0).UTC()},
}

func TestService_Run_Success(t *testing.T) {
	svc, client, chooser := newTestService(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().GetOwnedGames(ctx, testUserID).Return(testGames, nil),
		chooser.EXPECT().Choose(ctx, achievements.ChoosePrompt, []string{"Uplink", "Spider-Man"}).Return(1, true, nil),
		client.EXPECT().GetPlayerAchievements(ctx, testUserID, uint32(1817070)).Return(
			[]steam.PlayerGameAchievement{{APIName: "a", Achieved: true, AchievedAt: unix(1000)}}, nil),
		client.EXPECT().GetSchemaForGame(ctx, uint32(1817070)).Return(
			[]steam.GameAchievement{{APIName: "a", DisplayName: "Alpha", Description: strPtr("desc")}}, nil),
	)

	game, got, err := svc.Run(ctx, chooser)
	require.NoError(t, err)
	assert.Equal(t, testGames[1], game)
	assert.Equal(t, []achievements.Achievement{{
		APIName: "a", DisplayName: "Alpha", Description: strPtr("desc"), Achieved: true, AchievedAt: unix(1000),
	}}, got)
}

func TestService_Run_OwnedGamesError(t *testing.T) {
	svc, client, chooser := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetOwnedGames(ctx, testUserID).Return(nil, steam.ErrRequest)

	_, _, err := svc.Run(ctx, chooser)
	require.Error(t, err)
	assert.ErrorIs(t, err, steam.ErrRequest)
	assert.Contains(t, err.Error(), "failed to retrieve user's games")
}

func TestService_Run_Cancelled(t *testing.T) {
	svc, client, chooser := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetOwnedGames(ctx, testUserID).Return(testGames, nil)
	chooser.EXPECT().Choose(ctx, achievements.ChoosePrompt, gomock.Any()).Return(0, false, nil)

	_, _, err := svc.Run(ctx, chooser)
	assert.ErrorIs(t, err, achievements.ErrNoSelection)
}

func TestService_Run_NoGames(t *testing.T) {
	svc, client, chooser := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetOwnedGames(ctx, testUserID).Return([]steam.UserGame{}, nil)

	_, _, err := svc.Run(ctx, chooser)
	assert.ErrorIs(t, err, achievements.ErrNoSelection)
}

func TestService_Run_ChooserFailure(t *testing.T) {
	svc, client, chooser := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetOwnedGames(ctx, testUserID).Return(testGames, nil)
	chooser.EXPECT().Choose(ctx, achievements.ChoosePrompt, gomock.Any()).Return(0, false, assert.AnError)

	_, _, err := svc.Run(ctx, chooser)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_ForGame_SizeMismatch(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetPlayerAchievements(ctx, testUserID, uint32(1510)).Return(
		[]steam.PlayerGameAchievement{{APIName: "a"}, {APIName: "b"}}, nil)
	client.EXPECT().GetSchemaForGame(ctx, uint32(1510)).Return(
		[]steam.GameAchievement{{APIName: "a"}, {APIName: "b"}, {APIName: "c"}}, nil)

	_, err := svc.ForGame(ctx, testGames[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, achievements.ErrSizeMismatch)
	assert.Contains(t, err.Error(), "failed to merge achievements")
	assert.Contains(t, err.Error(), "size 2")
	assert.Contains(t, err.Error(), "size 3")
}

func TestService_ForGame_PlayerAchievementsError(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetPlayerAchievements(ctx, testUserID, uint32(1510)).Return(nil, steam.ErrDecode)

	_, err := svc.ForGame(ctx, testGames[0])
	assert.ErrorIs(t, err, steam.ErrDecode)
	assert.Contains(t, err.Error(), "failed to retrieve user's achievements for game")
}

func TestService_ForGame_SchemaError(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()

	client.EXPECT().GetPlayerAchievements(ctx, testUserID, uint32(1510)).Return(nil, nil)
	client.EXPECT().GetSchemaForGame(ctx, uint32(1510)).Return(nil, steam.ErrRequest)

	_, err := svc.ForGame(ctx, testGames[0])
	assert.ErrorIs(t, err, steam.ErrRequest)
	assert.Contains(t, err.Error(), "failed to get list of game achievements")
}
