package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
	"github.com/joshhsoj1902/achievement-hunter/internal/mock"
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var ownedGames = []steam.UserGame{
	{ID: 1510, Name: "Uplink", LastPlayed: time.Unix(1400429710, 0).UTC()},
}

func newTestServer(t *testing.T) (*httptest.Server, *mock.MockAchievementService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAchievementService(ctrl)

	srv := httptest.NewServer(NewRouter(NewHandlers(svc)))
	t.Cleanup(srv.Close)
	return srv, svc
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body json.RawMessage
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func TestHandleGames(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ListGames(gomock.Any()).Return(ownedGames, nil)

	resp, body := get(t, srv.URL+"/games")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"app_id":1510,"name":"Uplink","last_played":"2014-05-18T16:15:10Z"}]`, string(body))
}

func TestHandleGames_UpstreamError(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ListGames(gomock.Any()).Return(nil, fmt.Errorf("failed to retrieve user's games: %w", steam.ErrRequest))

	resp, body := get(t, srv.URL+"/games")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), "failed to retrieve user's games")
}

func TestHandleAchievements(t *testing.T) {
	srv, svc := newTestServer(t)
	desc := "desc"
	at := time.Unix(1000, 0).UTC()

	svc.EXPECT().ListGames(gomock.Any()).Return(ownedGames, nil)
	svc.EXPECT().ForGame(gomock.Any(), ownedGames[0]).Return([]achievements.Achievement{
		{APIName: "a", DisplayName: "Alpha", Description: &desc, Achieved: true, AchievedAt: &at},
		{APIName: "b", DisplayName: "Beta", Hidden: true},
	}, nil)

	resp, body := get(t, srv.URL+"/games/1510/achievements")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"app_id":1510,"achievements":[
		{"api_name":"a","display_name":"Alpha","description":"desc","hidden":false,"achieved":true,"achieved_at":"1970-01-01T00:16:40Z"},
		{"api_name":"b","display_name":"Beta","hidden":true,"achieved":false}
	]}`, string(body))
}

func TestHandleAchievements_InvalidAppID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := get(t, srv.URL+"/games/not-a-number/achievements")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAchievements_NotOwned(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ListGames(gomock.Any()).Return(ownedGames, nil)

	resp, _ := get(t, srv.URL+"/games/440/achievements")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleAchievements_SizeMismatch(t *testing.T) {
	srv, svc := newTestServer(t)
	svc.EXPECT().ListGames(gomock.Any()).Return(ownedGames, nil)
	svc.EXPECT().ForGame(gomock.Any(), ownedGames[0]).Return(nil, &achievements.SizeMismatchError{Player: 2, Schema: 3})

	resp, body := get(t, srv.URL+"/games/1510/achievements")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), "size 2")
}

func TestHandleRoot(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
}

func TestRouter_CORS(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockAchievementService(ctrl)
	svc.EXPECT().ListGames(gomock.Any()).Return(ownedGames, nil).Times(2)

	srv := httptest.NewServer(NewRouter(NewHandlers(svc), "http://localhost:3000"))
	t.Cleanup(srv.Close)

	request := func(origin string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/games", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", origin)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	allowed := request("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", allowed.Header.Get("Access-Control-Allow-Origin"))

	denied := request("http://evil.example")
	assert.Empty(t, denied.Header.Get("Access-Control-Allow-Origin"))
}
