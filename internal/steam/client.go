package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/sirupsen/logrus"
)

const (
	APIOrigin                  = "https://api.steampowered.com"
	OwnedGamesEndpoint         = "/IPlayerService/GetOwnedGames/v0001/"
	SchemaForGameEndpoint      = "/ISteamUserStats/GetSchemaForGame/v2/"
	PlayerAchievementsEndpoint = "/ISteamUserStats/GetPlayerAchievements/v0001/"

	defaultTimeout = 10 * time.Second
)

type Client struct {
	apiKey     string
	httpClient *resty.Client
}

type Option func(*resty.Client)

// WithBaseURL points the client at another API origin, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *resty.Client) {
		if baseURL != "" {
			c.SetBaseURL(strings.TrimRight(baseURL, "/"))
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		if timeout > 0 {
			c.SetTimeout(timeout)
		}
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(APIOrigin).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(httpClient)
	}

	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params map[string]string, target interface{}) error {
	// Log the request parameters without the API key
	debugQuery := make([]string, 0, len(params)+2)
	for k, v := range params {
		debugQuery = append(debugQuery, fmt.Sprintf("%s=%s", k, v))
	}
	debugQuery = append(debugQuery, "key=[HIDDEN]", "format=json")
	sort.Strings(debugQuery)
	logger.Log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"params":   strings.Join(debugQuery, "&"),
	}).Debug("Making Steam API request")

	start := time.Now()
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("format", "json").
		Get(endpoint)
	if err != nil {
		observeRequest(endpoint, "error", time.Since(start))
		logger.Log.WithError(err).WithField("endpoint", endpoint).Error("Steam API request failed")
		return fmt.Errorf("%w: %v", ErrRequest, err)
	}
	observeRequest(endpoint, strconv.Itoa(resp.StatusCode()), time.Since(start))

	body := resp.Body()
	logger.Log.WithFields(logrus.Fields{
		"endpoint":    endpoint,
		"status_code": resp.StatusCode(),
		"body_length": len(body),
		"duration":    time.Since(start),
	}).Debug("Steam API response received")

	switch resp.StatusCode() {
	case http.StatusOK:
		// Continue with JSON parsing
	case http.StatusTooManyRequests:
		logger.Log.Error("Steam API rate limit exceeded (429)")
		return fmt.Errorf("%w: rate limited by Steam API (429)", ErrRequest)
	case http.StatusUnauthorized:
		logger.Log.Error("Steam API unauthorized (401) - check API key")
		return fmt.Errorf("%w: unauthorized (401) - check your Steam API key", ErrRequest)
	case http.StatusForbidden:
		logger.Log.Error("Steam API forbidden (403) - check API key and profile visibility")
		return fmt.Errorf("%w: forbidden (403) - check your Steam API key and that the profile is public", ErrRequest)
	case http.StatusBadRequest:
		logger.Log.WithField("body", string(body)).Error("Steam API bad request (400)")
		return fmt.Errorf("%w: bad request (400): %s", ErrRequest, preview(body))
	default:
		logger.Log.WithFields(logrus.Fields{
			"status_code": resp.StatusCode(),
			"body":        string(body),
		}).Error("Unexpected Steam API response")
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrRequest, resp.StatusCode(), preview(body))
	}

	// Check if the response starts with HTML (common error case)
	if len(body) > 0 && body[0] == '<' {
		logger.Log.WithField("body", preview(body)).Error("Received HTML instead of JSON from Steam API")
		return fmt.Errorf("%w: received HTML instead of JSON: %s", ErrDecode, preview(body))
	}

	if err := json.Unmarshal(body, target); err != nil {
		logger.Log.WithError(err).WithField("body_preview", preview(body)).Error("Failed to decode Steam API JSON response")
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}

func preview(body []byte) string {
	s := string(body)
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

func validateSteamID(steamID string) error {
	if steamID == "" {
		return fmt.Errorf("%w: steam ID cannot be empty", ErrInvalidSteamID)
	}
	// Steam IDs are numeric, typically 17 digits
	if _, err := strconv.ParseUint(steamID, 10, 64); err != nil {
		return fmt.Errorf("%w: '%s' - Steam IDs must be numeric (e.g., 76561197987123908). You may have used a username instead", ErrInvalidSteamID, steamID)
	}
	return nil
}

// GetOwnedGames retrieves the list of games owned by a Steam user
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]UserGame, error) {
	if err := validateSteamID(steamID); err != nil {
		return nil, err
	}

	params := map[string]string{
		"steamid":                   steamID,
		"include_appinfo":           "true",
		"include_played_free_games": "true",
	}

	var httpResp ownedGamesHTTPResponse
	if err := c.getJSON(ctx, OwnedGamesEndpoint, params, &httpResp); err != nil {
		return nil, fmt.Errorf("GetOwnedGames failed for steamid=%s: %w", steamID, err)
	}
	if httpResp.Response == nil {
		return nil, fmt.Errorf("GetOwnedGames failed for steamid=%s: %w: missing \"response\"", steamID, ErrDecode)
	}

	logger.Log.WithFields(logrus.Fields{
		"steam_id":   steamID,
		"game_count": len(httpResp.Response.Games),
	}).Info("Fetched owned games from Steam API")

	return httpResp.Response.Games, nil
}

// GetSchemaForGame retrieves the achievement definitions of a game
func (c *Client) GetSchemaForGame(ctx context.Context, appID uint32) ([]GameAchievement, error) {
	params := map[string]string{
		"appid": strconv.FormatUint(uint64(appID), 10),
	}

	var httpResp schemaForGameHTTPResponse
	if err := c.getJSON(ctx, SchemaForGameEndpoint, params, &httpResp); err != nil {
		return nil, fmt.Errorf("GetSchemaForGame failed for appid=%d: %w", appID, err)
	}
	if httpResp.Game == nil {
		return nil, fmt.Errorf("GetSchemaForGame failed for appid=%d: %w: missing \"game\"", appID, ErrDecode)
	}

	achievements := httpResp.Game.AvailableGameStats.Achievements
	logger.Log.WithFields(logrus.Fields{
		"app_id":            appID,
		"achievement_count": len(achievements),
	}).Info("Fetched achievement schema from Steam API")

	return achievements, nil
}

// GetPlayerAchievements retrieves a player's unlock state for every
// achievement of a game
func (c *Client) GetPlayerAchievements(ctx context.Context, steamID string, appID uint32) ([]PlayerGameAchievement, error) {
	if err := validateSteamID(steamID); err != nil {
		return nil, err
	}

	params := map[string]string{
		"steamid": steamID,
		"appid":   strconv.FormatUint(uint64(appID), 10),
	}

	var httpResp playerAchievementsHTTPResponse
	if err := c.getJSON(ctx, PlayerAchievementsEndpoint, params, &httpResp); err != nil {
		return nil, fmt.Errorf("GetPlayerAchievements failed for steamid=%s appid=%d: %w", steamID, appID, err)
	}

	stats := httpResp.PlayerStats
	if stats == nil {
		return nil, fmt.Errorf("GetPlayerAchievements failed for steamid=%s appid=%d: %w: missing \"playerstats\"", steamID, appID, ErrDecode)
	}
	if stats.Success != nil && !*stats.Success {
		return nil, fmt.Errorf("GetPlayerAchievements failed for steamid=%s appid=%d: %w: %s", steamID, appID, ErrRequest, stats.Error)
	}

	logger.Log.WithFields(logrus.Fields{
		"steam_id":          steamID,
		"app_id":            appID,
		"game_name":         stats.GameName,
		"achievement_count": len(stats.Achievements),
	}).Info("Fetched player achievements from Steam API")

	return stats.Achievements, nil
}
