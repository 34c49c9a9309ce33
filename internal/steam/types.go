package steam

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"
)

// UserGame is one entry of a user's library.
type UserGame struct {
	ID         uint32    `json:"appid"`
	Name       string    `json:"name"`
	LastPlayed time.Time `json:"last_played"`
}

// GameAchievement is an achievement as defined by the game, independent of
// any player.
type GameAchievement struct {
	APIName     string  `json:"api_name"`
	DisplayName string  `json:"display_name"`
	Description *string `json:"description,omitempty"`
	Hidden      bool    `json:"hidden"`
}

// PlayerGameAchievement is a player's unlock state for one achievement.
type PlayerGameAchievement struct {
	APIName    string     `json:"api_name"`
	Achieved   bool       `json:"achieved"`
	AchievedAt *time.Time `json:"achieved_at,omitempty"`
}

// flag is a boolean the Steam API encodes as 0 or 1.
type flag bool

func (f *flag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "1":
		*f = true
	case "0":
		*f = false
	default:
		return fmt.Errorf("expected 0 or 1, got %s", data)
	}
	return nil
}

// UnmarshalJSON decodes an owned-games entry:
//
//	{"appid": 1510, "name": "Uplink", "playtime_forever": 405, "rtime_last_played": 1400429710}
func (g *UserGame) UnmarshalJSON(data []byte) error {
	var raw struct {
		AppID      *uint32 `json:"appid"`
		Name       *string `json:"name"`
		LastPlayed *int64  `json:"rtime_last_played"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := required(map[string]bool{
		"appid":             raw.AppID != nil,
		"name":              raw.Name != nil,
		"rtime_last_played": raw.LastPlayed != nil,
	}); err != nil {
		return fmt.Errorf("owned game: %w", err)
	}

	*g = UserGame{
		ID:         *raw.AppID,
		Name:       *raw.Name,
		LastPlayed: time.Unix(*raw.LastPlayed, 0).UTC(),
	}
	return nil
}

// UnmarshalJSON decodes a schema entry:
//
//	{"name": "superiorspiderman", "displayName": "Superior Spider-Man", "hidden": 0, "description": "Unlock all Skills"}
//
// Hidden achievements usually come without a description.
func (a *GameAchievement) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name        *string `json:"name"`
		DisplayName *string `json:"displayName"`
		Description *string `json:"description"`
		Hidden      *flag   `json:"hidden"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := required(map[string]bool{
		"name":        raw.Name != nil,
		"displayName": raw.DisplayName != nil,
		"hidden":      raw.Hidden != nil,
	}); err != nil {
		return fmt.Errorf("schema achievement: %w", err)
	}

	*a = GameAchievement{
		APIName:     *raw.Name,
		DisplayName: *raw.DisplayName,
		Description: raw.Description,
		Hidden:      bool(*raw.Hidden),
	}
	return nil
}

// UnmarshalJSON decodes a player achievement:
//
//	{"apiname": "superiorspiderman", "achieved": 1, "unlocktime": 1700000000}
//
// An unlock time of 0 means the achievement is still locked.
func (a *PlayerGameAchievement) UnmarshalJSON(data []byte) error {
	var raw struct {
		APIName    *string `json:"apiname"`
		Achieved   *flag   `json:"achieved"`
		UnlockTime *int64  `json:"unlocktime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := required(map[string]bool{
		"apiname":  raw.APIName != nil,
		"achieved": raw.Achieved != nil,
	}); err != nil {
		return fmt.Errorf("player achievement: %w", err)
	}

	*a = PlayerGameAchievement{
		APIName:  *raw.APIName,
		Achieved: bool(*raw.Achieved),
	}
	if raw.UnlockTime != nil && *raw.UnlockTime > 0 {
		at := time.Unix(*raw.UnlockTime, 0).UTC()
		a.AchievedAt = &at
	}
	return nil
}

func required(present map[string]bool) error {
	for _, field := range slices.Sorted(maps.Keys(present)) {
		if !present[field] {
			return fmt.Errorf("missing required field %q", field)
		}
	}
	return nil
}

// Response envelopes. Top-level wrappers are pointers so a missing wrapper can
// be told apart from an empty list.

type ownedGamesHTTPResponse struct {
	Response *struct {
		GameCount uint       `json:"game_count"`
		Games     []UserGame `json:"games"`
	} `json:"response"`
}

type schemaForGameHTTPResponse struct {
	Game *struct {
		GameName           string `json:"gameName"`
		AvailableGameStats struct {
			Achievements []GameAchievement `json:"achievements"`
		} `json:"availableGameStats"`
	} `json:"game"`
}

type playerAchievementsHTTPResponse struct {
	PlayerStats *struct {
		SteamID      string                  `json:"steamID"`
		GameName     string                  `json:"gameName"`
		Achievements []PlayerGameAchievement `json:"achievements"`
		Success      *bool                   `json:"success"`
		Error        string                  `json:"error"`
	} `json:"playerstats"`
}
