// Package achievements reconciles Steam's two views of a game's achievements
// (the game schema and the player's unlock state) and drives the end-to-end
// lookup for a chosen game.
package achievements

import (
	"time"

	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
)

// Achievement is the merged view of one achievement. DisplayName, Description
// and Hidden come from the game schema; Achieved and AchievedAt come from the
// player.
type Achievement struct {
	APIName     string     `json:"api_name"`
	DisplayName string     `json:"display_name"`
	Description *string    `json:"description,omitempty"`
	Hidden      bool       `json:"hidden"`
	Achieved    bool       `json:"achieved"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
}

// FromPlayer builds an Achievement with schema fields left at zero values.
func FromPlayer(p steam.PlayerGameAchievement) Achievement {
	return Achievement{APIName: p.APIName}.WithPlayer(p)
}

// FromSchema builds a locked Achievement with no unlock time.
func FromSchema(g steam.GameAchievement) Achievement {
	return Achievement{APIName: g.APIName}.WithSchema(g)
}

// WithPlayer returns a copy with the unlock state replaced.
func (a Achievement) WithPlayer(p steam.PlayerGameAchievement) Achievement {
	a.Achieved = p.Achieved
	a.AchievedAt = copyTime(p.AchievedAt)
	return a
}

// WithSchema returns a copy with the schema fields replaced.
func (a Achievement) WithSchema(g steam.GameAchievement) Achievement {
	a.DisplayName = g.DisplayName
	a.Description = copyString(g.Description)
	a.Hidden = g.Hidden
	return a
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
