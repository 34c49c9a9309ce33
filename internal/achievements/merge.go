package achievements

import (
	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
)

// Merge joins player unlock records with the game schema by identifier.
//
// Both slices must have the same length and name the same identifiers. The
// result holds one Achievement per identifier in schema order.
func Merge(player []steam.PlayerGameAchievement, schema []steam.GameAchievement) ([]Achievement, error) {
	if len(player) != len(schema) {
		return nil, &SizeMismatchError{Player: len(player), Schema: len(schema)}
	}

	merged := make(map[string]Achievement, len(schema))
	fromPlayer := make(map[string]bool, len(player))
	fromSchema := make(map[string]bool, len(schema))

	for _, p := range player {
		if existing, ok := merged[p.APIName]; ok {
			merged[p.APIName] = existing.WithPlayer(p)
		} else {
			merged[p.APIName] = FromPlayer(p)
		}
		fromPlayer[p.APIName] = true
	}

	order := make([]string, 0, len(schema))
	for _, g := range schema {
		if existing, ok := merged[g.APIName]; ok {
			merged[g.APIName] = existing.WithSchema(g)
		} else {
			merged[g.APIName] = FromSchema(g)
		}
		if !fromSchema[g.APIName] {
			order = append(order, g.APIName)
		}
		fromSchema[g.APIName] = true
	}

	// Equal counts do not imply equal identifier sets.
	for _, p := range player {
		if !fromSchema[p.APIName] {
			return nil, &UnmatchedError{APIName: p.APIName, Side: SidePlayer}
		}
	}
	for _, name := range order {
		if !fromPlayer[name] {
			return nil, &UnmatchedError{APIName: name, Side: SideSchema}
		}
	}

	result := make([]Achievement, 0, len(order))
	for _, name := range order {
		result = append(result, merged[name])
	}
	return result, nil
}
