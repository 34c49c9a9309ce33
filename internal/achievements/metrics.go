package achievements

import (
	"strconv"

	"github.com/joshhsoj1902/achievement-hunter/internal/steam"
	"github.com/prometheus/client_golang/prometheus"
)

var achievementGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "achievement_hunter",
	Name:      "achievement_achieved",
	Help:      "Whether an achievement has been achieved (1) or not (0)",
}, []string{"app_id", "game_name", "achievement_name"})

func init() {
	prometheus.MustRegister(achievementGauge)
}

// ReportAchievements records the merged unlock state of a game.
func ReportAchievements(merged []Achievement, game steam.UserGame) {
	appID := strconv.FormatUint(uint64(game.ID), 10)
	for _, a := range merged {
		achieved := 0.0
		if a.Achieved {
			achieved = 1
		}
		achievementGauge.With(prometheus.Labels{
			"app_id":           appID,
			"game_name":        game.Name,
			"achievement_name": a.APIName,
		}).Set(achieved)
	}
}
