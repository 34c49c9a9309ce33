package prompt

import (
	"context"
	"strings"

	"github.com/joshhsoj1902/achievement-hunter/internal/logger"
	"github.com/schollz/closestmatch"
	"github.com/sirupsen/logrus"
)

// Closest picks the label nearest to a fixed query without user input.
type Closest struct {
	query string
}

func NewClosest(query string) *Closest {
	return &Closest{query: strings.TrimSpace(query)}
}

func (c *Closest) Choose(_ context.Context, _ string, labels []string) (int, bool, error) {
	if c.query == "" || len(labels) == 0 {
		return 0, false, nil
	}

	for i, label := range labels {
		if strings.EqualFold(label, c.query) {
			return i, true, nil
		}
	}

	cm := closestmatch.New(labels, []int{2, 3})
	match := cm.Closest(c.query)
	if match == "" {
		logger.Log.WithField("query", c.query).Warn("No game matches the query")
		return 0, false, nil
	}

	for i, label := range labels {
		if label == match {
			logger.Log.WithFields(logrus.Fields{
				"query": c.query,
				"match": match,
			}).Info("Matched game by name")
			return i, true, nil
		}
	}
	return 0, false, nil
}
