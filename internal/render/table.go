// Package render formats merged achievements for the terminal.
package render

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/joshhsoj1902/achievement-hunter/internal/achievements"
)

const (
	HiddenPlaceholder      = "Hidden"
	NotAchievedPlaceholder = "Not achieved... yet"
	TimeLayout             = "2006-01-02 15:04:05 UTC"
)

var Headers = []string{"Name", "Description", "Achieved?", "Achieved at"}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Rows turns achievements into table cells in the order given.
func Rows(list []achievements.Achievement) [][]string {
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		description := HiddenPlaceholder
		if a.Description != nil {
			description = *a.Description
		}

		achievedAt := NotAchievedPlaceholder
		if a.AchievedAt != nil {
			achievedAt = a.AchievedAt.In(time.UTC).Format(TimeLayout)
		}

		rows = append(rows, []string{
			a.DisplayName,
			description,
			strconv.FormatBool(a.Achieved),
			achievedAt,
		})
	}
	return rows
}

// Table renders achievements as a bordered table.
func Table(list []achievements.Achievement) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(Headers...).
		Rows(Rows(list)...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
