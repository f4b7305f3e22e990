package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/levels"
	"github.com/vovakirdan/platformer/internal/runner"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	statusStyle = map[string]lipgloss.Style{
		level.StatusWon.String():  cellStyle.Foreground(lipgloss.Color("42")),
		level.StatusLost.String(): cellStyle.Foreground(lipgloss.Color("204")),
		"timeout":                 cellStyle.Foreground(lipgloss.Color("214")),
	}
)

const statusColumn = 2

// resultsTable renders one row per played level.
func resultsTable(played []levels.Level, res runner.Result) string {
	rows := make([][]string, 0, len(res.Levels))
	for _, lr := range res.Levels {
		id := strconv.Itoa(lr.Index + 1)
		name := ""
		if lr.Index < len(played) {
			id = played[lr.Index].ID
			name = played[lr.Index].Name
		}
		status := lr.Status.String()
		if lr.TimedOut && lr.Status == level.StatusNone {
			status = "timeout"
		}
		rows = append(rows, []string{
			id,
			name,
			status,
			strconv.Itoa(lr.Attempts),
			strconv.Itoa(lr.Ticks),
			fmt.Sprintf("%016x", lr.Hash),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Name", "Status", "Attempts", "Frames", "Hash").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == statusColumn && row >= 0 && row < len(rows) {
				if style, ok := statusStyle[rows[row][statusColumn]]; ok {
					return style
				}
			}
			return cellStyle
		}).
		String()
}
