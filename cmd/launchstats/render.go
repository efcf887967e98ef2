package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/couchcryptid/launch-data-etl/internal/report"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	noteStyle   = lipgloss.NewStyle().Faint(true)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// renderReport prints every chart of a report as a table of its series.
func renderReport(rep report.Report) string {
	var b strings.Builder

	writeChart(&b, rep, rep.AllSuccesses)
	writeChart(&b, rep, rep.SuccessesFailures)
	writeTiles(&b, rep, rep.CountryTiles, rep.CountryTileScale)
	writeChart(&b, rep, rep.Families)
	writeTiles(&b, rep, rep.FamilyTiles, rep.FamilyTileScale)

	for _, m := range rep.Markers {
		b.WriteString(noteStyle.Render(fmt.Sprintf("%s: %d  %s", m.Axis, m.Value, m.Label)))
		b.WriteString("\n")
	}
	return b.String()
}

func writeChart(b *strings.Builder, rep report.Report, chart report.Chart) {
	rows := make([][]string, 0, len(chart.Series))
	for _, s := range chart.Series {
		year, peak := peakYear(rep.Years, s.Values)
		rows = append(rows, []string{s.Label, strconv.Itoa(s.Total), strconv.Itoa(peak), year})
	}

	writeTitle(b, rep.Language, chart.Title)
	b.WriteString(newTable(rows, "", "Total", "Peak", "Year").String())
	b.WriteString("\n")
	b.WriteString(noteStyle.Render(fmt.Sprintf("scale %d, %d-%d", chart.Scale, first(rep.Years), last(rep.Years))))
	b.WriteString("\n")
}

func writeTiles(b *strings.Builder, rep report.Report, tiles []report.Tile, scale int) {
	if len(tiles) == 0 {
		return
	}
	rows := make([][]string, 0, len(tiles))
	for _, t := range tiles {
		rows = append(rows, []string{
			t.Title,
			strconv.Itoa(sum(t.Successes)),
			strconv.Itoa(sum(t.Failures)),
			strconv.Itoa(t.MaxSuccesses),
		})
	}

	b.WriteString(newTable(rows, "", "Successes", "Failures", "Max").String())
	b.WriteString("\n")
	b.WriteString(noteStyle.Render(fmt.Sprintf("tile scale %d", scale)))
	b.WriteString("\n")
}

func writeTitle(b *strings.Builder, lang, title string) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("[%s] %s", lang, title)))
	b.WriteString("\n")
}

func newTable(rows [][]string, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})
}

// peakYear returns the first year with the highest value.
func peakYear(years, values []int) (string, int) {
	best := -1
	for i, v := range values {
		if best < 0 || v > values[best] {
			best = i
		}
	}
	if best < 0 || values[best] == 0 {
		return "-", 0
	}
	return strconv.Itoa(years[best]), values[best]
}

func sum(values []int) int {
	n := 0
	for _, v := range values {
		n += v
	}
	return n
}

func first(years []int) int {
	if len(years) == 0 {
		return 0
	}
	return years[0]
}

func last(years []int) int {
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}
