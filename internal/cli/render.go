package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/gridbench/gridgraph"
	"github.com/katalvlaran/gridbench/metrics"
	"github.com/katalvlaran/gridbench/search"
)

// Grid glyphs. The plain form is readable by gridgraph.ParseGrid.
const (
	glyphWall  = '#'
	glyphOpen  = '.'
	glyphPath  = '*'
	glyphStart = 'S'
	glyphGoal  = 'G'
)

// gridGlyphs lays out g row by row with path, start and goal overlaid.
func gridGlyphs(g *gridgraph.Grid, path []gridgraph.Coord, start, goal gridgraph.Coord) [][]rune {
	rows := make([][]rune, g.Rows)
	for r := range rows {
		rows[r] = make([]rune, g.Cols)
		for c := range rows[r] {
			if g.IsOpen(gridgraph.Coord{Row: r, Col: c}) {
				rows[r][c] = glyphOpen
			} else {
				rows[r][c] = glyphWall
			}
		}
	}
	for _, p := range path {
		rows[p.Row][p.Col] = glyphPath
	}
	rows[start.Row][start.Col] = glyphStart
	rows[goal.Row][goal.Col] = glyphGoal
	return rows
}

// renderGridPlain draws the grid without styling, one line per row.
func renderGridPlain(g *gridgraph.Grid, path []gridgraph.Coord, start, goal gridgraph.Coord) string {
	var b strings.Builder
	for i, row := range gridGlyphs(g, path, start, goal) {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// renderGrid draws the grid with a colour per glyph, two columns per cell.
func renderGrid(g *gridgraph.Grid, path []gridgraph.Coord, start, goal gridgraph.Coord) string {
	var b strings.Builder
	for i, row := range gridGlyphs(g, path, start, goal) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			b.WriteString(glyphStyle(r).Render(string(r) + " "))
		}
	}
	return b.String()
}

func glyphStyle(r rune) lipgloss.Style {
	switch r {
	case glyphWall:
		return styleWall
	case glyphPath:
		return stylePath
	case glyphStart:
		return styleStart
	case glyphGoal:
		return styleGoal
	}
	return styleOpen
}

func legend() string {
	return StyleDim.Render("legend: ") +
		styleStart.Render("S") + StyleDim.Render(" start  ") +
		styleGoal.Render("G") + StyleDim.Render(" goal  ") +
		stylePath.Render("*") + StyleDim.Render(" path  ") +
		styleWall.Render("#") + StyleDim.Render(" wall")
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return base.Foreground(colorCyan)
			}
			return base
		})
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond).String()
}

func formatMean(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// summaryTable renders per-algorithm averages.
func summaryTable(store *metrics.Store) string {
	t := newTable("Algorithm", "Runs", "Found", "Time", "Nodes", "Frontier", "Path", "Iterations")
	for _, s := range store.Summary() {
		iters := "-"
		if s.Algorithm == search.IterativeDeepening {
			iters = formatMean(s.MeanIterations)
		}
		t.Row(
			s.Algorithm.String(),
			strconv.Itoa(s.Runs),
			strconv.Itoa(s.Found),
			formatSeconds(s.MeanSeconds),
			formatMean(s.MeanNodes),
			formatMean(s.MeanFrontier),
			formatMean(s.MeanPathLength),
			iters,
		)
	}
	return t.Render()
}

// runsTable renders one row per trial with the given field for every algorithm.
func runsTable(store *metrics.Store, f metrics.Field) string {
	headers := []string{"Trial"}
	series := make([][]float64, 0, len(search.Algorithms))
	for _, alg := range search.Algorithms {
		headers = append(headers, fmt.Sprintf("%s %s", alg, f))
		series = append(series, store.Series(alg, f))
	}
	t := newTable(headers...)
	for i, label := range store.Labels() {
		row := []string{label}
		for _, s := range series {
			if i >= len(s) {
				row = append(row, "-")
				continue
			}
			if f == metrics.FieldTime {
				row = append(row, formatSeconds(s[i]))
			} else {
				row = append(row, strconv.FormatFloat(s[i], 'f', -1, 64))
			}
		}
		t.Row(row...)
	}
	return t.Render()
}
