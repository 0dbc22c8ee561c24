package evaluationservice

import (
	"bytes"
	"fmt"
	"time"

	evaluationdomain "github.com/padelcoach/coach-api/app/modules/evaluation/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xuri/excelize/v2"
)

var (
	winnerColor   = drawing.ColorFromHex("2e7d32")
	forcedColor   = drawing.ColorFromHex("f9a825")
	unforcedColor = drawing.ColorFromHex("c62828")
)

// GenerateActionChart renders a PNG with one stacked bar per player:
// winners, forced errors and unforced errors. Players without actions are
// left out.
func GenerateActionChart(summary *SessionSummary) ([]byte, error) {
	bars := make([]chart.StackedBar, 0, len(summary.Players))
	for _, p := range summary.Players {
		if p.Total() == 0 {
			continue
		}
		name := p.Name
		if name == "" {
			name = p.StudentID.String()[:8]
		}
		bars = append(bars, chart.StackedBar{
			Name: name,
			Values: []chart.Value{
				{Label: fmt.Sprintf("W %d", p.Winners), Value: float64(p.Winners), Style: chart.Style{FillColor: winnerColor, StrokeColor: winnerColor}},
				{Label: fmt.Sprintf("FE %d", p.ForcedErrors), Value: float64(p.ForcedErrors), Style: chart.Style{FillColor: forcedColor, StrokeColor: forcedColor}},
				{Label: fmt.Sprintf("UE %d", p.UnforcedErrors), Value: float64(p.UnforcedErrors), Style: chart.Style{FillColor: unforcedColor, StrokeColor: unforcedColor}},
			},
		})
	}
	if len(bars) == 0 {
		return nil, ErrNothingToChart
	}

	graph := chart.StackedBarChart{
		Title:      "Winners / forced errors / unforced errors",
		Width:      200 + 120*len(bars),
		Height:     400,
		BarSpacing: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

const (
	statsSheet   = "Stats"
	summarySheet = "Summary"
)

// BuildWorkbook writes the stat log and the per-player summary to an XLSX file.
func BuildWorkbook(detail *SessionDetail, summary *SessionSummary) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return nil, fmt.Errorf("failed to name stats sheet: %w", err)
	}
	if err := setRow(f, statsSheet, 1, []any{"#", "Timestamp", "Player", "Stat", "Stroke", "Outcome", "Point to team", "Golden point"}); err != nil {
		return nil, err
	}
	for i, st := range detail.Stats {
		player := "(removed)"
		switch {
		case st.StatType == evaluationdomain.StatManualPoint:
			player = "(manual)"
		case st.Student != nil:
			player = st.Student.Name
		}
		team := any("")
		if st.PointWinnerTeam != nil {
			team = int(*st.PointWinnerTeam)
		}
		row := []any{
			i + 1,
			st.Timestamp.UTC().Format(time.RFC3339),
			player,
			string(st.StatType),
			string(st.StrokeType),
			string(st.PointOutcome),
			team,
			st.GoldenPoint,
		}
		if err := setRow(f, statsSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}
	header := []any{"Player", "Team", "Winners", "Forced errors", "Unforced errors", "Total"}
	for _, stroke := range evaluationdomain.StrokeTypes {
		header = append(header, string(stroke))
	}
	if err := setRow(f, summarySheet, 1, header); err != nil {
		return nil, err
	}
	for i, p := range summary.Players {
		team := any("")
		if p.Team.Valid() {
			team = int(p.Team)
		}
		row := []any{p.Name, team, p.Winners, p.ForcedErrors, p.UnforcedErrors, p.Total()}
		for _, stroke := range evaluationdomain.StrokeTypes {
			n := 0
			if c, ok := p.Strokes[stroke]; ok {
				n = c.Total()
			}
			row = append(row, n)
		}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			return nil, err
		}
	}

	footer := len(summary.Players) + 3
	for i, line := range [][]any{
		{"Score", fmt.Sprintf("%s-%s", summary.Score.Team1.Points, summary.Score.Team2.Points)},
		{"Games", fmt.Sprintf("%d-%d", summary.Score.Team1.Games, summary.Score.Team2.Games)},
		{"Points team 1", summary.Team1Points},
		{"Points team 2", summary.Team2Points},
		{"Manual points", summary.ManualPoints},
		{"Unscored stats", summary.UnscoredStats},
	} {
		if err := setRow(f, summarySheet, footer+i, line); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
