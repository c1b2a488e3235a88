package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/scoring"
)

var (
	wellBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		MarginLeft(2)

	cellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	ghostStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// renderSnapshot renders one frame of engine state as a terminal string
// using the well/preview/hold layout the host contract describes.
func renderSnapshot(snap engine.Snapshot, tracker *scoring.Tracker) string {
	well := renderWell(snap)
	sidebar := renderSidebar(snap, tracker)
	return lipgloss.JoinHorizontal(lipgloss.Top, wellBorderStyle.Render(well), sidebarStyle.Render(sidebar))
}

func renderWell(snap engine.Snapshot) string {
	occupied := make(map[[2]int]bool)
	for y, row := range snap.Cells {
		for x, c := range row {
			if c.Occupied {
				occupied[[2]int{x, y}] = true
			}
		}
	}

	ghost := make(map[[2]int]bool)
	active := make(map[[2]int]bool)
	if snap.Piece != nil {
		for _, b := range snap.Piece.Blocks {
			active[[2]int{int(snap.Piece.X) + int(b.X), int(snap.Piece.Y) + int(b.Y)}] = true
			if snap.Piece.HasGhost {
				ghost[[2]int{int(snap.Piece.X) + int(b.X), int(snap.Piece.GhostY) + int(b.Y)}] = true
			}
		}
	}

	var sb strings.Builder
	for y := 0; y < snap.WellHeight; y++ {
		for x := 0; x < snap.WellWidth; x++ {
			pos := [2]int{x, y}
			switch {
			case active[pos]:
				sb.WriteString(cellStyle.Render("[]"))
			case occupied[pos]:
				sb.WriteString(cellStyle.Render("##"))
			case ghost[pos]:
				sb.WriteString(ghostStyle.Render("::"))
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderSidebar(snap engine.Snapshot, tracker *scoring.Tracker) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("blockfall"))
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "state:  %s\n", snap.State)
	fmt.Fprintf(&sb, "score:  %d\n", tracker.Score)
	fmt.Fprintf(&sb, "level:  %d\n", tracker.Level)
	fmt.Fprintf(&sb, "lines:  %d\n", snap.Stats.LinesCleared)
	fmt.Fprintf(&sb, "pieces: %d\n\n", snap.Stats.BlocksPlaced)

	sb.WriteString("hold:   ")
	if snap.HasHold {
		sb.WriteString(snap.HoldID.String())
	} else {
		sb.WriteString("-")
	}
	sb.WriteString("\n\n")

	sb.WriteString("next:   ")
	names := make([]string, len(snap.Preview))
	for i, id := range snap.Preview {
		names[i] = id.String()
	}
	sb.WriteString(strings.Join(names, " "))

	return sb.String()
}
