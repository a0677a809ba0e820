package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/handiism/gilded-rose/internal/model"
)

// Format represents a supported report format.
type Format int

const (
	// FormatText prints the texttest layout.
	FormatText Format = iota

	// FormatTable prints one bordered table per day.
	FormatTable

	// FormatJSON prints an indented JSON array.
	FormatJSON
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseFormat converts a flag or settings value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown report format %q", s)
	}
}

// Snapshot is the state of the inventory at the end of a day.
type Snapshot struct {
	Day   int           `json:"day"`
	Items []*model.Item `json:"items"`
}

// Take copies items into a new Snapshot for the given day.
func Take(day int, items []*model.Item) Snapshot {
	return Snapshot{Day: day, Items: model.CloneAll(items)}
}

// Renderer turns snapshots into report text.
//
// Example:
//
//	r := NewRenderer(FormatText)
//	out, _ := r.Render([]Snapshot{Take(0, items)})
//
//	// Result:
//	// OMGHAI!
//	// -------- day 0 --------
//	// name, sellIn, quality
//	// Aged Brie, 2, 0
type Renderer struct {
	format Format
}

// NewRenderer creates a new Renderer.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// Format returns the renderer's output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render formats a run of snapshots.
func (r *Renderer) Render(snapshots []Snapshot) (string, error) {
	switch r.format {
	case FormatTable:
		return r.renderTable(snapshots), nil
	case FormatJSON:
		return r.renderJSON(snapshots)
	default:
		return "OMGHAI!\n" + r.RenderDay(snapshots...), nil
	}
}

// RenderDay formats snapshots in the text layout without the run header.
func (r *Renderer) RenderDay(snapshots ...Snapshot) string {
	var sb strings.Builder

	for _, snap := range snapshots {
		sb.WriteString(fmt.Sprintf("-------- day %d --------\n", snap.Day))
		sb.WriteString("name, sellIn, quality\n")
		for _, item := range snap.Items {
			sb.WriteString(item.String() + "\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

var (
	dayStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// renderTable renders each snapshot as a bordered table.
func (r *Renderer) renderTable(snapshots []Snapshot) string {
	var sb strings.Builder

	for _, snap := range snapshots {
		sb.WriteString(dayStyle.Render(fmt.Sprintf("Day %d", snap.Day)))
		sb.WriteString("\n")
		sb.WriteString(Table(snap.Items).Render())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// Table builds a lipgloss table of items.
func Table(items []*model.Item) *table.Table {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = []string{item.Name, strconv.Itoa(item.SellIn), strconv.Itoa(item.Quality)}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SELL IN", "QUALITY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

// renderJSON renders snapshots as an indented JSON array.
func (r *Renderer) renderJSON(snapshots []Snapshot) (string, error) {
	if snapshots == nil {
		snapshots = []Snapshot{}
	}
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
