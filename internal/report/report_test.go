package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/handiism/gilded-rose/internal/model"
)

func TestRenderer_Text(t *testing.T) {
	items := []*model.Item{
		model.NewItem("Aged Brie", 2, 0),
		model.NewItem("Sulfuras, Hand of Ragnaros", -1, 80),
	}
	snapshots := []Snapshot{Take(0, items)}
	items[0].SellIn, items[0].Quality = 1, 1
	snapshots = append(snapshots, Take(1, items))

	got, err := NewRenderer(FormatText).Render(snapshots)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "OMGHAI!\n" +
		"-------- day 0 --------\n" +
		"name, sellIn, quality\n" +
		"Aged Brie, 2, 0\n" +
		"Sulfuras, Hand of Ragnaros, -1, 80\n" +
		"\n" +
		"-------- day 1 --------\n" +
		"name, sellIn, quality\n" +
		"Aged Brie, 1, 1\n" +
		"Sulfuras, Hand of Ragnaros, -1, 80\n" +
		"\n"

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Table(t *testing.T) {
	snap := Take(3, []*model.Item{model.NewItem("Conjured Mana Cake", 0, 0)})

	got, err := NewRenderer(FormatTable).Render([]Snapshot{snap})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{"Day 3", "NAME", "SELL IN", "QUALITY", "Conjured Mana Cake"} {
		if !strings.Contains(got, want) {
			t.Errorf("table should contain %q:\n%s", want, got)
		}
	}
}

func TestRenderer_JSON(t *testing.T) {
	snap := Take(1, []*model.Item{model.NewItem("Aged Brie", 1, 1)})

	got, err := NewRenderer(FormatJSON).Render([]Snapshot{snap})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded []Snapshot
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff([]Snapshot{snap}, decoded); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got, `"sellIn": 1`) {
		t.Errorf("JSON should use sellIn key:\n%s", got)
	}
}

func TestRenderer_JSONEmpty(t *testing.T) {
	got, err := NewRenderer(FormatJSON).Render(nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.TrimSpace(got) != "[]" {
		t.Errorf("Render(nil) = %q, want []", got)
	}
}

func TestTake_Copies(t *testing.T) {
	items := []*model.Item{model.NewItem("Elixir", 5, 7)}
	snap := Take(0, items)
	items[0].Quality = 0

	if snap.Items[0].Quality != 7 {
		t.Errorf("snapshot changed with source: quality = %d", snap.Items[0].Quality)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"TABLE", FormatTable, false},
		{" json ", FormatJSON, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && tt.in != "" && got.String() != strings.ToLower(strings.TrimSpace(tt.in)) {
				t.Errorf("String() = %q", got.String())
			}
		})
	}
}
