package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/splitlog/internal/model"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		symbol string
		in     float64
		want   string
	}{
		{"₹", 0, "₹0.00"},
		{"₹", 33.33, "₹33.33"},
		{"₹", 1234.5, "₹1,234.50"},
		{"$", 1234567.891, "$1,234,567.89"},
		{"₹", -12.005, "-₹12.01"},
		{"", 0.1 + 0.2, "0.30"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.symbol, tt.in); got != tt.want {
			t.Errorf("FormatMoney(%q, %v) = %q, want %q", tt.symbol, tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-9876543: "-9,876,543",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("0b4f9a3e-1c2d-4e5f-8a9b-0c1d2e3f4a5b"); got != "0b4f9a3e" {
		t.Fatalf("ShortID = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Fatalf("ShortID(short) = %q", got)
	}
}

func TestFormatStatusAndShares(t *testing.T) {
	e := model.Expense{Friends: []model.ParticipantShare{
		{Name: "A", Share: 50, Paid: true},
		{Name: "B", Share: 50},
	}}
	if got := FormatStatus(e); got != "1/2 paid" {
		t.Fatalf("FormatStatus = %q", got)
	}
	if got := FormatShares(e); got != "A ✓, B ✗" {
		t.Fatalf("FormatShares = %q", got)
	}

	e.Friends[1].Paid = true
	if got := FormatStatus(e); got != "settled" {
		t.Fatalf("FormatStatus settled = %q", got)
	}
}

func TestRenderTableAlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Name", "Owed"},
		Rows: [][]string{
			{"A", "₹100.00"},
			{SeparatorRow},
			{"Total", "₹1,100.00"},
		},
		Align: []Align{AlignLeft, AlignRight},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != width {
			t.Fatalf("line %d width %d, want %d:\n%s", i, lipgloss.Width(l), width, out)
		}
	}
	if !strings.Contains(lines[3], "│ A     │   ₹100.00 │") {
		t.Fatalf("row not aligned: %q", lines[3])
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Fatalf("RenderTable(empty) = %q", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	if got := RenderProgressBar(1, 2, 4); got != "[██░░] 1/2" {
		t.Fatalf("RenderProgressBar = %q", got)
	}
	if got := RenderProgressBar(0, 0, 4); got != "" {
		t.Fatalf("RenderProgressBar(total 0) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.5); got != "50%" {
		t.Fatalf("FormatPercent(0.5) = %q", got)
	}
	if got := FormatPercent(1.0 / 3); got != "33%" {
		t.Fatalf("FormatPercent(1/3) = %q", got)
	}
}
