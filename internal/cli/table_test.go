package cli

import (
	"slices"
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	table := NewTable("Name", "Hex", "ΔE")

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}
	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
	if table.Len() != 0 {
		t.Errorf("Expected no rows, got %d", table.Len())
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable("Reference", "Nearest")

	table.AddRow("#1e3a8a", "#2c4f9c")
	if table.Len() != 1 {
		t.Errorf("Expected 1 row, got %d", table.Len())
	}

	// Short rows are padded.
	table.AddRow("#dc2626")
	if len(table.rows[1]) != 2 || table.rows[1][1] != "" {
		t.Errorf("Expected row padded to 2 columns, got %q", table.rows[1])
	}

	// Long rows are truncated.
	table.AddRow("a", "b", "extra")
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("INDEX", "COLOUR")
	table.AddRow("0", "#2166ac")
	table.AddRow("10", "#f7f7f7")

	got := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	want := []string{
		"INDEX  COLOUR",
		"-----  -------",
		"0      #2166ac",
		"10     #f7f7f7",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Render() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("Expected empty string for table without headers, got %q", out)
	}

	out := NewTable("Column1", "Column2").Render()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Column1") || !strings.HasPrefix(lines[1], "---") {
		t.Errorf("Expected header and separator only, got %q", out)
	}
}

func TestTableRightAlignment(t *testing.T) {
	table := NewTable("NAME", "VALUE").SetAlignment(1, AlignRight)
	table.AddRow("hat width", "0.42")
	table.AddRow("range", "100.00")

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != "hat width    0.42" {
		t.Errorf("right-aligned row = %q", lines[2])
	}
	if lines[3] != "range      100.00" {
		t.Errorf("right-aligned row = %q", lines[3])
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	swatch := "\x1b[48;2;33;102;172m  \x1b[0m"
	table := NewTable("SWATCH", "HEX")
	table.AddRow(swatch, "#2166ac")

	lines := strings.Split(table.Render(), "\n")
	// The swatch counts as two cells, so it is padded to the header width.
	if want := swatch + strings.Repeat(" ", 4) + "  #2166ac"; lines[2] != want {
		t.Errorf("row = %q, want %q", lines[2], want)
	}
}

func TestTableWrapsLongCells(t *testing.T) {
	table := NewTable("REFERENCE", "STATUS").SetColumnMaxWidth(1, 10)
	table.AddRow("#1e3a8a", "very close to palette colour")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header, separator and 3 wrapped lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[2], "#1e3a8a") || strings.Contains(lines[3], "#1e3a8a") {
		t.Errorf("first column should only appear on the first wrapped line: %q", lines[2:])
	}
	for _, l := range lines[2:] {
		if n := visibleWidth(l); n > len("REFERENCE")+2+10 {
			t.Errorf("line %q is %d wide", l, n)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hex", 3},
		{"ΔE", 2},
		{"\x1b[38;2;0;0;0mtext\x1b[0m", 4},
		{"\x1b[0m", 0},
	}
	for _, tt := range tests {
		if got := visibleWidth(tt.in); got != tt.want {
			t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"no limit at all", 0, []string{"no limit at all"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"ab abcdefgh", 4, []string{"ab", "abcd", "efgh"}},
	}
	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); !slices.Equal(got, tt.want) {
			t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
