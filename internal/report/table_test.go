package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Passage", "WPM", "Errors"}
	rows := [][]string{
		{"Fox", "72", "1"},
		{"Long title", "8", "12"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Passage    WPM Errors" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Fox         72      1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Long title   8     12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"A", "B"}, [][]string{{"日本", "x"}}, nil)
	if lines[0] != "A    B" {
		t.Fatalf("expected header padded to display width, got %q", lines[0])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil for empty table, got %v", lines)
	}
}
