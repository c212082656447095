package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Word", "Accuracy", "Attempts"}
	rows := [][]string{
		{"貓", "97%", "12"},
		{"早晨", "8%", "3"},
		{"dog"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "Word Accuracy Attempts" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "貓        97%       12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "早晨       8%        3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
	if lines[3] != "dog" {
		t.Fatalf("unexpected short row: %q", lines[3])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
