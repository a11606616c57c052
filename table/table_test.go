package table

import (
	"strings"
	"testing"
)

func TestCreateTableLines_LeftAlignment(t *testing.T) {
	alignment := []Alignment{Left, Left, Left}
	columnSpacing := 2
	table := [][]string{
		{"Name", "Age", "City"},
		{"Alice", "30", "NYC"},
		{"Bob", "25", "LA"},
	}

	lines, width := CreateTableLines(alignment, columnSpacing, table, BorderNone)

	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}

	// Check that all lines have the same width (padded properly)
	for i, line := range lines {
		lineWidth := ScreenWidth(line)
		if lineWidth != width {
			t.Errorf("Line %d has width %d, expected %d: %q", i, lineWidth, width, line)
		}
	}

	if !strings.HasPrefix(lines[0], "Name") {
		t.Errorf("First column should start with 'Name', got: %q", lines[0])
	}
	if lines[1] != "Alice  30   NYC " {
		t.Errorf("Unexpected line %q", lines[1])
	}
}

func TestCreateTableLines_RightAlignment(t *testing.T) {
	alignment := []Alignment{Right, Right, Right}
	table := [][]string{
		{"Name", "Age", "City"},
		{"Alice", "30", "NYC"},
		{"Bob", "25", "LA"},
	}

	lines, _ := CreateTableLines(alignment, 2, table, BorderNone)

	expected := []string{
		" Name  Age  City",
		"Alice   30   NYC",
		"  Bob   25    LA",
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Errorf("Line %d: got %q, expected %q", i, line, expected[i])
		}
	}
}

func TestCreateTableLines_CenterAlignmentOddEven(t *testing.T) {
	alignment := []Alignment{Center}

	linesEvenDelta, _ := CreateTableLines(alignment, 0, [][]string{{"ABCDE"}, {"ABC"}}, BorderNone)
	if linesEvenDelta[1] != " ABC " {
		t.Errorf("Center alignment with even delta failed: expected ' ABC ', got %q", linesEvenDelta[1])
	}

	linesOddDelta, _ := CreateTableLines(alignment, 0, [][]string{{"ABCDEF"}, {"ABC"}}, BorderNone)
	if linesOddDelta[1] != " ABC  " {
		t.Errorf("Center alignment with odd delta failed: expected ' ABC  ', got %q", linesOddDelta[1])
	}
}

func TestCreateTableLines_DifferentColumnSpacing(t *testing.T) {
	alignment := []Alignment{Left, Left}
	table := [][]string{
		{"A", "B"},
		{"C", "D"},
	}
	for _, spacing := range []int{0, 1, 2, 5, 10} {
		lines, width := CreateTableLines(alignment, spacing, table, BorderNone)
		expectedWidth := 1 + spacing + 1 // Both columns have width 1
		if width != expectedWidth {
			t.Errorf("With spacing %d, expected width %d, got %d", spacing, expectedWidth, width)
		}
		for i, line := range lines {
			if lineWidth := ScreenWidth(line); lineWidth != width {
				t.Errorf("Spacing %d, line %d has width %d, expected %d: %q", spacing, i, lineWidth, width, line)
			}
		}
	}
}

func TestCreateTableLines_EmptyTable(t *testing.T) {
	lines, width := CreateTableLines([]Alignment{Left}, 2, [][]string{}, BorderNone)
	if len(lines) != 0 {
		t.Errorf("Expected 0 lines for empty table, got %d", len(lines))
	}
	if width != 0 {
		t.Errorf("Expected width 0 for empty table, got %d", width)
	}
}

func TestCreateTableLines_InconsistentColumns(t *testing.T) {
	table := [][]string{
		{"A", "B"},
		{"C", "D", "E"}, // Extra column - should panic
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic for inconsistent number of columns")
		}
	}()
	CreateTableLines([]Alignment{Left, Left}, 2, table, BorderNone)
}

func TestCreateTableLines_WithEscapesAndUnicode(t *testing.T) {
	alignment := []Alignment{Left, Center, Right}
	swatch := "\x1b[48;2;169;104;54m  \x1b[0m"
	table := [][]string{
		{"Name", "Swatch", "Hex"},
		{"brown", swatch, "a96836"},
		{"party", "🎉", "✨"},
	}

	lines, width := CreateTableLines(alignment, 2, table, BorderNone)

	if width != 5+2+6+2+6 {
		t.Errorf("Unexpected width %d", width)
	}
	for i, line := range lines {
		if lineWidth := ScreenWidth(line); lineWidth != width {
			t.Errorf("Line %d has width %d, expected %d: %q", i, lineWidth, width, line)
		}
	}
}

func TestCreateTableLines_Borders(t *testing.T) {
	table := [][]string{
		{"A", "BB"},
		{"CCC", "D"},
	}
	tests := []struct {
		name     string
		style    BorderStyle
		expected []string
	}{
		{"columns", BorderColumns, []string{
			" A   │ BB ",
			" CCC │ D  ",
		}},
		{"outer columns", BorderOuterColumns, []string{
			"┌─────┬────┐",
			"│ A   │ BB │",
			"│ CCC │ D  │",
			"└─────┴────┘",
		}},
		{"full", BorderFull, []string{
			"┌─────┬────┐",
			"│ A   │ BB │",
			"├─────┼────┤",
			"│ CCC │ D  │",
			"└─────┴────┘",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, width := CreateTableLines([]Alignment{Left, Left}, 1, table, tt.style)
			if strings.Join(lines, "\n") != strings.Join(tt.expected, "\n") {
				t.Errorf("got:\n%s\nexpected:\n%s", strings.Join(lines, "\n"), strings.Join(tt.expected, "\n"))
			}
			for i, line := range lines {
				if lineWidth := ScreenWidth(line); lineWidth != width {
					t.Errorf("Line %d has width %d, expected %d: %q", i, lineWidth, width, line)
				}
			}
		})
	}
}

var ansiCleanCases = []struct {
	name     string
	input    string
	expected string
}{
	{
		"NoEscapeSequence",
		"Hello World, life is good, isn't it - is this long enough?",
		"Hello World, life is good, isn't it - is this long enough?",
	},
	{"UnterminatedEscapeSequence-1", "Hello World\x1b[1234", "Hello World"},
	{"UnterminatedEscapeSequence-2", "Hello World\x1b[", "Hello World"},
	{"LoneEscapeAtEnd", "Hello World\x1b", "Hello World"},
	{"ShortestEscapeSequenceAtEnd", "Hello Woooo\x1b[m", "Hello Woooo"},
	{"ShortestEscapeSequence", "\x1b[m", ""},
	{"SingleEscapeSequence", "Hello \x1b[31mWorld\x1b[0m cruel.", "Hello World cruel."},
	{"MultipleEscapeSequences", "\x1b[31mHello\x1b[0m \x1b[32mWorld\x1b[0m tada!", "Hello World tada!"},
	{"TrueColor", "\x1b[48;2;169;104;54m  \x1b[0m|", "  |"},
}

func TestAnsiClean(t *testing.T) {
	for _, tc := range ansiCleanCases {
		t.Run(tc.name, func(t *testing.T) {
			if actual := AnsiClean(tc.input); actual != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, actual)
			}
		})
	}
}
