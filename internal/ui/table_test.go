package ui

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable("ID", "NAME")
	table.Row("task1", "Webpage Creation")
	table.Row("t2", "Docs")

	want := "ID     NAME\ntask1  Webpage Creation\nt2     Docs\n"
	if got := table.String(); got != want {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, want)
	}
}

func TestTableDropsTrailingEmptyCells(t *testing.T) {
	table := NewTable("A", "B", "C")
	table.Row("", "  ≡ Read brief", "")

	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	if lines[1] != "     ≡ Read brief" {
		t.Fatalf("expected no trailing padding, got %q", lines[1])
	}
}

func TestTableFlattensLineBreaks(t *testing.T) {
	table := NewTable("COL")
	table.Row("Hello\nWorld\r\nAgain\tTab")

	want := "COL\nHello World Again Tab\n"
	if got := table.String(); got != want {
		t.Fatalf("expected flattened cell, got %q", got)
	}
}

func TestTableTruncatesWideCells(t *testing.T) {
	table := NewTable("NAME")
	table.Row(strings.Repeat("b", cellMaxWidth+10))

	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	if ansi.PrintableRuneWidth(lines[1]) != cellMaxWidth {
		t.Fatalf("expected width %d, got %d (%q)", cellMaxWidth, ansi.PrintableRuneWidth(lines[1]), lines[1])
	}
	if !strings.HasSuffix(lines[1], cellTail) {
		t.Fatalf("expected tail, got %q", lines[1])
	}
}

func TestTableKeepsCellsAtLimit(t *testing.T) {
	value := strings.Repeat("a", cellMaxWidth-1) + "é"
	table := NewTable("NAME")
	table.Row(value)

	if !strings.Contains(table.String(), value) {
		t.Fatalf("expected cell at the limit to stay whole, got %q", table.String())
	}
}

func TestTableMeasuresStyledCells(t *testing.T) {
	table := NewTable("STATUS", "N")
	table.Row("\x1b[33mPending\x1b[0m", "x")

	lines := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	if ansi.PrintableRuneWidth(lines[0]) != ansi.PrintableRuneWidth(lines[1]) {
		t.Fatalf("expected aligned rows, got %q", lines)
	}
}
