package agenda

import (
	"strings"
	"testing"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

func TestRenderBlocksOrdersByStart(t *testing.T) {
	id := "t1"
	blocks := []models.ScheduledBlock{
		{TaskID: &id, Type: constants.BlockShallow, StartMin: 780, EndMin: 810, Label: "Email"},
		{TaskID: &id, Type: constants.BlockDeep, StartMin: 420, EndMin: 510, Label: "Write report"},
		{Type: constants.BlockBreak, StartMin: 510, EndMin: 520, Label: "Break"},
	}

	out := RenderBlocks(blocks)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, want := range []string{"Write report", "Break", "Email"} {
		if !strings.Contains(lines[i], want) {
			t.Errorf("line %d: expected %q in %q", i, want, lines[i])
		}
	}
	if !strings.Contains(lines[0], "07:00") || !strings.Contains(lines[0], "08:30") {
		t.Errorf("expected clock times in %q", lines[0])
	}
}

func TestViewWithoutAgenda(t *testing.T) {
	m := New(40, 10)
	m.SetAgenda("2025-01-02", nil, false)
	if !strings.Contains(m.View(), "No agenda saved for 2025-01-02") {
		t.Errorf("unexpected view %q", m.View())
	}
}

func TestHeader(t *testing.T) {
	a := models.Agenda{Date: "2025-01-02", Revision: 3, Confidence: 0.756}
	if got := Header(a, true); !strings.Contains(got, "revision 3") || !strings.Contains(got, "0.76") {
		t.Errorf("unexpected header %q", got)
	}
	if got := Header(a, false); !strings.Contains(got, "unsaved") {
		t.Errorf("unexpected header %q", got)
	}
}
