package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/platformer/internal/actors"
	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/levels"
	"github.com/vovakirdan/platformer/internal/runner"
)

func TestCheckLevel(t *testing.T) {
	parser := level.NewParser(actors.Dictionary(nil))

	tests := []struct {
		name string
		rows []string
		want []string
	}{
		{"playable", []string{"@ o", "xxx"}, nil},
		{"no player", []string{"  o"}, []string{"no player"}},
		{"no coins", []string{"@  "}, []string{"no coins"}},
		{"two players", []string{"@@o"}, []string{"2 players"}},
		{"ragged rows are legal", []string{"@ o", "x"}, nil},
		{"empty", nil, []string{"level is empty", "no player", "no coins"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := checkLevel(parser.Parse(tc.rows))
			if len(got) != len(tc.want) {
				t.Fatalf("problems = %q, expected %d", got, len(tc.want))
			}
			for i, want := range tc.want {
				if !strings.Contains(got[i], want) {
					t.Errorf("problem %d = %q, expected it to mention %q", i, got[i], want)
				}
			}
		})
	}
}

func TestStatsOf(t *testing.T) {
	lvl := level.NewParser(actors.Dictionary(nil)).Parse([]string{
		"  v o",
		"@ x!x",
	})
	st := statsOf(lvl)

	if st.Width != 5 || st.Height != 2 || st.Walls != 2 || st.Lava != 1 {
		t.Errorf("stats = %+v", st)
	}
	if st.Actors[level.KindPlayer] != 1 || st.Actors[level.KindCoin] != 1 || st.Actors[level.KindFireball] != 1 {
		t.Errorf("actors = %v", st.Actors)
	}
}

func TestAutopilot(t *testing.T) {
	for _, name := range []string{"", "idle", "seek"} {
		if _, err := autopilot(name); err != nil {
			t.Errorf("autopilot(%q) failed: %v", name, err)
		}
	}
	if _, err := autopilot("jump"); err == nil {
		t.Error("expected error for unknown autopilot")
	}
}

func TestResultsTable(t *testing.T) {
	played := []levels.Level{{ID: "first", Name: "First"}, {ID: "second", Name: "Second"}}
	out := resultsTable(played, runner.Result{Levels: []runner.LevelResult{
		{Index: 0, Status: level.StatusWon, Attempts: 1, Ticks: 40, Hash: 0xabc},
		{Index: 1, Status: level.StatusNone, Attempts: 3, Ticks: 100, TimedOut: true},
	}})

	for _, want := range []string{"first", "Second", "won", "timeout", "0000000000000abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestValidatePack(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("levels: [{id: a, rows: [\"@o\"]}]"), 0o600); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if problems := validatePack(good); len(problems) != 0 {
		t.Errorf("good pack reported %q", problems)
	}

	ragged := filepath.Join(dir, "ragged.yaml")
	if err := os.WriteFile(ragged, []byte("levels: [{id: r, rows: [\"@  o\", \"xx\"]}]"), 0o600); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	if problems := validatePack(ragged); len(problems) != 0 {
		t.Errorf("ragged pack reported %q", problems)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: [{id: a, rows: [\"@ \"]}]"), 0o600); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	problems := validatePack(bad)
	if len(problems) != 1 || !strings.HasPrefix(problems[0], "a: no coins") {
		t.Errorf("bad pack problems = %q", problems)
	}

	if problems := validatePack(filepath.Join(dir, "missing.yaml")); len(problems) != 1 {
		t.Errorf("missing file problems = %q", problems)
	}
}
