package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/level"
)

// Renderer observes a run. Frame is called after every simulated frame and
// Finished once per level.
type Renderer interface {
	Frame(index int, lvl *level.Level)
	Finished(index int, result LevelResult)
}

type nopRenderer struct{}

func (nopRenderer) Frame(int, *level.Level)   {}
func (nopRenderer) Finished(int, LevelResult) {}

// LogRenderer logs status changes and level results. The zero value with
// only Logger set is ready to use.
type LogRenderer struct {
	Logger *log.Logger

	status map[int]level.Status
}

// NewLogRenderer creates a renderer writing to logger.
func NewLogRenderer(logger *log.Logger) *LogRenderer {
	return &LogRenderer{Logger: logger, status: make(map[int]level.Status)}
}

// Frame logs the frame on which a level's status is decided.
func (r *LogRenderer) Frame(index int, lvl *level.Level) {
	if r.status == nil {
		r.status = make(map[int]level.Status)
	}
	st := lvl.Status()
	if r.status[index] == st {
		return
	}
	r.status[index] = st
	if st != level.StatusNone {
		r.Logger.Debug("level decided", "level", index, "status", st, "actors", len(lvl.Actors()))
	}
}

// Finished logs the result of a level.
func (r *LogRenderer) Finished(index int, result LevelResult) {
	delete(r.status, index)
	kv := []any{
		"level", index,
		"status", result.Status,
		"attempts", result.Attempts,
		"ticks", result.Ticks,
		"hash", result.Hash,
	}
	if result.Status == level.StatusWon {
		r.Logger.Info("level finished", kv...)
		return
	}
	r.Logger.Warn("level failed", append(kv, "timed_out", result.TimedOut)...)
}
