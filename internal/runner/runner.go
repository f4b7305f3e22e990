// Package runner drives parsed levels frame by frame: it moves the player
// through a Controller, lets every actor act, resolves contacts and reports
// progress to a Renderer.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/level"
)

// DefaultFrameDelta is the simulated time of one frame at 60fps.
const DefaultFrameDelta = 1.0 / 60

// Options configures a run.
type Options struct {
	FrameDelta  float64       // Simulated seconds per frame
	MaxTicks    int           // Frames per attempt before it counts as failed, 0 = unlimited
	MaxAttempts int           // Attempts per level, 0 = unlimited
	Pace        time.Duration // Wall-clock time per frame, 0 = as fast as possible
	Controller  Controller
	Logger      *log.Logger
}

// Option modifies Options.
type Option func(*Options)

// WithFrameDelta sets the simulated time per frame.
func WithFrameDelta(dt float64) Option {
	return func(o *Options) { o.FrameDelta = dt }
}

// WithMaxTicks bounds the number of frames of a single attempt.
func WithMaxTicks(n int) Option {
	return func(o *Options) { o.MaxTicks = n }
}

// WithMaxAttempts bounds the number of attempts per level.
func WithMaxAttempts(n int) Option {
	return func(o *Options) { o.MaxAttempts = n }
}

// WithPace makes Run wait between frames.
func WithPace(d time.Duration) Option {
	return func(o *Options) { o.Pace = d }
}

// WithController sets who moves the player.
func WithController(c Controller) Option {
	return func(o *Options) { o.Controller = c }
}

// WithLogger sets the logger for retry messages.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// LevelResult describes how a level ended.
type LevelResult struct {
	Index    int
	Status   level.Status
	Attempts int
	Ticks    int  // Frames of the last attempt
	TimedOut bool // Last attempt hit MaxTicks
	Hash     uint64
}

// Result is the outcome of a whole run.
type Result struct {
	Levels    []LevelResult
	Completed bool // Every level was won
}

// Run plays the schemas in order. A won level advances to the next one, a
// lost or timed out level is retried until MaxAttempts is reached, which
// ends the run with Completed unset. Errors are reserved for invalid
// arguments and context cancellation.
func Run(ctx context.Context, schemas [][]string, parser *level.Parser, renderer Renderer, opts ...Option) (Result, error) {
	s, err := NewSession(schemas, parser, renderer, opts...)
	if err != nil {
		return Result{}, err
	}

	var ticker *time.Ticker
	if s.opts.Pace > 0 {
		ticker = time.NewTicker(s.opts.Pace)
		defer ticker.Stop()
	}

	for !s.Done() {
		if err := wait(ctx, ticker); err != nil {
			return s.Result(), err
		}
		s.Step()
	}
	return s.Result(), nil
}

// Session is a run that advances one frame per Step call, for drivers
// that own their own frame clock.
type Session struct {
	schemas  [][]string
	parser   *level.Parser
	renderer Renderer
	opts     Options

	lvl       *level.Level
	current   LevelResult
	results   []LevelResult
	done      bool
	completed bool
}

// NewSession validates the arguments and parses the first level.
func NewSession(schemas [][]string, parser *level.Parser, renderer Renderer, opts ...Option) (*Session, error) {
	o := Options{
		FrameDelta: DefaultFrameDelta,
		Controller: Idle,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if parser == nil {
		return nil, fmt.Errorf("runner: nil parser: %w", core.ErrInvalidArgument)
	}
	if !(o.FrameDelta > 0) {
		return nil, fmt.Errorf("runner: frame delta must be positive, got %v: %w", o.FrameDelta, core.ErrInvalidArgument)
	}
	if o.Controller == nil {
		o.Controller = Idle
	}
	if renderer == nil {
		renderer = nopRenderer{}
	}

	s := &Session{
		schemas:  schemas,
		parser:   parser,
		renderer: renderer,
		opts:     o,
	}
	s.startLevel(0)
	return s, nil
}

// Level returns the level being played, or nil once the session is done.
func (s *Session) Level() *level.Level {
	if s.done {
		return nil
	}
	return s.lvl
}

// Index returns the index of the level being played.
func (s *Session) Index() int {
	return s.current.Index
}

// Attempt returns the attempt number of the level being played.
func (s *Session) Attempt() int {
	return s.current.Attempts
}

// Ticks returns the frames played in the current attempt.
func (s *Session) Ticks() int {
	return s.current.Ticks
}

// Levels returns the number of schemas in the session.
func (s *Session) Levels() int {
	return len(s.schemas)
}

// Done reports whether every level was won or a level ran out of attempts.
func (s *Session) Done() bool {
	return s.done
}

// Result returns the finished levels and, while the session is running,
// the current one.
func (s *Session) Result() Result {
	res := Result{
		Levels:    append([]LevelResult(nil), s.results...),
		Completed: s.completed,
	}
	if !s.done {
		cur := s.current
		cur.Status = s.lvl.Status()
		cur.Hash = hash(s.lvl)
		res.Levels = append(res.Levels, cur)
	}
	return res
}

// Step plays one frame and handles level completion, retries and
// advancing. It does nothing once the session is done.
func (s *Session) Step() {
	if s.done {
		return
	}

	if p := s.lvl.Player(); p != nil {
		s.opts.Controller.Control(s.opts.FrameDelta, p, s.lvl)
	}
	Step(s.lvl, s.opts.FrameDelta)
	s.current.Ticks++
	s.renderer.Frame(s.current.Index, s.lvl)

	switch {
	case s.lvl.IsFinished():
		s.endAttempt()
	case s.opts.MaxTicks > 0 && s.current.Ticks >= s.opts.MaxTicks:
		s.current.TimedOut = true
		s.endAttempt()
	}
}

func (s *Session) startLevel(index int) {
	if index >= len(s.schemas) {
		s.done = true
		s.completed = true
		return
	}
	s.current = LevelResult{Index: index}
	s.startAttempt()
}

func (s *Session) startAttempt() {
	s.current.Attempts++
	s.current.Ticks = 0
	s.current.TimedOut = false
	s.lvl = s.parser.Parse(s.schemas[s.current.Index])
}

func (s *Session) endAttempt() {
	s.current.Status = s.lvl.Status()
	s.current.Hash = hash(s.lvl)

	if s.current.Status == level.StatusWon {
		s.finishLevel()
		s.startLevel(s.current.Index + 1)
		return
	}
	if s.opts.MaxAttempts > 0 && s.current.Attempts >= s.opts.MaxAttempts {
		s.finishLevel()
		s.done = true
		return
	}

	if s.opts.Logger != nil {
		s.opts.Logger.Info("retrying level",
			"level", s.current.Index,
			"attempt", s.current.Attempts+1,
			"status", s.current.Status,
			"timed_out", s.current.TimedOut)
	}
	s.startAttempt()
}

func (s *Session) finishLevel() {
	s.results = append(s.results, s.current)
	s.renderer.Finished(s.current.Index, s.current)
}

// Step advances lvl by one frame of t seconds: every actor acts, then the
// player's contacts with lava and other actors are resolved and the finish
// countdown ticks.
func Step(lvl *level.Level, t float64) {
	for _, a := range lvl.Actors() {
		a.Act(t, lvl)
	}

	if p := lvl.Player(); p != nil {
		if lvl.ObstacleAt(p.Pos(), p.Size()) == level.ObstacleLava {
			lvl.PlayerTouched(level.KindLava, nil)
		}
		for _, a := range lvl.Actors() {
			// IsIntersect only fails on nil actors.
			if hit, _ := level.IsIntersect(p, a); hit {
				lvl.PlayerTouched(a.Kind(), a)
			}
		}
	}

	lvl.Tick()
}

func wait(ctx context.Context, ticker *time.Ticker) error {
	if ticker == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ticker.C:
		return nil
	}
}

func hash(lvl *level.Level) uint64 {
	snap := lvl.Snapshot()
	return snap.Hash()
}
