package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is wrapped by every configuration error returned by New.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds the board geometry and timing of a session.
type Config struct {
	Width        int
	Height       int
	Spawn        Cell
	StepDelay    time.Duration
	LockDelay    time.Duration
	MinStepDelay time.Duration
	Levels       []LevelStep
}

// DefaultConfig returns a 10x20 board with one-second gravity that speeds up
// by 200ms every 30 seconds for nine levels.
func DefaultConfig() Config {
	levels := make([]LevelStep, 0, 9)
	for i := 1; i <= 9; i++ {
		levels = append(levels, LevelStep{
			At:        time.Duration(i*30) * time.Second,
			Decrement: 200 * time.Millisecond,
		})
	}
	return Config{
		Width:     10,
		Height:    20,
		Spawn:     Cell{X: -1, Y: 8},
		StepDelay: time.Second,
		LockDelay: 500 * time.Millisecond,
		Levels:    levels,
	}
}

// Randomizer picks the kind of each spawned piece. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// GameOverEvent describes the end of a session. It is delivered once.
type GameOverEvent struct {
	Elapsed time.Duration
	Level   int
	Lines   int
	Kind    Kind // kind of the piece that could not spawn
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Locked       bool
	LinesCleared int
	LevelUp      bool
	GameOver     bool // true only on the tick the session ended
}

// PieceState is a read-only view of the active piece.
type PieceState struct {
	Kind     Kind
	Cells    [4]Cell
	Anchor   Cell
	Rotation int
}

// Absolute returns the piece cells in board coordinates.
func (s PieceState) Absolute() [4]Cell {
	return absolute(s.Cells, s.Anchor)
}

// GhostState is a read-only view of the ghost projection.
type GhostState struct {
	Cells  [4]Cell
	Anchor Cell
}

// Absolute returns the ghost cells in board coordinates.
func (s GhostState) Absolute() [4]Cell {
	return absolute(s.Cells, s.Anchor)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for lifecycle debug messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPainter sets the collaborator for locked tiles and the active piece.
func WithPainter(p Painter) Option {
	return func(s *Session) {
		if p != nil {
			s.painter = p
		}
	}
}

// WithGhostPainter sets the collaborator for the ghost projection.
func WithGhostPainter(p Painter) Option {
	return func(s *Session) {
		if p != nil {
			s.ghostPainter = p
		}
	}
}

// WithGameOverListener registers fn to be called once when the session ends.
func WithGameOverListener(fn func(GameOverEvent)) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// Session owns one board and its active piece. Ticks must not overlap; a
// Session is not safe for concurrent use.
type Session struct {
	cfg   Config
	grid  *Grid
	piece *Piece
	ghost *Ghost
	speed *SpeedCurve
	rng   Randomizer

	painter      Painter
	ghostPainter Painter
	logger       *log.Logger
	onGameOver   func(GameOverEvent)

	elapsed  time.Duration
	lines    int
	gameOver bool
	result   TickResult

	allCells     []Cell
	boardDirty   bool
	paintedPiece []Cell
	paintedGhost []Cell
}

// New validates cfg, spawns the first piece and returns the session.
func New(cfg Config, rng Randomizer, opts ...Option) (*Session, error) {
	if rng == nil {
		return nil, fmt.Errorf("engine: randomizer is required: %w", ErrInvalidConfig)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("engine: board size %dx%d: %w", cfg.Width, cfg.Height, ErrInvalidConfig)
	}
	if cfg.LockDelay < 0 {
		return nil, fmt.Errorf("engine: lock delay must not be negative, got %s: %w", cfg.LockDelay, ErrInvalidConfig)
	}

	grid := NewGrid(cfg.Width, cfg.Height)
	for _, k := range Kinds {
		if !grid.IsValidPlacement(Lookup(k).Cells, cfg.Spawn) {
			return nil, fmt.Errorf("engine: %s piece does not fit at spawn (%d, %d): %w",
				k, cfg.Spawn.X, cfg.Spawn.Y, ErrInvalidConfig)
		}
	}

	speed, err := NewSpeedCurve(cfg.StepDelay, cfg.MinStepDelay, cfg.Levels)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:          cfg,
		grid:         grid,
		ghost:        NewGhost(grid, grid.Bounds().Y-1),
		speed:        speed,
		rng:          rng,
		painter:      nopPainter{},
		ghostPainter: nopPainter{},
		logger:       log.New(io.Discard),
		boardDirty:   true,
	}
	for _, opt := range opts {
		opt(s)
	}

	b := grid.Bounds()
	s.allCells = make([]Cell, 0, b.W*b.H)
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			s.allCells = append(s.allCells, Cell{X: x, Y: y})
		}
	}

	s.spawn()
	s.ghost.Project(s.piece)
	s.repaint()

	return s, nil
}

// Tick advances the session clock by delta and applies at most one intent.
// The piece moves and possibly locks first, then the speed curve advances,
// then the ghost is recomputed.
func (s *Session) Tick(delta time.Duration, intent Intent) TickResult {
	if s.gameOver {
		return TickResult{}
	}

	s.result = TickResult{}
	s.elapsed += delta

	s.piece.Tick(delta, s.elapsed, intent)

	if !s.gameOver {
		if n := s.speed.Advance(s.elapsed); n > 0 {
			s.piece.SetStepDelay(s.speed.Delay())
			s.result.LevelUp = true
			s.logger.Debug("level up", "level", s.speed.Level(), "step_delay", s.speed.Delay())
		}
		s.ghost.Project(s.piece)
	}

	s.repaint()
	return s.result
}

// spawn replaces the active piece with a random one at the spawn cell.
func (s *Session) spawn() {
	kind := Kinds[s.rng.Intn(len(Kinds))]
	s.piece = NewPiece(s.grid, kind, s.cfg.Spawn, s.elapsed, s.speed.Delay(), s.cfg.LockDelay, s.handleLock)

	if !s.piece.IsValid() {
		s.endGame()
		return
	}
	s.logger.Debug("spawn", "kind", kind, "elapsed", s.elapsed)
}

// handleLock runs after a piece has been committed.
func (s *Session) handleLock(p *Piece) {
	cleared := s.grid.ClearLines()
	s.lines += cleared
	s.boardDirty = true

	s.result.Locked = true
	s.result.LinesCleared += cleared

	s.logger.Debug("lock", "kind", p.Kind(), "x", p.Position().X, "y", p.Position().Y, "cleared", cleared)

	s.spawn()
}

// endGame marks the session finished and notifies the listener.
func (s *Session) endGame() {
	s.gameOver = true
	s.result.GameOver = true

	ev := GameOverEvent{
		Elapsed: s.elapsed,
		Level:   s.speed.Level(),
		Lines:   s.lines,
		Kind:    s.piece.Kind(),
	}
	s.logger.Info("game over", "elapsed", ev.Elapsed, "level", ev.Level, "lines", ev.Lines)

	if s.onGameOver != nil {
		s.onGameOver(ev)
	}
}

// repaint brings both painters up to date with the board, piece and ghost.
func (s *Session) repaint() {
	if len(s.paintedPiece) > 0 {
		s.painter.Erase(s.paintedPiece)
		s.paintedPiece = s.paintedPiece[:0]
	}
	if len(s.paintedGhost) > 0 {
		s.ghostPainter.Erase(s.paintedGhost)
		s.paintedGhost = s.paintedGhost[:0]
	}

	if s.gameOver {
		s.painter.Erase(s.allCells)
		return
	}

	if s.boardDirty {
		s.painter.Erase(s.allCells)
		byTile := make(map[TileID][]Cell)
		s.grid.Each(func(c Cell, tile TileID) {
			byTile[tile] = append(byTile[tile], c)
		})
		for tile, cells := range byTile {
			s.painter.Paint(cells, tile)
		}
		s.boardDirty = false
	}

	ghost := s.ghost.Absolute()
	s.paintedGhost = append(s.paintedGhost, ghost[:]...)
	s.ghostPainter.Paint(s.paintedGhost, TileGhost)

	piece := absolute(s.piece.Cells(), s.piece.Position())
	s.paintedPiece = append(s.paintedPiece, piece[:]...)
	s.painter.Paint(s.paintedPiece, s.piece.Tile())
}

// Current returns the active piece.
func (s *Session) Current() PieceState {
	return PieceState{
		Kind:     s.piece.Kind(),
		Cells:    s.piece.Cells(),
		Anchor:   s.piece.Position(),
		Rotation: s.piece.Rotation(),
	}
}

// Ghost returns the landing projection of the active piece.
func (s *Session) Ghost() GhostState {
	return GhostState{
		Cells:  s.ghost.Cells(),
		Anchor: s.ghost.Position(),
	}
}

// Occupied reports whether a locked tile sits at c.
func (s *Session) Occupied(c Cell) bool {
	return s.grid.IsOccupied(c)
}

// Bounds returns the board rectangle in board coordinates.
func (s *Session) Bounds() (x, y, w, h int) {
	b := s.grid.Bounds()
	return b.X, b.Y, b.W, b.H
}

// Filled returns the number of locked tiles on the board.
func (s *Session) Filled() int {
	return s.grid.Len()
}

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Elapsed returns the session clock.
func (s *Session) Elapsed() time.Duration {
	return s.elapsed
}

// Level returns the current speed level, starting at 1.
func (s *Session) Level() int {
	return s.speed.Level()
}

// StepDelay returns the current gravity interval.
func (s *Session) StepDelay() time.Duration {
	return s.speed.Delay()
}

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int {
	return s.lines
}
