// Package blockfall plugs the falling-block engine into the platform as
// registry games, one per mode.
package blockfall

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode selects how the speed curve behaves.
type Mode string

const (
	ModeClassic Mode = "classic" // gravity speeds up over time
	ModeZen     Mode = "zen"     // gravity never changes
)

func init() {
	registry.Register(string(ModeClassic), func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(string(ModeZen), func() registry.Game {
		return New(ModeZen)
	})
}

// intentOrder decides which action wins when several keys arrive in one
// tick; the engine accepts a single intent per tick.
var intentOrder = []core.Action{
	core.ActionHardDrop,
	core.ActionRotateCW,
	core.ActionRotateCCW,
	core.ActionMoveLeft,
	core.ActionMoveRight,
	core.ActionSoftDrop,
}

var intents = map[core.Action]engine.Intent{
	core.ActionHardDrop:  engine.IntentHardDrop,
	core.ActionRotateCW:  engine.IntentRotateCW,
	core.ActionRotateCCW: engine.IntentRotateCCW,
	core.ActionMoveLeft:  engine.IntentMoveLeft,
	core.ActionMoveRight: engine.IntentMoveRight,
	core.ActionSoftDrop:  engine.IntentSoftDrop,
}

// Game runs one engine.Session at a time and restarts it on Reset.
type Game struct {
	mode   Mode
	cfg    config.BlockfallConfig
	logger *log.Logger

	session *engine.Session
	board   *tileLayer
	ghost   *tileLayer
	err     error

	tick      uint64
	tickDelta time.Duration
	paused    bool
	last      engine.TickResult
	over      *engine.GameOverEvent
}

// New creates a game with the built-in configuration.
func New(mode Mode) *Game {
	return &Game{
		mode:   mode,
		cfg:    config.DefaultBlockfallConfig(),
		logger: log.New(io.Discard),
		board:  newTileLayer(),
		ghost:  newTileLayer(),
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Zen"
	}
	return "Classic"
}

// Configure loads the YAML config, applies the difficulty preset and checks
// that a session can start with the result.
func (g *Game) Configure(s registry.Settings) error {
	cfg, err := config.Load(s.ConfigPath)
	if err != nil {
		return err
	}
	if s.Difficulty != "" {
		preset, err := config.ParsePreset(s.Difficulty)
		if err != nil {
			return err
		}
		config.ApplyPreset(&cfg, preset)
	}

	ec, err := g.engineConfig(cfg)
	if err != nil {
		return err
	}
	if _, err := engine.New(ec, rand.New(rand.NewSource(1))); err != nil {
		return err
	}

	g.cfg = cfg
	if s.Logger != nil {
		g.logger = s.Logger.WithPrefix(string(g.mode))
	}
	return nil
}

func (g *Game) engineConfig(cfg config.BlockfallConfig) (engine.Config, error) {
	ec, err := cfg.EngineConfig()
	if err != nil {
		return engine.Config{}, err
	}
	if g.mode == ModeZen {
		ec.Levels = nil
	}
	return ec, nil
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tickDelta = time.Second / time.Duration(rate)
	g.tick = 0
	g.paused = false
	g.last = engine.TickResult{}
	g.over = nil
	g.board.Reset()
	g.ghost.Reset()

	ec, err := g.engineConfig(g.cfg)
	if err == nil {
		g.session, err = engine.New(ec, rand.New(rand.NewSource(cfg.Seed)),
			engine.WithLogger(g.logger),
			engine.WithPainter(g.board),
			engine.WithGhostPainter(g.ghost),
			engine.WithGameOverListener(g.onGameOver),
		)
	}
	g.err = err
	if err != nil {
		g.session = nil
		g.logger.Error("cannot start session", "err", err)
		return
	}
	g.logger.Debug("session started", "seed", cfg.Seed, "tick", g.tickDelta)
}

func (g *Game) onGameOver(ev engine.GameOverEvent) {
	g.over = &ev
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}
	if g.paused || g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	intent := intents[in.First(intentOrder...)]
	g.last = g.session.Tick(g.tickDelta, intent)
	g.tick++

	if g.last.LevelUp {
		g.logger.Info("level up", "level", g.session.Level(), "step_delay", g.session.StepDelay())
	}

	return core.StepResult{State: g.State()}
}

// State reports lines, level and flags to the platform.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Lines:    g.session.Lines(),
		Level:    g.session.Level(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// LastTick returns what happened during the most recent Step.
func (g *Game) LastTick() engine.TickResult {
	return g.last
}

// Result returns the game-over event, or nil while the session runs.
func (g *Game) Result() *engine.GameOverEvent {
	return g.over
}
