package blockfall

import "time"

// Snapshot captures the state two runs must agree on to be considered
// identical.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Elapsed   time.Duration
	Level     int
	Lines     int
	StepDelay time.Duration
	Kind      string
	AnchorX   int
	AnchorY   int
	Rotation  int
	GhostY    int
	Filled    int
	Paused    bool
	GameOver  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   g.tick,
		Mode:   string(g.mode),
		Paused: g.paused,
	}
	if g.session == nil {
		return snap
	}

	cur := g.session.Current()
	snap.Elapsed = g.session.Elapsed()
	snap.Level = g.session.Level()
	snap.Lines = g.session.Lines()
	snap.StepDelay = g.session.StepDelay()
	snap.Kind = cur.Kind.String()
	snap.AnchorX = cur.Anchor.X
	snap.AnchorY = cur.Anchor.Y
	snap.Rotation = cur.Rotation
	snap.GhostY = g.session.Ghost().Anchor.Y
	snap.Filled = g.session.Filled()
	snap.GameOver = g.session.GameOver()
	return snap
}
