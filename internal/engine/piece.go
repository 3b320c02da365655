package engine

import "time"

// Intent is one discrete player request, delivered at most once per tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateCW
	IntentRotateCCW
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentSoftDrop:
		return "SoftDrop"
	case IntentHardDrop:
		return "HardDrop"
	case IntentRotateCW:
		return "RotateCW"
	case IntentRotateCCW:
		return "RotateCCW"
	default:
		return "Unknown"
	}
}

// Piece is the active falling tetromino.
//
// The lock timer accumulates every tick and is reset only by a successful
// Move of any direction, which includes gravity steps and wall kicks. Locking
// is checked on gravity steps only, against the time since that last
// successful Move; whether the piece rests on something is never consulted.
type Piece struct {
	board    Board
	def      *Definition
	position Cell
	rotation int
	cells    [4]Cell

	stepDelay time.Duration
	lockDelay time.Duration
	stepTimer time.Duration // session time of the next gravity step
	lockTimer time.Duration

	locked bool
	onLock func(p *Piece)
}

// NewPiece places a piece of the given kind at position with rotation 0.
// now is the current session time; the first gravity step happens stepDelay
// after it. onLock runs after the piece has been committed to the board.
func NewPiece(board Board, kind Kind, position Cell, now, stepDelay, lockDelay time.Duration, onLock func(p *Piece)) *Piece {
	def := Lookup(kind)
	return &Piece{
		board:     board,
		def:       def,
		position:  position,
		cells:     def.Cells,
		stepDelay: stepDelay,
		lockDelay: lockDelay,
		stepTimer: now + stepDelay,
		onLock:    onLock,
	}
}

// Kind returns the piece shape.
func (p *Piece) Kind() Kind {
	return p.def.Kind
}

// Tile returns the tile the piece paints with.
func (p *Piece) Tile() TileID {
	return p.def.Tile
}

// Position returns the anchor.
func (p *Piece) Position() Cell {
	return p.position
}

// Rotation returns the rotation index in [0, 4).
func (p *Piece) Rotation() int {
	return p.rotation
}

// Cells returns the current offsets relative to the anchor.
func (p *Piece) Cells() [4]Cell {
	return p.cells
}

// Locked reports whether the piece has been committed.
func (p *Piece) Locked() bool {
	return p.locked
}

// IsValid reports whether the piece fits where it currently is.
func (p *Piece) IsValid() bool {
	return p.board.IsValidPlacement(p.cells, p.position)
}

// SetStepDelay changes the gravity interval from the next step on.
func (p *Piece) SetStepDelay(d time.Duration) {
	p.stepDelay = d
}

// Move translates the piece if the destination is valid.
// A successful move resets the lock timer.
func (p *Piece) Move(translation Cell) bool {
	next := p.position.Add(translation)
	if !p.board.IsValidPlacement(p.cells, next) {
		return false
	}
	p.position = next
	p.lockTimer = 0
	return true
}

// Rotate turns the piece by direction (+1 clockwise, -1 counter-clockwise)
// and resolves wall kicks. If no kick fits, the piece is left exactly as it
// was and Rotate returns false.
func (p *Piece) Rotate(direction int) bool {
	original := p.rotation
	p.rotation = wrap(p.rotation+direction, 0, 4)
	rotateCells(p.def.Kind, &p.cells, direction)

	if p.wallKick(original, direction) {
		return true
	}

	p.rotation = original
	rotateCells(p.def.Kind, &p.cells, -direction)
	return false
}

// wallKick tries each candidate of the transition row in order.
func (p *Piece) wallKick(original, direction int) bool {
	row := p.def.Kicks[kickIndex(original, direction, len(p.def.Kicks))]
	for _, offset := range row {
		if p.Move(offset) {
			return true
		}
	}
	return false
}

// HardDrop moves the piece down until it no longer fits.
// Returns the number of rows dropped.
func (p *Piece) HardDrop() int {
	rows := 0
	for p.Move(Down) {
		rows++
	}
	return rows
}

// Tick advances the piece by delta. now is the session time after delta has
// been added. It handles the intent, the gravity step and, when the lock
// timer has run out on a step, the lock.
func (p *Piece) Tick(delta, now time.Duration, intent Intent) {
	if p.locked {
		return
	}

	p.lockTimer += delta

	switch intent {
	case IntentRotateCW:
		p.Rotate(1)
	case IntentRotateCCW:
		p.Rotate(-1)
	case IntentMoveLeft:
		p.Move(Left)
	case IntentMoveRight:
		p.Move(Right)
	case IntentSoftDrop:
		p.Move(Down)
	case IntentHardDrop:
		p.HardDrop()
	}

	if now >= p.stepTimer {
		p.step(now)
	}
}

// step applies gravity once and locks if the lock delay has elapsed.
func (p *Piece) step(now time.Duration) {
	p.stepTimer = now + p.stepDelay

	p.Move(Down)

	if p.lockTimer >= p.lockDelay {
		p.Lock()
	}
}

// Lock commits the piece to the board and hands over to the lock hook.
func (p *Piece) Lock() {
	if p.locked {
		return
	}
	p.locked = true
	p.board.Commit(p.cells, p.position, p.def.Tile)
	if p.onLock != nil {
		p.onLock(p)
	}
}
