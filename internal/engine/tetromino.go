package engine

// Cell is an integer board coordinate. Y grows upward, so "down" is -1.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by o.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y}
}

// Unit translations used by movement and drops.
var (
	Left  = Cell{X: -1, Y: 0}
	Right = Cell{X: 1, Y: 0}
	Down  = Cell{X: 0, Y: -1}
)

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// Kinds lists every shape in spawn-table order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindJ, KindL, KindS, KindZ}

// String returns the conventional single-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// TileID is the visual identifier painted for a cell.
// The engine never interprets it beyond equality.
type TileID uint8

const (
	TileNone TileID = iota
	TileI
	TileO
	TileT
	TileJ
	TileL
	TileS
	TileZ
	TileGhost
)

// kickRows is the number of rotation transitions in a kick table:
// 0->R, R->0, R->2, 2->R, 2->L, L->2, L->0, 0->L.
const kickRows = 8

// kickTests is the number of candidate offsets per transition.
const kickTests = 5

// Definition is the immutable description of one shape.
type Definition struct {
	Kind  Kind
	Tile  TileID
	Cells [4]Cell
	Kicks [kickRows][kickTests]Cell
}

var kicksI = [kickRows][kickTests]Cell{
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

var kicksJLOSTZ = [kickRows][kickTests]Cell{
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var definitions = [len(Kinds)]Definition{
	KindI: {Kind: KindI, Tile: TileI, Cells: [4]Cell{{-1, 1}, {0, 1}, {1, 1}, {2, 1}}, Kicks: kicksI},
	KindO: {Kind: KindO, Tile: TileO, Cells: [4]Cell{{0, 1}, {1, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	KindT: {Kind: KindT, Tile: TileT, Cells: [4]Cell{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	KindJ: {Kind: KindJ, Tile: TileJ, Cells: [4]Cell{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	KindL: {Kind: KindL, Tile: TileL, Cells: [4]Cell{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
	KindS: {Kind: KindS, Tile: TileS, Cells: [4]Cell{{0, 1}, {1, 1}, {-1, 0}, {0, 0}}, Kicks: kicksJLOSTZ},
	KindZ: {Kind: KindZ, Tile: TileZ, Cells: [4]Cell{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, Kicks: kicksJLOSTZ},
}

// Lookup returns the shared definition for a kind.
// The returned value must not be modified.
func Lookup(k Kind) *Definition {
	if int(k) >= len(definitions) {
		return nil
	}
	return &definitions[k]
}
