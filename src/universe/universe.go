package universe

import (
	"errors"
	"fmt"
	"time"
)

//Cell is the binary state of one grid position, shared by all algorithms
//Filled means alive for Life and carved floor for DrunkWalk
type Cell bool

const (
	Empty  Cell = false
	Filled Cell = true
)

//Point is a grid coordinate
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.X, p.Y)
}

var (
	ErrOutOfBounds      = errors.New("coordinates out of bounds")
	ErrBadDimension     = errors.New("grid dimension must be positive")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownEngine    = errors.New("unknown life engine")
)

//Options represents the Session's configurable options
type Options struct {
	Width     int
	Height    int
	Seed      int64
	Interval  time.Duration
	Algorithm string
	Engine    string
}

//default options
const (
	DefWidth     = 160
	DefHeight    = 90
	DefSeed      = 42
	DefInterval  = time.Millisecond * 100
	DefAlgorithm = "paint"
	DefEngine    = "base"
)

var DefaultOptions = Options{
	Width:     DefWidth,
	Height:    DefHeight,
	Seed:      DefSeed,
	Interval:  DefInterval,
	Algorithm: DefAlgorithm,
	Engine:    DefEngine,
}

//Validate checks the options before the Session is built
//the Session itself never fails once constructed
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimension, o.Width, o.Height)
	}
	if _, ok := ParseAlgorithm(o.Algorithm); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, o.Algorithm)
	}
	if _, ok := lifeEngines[o.Engine]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEngine, o.Engine)
	}
	return nil
}

//Status represents the status of the Session at concrete moment
type Status struct {
	IterationNum  int
	Algorithm     AlgorithmKind
	Running       bool
	Finished      bool
	Seed          int64
	LiveCells     int
	IterationTime time.Duration
	Focus         *Point
}

//Snapshot is the read-only copy of the visible part of the grid handed to viewers
type Snapshot struct {
	GridWidth  int
	GridHeight int
	Origin     Point
	ViewWidth  int
	ViewHeight int
	Cursor     Point
	//Cells holds the visible rows, at most ViewHeight rows of at most ViewWidth cells
	Cells [][]Cell
	Status
}

//Viewer is the interface to any Viewer - the object who can display session data or control it
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//Universe is the surface the viewers use to drive the session
type Universe interface {
	Status() Status
	Options() Options
	Snapshot() Snapshot
	Handle(cmd Command) bool
	Tick()
	ToggleCell(x int, y int)
	Resize(w int, h int)
	RegisterViewer(v Viewer)
}
