package universe

import (
	"github.com/charmbracelet/log"
	"io"
	"time"
)

//Session owns the grid, the viewport, the algorithms and the random source
//all methods are expected to be called from one loop, there is no locking
type Session struct {
	options    Options
	logger     *log.Logger
	rng        *RandomSource
	seed       int64
	area       Area
	viewport   Viewport
	active     AlgorithmKind
	algorithms map[AlgorithmKind]Algorithm
	running    bool
	finished   bool
	focus      *Point
	cursor     Point

	iterationNum  int
	liveCells     int
	iterationTime time.Duration

	views []Viewer
}

//NewSession creates the session paused, with an Empty grid and the viewport covering the whole grid
//the options are expected to be validated by the caller
func NewSession(o Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	o.Width = max(o.Width, 1)
	o.Height = max(o.Height, 1)
	active, ok := ParseAlgorithm(o.Algorithm)
	if !ok {
		active = AlgorithmPaint
	}
	life := NewLife(o.Engine)
	o.Engine = life.Engine()
	o.Algorithm = active.String()

	s := &Session{
		options: o,
		logger:  logger,
		rng:     NewRandomSource(o.Seed),
		seed:    o.Seed,
		area:    createArea(o.Width, o.Height),
		active:  active,
		algorithms: map[AlgorithmKind]Algorithm{
			AlgorithmPaint:     Paint{},
			AlgorithmLife:      life,
			AlgorithmDrunkWalk: NewDrunkWalk(),
		},
	}
	s.viewport = NewViewport(o.Width, o.Height, o.Width, o.Height)
	s.cursor = s.area.Center()
	s.resetAlgorithms()
	s.logger.Info("session created",
		"width", o.Width, "height", o.Height,
		"seed", o.Seed, "algorithm", active, "engine", o.Engine,
	)
	return s
}

//Handle applies one user command and notifies the viewers
//returns false once the session is finished
func (s *Session) Handle(cmd Command) bool {
	if s.finished {
		return false
	}
	switch cmd {
	case CmdSelectPaint:
		s.selectAlgorithm(AlgorithmPaint)
	case CmdSelectLife:
		s.selectAlgorithm(AlgorithmLife)
	case CmdSelectDrunkWalk:
		s.selectAlgorithm(AlgorithmDrunkWalk)
	case CmdRegen:
		s.regen()
	case CmdNewSeed:
		s.seed++
		s.logger.Info("new seed", "seed", s.seed)
		s.regen()
	case CmdStep:
		s.step()
	case CmdToggleRun:
		s.running = !s.running
		s.logger.Debug("run toggled", "running", s.running)
	case CmdClear:
		s.clear()
	case CmdToggleCell:
		s.toggleCursor()
	case CmdPanUp, CmdPanDown, CmdPanLeft, CmdPanRight:
		d := panDeltas[cmd]
		s.moveCursor(d.X, d.Y)
	case CmdQuit:
		s.running = false
		s.finished = true
		s.logger.Info("session finished", "iterations", s.iterationNum, "seed", s.seed)
	default:
		//unknown input is ignored
		return true
	}
	s.refreshView()
	return !s.finished
}

//Tick is fired by the shell's timer, it steps only while running
func (s *Session) Tick() {
	if !s.running || s.finished {
		return
	}
	s.step()
	s.refreshView()
}

//ToggleCell flips the cell at x,y, only while painting
func (s *Session) ToggleCell(x int, y int) {
	if s.finished {
		return
	}
	if s.toggle(x, y) {
		s.refreshView()
	}
}

//Resize follows the rendering surface
func (s *Session) Resize(w int, h int) {
	if w == s.viewport.Width && h == s.viewport.Height {
		return
	}
	s.viewport.Resize(w, h)
	if s.focus != nil {
		s.viewport.RecenterOn(*s.focus)
	} else {
		s.viewport.Follow(s.cursor)
	}
}

//Status returns current session status represented by Status struct
func (s *Session) Status() Status {
	st := Status{
		IterationNum:  s.iterationNum,
		Algorithm:     s.active,
		Running:       s.running,
		Finished:      s.finished,
		Seed:          s.seed,
		LiveCells:     s.liveCells,
		IterationTime: s.iterationTime,
	}
	if s.focus != nil {
		f := *s.focus
		st.Focus = &f
	}
	return st
}

//Options returns the configuration the session was built with, Seed is the current seed
func (s *Session) Options() Options {
	o := s.options
	o.Seed = s.seed
	return o
}

//Area returns a copy of the whole grid
func (s *Session) Area() Area {
	return s.area.Clone()
}

//Viewport returns the current viewport
func (s *Session) Viewport() Viewport {
	return s.viewport
}

//Snapshot copies the visible part of the grid
func (s *Session) Snapshot() Snapshot {
	x1, y1, x2, y2 := s.viewport.Visible()
	cells := make([][]Cell, 0, y2-y1)
	for y := y1; y < y2; y++ {
		row := make([]Cell, x2-x1)
		copy(row, s.area.Entities[y][x1:x2])
		cells = append(cells, row)
	}
	return Snapshot{
		GridWidth:  s.area.Width,
		GridHeight: s.area.Height,
		Origin:     s.viewport.Origin,
		ViewWidth:  s.viewport.Width,
		ViewHeight: s.viewport.Height,
		Cursor:     s.cursor,
		Cells:      cells,
		Status:     s.Status(),
	}
}

//RegisterViewer registers the viewer - the session will call the viewer when the state is changed
func (s *Session) RegisterViewer(v Viewer) {
	s.views = append(s.views, v)
	v.Register(s)
}

func (s *Session) selectAlgorithm(k AlgorithmKind) {
	if s.active == k {
		return
	}
	s.active = k
	s.focus = nil
	s.logger.Debug("algorithm selected", "algorithm", k)
}

//regen restarts the random stream and replaces the grid
func (s *Session) regen() {
	s.rng.Reseed(s.seed)
	w, h := s.area.Width, s.area.Height
	s.area = s.algorithms[s.active].Initialize(w, h, s.rng)
	s.afterReplace()
	s.logger.Info("grid regenerated", "seed", s.seed, "algorithm", s.active, "live", s.liveCells)
}

//clear replaces the grid with an Empty one, the random stream is left as is
func (s *Session) clear() {
	s.area = createArea(s.area.Width, s.area.Height)
	s.afterReplace()
	s.logger.Debug("grid cleared")
}

func (s *Session) afterReplace() {
	s.resetAlgorithms()
	s.viewport.setGrid(s.area.Width, s.area.Height)
	s.iterationNum = 0
	s.iterationTime = 0
	s.liveCells = s.area.LiveCells()
	s.focus = nil
	if d, ok := s.algorithms[s.active].(*DrunkWalk); ok {
		f := d.Agent()
		s.focus = &f
		s.viewport.RecenterOn(f)
	}
}

func (s *Session) resetAlgorithms() {
	for _, a := range s.algorithms {
		a.Reset(&s.area)
	}
}

//step does exactly one iteration of the active algorithm
func (s *Session) step() {
	start := time.Now()
	s.focus = s.algorithms[s.active].Step(&s.area, s.rng)
	if s.focus != nil {
		s.viewport.RecenterOn(*s.focus)
	}
	s.iterationNum++
	s.liveCells = s.area.LiveCells()
	s.iterationTime = time.Since(start)
}

//moveCursor moves the cursor over the grid, the viewport scrolls to keep it visible
func (s *Session) moveCursor(dx int, dy int) {
	//hard-follow owns the viewport while the walk is running
	if s.running && s.active == AlgorithmDrunkWalk {
		return
	}
	s.cursor.X = clampInt(s.cursor.X+dx, 0, s.area.Width-1)
	s.cursor.Y = clampInt(s.cursor.Y+dy, 0, s.area.Height-1)
	s.viewport.Follow(s.cursor)
}

func (s *Session) toggleCursor() {
	s.toggle(s.cursor.X, s.cursor.Y)
}

func (s *Session) toggle(x int, y int) bool {
	if s.active != AlgorithmPaint || !s.area.InBounds(x, y) {
		return false
	}
	s.area.Entities[y][x] = !s.area.Entities[y][x]
	s.liveCells = s.area.LiveCells()
	return true
}

//refreshView calls Refresh event for all registered views
func (s *Session) refreshView() {
	for _, v := range s.views {
		v.Refresh()
	}
}
