package universe

/*
	Game of Life with interchangeable buffering engines
	every engine reads only the previous generation and produces identical results
	base:      allocates the new area on each generation and replaces the old one
	simple:    keeps one full size scratch buffer, the data is copied back after the generation
	smallBuff: keeps the current and previous line only,
	           the previous line is written back as calculating moves to the next line
*/

var lifeEngines = map[string]func(l *Life) func(a *Area){
	"base":      func(l *Life) func(a *Area) { return l.baseIteration },
	"simple":    func(l *Life) func(a *Area) { return l.simpleIteration },
	"smallBuff": func(l *Life) func(a *Area) { return l.smallBuffIteration },
}

type Life struct {
	engine        string
	tmpBuff       Area
	nextIteration func(a *Area)
}

//NewLife creates the Life algorithm with the named engine, unknown names fall back to base
func NewLife(engine string) *Life {
	l := &Life{}
	mk, ok := lifeEngines[engine]
	if !ok {
		engine = DefEngine
		mk = lifeEngines[engine]
	}
	l.engine = engine
	l.nextIteration = mk(l)
	return l
}

func (l *Life) Engine() string {
	return l.engine
}

func (l *Life) Initialize(width int, height int, rng *RandomSource) Area {
	return RandomArea(width, height, rng)
}

func (l *Life) Reset(*Area) {}

func (l *Life) Step(a *Area, _ *RandomSource) *Point {
	l.nextIteration(a)
	return nil
}

//cellNextState calculates the next state for the cell
func cellNextState(a *Area, x int, y int) Cell {
	n := a.LiveNeighbours(x, y)
	return Cell(n == 3 || (n == 2 && bool(a.Entities[y][x])))
}

func (l *Life) baseIteration(a *Area) {
	next := createArea(a.Width, a.Height)
	a.walk(func(x int, y int, _ Cell) {
		next.Entities[y][x] = cellNextState(a, x, y)
	})
	a.Entities = next.Entities
}

func (l *Life) simpleIteration(a *Area) {
	if l.tmpBuff.Width != a.Width || l.tmpBuff.Height != a.Height {
		l.tmpBuff = createArea(a.Width, a.Height)
	}
	a.walk(func(x int, y int, _ Cell) {
		l.tmpBuff.Entities[y][x] = cellNextState(a, x, y)
	})
	for y := range a.Entities {
		copy(a.Entities[y], l.tmpBuff.Entities[y])
	}
}

func (l *Life) smallBuffIteration(a *Area) {
	if l.tmpBuff.Width != a.Width || l.tmpBuff.Height != 2 {
		l.tmpBuff = createArea(a.Width, 2)
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			l.tmpBuff.Entities[1][x] = cellNextState(a, x, y)
		}
		//row y-1 is not needed any more, row y still has to be read for y+1
		if y-1 >= 0 {
			copy(a.Entities[y-1], l.tmpBuff.Entities[0])
		}
		l.tmpBuff.Entities[0], l.tmpBuff.Entities[1] = l.tmpBuff.Entities[1], l.tmpBuff.Entities[0]
	}
	if a.Height > 0 {
		copy(a.Entities[a.Height-1], l.tmpBuff.Entities[0])
	}
}
