package universe

import "fmt"

//Area is the dense cell buffer, Entities is indexed as [y][x]
type Area struct {
	Width    int
	Height   int
	Entities [][]Cell
}

//createArea allocates the new area with all cells Empty
//rows share one backing slice
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Entities: make([][]Cell, height)}
	b := make([]Cell, width*height)
	for i := range area.Entities {
		start := width * i
		area.Entities[i] = b[start : start+width : start+width]
	}
	return area
}

//NewArea creates the area with all cells Empty
func NewArea(width int, height int) Area {
	return createArea(width, height)
}

//RandomArea creates the area where every cell is an independent coin flip from rng
//cells are drawn row by row, left to right
func RandomArea(width int, height int, rng *RandomSource) Area {
	a := createArea(width, height)
	for y := range a.Entities {
		for x := range a.Entities[y] {
			a.Entities[y][x] = Cell(rng.Bool())
		}
	}
	return a
}

//InBounds reports whether x,y addresses a cell of the area
func (a *Area) InBounds(x int, y int) bool {
	return x >= 0 && y >= 0 && x < a.Width && y < a.Height
}

//Center returns the middle cell of the area
func (a *Area) Center() Point {
	return Point{a.Width / 2, a.Height / 2}
}

func (a *Area) Get(x int, y int) (Cell, error) {
	if !a.InBounds(x, y) {
		return Empty, fmt.Errorf("get %d:%d on %dx%d: %w", x, y, a.Width, a.Height, ErrOutOfBounds)
	}
	return a.Entities[y][x], nil
}

func (a *Area) Set(x int, y int, c Cell) error {
	if !a.InBounds(x, y) {
		return fmt.Errorf("set %d:%d on %dx%d: %w", x, y, a.Width, a.Height, ErrOutOfBounds)
	}
	a.Entities[y][x] = c
	return nil
}

//mustSet is used by algorithms, which clamp their own coordinates
//a failure here is a broken invariant, not a user error
func (a *Area) mustSet(x int, y int, c Cell) {
	if err := a.Set(x, y, c); err != nil {
		panic(err)
	}
}

//LiveNeighbours counts Filled cells in the Moore neighbourhood of x,y
//cells outside the area count as Empty, there is no wraparound
func (a *Area) LiveNeighbours(x int, y int) int {
	n := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			nx := x + i
			ny := y + j
			if nx < 0 || ny < 0 || nx >= a.Width || ny >= a.Height {
				continue
			}
			if a.Entities[ny][nx] {
				n++
			}
		}
	}
	return n
}

//LiveCells calculates the count of Filled cells
func (a *Area) LiveCells() int {
	n := 0
	a.walk(func(_ int, _ int, c Cell) {
		if c {
			n++
		}
	})
	return n
}

//Clone returns a deep copy of the area
func (a *Area) Clone() Area {
	c := createArea(a.Width, a.Height)
	for y := range a.Entities {
		copy(c.Entities[y], a.Entities[y])
	}
	return c
}

//Equal reports whether both areas have the same size and cells
func (a *Area) Equal(b Area) bool {
	if a.Width != b.Width || a.Height != b.Height {
		return false
	}
	for y := range a.Entities {
		for x := range a.Entities[y] {
			if a.Entities[y][x] != b.Entities[y][x] {
				return false
			}
		}
	}
	return true
}

//walk walks the entire area and calls the cb function for each cell
func (a *Area) walk(cb func(x int, y int, c Cell)) {
	for y := range a.Entities {
		for x := range a.Entities[y] {
			cb(x, y, a.Entities[y][x])
		}
	}
}
