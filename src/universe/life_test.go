package universe

import (
	"fmt"
	"testing"
)

//referenceNext is the plain rule applied on a full copy, used to check the engines
func referenceNext(a Area) Area {
	next := NewArea(a.Width, a.Height)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if (dx == 0 && dy == 0) || nx < 0 || ny < 0 || nx >= a.Width || ny >= a.Height {
						continue
					}
					if a.Entities[ny][nx] {
						n++
					}
				}
			}
			alive := bool(a.Entities[y][x])
			next.Entities[y][x] = Cell(n == 3 || (alive && n == 2))
		}
	}
	return next
}

func areaOf(w int, h int, cells ...Point) Area {
	a := NewArea(w, h)
	for _, p := range cells {
		a.Entities[p.Y][p.X] = Filled
	}
	return a
}

func expectCells(t *testing.T, a Area, alive ...Point) {
	t.Helper()
	expects := map[Point]bool{}
	for _, p := range alive {
		expects[p] = true
	}
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if bool(a.Entities[y][x]) != expects[Point{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, a.Entities[y][x], expects[Point{x, y}])
			}
		}
	}
}

func TestLifePatterns(t *testing.T) {
	for _, engine := range EngineNames() {
		t.Run(engine, func(t *testing.T) {
			l := NewLife(engine)

			lonely := areaOf(5, 5, Point{2, 2})
			l.Step(&lonely, nil)
			expectCells(t, lonely)

			block := []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
			a := areaOf(4, 4, block...)
			for i := 0; i < 3; i++ {
				if focus := l.Step(&a, nil); focus != nil {
					t.Fatalf("life returned focus %v", *focus)
				}
				expectCells(t, a, block...)
			}

			blinker := areaOf(5, 5, Point{2, 1}, Point{2, 2}, Point{2, 3})
			l.Step(&blinker, nil)
			expectCells(t, blinker, Point{1, 2}, Point{2, 2}, Point{3, 2})
			l.Step(&blinker, nil)
			expectCells(t, blinker, Point{2, 1}, Point{2, 2}, Point{2, 3})
		})
	}
}

func TestLifeEdgesDoNotWrap(t *testing.T) {
	a := NewArea(3, 3)
	a.walk(func(x int, y int, _ Cell) { a.Entities[y][x] = Filled })
	NewLife("base").Step(&a, nil)
	//corners keep exactly 3 in-bounds neighbours, everything else is overcrowded
	expectCells(t, a, Point{0, 0}, Point{2, 0}, Point{0, 2}, Point{2, 2})
}

func TestLifeEnginesMatchReference(t *testing.T) {
	for _, engine := range EngineNames() {
		for seed := int64(1); seed <= 3; seed++ {
			t.Run(fmt.Sprintf("%s/%d", engine, seed), func(t *testing.T) {
				l := NewLife(engine)
				a := RandomArea(37, 23, NewRandomSource(seed))
				for gen := 0; gen < 5; gen++ {
					expected := referenceNext(a)
					l.Step(&a, nil)
					if !a.Equal(expected) {
						t.Fatalf("generation %d differs from the reference", gen+1)
					}
				}
			})
		}
	}
}

func TestLifeEngineResizesBuffer(t *testing.T) {
	l := NewLife("simple")
	a := RandomArea(8, 8, NewRandomSource(1))
	l.Step(&a, nil)
	b := RandomArea(12, 5, NewRandomSource(2))
	expected := referenceNext(b)
	l.Step(&b, nil)
	if !b.Equal(expected) {
		t.Fatal("simple engine did not follow the new grid size")
	}
}

func TestNewLifeUnknownEngine(t *testing.T) {
	if e := NewLife("turbo").Engine(); e != DefEngine {
		t.Fatalf("engine %q, expected fallback to %q", e, DefEngine)
	}
}
