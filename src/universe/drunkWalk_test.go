package universe

import "testing"

func TestDrunkWalkStartsInCentre(t *testing.T) {
	d := NewDrunkWalk()
	a := d.Initialize(9, 7, NewRandomSource(1))
	if a.LiveCells() != 0 {
		t.Fatalf("fresh walk grid has %d carved cells", a.LiveCells())
	}
	if d.Agent() != (Point{4, 3}) {
		t.Fatalf("agent at %v, expected 4:3", d.Agent())
	}
}

func TestDrunkWalkContainment(t *testing.T) {
	sizes := []Point{{1, 1}, {2, 1}, {5, 3}, {16, 9}}
	for _, sz := range sizes {
		d := NewDrunkWalk()
		rng := NewRandomSource(7)
		a := d.Initialize(sz.X, sz.Y, rng)
		for i := 0; i < 2000; i++ {
			focus := d.Step(&a, rng)
			if focus == nil {
				t.Fatal("drunk walk returned no focus")
			}
			if !a.InBounds(focus.X, focus.Y) {
				t.Fatalf("grid %v step %d: agent left the grid at %v", sz, i, *focus)
			}
			if *focus != d.Agent() {
				t.Fatalf("focus %v differs from agent %v", *focus, d.Agent())
			}
		}
	}
}

func TestDrunkWalkCarvesVisitedCells(t *testing.T) {
	d := NewDrunkWalk()
	rng := NewRandomSource(3)
	a := d.Initialize(11, 11, rng)
	visited := map[Point]bool{}
	for i := 0; i < 200; i++ {
		visited[d.Agent()] = true
		d.Step(&a, rng)
	}
	for p := range visited {
		if a.Entities[p.Y][p.X] != Filled {
			t.Fatalf("visited cell %v was not carved", p)
		}
	}
	if a.LiveCells() != len(visited) {
		t.Fatalf("%d carved cells, %d visited", a.LiveCells(), len(visited))
	}
}

func TestDrunkWalkSingleCellStays(t *testing.T) {
	d := NewDrunkWalk()
	rng := NewRandomSource(5)
	a := d.Initialize(1, 1, rng)
	for i := 0; i < 10; i++ {
		d.Step(&a, rng)
	}
	if d.Agent() != (Point{0, 0}) || a.Entities[0][0] != Filled {
		t.Fatalf("agent %v cell %v", d.Agent(), a.Entities[0][0])
	}
}

func TestDrunkWalkDeterministic(t *testing.T) {
	walk := func() []Point {
		d := NewDrunkWalk()
		rng := NewRandomSource(99)
		a := d.Initialize(30, 20, rng)
		var path []Point
		for i := 0; i < 300; i++ {
			path = append(path, *d.Step(&a, rng))
		}
		return path
	}
	p1, p2 := walk(), walk()
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("step %d: %v != %v", i, p1[i], p2[i])
		}
	}
}
