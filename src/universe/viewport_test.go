package universe

import "testing"

func TestViewportPanClamp(t *testing.T) {
	v := NewViewport(20, 10, 5, 4)
	rng := NewRandomSource(11)
	for i := 0; i < 1000; i++ {
		v.Pan(rng.IntN(9)-4, rng.IntN(9)-4)
		x1, y1, x2, y2 := v.Visible()
		if x1 < 0 || y1 < 0 || x2 > 20 || y2 > 10 {
			t.Fatalf("pan %d: visible %d:%d-%d:%d leaves the grid", i, x1, y1, x2, y2)
		}
		if x2-x1 != 5 || y2-y1 != 4 {
			t.Fatalf("pan %d: visible size %dx%d, expected 5x4", i, x2-x1, y2-y1)
		}
	}
}

func TestViewportSmallGrid(t *testing.T) {
	v := NewViewport(3, 3, 10, 10)
	v.Pan(5, 5)
	v.RecenterOn(Point{2, 2})
	if v.Origin != (Point{0, 0}) {
		t.Fatalf("origin %v on a grid smaller than the view", v.Origin)
	}
	x1, y1, x2, y2 := v.Visible()
	if x1 != 0 || y1 != 0 || x2 != 3 || y2 != 3 {
		t.Fatalf("visible %d:%d-%d:%d, expected the whole grid", x1, y1, x2, y2)
	}
	v.Follow(Point{2, 2})
	if v.Origin != (Point{0, 0}) {
		t.Fatalf("origin %v after follow on a grid smaller than the view", v.Origin)
	}
}

func TestViewportFollow(t *testing.T) {
	v := NewViewport(20, 10, 5, 4)
	cases := []struct {
		p      Point
		origin Point
	}{
		{Point{3, 2}, Point{0, 0}},
		{Point{5, 0}, Point{1, 0}},
		{Point{19, 9}, Point{15, 6}},
		{Point{17, 7}, Point{15, 6}},
		{Point{14, 5}, Point{14, 5}},
		{Point{0, 0}, Point{0, 0}},
	}
	for _, c := range cases {
		v.Follow(c.p)
		if v.Origin != c.origin {
			t.Fatalf("follow %v: origin %v, expected %v", c.p, v.Origin, c.origin)
		}
	}
}

func TestViewportRecenterOn(t *testing.T) {
	cases := []struct {
		p      Point
		origin Point
	}{
		{Point{10, 5}, Point{8, 3}},
		{Point{0, 0}, Point{0, 0}},
		{Point{19, 9}, Point{15, 6}},
	}
	for _, c := range cases {
		v := NewViewport(20, 10, 5, 4)
		v.RecenterOn(c.p)
		if v.Origin != c.origin {
			t.Fatalf("recenter on %v: origin %v, expected %v", c.p, v.Origin, c.origin)
		}
	}
}

func TestViewportResizeReclamps(t *testing.T) {
	v := NewViewport(20, 10, 5, 4)
	v.Pan(100, 100)
	v.Resize(8, 8)
	if v.Origin != (Point{12, 2}) {
		t.Fatalf("origin %v after resize, expected 12:2", v.Origin)
	}
	v.Resize(0, -3)
	if v.Width != 1 || v.Height != 1 {
		t.Fatalf("size %dx%d, expected 1x1", v.Width, v.Height)
	}
}
