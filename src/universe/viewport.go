package universe

//Viewport is the visible window over the grid
//Origin is the top left grid coordinate shown, Width/Height come from the rendering surface
type Viewport struct {
	Origin Point
	Width  int
	Height int

	gridWidth  int
	gridHeight int
}

func NewViewport(gridWidth int, gridHeight int, width int, height int) Viewport {
	v := Viewport{gridWidth: gridWidth, gridHeight: gridHeight}
	v.Resize(width, height)
	return v
}

//RecenterOn puts p in the middle of the visible window, as far as the grid allows
func (v *Viewport) RecenterOn(p Point) {
	v.Origin = Point{p.X - v.Width/2, p.Y - v.Height/2}
	v.clamp()
}

//Pan shifts the window by dx,dy
func (v *Viewport) Pan(dx int, dy int) {
	v.Origin.X += dx
	v.Origin.Y += dy
	v.clamp()
}

//Follow pans the window the least needed to show p
func (v *Viewport) Follow(p Point) {
	x1, y1, x2, y2 := v.Visible()
	dx, dy := 0, 0
	if p.X < x1 {
		dx = p.X - x1
	} else if p.X >= x2 {
		dx = p.X - x2 + 1
	}
	if p.Y < y1 {
		dy = p.Y - y1
	} else if p.Y >= y2 {
		dy = p.Y - y2 + 1
	}
	v.Pan(dx, dy)
}

//Resize follows the rendering surface, the origin only moves to stay in bounds
func (v *Viewport) Resize(width int, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.Width, v.Height = width, height
	v.clamp()
}

//setGrid is called when the grid is replaced
func (v *Viewport) setGrid(gridWidth int, gridHeight int) {
	v.gridWidth, v.gridHeight = gridWidth, gridHeight
	v.clamp()
}

//Visible returns the grid rectangle the window covers as [x1,x2)x[y1,y2)
func (v *Viewport) Visible() (x1 int, y1 int, x2 int, y2 int) {
	x1, y1 = v.Origin.X, v.Origin.Y
	x2 = min(x1+v.Width, v.gridWidth)
	y2 = min(y1+v.Height, v.gridHeight)
	return
}

//clamp keeps the window inside the grid
//a grid smaller than the window is shown whole from the origin 0
func (v *Viewport) clamp() {
	v.Origin.X = clampInt(v.Origin.X, 0, max(0, v.gridWidth-v.Width))
	v.Origin.Y = clampInt(v.Origin.Y, 0, max(0, v.gridHeight-v.Height))
}

func clampInt(n int, lo int, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
