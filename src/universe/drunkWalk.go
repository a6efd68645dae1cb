package universe

//the four orthogonal moves, indexed by the rng draw
var walkDirections = [4]Point{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

//DrunkWalk carves floor (Filled) out of solid wall (Empty) with a randomly walking agent
//
//Each step carves the agent's cell, draws exactly one of the four orthogonal directions
//and moves there. A move that would leave the grid keeps the agent in place.
type DrunkWalk struct {
	agent Point
}

func NewDrunkWalk() *DrunkWalk {
	return &DrunkWalk{}
}

//Agent returns the current agent position
func (d *DrunkWalk) Agent() Point {
	return d.agent
}

//Initialize returns an uncarved grid and puts the agent in its centre
func (d *DrunkWalk) Initialize(width int, height int, _ *RandomSource) Area {
	a := createArea(width, height)
	d.Reset(&a)
	return a
}

func (d *DrunkWalk) Reset(a *Area) {
	d.agent = a.Center()
}

func (d *DrunkWalk) Step(a *Area, rng *RandomSource) *Point {
	//the grid may have been replaced by a smaller one while another algorithm was active
	if !a.InBounds(d.agent.X, d.agent.Y) {
		d.agent = a.Center()
	}
	a.mustSet(d.agent.X, d.agent.Y, Filled)

	dir := walkDirections[rng.IntN(len(walkDirections))]
	next := Point{d.agent.X + dir.X, d.agent.Y + dir.Y}
	if a.InBounds(next.X, next.Y) {
		d.agent = next
	}
	focus := d.agent
	return &focus
}
