package universe

import "sort"

//AlgorithmKind is the tag of the active algorithm
type AlgorithmKind int

const (
	AlgorithmPaint AlgorithmKind = iota
	AlgorithmLife
	AlgorithmDrunkWalk
)

var algorithmNames = map[AlgorithmKind]string{
	AlgorithmPaint:     "paint",
	AlgorithmLife:      "life",
	AlgorithmDrunkWalk: "drunkwalk",
}

func (k AlgorithmKind) String() string {
	if n, ok := algorithmNames[k]; ok {
		return n
	}
	return "unknown"
}

//ParseAlgorithm resolves the algorithm by its flag name
func ParseAlgorithm(name string) (AlgorithmKind, bool) {
	for k, n := range algorithmNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

//AlgorithmNames returns the algorithm names in selection order
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithmNames))
	for k := AlgorithmPaint; k <= AlgorithmDrunkWalk; k++ {
		names = append(names, algorithmNames[k])
	}
	return names
}

//Algorithm is one grid generation/mutation strategy
type Algorithm interface {
	//Initialize builds the grid used on regen and resets the carried state to match it
	Initialize(width int, height int, rng *RandomSource) Area
	//Reset drops the carried state for an existing grid
	Reset(a *Area)
	//Step does one iteration in place
	//the returned focus is nil unless the algorithm has a moving point to follow
	Step(a *Area, rng *RandomSource) (focus *Point)
}

//Paint never changes the grid by itself, all changes come from cell toggles
type Paint struct{}

func (Paint) Initialize(width int, height int, rng *RandomSource) Area {
	return RandomArea(width, height, rng)
}

func (Paint) Reset(*Area) {}

func (Paint) Step(*Area, *RandomSource) *Point {
	return nil
}

//EngineNames returns the sorted names of the Life engines
func EngineNames() []string {
	names := make([]string, 0, len(lifeEngines))
	for k := range lifeEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
