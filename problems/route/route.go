package route

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/smallnest/statespace/search"
)

var (
	// ErrUnknownCity is returned when a road or problem names a city the
	// map does not have.
	ErrUnknownCity = errors.New("unknown city")

	// ErrInvalidRoad is returned for self loops and negative distances.
	ErrInvalidRoad = errors.New("invalid road")
)

// Point is a city position used by the straight-line heuristic.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Road is an undirected road between two cities.
type Road struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Distance float64 `yaml:"distance"`
}

// Map is a set of cities joined by undirected roads.
type Map struct {
	cities    []string
	locations map[string]Point
	roads     map[string]map[string]float64
}

// mapFile is the YAML layout read by LoadMap.
type mapFile struct {
	Cities map[string]*Point `yaml:"cities"`
	Roads  []Road            `yaml:"roads"`
}

// NewMap builds a map from city locations and roads. Every city named by
// a road must be a key of locations; a nil location is allowed and
// disables the heuristic for that city.
func NewMap(locations map[string]*Point, roads []Road) (*Map, error) {
	m := &Map{
		locations: make(map[string]Point, len(locations)),
		roads:     make(map[string]map[string]float64, len(locations)),
	}
	for name, p := range locations {
		m.cities = append(m.cities, name)
		m.roads[name] = map[string]float64{}
		if p != nil {
			m.locations[name] = *p
		}
	}
	slices.Sort(m.cities)

	for _, r := range roads {
		for _, city := range []string{r.From, r.To} {
			if _, ok := m.roads[city]; !ok {
				return nil, fmt.Errorf("%w: road %s-%s names %q", ErrUnknownCity, r.From, r.To, city)
			}
		}
		if r.From == r.To {
			return nil, fmt.Errorf("%w: %s loops to itself", ErrInvalidRoad, r.From)
		}
		if r.Distance < 0 || math.IsNaN(r.Distance) {
			return nil, fmt.Errorf("%w: %s-%s has distance %g", ErrInvalidRoad, r.From, r.To, r.Distance)
		}
		m.roads[r.From][r.To] = r.Distance
		m.roads[r.To][r.From] = r.Distance
	}
	return m, nil
}

// LoadMap reads a map from YAML:
//
//	cities:
//	  Arad: {x: 91, y: 492}
//	  Sibiu: {x: 207, y: 457}
//	roads:
//	  - {from: Arad, to: Sibiu, distance: 140}
func LoadMap(r io.Reader) (*Map, error) {
	var f mapFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode map: %w", err)
	}
	return NewMap(f.Cities, f.Roads)
}

// LoadMapFile reads a YAML map from path.
func LoadMapFile(path string) (*Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer file.Close()
	return LoadMap(file)
}

// Cities returns the city names in sorted order.
func (m *Map) Cities() []string {
	return slices.Clone(m.cities)
}

// HasCity reports whether the map knows city.
func (m *Map) HasCity(city string) bool {
	_, ok := m.roads[city]
	return ok
}

// Neighbors returns the cities one road away from city, sorted by name.
func (m *Map) Neighbors(city string) []string {
	next := make([]string, 0, len(m.roads[city]))
	for name := range m.roads[city] {
		next = append(next, name)
	}
	slices.Sort(next)
	return next
}

// Distance returns the length of the road between a and b.
func (m *Map) Distance(a, b string) (float64, bool) {
	d, ok := m.roads[a][b]
	return d, ok
}

// StraightLine returns the Euclidean distance between a and b, or 0 when
// either has no location.
func (m *Map) StraightLine(a, b string) float64 {
	pa, ok := m.locations[a]
	if !ok {
		return 0
	}
	pb, ok := m.locations[b]
	if !ok {
		return 0
	}
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y)
}

// Problem is a shortest-route query on a Map. States are city names and
// an action is the name of the city to drive to.
type Problem struct {
	Map   *Map
	Start string
	Goal  string
}

var _ search.InformedProblem[string, string] = (*Problem)(nil)

// NewProblem checks that start and goal are on m.
func NewProblem(m *Map, start, goal string) (*Problem, error) {
	for _, city := range []string{start, goal} {
		if !m.HasCity(city) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCity, city)
		}
	}
	return &Problem{Map: m, Start: start, Goal: goal}, nil
}

// Initial implements search.Problem.
func (p *Problem) Initial() string { return p.Start }

// IsGoal implements search.Problem.
func (p *Problem) IsGoal(city string) bool { return city == p.Goal }

// Actions implements search.Problem.
func (p *Problem) Actions(city string) []string { return p.Map.Neighbors(city) }

// Result implements search.Problem.
func (p *Problem) Result(_ string, to string) string { return to }

// ActionCost implements search.Problem with the road length.
func (p *Problem) ActionCost(from, _ string, to string) float64 {
	d, ok := p.Map.Distance(from, to)
	if !ok {
		return math.Inf(1)
	}
	return d
}

// H implements search.InformedProblem with the straight-line distance to
// the goal.
func (p *Problem) H(node *search.Node[string, string]) float64 {
	return p.Map.StraightLine(node.State, p.Goal)
}
